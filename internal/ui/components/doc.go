// Package components provides the theme-aware display primitives the
// showcase is assembled from: layout (Stack, Container, Card, Panel,
// Separator), text (Text, Header, Label, CodeBlock) and small controls
// (Badge, Button, Tabs, Switch, Select, Alert).
//
// # Theme System
//
// Themes are immutable and passed explicitly through RenderContext, so the
// same component renders light or dark depending only on its context:
//
//	ctx := components.DefaultContext().WithTheme(components.ThemeFor(isDark))
//	output := component.ViewWithContext(ctx)
//
// View() renders with the light theme.
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	card := NewCard().WithAppliers(
//		Background(PalettePrimary),
//		Border(BorderVariantRounded),
//	)
//
// # Controls
//
// Switch, Select and Tabs are display surfaces only. They never keep a
// value: the host passes the current value in and reacts to keys itself,
// using helpers such as Select.Next to stay inside the option domain.
package components
