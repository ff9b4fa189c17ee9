package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set:
//
//   - Base: the primary background or brand color
//   - OnBase: text color that contrasts well with Base
//   - Muted: a desaturated variant of Base for subtle accents
//   - Contrast: an accent that pops against Base
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderVariant names a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme represents an immutable styling theme for components. Colours are
// resolved for one mode up front so a theme renders identically whatever the
// terminal reports about its background.
type Theme struct {
	Name       string
	Dark       bool
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Variants   *VariantRegistry
}

// LightTheme returns the light theme.
func LightTheme() Theme {
	return newTheme(false)
}

// DarkTheme returns the dark theme.
func DarkTheme() Theme {
	return newTheme(true)
}

// ThemeFor returns DarkTheme when dark is true and LightTheme otherwise.
func ThemeFor(dark bool) Theme {
	return newTheme(dark)
}

func newTheme(dark bool) Theme {
	c := func(light, darkHex string) lipgloss.Color {
		if dark {
			return lipgloss.Color(darkHex)
		}
		return lipgloss.Color(light)
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     c("#6366f1", "#818cf8"),
			OnBase:   c("#ffffff", "#0b1120"),
			Muted:    c("#e0e7ff", "#312e81"),
			Contrast: c("#4338ca", "#c7d2fe"),
		},
		Secondary: ColourSet{
			Base:     c("#e5e7eb", "#374151"),
			OnBase:   c("#111827", "#f9fafb"),
			Muted:    c("#f3f4f6", "#1f2937"),
			Contrast: c("#9333ea", "#c084fc"),
		},
		Surface: ColourSet{
			Base:     c("#f9fafb", "#030712"),
			OnBase:   c("#111827", "#f9fafb"),
			Muted:    c("#f3f4f6", "#111827"),
			Contrast: c("#d1d5db", "#1f2937"),
		},
		Success: ColourSet{
			Base:     c("#22c55e", "#4ade80"),
			OnBase:   c("#052e16", "#022c22"),
			Muted:    c("#dcfce7", "#14532d"),
			Contrast: c("#15803d", "#bbf7d0"),
		},
		Warning: ColourSet{
			Base:     c("#eab308", "#facc15"),
			OnBase:   c("#422006", "#422006"),
			Muted:    c("#fef9c3", "#713f12"),
			Contrast: c("#a16207", "#fef08a"),
		},
		Danger: ColourSet{
			Base:     c("#ef4444", "#f87171"),
			OnBase:   c("#ffffff", "#450a0a"),
			Muted:    c("#fee2e2", "#7f1d1d"),
			Contrast: c("#b91c1c", "#fecaca"),
		},
		Info: ColourSet{
			Base:     c("#06b6d4", "#22d3ee"),
			OnBase:   c("#083344", "#04121a"),
			Muted:    c("#cffafe", "#164e63"),
			Contrast: c("#0e7490", "#a5f3fc"),
		},
		Neutral: ColourSet{
			Base:     c("#6b7280", "#9ca3af"),
			OnBase:   c("#f9fafb", "#111827"),
			Muted:    c("#9ca3af", "#4b5563"),
			Contrast: c("#374151", "#e5e7eb"),
		},
	}

	name := "light"
	if dark {
		name = "dark"
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerBadgeVariants(variants)
	registerAlertVariants(variants)

	return Theme{
		Name:    name,
		Dark:    dark,
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.HiddenBorder(),
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Typography: defaultTypography(palette),
		Variants:   variants,
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(Background(PalettePrimary), PaddingX(2)))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(Background(PaletteSecondary), PaddingX(2)))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(Foreground(PaletteNeutral), PaddingX(2)))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantDefault, NewCompositeStrategy(Background(PalettePrimary), PaddingX(1)))
	registry.Register(BadgeVariantSecondary, NewCompositeStrategy(Background(PaletteSecondary), PaddingX(1)))
	registry.Register(BadgeVariantOutline, NewCompositeStrategy(Foreground(PaletteNeutral), PaddingX(1)))
	registry.Register(BadgeVariantAccent, NewCompositeStrategy(
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Background(theme.Palette.Secondary.Contrast).Foreground(theme.Palette.Primary.OnBase)
		},
		PaddingX(1),
	))
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantInfo, NewCompositeStrategy(
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Background(theme.Palette.Primary.Muted).Foreground(theme.Palette.Primary.Contrast)
		},
	))
	registry.Register(AlertVariantError, NewCompositeStrategy(
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Background(theme.Palette.Danger.Muted).Foreground(theme.Palette.Danger.Contrast)
		},
	))
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     base,
		Title:    base.Bold(true),
		Subtitle: base.Foreground(p.Neutral.Base),
		Code:     base.Foreground(p.Secondary.Contrast),
		Emphasis: base.Bold(true).Foreground(p.Primary.Base),
		Muted:    base.Foreground(p.Neutral.Base).Faint(true),
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Body
	}
}

// Fluent modifier functions

// Background applies a semantic background colour and matching foreground.
//
// Example:
//
//	card := NewCard().WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour tints the border with a semantic colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// CardBaseStyle is the default card look.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Border(BorderVariantRounded),
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.BorderForeground(theme.Palette.Surface.Contrast)
		},
	}
}
