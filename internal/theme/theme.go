// Package theme owns the dark-mode flag. The flag itself is a pure value
// (Context); the one process-wide side effect it drives is isolated behind
// an Adapter.
package theme

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// DarkClass is the class the root carries while dark mode is on.
const DarkClass = "dark"

// Context is the pure theme state passed down to rendering code.
type Context struct {
	IsDark bool
}

// Theme returns the component theme for the context.
func (c Context) Theme() components.Theme {
	return components.ThemeFor(c.IsDark)
}

// RenderContext returns a component render context using this theme.
func (c Context) RenderContext() components.RenderContext {
	return components.DefaultContext().WithTheme(c.Theme())
}

// Adapter applies the dark-mode flag to something outside the core.
type Adapter interface {
	Apply(isDark bool)
}

// AdapterFunc adapts a function to Adapter.
type AdapterFunc func(isDark bool)

// Apply calls f.
func (f AdapterFunc) Apply(isDark bool) {
	f(isDark)
}

// Controller holds the flag and its single designated adapter.
type Controller struct {
	ctx     Context
	adapter Adapter
}

// NewController creates a controller and applies the initial flag.
func NewController(isDark bool, adapter Adapter) *Controller {
	c := &Controller{adapter: adapter}
	c.Set(isDark)
	return c
}

// Context returns the current pure theme state.
func (c *Controller) Context() Context {
	return c.ctx
}

// IsDark reports the current flag.
func (c *Controller) IsDark() bool {
	return c.ctx.IsDark
}

// Set updates the flag and applies it. The last call wins.
func (c *Controller) Set(isDark bool) {
	c.ctx.IsDark = isDark
	if c.adapter != nil {
		c.adapter.Apply(isDark)
	}
}

// Toggle flips the flag.
func (c *Controller) Toggle() {
	c.Set(!c.ctx.IsDark)
}

// Root is a class list standing in for a document root element.
type Root struct {
	classes map[string]struct{}
}

// NewRoot creates a root carrying classes.
func NewRoot(classes ...string) *Root {
	r := &Root{classes: make(map[string]struct{}, len(classes))}
	for _, class := range classes {
		r.classes[class] = struct{}{}
	}
	return r
}

// Has reports whether the root carries class.
func (r *Root) Has(class string) bool {
	_, ok := r.classes[class]
	return ok
}

// Classes returns the sorted class list.
func (r *Root) Classes() []string {
	out := make([]string, 0, len(r.classes))
	for class := range r.classes {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}

// String renders the class attribute.
func (r *Root) String() string {
	return strings.Join(r.Classes(), " ")
}

// RootAdapter adds or removes DarkClass on a Root.
type RootAdapter struct {
	Root *Root
}

// Apply sets or clears the dark class. A zero Root is usable.
func (a RootAdapter) Apply(isDark bool) {
	if isDark {
		if a.Root.classes == nil {
			a.Root.classes = make(map[string]struct{})
		}
		a.Root.classes[DarkClass] = struct{}{}
		return
	}
	delete(a.Root.classes, DarkClass)
}

// RendererAdapter tells a lipgloss renderer which background to assume, so
// adaptive colours outside the component theme (help, spinner) follow suit.
type RendererAdapter struct {
	Renderer *lipgloss.Renderer
}

// Apply sets the renderer's dark background flag.
func (a RendererAdapter) Apply(isDark bool) {
	r := a.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	r.SetHasDarkBackground(isDark)
}

// Adapters fans one flag out to several adapters in order.
type Adapters []Adapter

// Apply forwards to every adapter.
func (as Adapters) Apply(isDark bool) {
	for _, a := range as {
		if a != nil {
			a.Apply(isDark)
		}
	}
}
