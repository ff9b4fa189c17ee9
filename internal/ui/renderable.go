// Package ui defines the minimal contract shared by every display surface.
package ui

// Renderable is anything that can draw itself to a string.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View calls f.
func (f RenderFunc) View() string {
	return f()
}
