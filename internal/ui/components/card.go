package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

// Card is a bordered container for grouped content, such as a customize panel.
type Card struct {
	*Container
}

// NewCard creates a new card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).
		WithPadding(SymmetricSpacing(0, 1)).
		WithAppliers(CardBaseStyle()...)

	return &Card{Container: container}
}

// WithTitle puts a title row above the card content.
func (c *Card) WithTitle(title string) *Card {
	c.Prepend(NewHeader(title), NewSeparator())
	return c
}
