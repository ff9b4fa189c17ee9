package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/showcase/internal/playground"
	"github.com/alexisbeaulieu97/showcase/internal/selection"
	"github.com/alexisbeaulieu97/showcase/internal/snippet"
	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// InputValues lists the InputField control values in panel order.
func (c Config) InputValues() []playground.Entry {
	return []playground.Entry{
		{Name: playground.ControlVariant, Value: playground.Enum(c.Input.Variant)},
		{Name: playground.ControlSize, Value: playground.Enum(c.Input.Size)},
		{Name: playground.ControlDisabled, Value: playground.Bool(c.Input.Disabled)},
		{Name: playground.ControlInvalid, Value: playground.Bool(c.Input.Invalid)},
		{Name: playground.ControlLoading, Value: playground.Bool(c.Input.Loading)},
	}
}

// TableValues lists the DataTable control values in panel order.
func (c Config) TableValues() []playground.Entry {
	return []playground.Entry{
		{Name: playground.ControlLoading, Value: playground.Bool(c.Table.Loading)},
		{Name: playground.ControlSelectable, Value: playground.Bool(c.Table.Selectable)},
	}
}

// SeedInput writes the InputField values into store.
func (c Config) SeedInput(store *playground.Store) error {
	return seed(snippet.InputField, store, c.InputValues())
}

// SeedTable writes the DataTable values into store.
func (c Config) SeedTable(store *playground.Store) error {
	return seed(snippet.DataTable, store, c.TableValues())
}

// Policy maps the configured selection policy name.
func (c Config) Policy() selection.DisablePolicy {
	if c.Table.SelectionPolicy == PolicyRetain {
		return selection.RetainOnDisable
	}
	return selection.ClearOnDisable
}

func seed(component string, store *playground.Store, entries []playground.Entry) error {
	for _, e := range entries {
		if c, ok := store.Control(e.Name); ok && c.Kind == playground.KindEnum && !c.InDomain(e.Value.Str()) {
			return showcaseerrors.NewControlError(component, e.Name, fmt.Errorf("%q: %w", e.Value.Str(), playground.ErrOutOfDomain))
		}
		if err := store.Set(e.Name, e.Value); err != nil {
			return showcaseerrors.NewControlError(component, e.Name, err)
		}
	}
	return nil
}
