package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/playground"
	"github.com/alexisbeaulieu97/showcase/internal/selection"
	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	require.NoError(t, Validate(cfg))
}

func TestLoadMergesOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `theme:
  dark: true
input:
  variant: filled
  invalid: true
table:
  selection_policy: retain
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Theme.Dark)
	assert.Equal(t, "filled", cfg.Input.Variant)
	assert.Equal(t, "md", cfg.Input.Size, "unset keys keep defaults")
	assert.True(t, cfg.Input.Invalid)
	assert.True(t, cfg.Table.Selectable)
	assert.Equal(t, "No users found", cfg.Table.EmptyMessage)
	assert.Equal(t, selection.RetainOnDisable, cfg.Policy())
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeTempConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		contents  string
		wantParse bool
		wantField string
	}{
		{name: "malformed yaml", contents: "input: [oops\n", wantParse: true},
		{name: "unknown key", contents: "input:\n  colour: red\n", wantParse: true},
		{name: "variant outside domain", contents: "input:\n  variant: shiny\n", wantField: "input.variant"},
		{name: "size outside domain", contents: "input:\n  size: xl\n", wantField: "input.size"},
		{name: "bad policy", contents: "table:\n  selection_policy: sometimes\n", wantField: "table.selection_policy"},
		{name: "bad log level", contents: "log:\n  level: loud\n", wantField: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTempConfig(t, tt.contents))
			require.Error(t, err)

			if tt.wantParse {
				var parseErr *showcaseerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				return
			}

			var validationErr *showcaseerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *showcaseerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseReportsLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("inline.yaml", []byte("input:\n  variant: filled\n   size: md\n"))

	var parseErr *showcaseerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Line)
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	var validationErr *showcaseerrors.ValidationError
	require.ErrorAs(t, Validate(nil), &validationErr)
}

func TestSeedStores(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Input.Variant = "ghost"
	cfg.Input.Loading = true
	cfg.Table.Selectable = false

	input := playground.NewInputFieldStore()
	require.NoError(t, cfg.SeedInput(input))
	assert.Equal(t, "ghost", input.Snapshot().String(playground.ControlVariant))
	assert.True(t, input.Snapshot().Flag(playground.ControlLoading))

	table := playground.NewDataTableStore()
	require.NoError(t, cfg.SeedTable(table))
	assert.False(t, table.Snapshot().Flag(playground.ControlSelectable))
}

func TestSeedWrongStoreReportsControl(t *testing.T) {
	t.Parallel()

	err := Default().SeedInput(playground.NewDataTableStore())

	var controlErr *showcaseerrors.ControlError
	require.ErrorAs(t, err, &controlErr)
	assert.Equal(t, playground.ControlVariant, controlErr.Control)
	assert.ErrorIs(t, err, playground.ErrUnknownControl)
}

func TestSeedRejectsValueOutsideDomain(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Input.Size = "xl"

	store := playground.NewInputFieldStore()
	err := cfg.SeedInput(store)

	var controlErr *showcaseerrors.ControlError
	require.ErrorAs(t, err, &controlErr)
	assert.Equal(t, playground.ControlSize, controlErr.Control)
	assert.ErrorIs(t, err, playground.ErrOutOfDomain)
	assert.Equal(t, "md", store.Snapshot().String(playground.ControlSize))
}

func TestValidatorInstanceIsShared(t *testing.T) {
	t.Parallel()

	assert.Same(t, validatorInstance(), validatorInstance())
	assert.NoError(t, validatorInstance().Var("lg", "input_size"))
	assert.Error(t, validatorInstance().Var("xl", "input_size"))
}

func TestLoadBundledExample(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join("..", "..", "examples", "showcase.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.Theme.Dark)
	assert.Equal(t, "filled", cfg.Input.Variant)
	assert.Equal(t, "lg", cfg.Input.Size)
	assert.Equal(t, selection.RetainOnDisable, cfg.Policy())
	assert.Equal(t, "debug", cfg.Log.Level)
}
