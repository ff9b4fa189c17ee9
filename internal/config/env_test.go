package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

func TestEnvName(t *testing.T) {
	assert.Equal(t, "SHOWCASE_TABLE_SELECTION_POLICY", EnvName("table.selection_policy"))
	assert.Equal(t, "SHOWCASE_THEME_DARK", EnvName("theme.dark"))
}

func TestApplyEnvOverridesSetVariables(t *testing.T) {
	t.Setenv("SHOWCASE_THEME_DARK", "true")
	t.Setenv("SHOWCASE_INPUT_VARIANT", "ghost")
	t.Setenv("SHOWCASE_TABLE_SELECTABLE", "false")
	t.Setenv("SHOWCASE_TABLE_EMPTY_MESSAGE", "Nobody here")

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg))

	assert.True(t, cfg.Theme.Dark)
	assert.Equal(t, "ghost", cfg.Input.Variant)
	assert.Equal(t, "md", cfg.Input.Size, "unset variables keep the current value")
	assert.False(t, cfg.Table.Selectable)
	assert.Equal(t, "Nobody here", cfg.Table.EmptyMessage)
	require.NoError(t, Validate(&cfg))
}

func TestApplyEnvLeavesConfigAloneWithoutVariables(t *testing.T) {
	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnvRejectsBadBool(t *testing.T) {
	t.Setenv("SHOWCASE_INPUT_LOADING", "sometimes")

	cfg := Default()
	err := ApplyEnv(&cfg)

	var ve *showcaseerrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "input.loading", ve.Field)
	assert.Contains(t, err.Error(), "SHOWCASE_INPUT_LOADING")
}

func TestApplyEnvOutOfDomainIsCaughtByValidate(t *testing.T) {
	t.Setenv("SHOWCASE_INPUT_SIZE", "xl")

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg))

	var ve *showcaseerrors.ValidationError
	require.ErrorAs(t, Validate(&cfg), &ve)
	assert.Equal(t, "input.size", ve.Field)
}

func TestApplyEnvNil(t *testing.T) {
	require.Error(t, ApplyEnv(nil))
}
