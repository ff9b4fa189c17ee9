package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(io.Writer) bool { return tty }
}

func stubRunner(t *testing.T) *config.Config {
	t.Helper()
	original := programRunner
	t.Cleanup(func() { programRunner = original })

	got := &config.Config{}
	programRunner = func(cfg *config.Config, _ *logger.Logger) error {
		*got = *cfg
		return nil
	}
	return got
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRootLaunchesProgramOnTerminal(t *testing.T) {
	stubTerminal(t, true)
	got := stubRunner(t)

	_, err := execute(t, "--dark", "--variant", "ghost", "--selection-policy", "retain")
	require.NoError(t, err)

	assert.True(t, got.Theme.Dark)
	assert.Equal(t, "ghost", got.Input.Variant)
	assert.Equal(t, "md", got.Input.Size)
	assert.Equal(t, config.PolicyRetain, got.Table.SelectionPolicy)
}

func TestRootRendersStaticFrameWithoutTerminal(t *testing.T) {
	stubTerminal(t, false)
	got := stubRunner(t)

	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Component Showcase")
	assert.Empty(t, got.Input.Variant, "program must not start")
}

func TestRootPropagatesProgramError(t *testing.T) {
	stubTerminal(t, true)
	original := programRunner
	t.Cleanup(func() { programRunner = original })
	programRunner = func(*config.Config, *logger.Logger) error { return errors.New("boom") }

	_, err := execute(t)
	require.EqualError(t, err, "boom")
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	stubTerminal(t, true)
	got := stubRunner(t)

	path := writeConfig(t, "theme:\n  dark: true\ninput:\n  variant: filled\n  size: lg\ntable:\n  selectable: false\n")

	_, err := execute(t, "--config", path, "--size", "sm")
	require.NoError(t, err)

	assert.True(t, got.Theme.Dark)
	assert.Equal(t, "filled", got.Input.Variant)
	assert.Equal(t, "sm", got.Input.Size, "explicit flag wins")
	assert.False(t, got.Table.Selectable, "unset flag keeps the file value")
}

func TestRootRejectsInvalidOptions(t *testing.T) {
	stubTerminal(t, true)
	stubRunner(t)

	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{name: "variant", args: []string{"--variant", "dotted"}, field: "input.variant"},
		{name: "size", args: []string{"--size", "xl"}, field: "input.size"},
		{name: "policy", args: []string{"--selection-policy", "keep"}, field: "table.selection_policy"},
		{name: "log level", args: []string{"--log-level", "loud"}, field: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)

			var ve *showcaseerrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Contains(t, err.Error(), "Suggestion:")
		})
	}
}

func TestRootReportsMissingConfigFile(t *testing.T) {
	stubTerminal(t, true)
	stubRunner(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestRootReportsParseErrors(t *testing.T) {
	stubTerminal(t, true)
	stubRunner(t)

	path := writeConfig(t, "input:\n  colour: red\n")
	_, err := execute(t, "--config", path)

	var pe *showcaseerrors.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestRootWritesLogFile(t *testing.T) {
	stubTerminal(t, true)
	stubRunner(t)

	logPath := filepath.Join(t.TempDir(), "showcase.log")
	_, err := execute(t, "--log-file", logPath, "--verbose")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "launching showcase")
}

func TestEnvironmentSitsBetweenFileAndFlags(t *testing.T) {
	stubTerminal(t, true)
	got := stubRunner(t)

	t.Setenv("SHOWCASE_INPUT_VARIANT", "ghost")
	t.Setenv("SHOWCASE_INPUT_SIZE", "sm")
	path := writeConfig(t, "input:\n  variant: filled\n  size: lg\n")

	_, err := execute(t, "--config", path, "--size", "md")
	require.NoError(t, err)

	assert.Equal(t, "ghost", got.Input.Variant, "environment beats the file")
	assert.Equal(t, "md", got.Input.Size, "flags beat the environment")
}
