package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippetCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "input defaults",
			args: []string{"snippet", "inputfield"},
			want: "<InputField\n  variant=\"outlined\"\n  size=\"md\"\n/>\n",
		},
		{
			name: "input flags",
			args: []string{"snippet", "inputfield", "--variant", "filled", "--size", "lg", "--loading"},
			want: "<InputField\n  variant=\"filled\"\n  size=\"lg\"\n  loading\n/>\n",
		},
		{
			name: "table defaults",
			args: []string{"snippet", "datatable"},
			want: "<DataTable\n  selectable\n/>\n",
		},
		{
			name: "table nothing enabled",
			args: []string{"snippet", "datatable", "--selectable=false"},
			want: "<DataTable\n/>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSnippetCommandRejectsUnknownComponent(t *testing.T) {
	_, err := execute(t, "snippet", "button")
	require.Error(t, err)

	_, err = execute(t, "snippet")
	require.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "--tab", "datatable", "--width", "160", "--dark")
	require.NoError(t, err)

	assert.Contains(t, out, "DataTable Component")
	assert.Contains(t, out, "Alice Johnson")
	assert.Contains(t, out, "<DataTable")
}

func TestRenderCommandRejectsUnknownTab(t *testing.T) {
	_, err := execute(t, "render", "--tab", "buttons")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tab")
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	output, err := execute(t, "version")
	require.NoError(t, err)

	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2025-10-03")
}
