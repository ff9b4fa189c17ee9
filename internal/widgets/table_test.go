package widgets

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/selection"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

func testColumns() []Column {
	return []Column{
		{Key: "name", Title: "Name", Sortable: true},
		{Key: "email", Title: "Email", Sortable: true},
		{Key: "note", Title: "Note"},
	}
}

func testRows() []Row {
	return []Row{
		{ID: 1, Fields: map[string]any{"name": "Carol", "email": "carol@example.com"}},
		{ID: 2, Fields: map[string]any{"name": "Alice", "email": "alice@example.com"}},
		{ID: 3, Fields: map[string]any{"name": "Bob"}},
	}
}

func ids(rows []Row) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func selectMsg(t *testing.T, cmd tea.Cmd) RowSelectMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(RowSelectMsg)
	require.True(t, ok)
	return msg
}

func TestSortCycle(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows())

	tbl = tbl.CycleSort("name")
	assert.Equal(t, []int{2, 3, 1}, ids(tbl.VisibleRows()))

	tbl = tbl.CycleSort("name")
	assert.Equal(t, []int{1, 3, 2}, ids(tbl.VisibleRows()))

	tbl = tbl.CycleSort("name")
	key, dir := tbl.SortState()
	assert.Equal(t, "", key)
	assert.Equal(t, SortNone, dir)
	assert.Equal(t, []int{1, 2, 3}, ids(tbl.VisibleRows()))
}

func TestSortMissingValuesFirst(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows()).CycleSort("email")
	assert.Equal(t, []int{3, 2, 1}, ids(tbl.VisibleRows()))
}

func TestSortSwitchingColumnStartsAscending(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows()).CycleSort("name").CycleSort("name").CycleSort("email")
	key, dir := tbl.SortState()
	assert.Equal(t, "email", key)
	assert.Equal(t, SortAsc, dir)
}

func TestSortIgnoresUnsortableAndUnknownColumns(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows())
	for _, key := range []string{"note", "missing"} {
		k, dir := tbl.CycleSort(key).SortState()
		assert.Equal(t, "", k)
		assert.Equal(t, SortNone, dir)
	}
}

func TestSortDoesNotReorderHostRows(t *testing.T) {
	t.Parallel()

	rows := testRows()
	tbl := NewDataTable(testColumns(), rows).CycleSort("name")
	_ = tbl.VisibleRows()

	assert.Equal(t, []int{1, 2, 3}, ids(rows))
	assert.Equal(t, []int{1, 2, 3}, ids(tbl.Rows()))
}

func TestToggleRowEmitsFullSelection(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows())

	tbl, cmd := tbl.ToggleRow(3)
	assert.Equal(t, []int{3}, selectMsg(t, cmd).IDs)

	tbl, cmd = tbl.ToggleRow(1)
	assert.Equal(t, []int{1, 3}, selectMsg(t, cmd).IDs)

	tbl, cmd = tbl.ToggleRow(3)
	assert.Equal(t, []int{1}, selectMsg(t, cmd).IDs)
	assert.Equal(t, selection.Set{1}, tbl.Selected())

	_, cmd = tbl.ToggleRow(99)
	assert.Nil(t, cmd)
}

func TestToggleAll(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows())

	tbl, cmd := tbl.ToggleAll()
	assert.Equal(t, []int{1, 2, 3}, selectMsg(t, cmd).IDs)

	tbl, cmd = tbl.ToggleAll()
	assert.Empty(t, selectMsg(t, cmd).IDs)
	assert.Empty(t, tbl.Selected())
}

func TestLoadingSuppressesSelectionAndSort(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows()).SetLoading(true)
	require.True(t, tbl.Selectable())

	tbl, cmd := tbl.ToggleRow(1)
	assert.Nil(t, cmd)
	tbl, cmd = tbl.ToggleAll()
	assert.Nil(t, cmd)
	assert.Empty(t, tbl.Selected())

	key, _ := tbl.CycleSort("name").SortState()
	assert.Equal(t, "", key)

	tbl, cmd = tbl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Nil(t, cmd)
	assert.Empty(t, tbl.Selected())
}

func TestNotSelectableNeverEmits(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows()).SetSelectable(false)

	_, cmd := tbl.ToggleRow(1)
	assert.Nil(t, cmd)
	_, cmd = tbl.ToggleAll()
	assert.Nil(t, cmd)
}

func TestSetSelectableFalseDropsSelection(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows())
	tbl, _ = tbl.ToggleRow(2)

	tbl = tbl.SetSelectable(false)
	assert.Empty(t, tbl.Selected())

	tbl = tbl.SetSelectable(true).SetSelection([]int{2, 1})
	assert.Equal(t, selection.Set{1, 2}, tbl.Selected())
}

func TestUpdateKeys(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows())

	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, tbl.Cursor())

	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyUp})
	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, tbl.Cursor(), "cursor wraps")

	tbl, cmd := tbl.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []int{3}, selectMsg(t, cmd).IDs)

	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	key, dir := tbl.SortState()
	assert.Equal(t, "name", key)
	assert.Equal(t, SortAsc, dir)

	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyRight})
	tbl, _ = tbl.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	key, _ = tbl.SortState()
	assert.Equal(t, "email", key)
}

func TestViewStates(t *testing.T) {
	t.Parallel()

	empty := NewDataTable(testColumns(), nil).WithEmptyMessage("No users found")
	assert.Contains(t, empty.View(), "No users found")

	loading := empty.SetLoading(true)
	view := loading.View()
	assert.Contains(t, view, "Loading")
	assert.NotContains(t, view, "No users found")

	assert.Contains(t, NewDataTable(testColumns(), nil).View(), DefaultEmptyMessage)
}

func TestViewTable(t *testing.T) {
	t.Parallel()

	tbl := NewDataTable(testColumns(), testRows()).CycleSort("name")
	tbl, _ = tbl.ToggleRow(2)
	view := tbl.View()

	assert.Contains(t, view, "Name ▲")
	assert.Contains(t, view, "Bob")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "[-]")
	assert.NotContains(t, view, "<nil>")

	plain := tbl.SetSelectable(false).View()
	assert.NotContains(t, plain, "[ ]")
}

func TestColumnRenderer(t *testing.T) {
	t.Parallel()

	cols := []Column{{
		Key:   "status",
		Title: "Status",
		Render: func(v any) ui.Renderable {
			return components.NewBadge("*" + v.(string) + "*")
		},
	}}
	rows := []Row{
		{ID: 1, Fields: map[string]any{"status": "Active"}},
		{ID: 2, Fields: map[string]any{}},
	}

	view := NewDataTable(cols, rows).View()
	assert.Contains(t, view, "*Active*")
	assert.NotContains(t, view, "**")
}
