package widgets

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/showcase/internal/selection"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// DefaultEmptyMessage is shown when a table has no rows and no message was set.
const DefaultEmptyMessage = "No data available"

// Row is one record. Fields are looked up by Column.Key.
type Row struct {
	ID     int
	Fields map[string]any
}

// Column describes one table column. Render, when set, replaces the plain
// text of every present value.
type Column struct {
	Key      string
	Title    string
	Sortable bool
	Render   func(value any) ui.Renderable
}

// RowSelectMsg carries the table's full selection after a user change.
type RowSelectMsg struct {
	IDs []int
}

// SortDirection is the state of a column sort.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

func (d SortDirection) next() SortDirection {
	switch d {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// String returns the direction name.
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "none"
	}
}

// TableKeyMap holds the table bindings.
type TableKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Sort      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
}

// DefaultTableKeyMap returns the standard table bindings.
func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "select row")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
	}
}

// DataTable is a sortable, selectable table. Loading dominates: while it is
// on, the table neither sorts nor selects.
type DataTable struct {
	columns      []Column
	rows         []Row
	loading      bool
	selectable   bool
	emptyMessage string

	selected selection.Set
	cursor   int
	column   int
	sortKey  string
	sortDir  SortDirection

	focused bool
	spinner string
	keys    TableKeyMap
}

// NewDataTable creates a selectable table over a copy of rows.
func NewDataTable(columns []Column, rows []Row) DataTable {
	return DataTable{
		columns:      slices.Clone(columns),
		rows:         slices.Clone(rows),
		selectable:   true,
		emptyMessage: DefaultEmptyMessage,
		selected:     selection.Set{},
		keys:         DefaultTableKeyMap(),
	}
}

// WithEmptyMessage sets the text shown when there are no rows.
func (t DataTable) WithEmptyMessage(msg string) DataTable {
	t.emptyMessage = msg
	return t
}

// WithSpinner sets the frame shown while loading.
func (t DataTable) WithSpinner(view string) DataTable {
	t.spinner = view
	return t
}

// WithFocused marks the table as receiving keys.
func (t DataTable) WithFocused(focused bool) DataTable {
	t.focused = focused
	return t
}

// KeyMap returns the table bindings.
func (t DataTable) KeyMap() TableKeyMap {
	return t.keys
}

// SetLoading turns the loading state on or off.
func (t DataTable) SetLoading(loading bool) DataTable {
	t.loading = loading
	return t
}

// SetSelectable turns row selection on or off. Turning it off drops the
// working selection without notifying; the owner applies its own policy.
func (t DataTable) SetSelectable(selectable bool) DataTable {
	if !selectable {
		t.selected = selection.Set{}
	}
	t.selectable = selectable
	return t
}

// SetSelection seeds the working selection from the owner.
func (t DataTable) SetSelection(ids []int) DataTable {
	t.selected = selection.NewSet(ids...)
	return t
}

// Rows returns a copy of the rows in owner order.
func (t DataTable) Rows() []Row {
	return slices.Clone(t.rows)
}

// Columns returns a copy of the column specs.
func (t DataTable) Columns() []Column {
	return slices.Clone(t.columns)
}

// Loading reports the loading flag.
func (t DataTable) Loading() bool {
	return t.loading
}

// Selectable reports the selectable flag.
func (t DataTable) Selectable() bool {
	return t.selectable
}

// Selected returns a copy of the working selection.
func (t DataTable) Selected() selection.Set {
	return slices.Clone(t.selected)
}

// Cursor returns the highlighted row index in display order.
func (t DataTable) Cursor() int {
	return t.cursor
}

// SortState returns the sorted column key and direction.
func (t DataTable) SortState() (string, SortDirection) {
	return t.sortKey, t.sortDir
}

// VisibleRows returns the rows in display order.
func (t DataTable) VisibleRows() []Row {
	rows := slices.Clone(t.rows)
	if t.sortKey == "" || t.sortDir == SortNone {
		return rows
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		c := compareValues(a.Fields[t.sortKey], b.Fields[t.sortKey])
		if t.sortDir == SortDesc {
			return -c
		}
		return c
	})
	return rows
}

// CycleSort advances the sort of column colKey through asc, desc and none.
// Sorting another column starts it at asc.
func (t DataTable) CycleSort(colKey string) DataTable {
	if t.loading {
		return t
	}
	col, ok := t.columnByKey(colKey)
	if !ok || !col.Sortable {
		return t
	}
	if t.sortKey != colKey {
		t.sortKey, t.sortDir = colKey, SortAsc
		return t
	}
	t.sortDir = t.sortDir.next()
	if t.sortDir == SortNone {
		t.sortKey = ""
	}
	return t
}

// ToggleRow flips one row in or out of the selection.
func (t DataTable) ToggleRow(id int) (DataTable, tea.Cmd) {
	if !t.canSelect() || !t.hasRow(id) {
		return t, nil
	}
	ids := slices.Clone(t.selected)
	if i := slices.Index(ids, id); i >= 0 {
		ids = slices.Delete(ids, i, i+1)
	} else {
		ids = append(ids, id)
	}
	t.selected = selection.NewSet(ids...)
	return t, t.notify()
}

// ToggleAll selects every row, or clears the selection when all are selected.
func (t DataTable) ToggleAll() (DataTable, tea.Cmd) {
	if !t.canSelect() || len(t.rows) == 0 {
		return t, nil
	}
	if t.allSelected() {
		t.selected = selection.Set{}
	} else {
		ids := make([]int, 0, len(t.rows))
		for _, r := range t.rows {
			ids = append(ids, r.ID)
		}
		t.selected = selection.NewSet(ids...)
	}
	return t, t.notify()
}

// Update handles navigation, sort and selection keys.
func (t DataTable) Update(msg tea.Msg) (DataTable, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || t.loading {
		return t, nil
	}

	switch {
	case key.Matches(keyMsg, t.keys.Up):
		t.cursor = wrap(t.cursor-1, len(t.rows))
	case key.Matches(keyMsg, t.keys.Down):
		t.cursor = wrap(t.cursor+1, len(t.rows))
	case key.Matches(keyMsg, t.keys.Left):
		t.column = wrap(t.column-1, len(t.columns))
	case key.Matches(keyMsg, t.keys.Right):
		t.column = wrap(t.column+1, len(t.columns))
	case key.Matches(keyMsg, t.keys.Sort):
		if t.column < len(t.columns) {
			return t.CycleSort(t.columns[t.column].Key), nil
		}
	case key.Matches(keyMsg, t.keys.Toggle):
		visible := t.VisibleRows()
		if t.cursor < len(visible) {
			return t.ToggleRow(visible[t.cursor].ID)
		}
	case key.Matches(keyMsg, t.keys.ToggleAll):
		return t.ToggleAll()
	}
	return t, nil
}

func (t DataTable) canSelect() bool {
	return t.selectable && !t.loading
}

func (t DataTable) hasRow(id int) bool {
	return slices.ContainsFunc(t.rows, func(r Row) bool { return r.ID == id })
}

func (t DataTable) allSelected() bool {
	if len(t.rows) == 0 {
		return false
	}
	for _, r := range t.rows {
		if !t.selected.Contains(r.ID) {
			return false
		}
	}
	return true
}

func (t DataTable) columnByKey(colKey string) (Column, bool) {
	for _, c := range t.columns {
		if c.Key == colKey {
			return c, true
		}
	}
	return Column{}, false
}

func (t DataTable) notify() tea.Cmd {
	ids := []int(slices.Clone(t.selected))
	return func() tea.Msg {
		return RowSelectMsg{IDs: ids}
	}
}

// View renders with the default context.
func (t DataTable) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the loading state, the empty state or the table,
// in that order of precedence.
func (t DataTable) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	muted := components.TypographyStyle(theme, components.TypographyVariantMuted)
	frame := lipgloss.NewStyle().
		Border(theme.Borders.Rounded).
		BorderForeground(theme.Palette.Surface.Contrast).
		Padding(1, 2)
	if ctx.Width > 0 {
		frame = frame.Width(ctx.Width - 2)
	}

	if t.loading {
		spin := t.spinner
		if spin == "" {
			spin = "…"
		}
		return frame.Render(spin + " " + muted.Render("Loading..."))
	}
	if len(t.rows) == 0 {
		return frame.Render(muted.Render(t.emptyMessage))
	}

	return t.renderTable(ctx)
}

func (t DataTable) renderTable(ctx components.RenderContext) string {
	theme := ctx.Theme
	palette := theme.Palette
	visible := t.VisibleRows()

	offset := 0
	var headers []string
	if t.selectable {
		offset = 1
		headers = append(headers, t.headerCheckbox())
	}
	for _, c := range t.columns {
		title := c.Title
		if c.Key == t.sortKey {
			switch t.sortDir {
			case SortAsc:
				title += " ▲"
			case SortDesc:
				title += " ▼"
			}
		}
		headers = append(headers, title)
	}

	rows := make([][]string, 0, len(visible))
	for _, r := range visible {
		var cells []string
		if t.selectable {
			cells = append(cells, checkbox(t.selected.Contains(r.ID)))
		}
		for _, c := range t.columns {
			cells = append(cells, cellText(ctx, c, r))
		}
		rows = append(rows, cells)
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Inherit(components.TypographyStyle(theme, components.TypographyVariantTitle))
	emphasis := cell.Inherit(components.TypographyStyle(theme, components.TypographyVariantEmphasis))

	tbl := table.New().
		Border(theme.Borders.Rounded).
		BorderStyle(lipgloss.NewStyle().Foreground(palette.Surface.Contrast)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if t.focused && col == t.column+offset {
					return emphasis
				}
				return header
			}
			style := cell
			if row >= 0 && row < len(visible) && t.selected.Contains(visible[row].ID) {
				style = style.Foreground(palette.Primary.Contrast)
			}
			if t.focused && row == t.cursor {
				style = style.Background(palette.Primary.Muted)
			}
			return style
		})
	if ctx.Width > 0 {
		tbl = tbl.Width(ctx.Width)
	}
	return tbl.String()
}

func (t DataTable) headerCheckbox() string {
	switch {
	case t.allSelected():
		return "[x]"
	case len(t.selected) > 0:
		return "[-]"
	default:
		return "[ ]"
	}
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// cellText renders a missing key as an empty cell.
func cellText(ctx components.RenderContext, c Column, r Row) string {
	v, ok := r.Fields[c.Key]
	if !ok || v == nil {
		return ""
	}
	if c.Render != nil {
		return components.Render(ctx, c.Render(v))
	}
	return fmt.Sprint(v)
}

// compareValues orders missing values first, numbers numerically and
// everything else by its text.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch x := a.(type) {
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i%n + n) % n
}
