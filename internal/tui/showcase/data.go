package showcase

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
	"github.com/alexisbeaulieu97/showcase/internal/widgets"
)

// DemoUsers is the table data shown on the DataTable tab.
func DemoUsers() []widgets.Row {
	user := func(id int, name, email, role, status, joined string) widgets.Row {
		return widgets.Row{ID: id, Fields: map[string]any{
			"name":     name,
			"email":    email,
			"role":     role,
			"status":   status,
			"joinDate": joined,
		}}
	}

	return []widgets.Row{
		user(1, "Alice Johnson", "alice@example.com", "Developer", "Active", "2024-01-15"),
		user(2, "Bob Smith", "bob@example.com", "Designer", "Active", "2024-02-20"),
		user(3, "Carol Davis", "carol@example.com", "Product Manager", "Inactive", "2023-11-10"),
		user(4, "David Wilson", "david@example.com", "Developer", "Active", "2024-03-05"),
		user(5, "Eva Brown", "eva@example.com", "QA Engineer", "Active", "2024-01-28"),
	}
}

// UserColumns describes the DataTable tab columns. Status renders as a badge.
func UserColumns() []widgets.Column {
	return []widgets.Column{
		{Key: "name", Title: "Name", Sortable: true},
		{Key: "email", Title: "Email", Sortable: true},
		{Key: "role", Title: "Role", Sortable: true},
		{Key: "status", Title: "Status", Sortable: true, Render: statusBadge},
		{Key: "joinDate", Title: "Join Date", Sortable: true},
	}
}

func statusBadge(value any) ui.Renderable {
	text, _ := value.(string)
	badge := components.NewBadge(text)
	if text != "Active" {
		badge = badge.WithVariant(components.BadgeVariantSecondary)
	}
	return badge
}

// tableFeatures is the list under the DataTable customize panel.
var tableFeatures = []string{
	"Column sorting",
	"Row selection (single/multi)",
	"Custom cell renderers",
	"Loading & Empty states",
	"Responsive design",
}
