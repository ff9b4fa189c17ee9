package showcase

// Tab ids.
const (
	TabInputField = "inputfield"
	TabDataTable  = "datatable"
)

// Focus names the control that receives keys.
type Focus int

const (
	FocusDarkMode Focus = iota
	FocusVariant
	FocusSize
	FocusDisabled
	FocusInvalid
	FocusLoading
	FocusEmail
	FocusPassword
	FocusSelectable
	FocusTableLoading
	FocusTable
)

// Focus rings per tab, in tab order.
var (
	inputFieldRing = []Focus{FocusEmail, FocusPassword, FocusVariant, FocusSize, FocusDisabled, FocusInvalid, FocusLoading, FocusDarkMode}
	dataTableRing  = []Focus{FocusTable, FocusSelectable, FocusTableLoading, FocusDarkMode}
)

func ringFor(tab string) []Focus {
	if tab == TabDataTable {
		return dataTableRing
	}
	return inputFieldRing
}

// textInput reports whether f is an input that consumes printable keys.
func (f Focus) textInput() bool {
	return f == FocusEmail || f == FocusPassword
}
