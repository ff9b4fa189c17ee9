package playground

// Control names shared by the InputField and DataTable demos.
const (
	ControlVariant    = "variant"
	ControlSize       = "size"
	ControlDisabled   = "disabled"
	ControlInvalid    = "invalid"
	ControlLoading    = "loading"
	ControlSelectable = "selectable"
)

var (
	// VariantDomain lists the input variants in display order.
	VariantDomain = []string{"outlined", "filled", "ghost"}
	// SizeDomain lists the input sizes in display order.
	SizeDomain = []string{"sm", "md", "lg"}
)

// InputFieldControls declares the InputField customize panel.
func InputFieldControls() []Control {
	return []Control{
		EnumControl(ControlVariant, VariantDomain, "outlined"),
		EnumControl(ControlSize, SizeDomain, "md"),
		BoolControl(ControlDisabled, false),
		BoolControl(ControlInvalid, false),
		BoolControl(ControlLoading, false),
	}
}

// DataTableControls declares the DataTable customize panel.
func DataTableControls() []Control {
	return []Control{
		BoolControl(ControlLoading, false),
		BoolControl(ControlSelectable, true),
	}
}

// NewInputFieldStore returns a store seeded with InputFieldControls.
func NewInputFieldStore() *Store {
	return NewStore(InputFieldControls()...)
}

// NewDataTableStore returns a store seeded with DataTableControls.
func NewDataTableStore() *Store {
	return NewStore(DataTableControls()...)
}
