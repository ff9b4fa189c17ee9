package config

// Config is the optional start-up document. Every field has a default, so an
// empty or missing file yields Default().
type Config struct {
	Theme ThemeConfig `yaml:"theme"`
	Input InputConfig `yaml:"input"`
	Table TableConfig `yaml:"table"`
	Log   LogConfig   `yaml:"log"`
}

// ThemeConfig holds the initial dark-mode flag.
type ThemeConfig struct {
	Dark bool `yaml:"dark"`
}

// InputConfig seeds the InputField customize panel.
type InputConfig struct {
	Variant  string `yaml:"variant" validate:"required,input_variant"`
	Size     string `yaml:"size" validate:"required,input_size"`
	Disabled bool   `yaml:"disabled"`
	Invalid  bool   `yaml:"invalid"`
	Loading  bool   `yaml:"loading"`
}

// TableConfig seeds the DataTable customize panel.
type TableConfig struct {
	Loading         bool   `yaml:"loading"`
	Selectable      bool   `yaml:"selectable"`
	EmptyMessage    string `yaml:"empty_message" validate:"max=80"`
	SelectionPolicy string `yaml:"selection_policy" validate:"required,oneof=clear retain"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level         string `yaml:"level" validate:"required,oneof=trace debug info warn error"`
	File          string `yaml:"file"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Selection policy names accepted in TableConfig.SelectionPolicy.
const (
	PolicyClear  = "clear"
	PolicyRetain = "retain"
)

// Default returns the configuration the showcase starts with when no file is given.
func Default() Config {
	return Config{
		Input: InputConfig{
			Variant: "outlined",
			Size:    "md",
		},
		Table: TableConfig{
			Selectable:      true,
			EmptyMessage:    "No users found",
			SelectionPolicy: PolicyClear,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
