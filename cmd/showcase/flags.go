package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/showcase/internal/config"
)

// rootFlags are shared by every command. Control flags only override the
// configuration when they were set explicitly.
type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string
	verbose    bool
	dark       bool

	variant  string
	size     string
	disabled bool
	invalid  bool
	loading  bool

	selectable   bool
	tableLoading bool
	policy       string
	emptyMessage string
}

func (f *rootFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.configPath, "config", "c", "", "Path to a showcase YAML file")
	flags.StringVar(&f.logFile, "log-file", "", "Append diagnostic logs to this file")
	flags.StringVar(&f.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Shorthand for --log-level=debug")
	flags.BoolVar(&f.dark, "dark", false, "Start in dark mode")

	flags.StringVar(&f.variant, "variant", "", "InputField variant (outlined, filled, ghost)")
	flags.StringVar(&f.size, "size", "", "InputField size (sm, md, lg)")
	flags.BoolVar(&f.disabled, "disabled", false, "Disable the InputField previews")
	flags.BoolVar(&f.invalid, "invalid", false, "Show the InputField invalid state")
	flags.BoolVar(&f.loading, "loading", false, "Show the InputField loading state")

	flags.BoolVar(&f.selectable, "selectable", true, "Allow DataTable row selection")
	flags.BoolVar(&f.tableLoading, "table-loading", false, "Show the DataTable loading state")
	flags.StringVar(&f.policy, "selection-policy", "", "What happens to the selection when it is disabled (clear, retain)")
	flags.StringVar(&f.emptyMessage, "empty-message", "", "DataTable empty state text")
}

// loadConfig layers defaults, the file (if any), the environment and explicit
// flags, then validates the result.
func (f *rootFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := strings.TrimSpace(f.configPath)
	if path != "" {
		abs, err := validateConfigPath(path)
		if err != nil {
			return nil, newCommandError("load configuration", fmt.Sprintf("resolving %q", path), err, "Check that the file exists and you have permission to read it.")
		}
		path = abs
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, newCommandError("load configuration", "parsing "+path, err, "Fix the configuration errors shown above and try again.")
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, newCommandError("load configuration", "reading "+config.EnvPrefix+"_* variables", err, "Unset or correct the variable named above.")
	}

	changed := cmd.Flags().Changed
	if changed("dark") {
		cfg.Theme.Dark = f.dark
	}
	if changed("variant") {
		cfg.Input.Variant = f.variant
	}
	if changed("size") {
		cfg.Input.Size = f.size
	}
	if changed("disabled") {
		cfg.Input.Disabled = f.disabled
	}
	if changed("invalid") {
		cfg.Input.Invalid = f.invalid
	}
	if changed("loading") {
		cfg.Input.Loading = f.loading
	}
	if changed("selectable") {
		cfg.Table.Selectable = f.selectable
	}
	if changed("table-loading") {
		cfg.Table.Loading = f.tableLoading
	}
	if changed("selection-policy") {
		cfg.Table.SelectionPolicy = f.policy
	}
	if changed("empty-message") {
		cfg.Table.EmptyMessage = f.emptyMessage
	}
	if changed("log-file") {
		cfg.Log.File = f.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, newCommandError("apply flags", "validating options", err, "Run 'showcase --help' to see the accepted values.")
	}
	return cfg, nil
}

func validateConfigPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %s is a directory", abs)
	}
	return abs, nil
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
