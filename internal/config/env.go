package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// EnvPrefix prefixes the environment overrides, e.g. SHOWCASE_INPUT_VARIANT.
const EnvPrefix = "SHOWCASE"

type envField struct {
	key string
	set func(cfg *Config, raw string) error
}

func stringField(field func(*Config) *string) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		*field(cfg) = raw
		return nil
	}
}

func boolField(field func(*Config) *bool) func(*Config, string) error {
	return func(cfg *Config, raw string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		*field(cfg) = b
		return nil
	}
}

// envFields mirrors the yaml keys of Config.
var envFields = []envField{
	{key: "theme.dark", set: boolField(func(c *Config) *bool { return &c.Theme.Dark })},
	{key: "input.variant", set: stringField(func(c *Config) *string { return &c.Input.Variant })},
	{key: "input.size", set: stringField(func(c *Config) *string { return &c.Input.Size })},
	{key: "input.disabled", set: boolField(func(c *Config) *bool { return &c.Input.Disabled })},
	{key: "input.invalid", set: boolField(func(c *Config) *bool { return &c.Input.Invalid })},
	{key: "input.loading", set: boolField(func(c *Config) *bool { return &c.Input.Loading })},
	{key: "table.loading", set: boolField(func(c *Config) *bool { return &c.Table.Loading })},
	{key: "table.selectable", set: boolField(func(c *Config) *bool { return &c.Table.Selectable })},
	{key: "table.empty_message", set: stringField(func(c *Config) *string { return &c.Table.EmptyMessage })},
	{key: "table.selection_policy", set: stringField(func(c *Config) *string { return &c.Table.SelectionPolicy })},
	{key: "log.level", set: stringField(func(c *Config) *string { return &c.Log.Level })},
	{key: "log.file", set: stringField(func(c *Config) *string { return &c.Log.File })},
	{key: "log.human_readable", set: boolField(func(c *Config) *bool { return &c.Log.HumanReadable })},
}

// EnvName returns the variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ApplyEnv overlays the SHOWCASE_* environment onto cfg. Only variables that
// are set take effect; the caller validates the result.
func ApplyEnv(cfg *Config) error {
	if cfg == nil {
		return showcaseerrors.NewValidationError("config", nil, "configuration is nil", nil)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, f := range envFields {
		if err := v.BindEnv(f.key); err != nil {
			return fmt.Errorf("bind %s: %w", EnvName(f.key), err)
		}
		if !v.IsSet(f.key) {
			continue
		}
		raw := v.GetString(f.key)
		if err := f.set(cfg, raw); err != nil {
			return showcaseerrors.NewValidationError(f.key, raw, "must be true or false in "+EnvName(f.key), err)
		}
	}
	return nil
}
