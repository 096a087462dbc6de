// Package config holds the transform's runtime options and how they load
// from a project file. Grounded on
// papapumpkin-quasar/internal/config/config.go's viper-with-defaults
// pattern, generalized from YAML/env/flags to a TOML project file via
// github.com/pelletier/go-toml/v2 (viper's toml codec) since this tool is
// invoked as a library/compiler pass rather than a CLI with its own flags.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Options is the full set of knobs a transform run can be configured
// with.
type Options struct {
	Dev                       bool              `mapstructure:"dev"`
	Test                      bool              `mapstructure:"test"`
	GenConditionalClasses     bool              `mapstructure:"gen_conditional_classes"`
	ClassNamePrefix           string            `mapstructure:"class_name_prefix"`
	RuntimeInjection          bool              `mapstructure:"runtime_injection"`
	UnstableModuleResolution  string            `mapstructure:"unstable_module_resolution"` // "commonjs" | "haste"
	ThemeFileExtension        string            `mapstructure:"theme_file_extension"`
	ImportSources             []string          `mapstructure:"import_sources"`
	DefinedStylexCSSVariables map[string]string `mapstructure:"defined_stylex_css_variables"`
}

// Default returns the option set a bare project gets when no config file
// is present.
func Default() Options {
	v := viper.New()
	applyDefaults(v)
	var cfg Options
	_ = v.Unmarshal(&cfg)
	return cfg
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("dev", false)
	v.SetDefault("test", false)
	v.SetDefault("gen_conditional_classes", false)
	v.SetDefault("class_name_prefix", "x")
	v.SetDefault("runtime_injection", true)
	v.SetDefault("unstable_module_resolution", "commonjs")
	v.SetDefault("theme_file_extension", ".stylex")
	v.SetDefault("import_sources", []string{"@stylexjs/stylex", "stylex"})
	v.SetDefault("defined_stylex_css_variables", map[string]string{})
}

// LoadFile reads project configuration from a TOML file at path, falling
// back to each option's default for anything the file doesn't set.
func LoadFile(path string) (Options, error) {
	v := viper.New()
	applyDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Options{}, err
	}
	var cfg Options
	if err := v.Unmarshal(&cfg); err != nil {
		return Options{}, err
	}
	return cfg, nil
}

// WriteDefault writes a project config file seeded with Default()'s
// values, for a host that wants to scaffold one rather than hand-author
// it. Uses go-toml directly (rather than viper) since there is no config
// file to read back yet at this point.
func WriteDefault(path string) error {
	b, err := toml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
