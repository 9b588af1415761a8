// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lootmix/lootmix/pkg/mix"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
var ErrInvalidConfig = errors.New("invalid config")

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// every field-level problem.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// SourceDir is the loot table tree (default "loot_tables").
		SourceDir string `json:"source_dir" mapstructure:"source_dir"`
		// OutputDir receives the datapack (default ".").
		OutputDir string `json:"output_dir" mapstructure:"output_dir"`
		// Groups are the recognized top-level directories of SourceDir.
		Groups []string `json:"groups" mapstructure:"groups"`
		// Exclude are doublestar patterns of files left out of the datapack.
		Exclude []string `json:"exclude" mapstructure:"exclude"`
		// CompressionLevel is the deflate level of every archive entry.
		CompressionLevel int `json:"compression_level" mapstructure:"compression_level"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Verbose enables debug logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// ColorScheme selects the glamour style of issue help
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	groups := mix.DefaultGroups()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.String()
	}

	return &Config{
		SourceDir:        "loot_tables",
		OutputDir:        ".",
		Groups:           names,
		Exclude:          []string{"**/.*"},
		CompressionLevel: -1,
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
	}
}

// MixGroups returns the configured groups as mix.Group values.
func (c *Config) MixGroups() []mix.Group {
	out := make([]mix.Group, len(c.Groups))
	for i, g := range c.Groups {
		out[i] = mix.Group(g)
	}
	return out
}

// GlamourStyle maps the color scheme onto a glamour style name.
func (c *Config) GlamourStyle() string {
	switch c.UI.ColorScheme {
	case ColorSchemeLight:
		return "light"
	case ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// Validate checks constraints the CUE schema cannot express: unique group
// names and well-formed exclude patterns.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.SourceDir) == "" {
		errs = append(errs, errors.New("source_dir must not be empty"))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}
	if len(c.Groups) == 0 {
		errs = append(errs, errors.New("groups must list at least one group"))
	}
	for i, g := range c.Groups {
		if slices.Index(c.Groups, g) != i {
			errs = append(errs, fmt.Errorf("groups[%d]: duplicate group %q", i, g))
		}
	}
	for i, pat := range c.Exclude {
		if !doublestar.ValidatePattern(pat) {
			errs = append(errs, fmt.Errorf("exclude[%d]: invalid pattern %q", i, pat))
		}
	}
	if c.CompressionLevel < -2 || c.CompressionLevel > 9 {
		errs = append(errs, fmt.Errorf("compression_level %d out of range -2..9", c.CompressionLevel))
	}
	switch c.UI.ColorScheme {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight, "":
	default:
		errs = append(errs, fmt.Errorf("ui.color_scheme %q is not one of auto, dark, light", c.UI.ColorScheme))
	}

	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
