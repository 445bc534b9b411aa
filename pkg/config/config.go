// Package config loads border overlay settings from YAML or TOML files.
//
// Every field is optional: a file is decoded on top of [Default], so it only
// needs to name what it changes.
//
//	version: v1.0.0
//	gradient:
//	  palette: ["#68238c", orchid, "rgb(86, 186, 196)"]
//	  gradation: 2
//	  angle: slope225
//	  cycle: 5s
//	border:
//	  corner_radius: 48
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/border/pkg/animation"
	"github.com/go-drift/border/pkg/errors"
	"github.com/go-drift/border/pkg/gradient"
	"github.com/go-drift/border/pkg/graphics"
	"github.com/go-drift/border/pkg/overlay"
)

// SchemaMajor is the configuration schema major version this package reads.
const SchemaMajor = "v1"

// Config is the on-disk configuration.
type Config struct {
	Version  string         `yaml:"version" toml:"version"`
	Gradient GradientConfig `yaml:"gradient" toml:"gradient"`
	Border   BorderConfig   `yaml:"border" toml:"border"`
}

// GradientConfig configures the sweep.
type GradientConfig struct {
	Palette      []string `yaml:"palette" toml:"palette"`
	Gradation    int      `yaml:"gradation" toml:"gradation"`
	Angle        string   `yaml:"angle" toml:"angle"`
	Cycle        Duration `yaml:"cycle" toml:"cycle"`
	ReduceMotion bool     `yaml:"reduce_motion" toml:"reduce_motion"`
}

// BorderConfig configures the ring and its transitions.
type BorderConfig struct {
	Width          float64  `yaml:"width" toml:"width"`
	AntiAliasInset float64  `yaml:"anti_alias_inset" toml:"anti_alias_inset"`
	CornerRadius   float64  `yaml:"corner_radius" toml:"corner_radius"`
	ShowDuration   Duration `yaml:"show_duration" toml:"show_duration"`
	ShowDamping    float64  `yaml:"show_damping" toml:"show_damping"`
	HideDuration   Duration `yaml:"hide_duration" toml:"hide_duration"`
	HideCurve      string   `yaml:"hide_curve" toml:"hide_curve"`
}

// Default returns the stock configuration.
func Default() *Config {
	m := overlay.DefaultMetrics()
	return &Config{
		Version: SchemaMajor + ".0.0",
		Gradient: GradientConfig{
			Palette:   []string{"#68238c", "#d72ed2", "#56bac4", "#1f3d78"},
			Gradation: 2,
			Angle:     gradient.Slope225.String(),
			Cycle:     Duration(5 * time.Second),
		},
		Border: BorderConfig{
			Width:          m.BorderWidth,
			AntiAliasInset: m.AntiAliasInset,
			CornerRadius:   m.CornerRadius,
			ShowDuration:   Duration(m.ShowDuration),
			ShowDamping:    m.ShowDamping,
			HideDuration:   Duration(m.HideDuration),
			HideCurve:      "ease-out",
		},
	}
}

// Load reads path on top of the defaults and validates the result. The
// format follows the extension: .yaml, .yml or .toml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	cfg, err := Parse(data, Format(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Format returns "yaml" or "toml" for path's extension, or the extension
// itself if it is neither.
func Format(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return strings.TrimPrefix(ext, ".")
	}
}

// Parse decodes data in the given format on top of the defaults and
// validates the result.
func Parse(data []byte, format string) (*Config, error) {
	cfg := Default()
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes cfg in the given format.
func (c *Config) Write(w io.Writer, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(c)
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
}

// Validate checks the schema version and every value the overlay would
// otherwise reject at runtime.
func (c *Config) Validate() error {
	if !semver.IsValid(c.Version) {
		return &errors.ParseError{Field: "version", DataType: "semver", Got: c.Version}
	}
	if major := semver.Major(c.Version); major != SchemaMajor {
		return &errors.ConfigError{Field: "version", Value: c.Version, Reason: fmt.Sprintf("schema %s is not supported, want %s", major, SchemaMajor)}
	}
	opts, err := c.Options()
	if err != nil {
		return err
	}
	if err := gradient.Validate(opts); err != nil {
		return err
	}
	_, err = c.Metrics()
	return err
}

// Palette parses the configured colors.
func (c *Config) Palette() (gradient.Palette, error) {
	palette := make(gradient.Palette, 0, len(c.Gradient.Palette))
	for i, s := range c.Gradient.Palette {
		col, err := graphics.ParseColor(s)
		if err != nil {
			return nil, &errors.ParseError{Field: fmt.Sprintf("gradient.palette[%d]", i), DataType: "color", Got: s}
		}
		palette = append(palette, col)
	}
	return palette, nil
}

// Options converts the gradient section.
func (c *Config) Options() (gradient.Options, error) {
	palette, err := c.Palette()
	if err != nil {
		return gradient.Options{}, err
	}
	angle, err := gradient.ParseAngle(c.Gradient.Angle)
	if err != nil {
		return gradient.Options{}, &errors.ParseError{Field: "gradient.angle", DataType: "angle", Got: c.Gradient.Angle}
	}
	return gradient.Options{
		Palette:      palette,
		Gradation:    c.Gradient.Gradation,
		Angle:        angle,
		Cycle:        c.Gradient.Cycle.Std(),
		ReduceMotion: c.Gradient.ReduceMotion,
	}, nil
}

// Metrics converts the border section.
func (c *Config) Metrics() (overlay.Metrics, error) {
	b := c.Border
	curve, ok := animation.CurveByName(b.HideCurve)
	if !ok {
		return overlay.Metrics{}, &errors.ParseError{Field: "border.hide_curve", DataType: "curve", Got: b.HideCurve}
	}
	switch {
	case b.Width <= 0:
		return overlay.Metrics{}, &errors.ConfigError{Field: "border.width", Value: b.Width, Reason: "must be positive"}
	case b.AntiAliasInset < 0:
		return overlay.Metrics{}, &errors.ConfigError{Field: "border.anti_alias_inset", Value: b.AntiAliasInset, Reason: "must not be negative"}
	case b.CornerRadius < 0:
		return overlay.Metrics{}, &errors.ConfigError{Field: "border.corner_radius", Value: b.CornerRadius, Reason: "must not be negative"}
	case b.ShowDuration < 0:
		return overlay.Metrics{}, &errors.ConfigError{Field: "border.show_duration", Value: b.ShowDuration, Reason: "must not be negative"}
	case b.HideDuration < 0:
		return overlay.Metrics{}, &errors.ConfigError{Field: "border.hide_duration", Value: b.HideDuration, Reason: "must not be negative"}
	case b.ShowDamping <= 0:
		return overlay.Metrics{}, &errors.ConfigError{Field: "border.show_damping", Value: b.ShowDamping, Reason: "must be positive"}
	}
	return overlay.Metrics{
		BorderWidth:    b.Width,
		AntiAliasInset: b.AntiAliasInset,
		CornerRadius:   b.CornerRadius,
		ShowDuration:   b.ShowDuration.Std(),
		ShowDamping:    b.ShowDamping,
		HideDuration:   b.HideDuration.Std(),
		HideCurve:      curve,
	}, nil
}
