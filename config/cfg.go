// Package config loads tabgrid program configuration from YAML.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/tsawler/tabgrid/htmldoc"
	"github.com/tsawler/tabgrid/measure"
	"github.com/tsawler/tabgrid/tables"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	DocumentConfig struct {
		KeepNewlines   bool     `yaml:"keep_newlines"`
		DecorationTags []string `yaml:"decoration_tags" validate:"dive,required"`
	}

	MeasureConfig struct {
		Backend  string  `yaml:"backend" validate:"oneof=monospace wide face canvas"`
		Unit     float64 `yaml:"unit" validate:"gt=0"`
		FontPath string  `yaml:"font_path,omitempty"`
	}

	LayoutConfig struct {
		RowUnit       float64 `yaml:"row_unit" validate:"gt=0"`
		OverrideWidth float64 `yaml:"override_width" validate:"gt=0"`
		RowPlacement  string  `yaml:"row_placement" validate:"oneof=fixed measured"`
		OverrideMatch string  `yaml:"override_match" validate:"oneof=substring declaration"`
		Workers       int     `yaml:"workers" validate:"min=1,max=64"`
	}

	Config struct {
		Version  int            `yaml:"version" validate:"eq=1"`
		Document DocumentConfig `yaml:"document"`
		Measure  MeasureConfig  `yaml:"measure"`
		Layout   LayoutConfig   `yaml:"layout"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields defined above are accepted, so yaml.Unmarshal cannot be used
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the expanded configuration template and
// validates the result. An empty path yields the defaults.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

// Device returns the measurement device selected by the configuration. For
// the canvas backend a font file, when given, is loaded at Unit points.
func (c *MeasureConfig) Device() (measure.Device, error) {
	if c.Backend == measure.BackendCanvas && c.FontPath != "" {
		return measure.NewCanvas(c.FontPath, c.Unit)
	}
	return measure.New(c.Backend, c.Unit)
}

// Tables converts the layout section into extractor settings.
func (c *LayoutConfig) Tables() (tables.Config, error) {
	cfg := tables.Config{
		RowUnit:       c.RowUnit,
		OverrideWidth: c.OverrideWidth,
		Workers:       c.Workers,
	}
	switch c.RowPlacement {
	case tables.RowStepFixed.String():
		cfg.RowPlacement = tables.RowStepFixed
	case tables.RowStepMeasured.String():
		cfg.RowPlacement = tables.RowStepMeasured
	default:
		return cfg, fmt.Errorf("unknown row placement %q", c.RowPlacement)
	}
	switch c.OverrideMatch {
	case tables.MatchSubstring.String():
		cfg.OverrideMatch = tables.MatchSubstring
	case tables.MatchDeclaration.String():
		cfg.OverrideMatch = tables.MatchDeclaration
	default:
		return cfg, fmt.Errorf("unknown override match %q", c.OverrideMatch)
	}
	return cfg, nil
}

// Reader returns document reading options.
func (c *DocumentConfig) Reader() htmldoc.Options {
	return htmldoc.Options{
		KeepNewlines:   c.KeepNewlines,
		DecorationTags: append([]string(nil), c.DecorationTags...),
	}
}
