// Package config loads encoding settings from a YAML file and CATENC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/happyhackingspace/catenc"
	"github.com/happyhackingspace/catenc/encoder"
	"github.com/happyhackingspace/catenc/internal/dataset"
	"github.com/happyhackingspace/catenc/internal/textutil"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CATENC"

// Config describes one encoding run.
type Config struct {
	Scalar []string `yaml:"scalar" validate:"dive,required"`
	List   []string `yaml:"list" validate:"dive,required"`
	Label  string   `yaml:"label" validate:"required"`

	Param        float64 `yaml:"param" validate:"gt=0"`
	Blend        string  `yaml:"blend" validate:"oneof=shrinkage raw"`
	Weighting    string  `yaml:"weighting" validate:"oneof=equal entry list"`
	BlendPrior   bool    `yaml:"blend_prior" split_words:"true"`
	ListUpdate   string  `yaml:"list_update" split_words:"true" validate:"oneof=entry list"`
	StrictLabels bool    `yaml:"strict_labels" split_words:"true"`

	// Capacity bounds each category table with LRU eviction; Buckets hashes
	// categories into a fixed number of shared accumulators. At most one may be set.
	Capacity int `yaml:"capacity" validate:"gte=0"`
	Buckets  int `yaml:"buckets" validate:"gte=0"`

	Separator string `yaml:"separator" validate:"required_without=Tokens"`
	Tokens    bool   `yaml:"tokens"`
	Ngram     int    `yaml:"ngram" validate:"gte=1,lte=5"`

	Delimiter string `yaml:"delimiter" validate:"len=1"`
	Encoding  string `yaml:"encoding"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Label:      "label",
		Param:      10,
		Blend:      encoder.ShrinkageBlend.String(),
		Weighting:  encoder.EqualWeight.String(),
		ListUpdate: encoder.PerEntry.String(),
		Separator:  "|",
		Ngram:      1,
		Delimiter:  ",",
	}
}

// Load returns the defaults overlaid with the YAML file at path (if path is
// not empty) and then with CATENC_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(c.Scalar)+len(c.List) == 0 {
		return errors.New("config: no scalar or list columns")
	}
	if c.Capacity > 0 && c.Buckets > 0 {
		return errors.New("config: capacity and buckets are mutually exclusive")
	}
	return nil
}

// Schema returns the encoder input columns.
func (c *Config) Schema() catenc.Schema {
	return catenc.Schema{Scalar: c.Scalar, List: c.List}
}

// Encoder returns the encoder settings.
func (c *Config) Encoder() (encoder.Config, error) {
	blend, err := encoder.ParseBlendPolicy(c.Blend)
	if err != nil {
		return encoder.Config{}, fmt.Errorf("config: %w", err)
	}
	weighting, err := encoder.ParseListWeighting(c.Weighting)
	if err != nil {
		return encoder.Config{}, fmt.Errorf("config: %w", err)
	}
	update, err := encoder.ParseListUpdate(c.ListUpdate)
	if err != nil {
		return encoder.Config{}, fmt.Errorf("config: %w", err)
	}
	ec := encoder.Config{
		Param:        c.Param,
		Blend:        blend,
		Weighting:    weighting,
		BlendPrior:   c.BlendPrior,
		Update:       update,
		StrictLabels: c.StrictLabels,
	}
	switch {
	case c.Capacity > 0:
		ec.NewTable = encoder.LRUTable(c.Capacity)
	case c.Buckets > 0:
		ec.NewTable = encoder.HashedTable(c.Buckets)
	}
	return ec, nil
}

// Binding returns the column binding for the dataset reader.
func (c *Config) Binding() dataset.Binding {
	return dataset.Binding{
		Scalar: c.Scalar,
		List:   c.List,
		Label:  c.Label,
		Splitter: textutil.Splitter{
			Sep:    c.Separator,
			Tokens: c.Tokens,
			MaxN:   c.Ngram,
		},
	}
}

// Source returns the dataset reader options.
func (c *Config) Source() dataset.Options {
	comma, _ := utf8.DecodeRuneInString(c.Delimiter)
	return dataset.Options{Encoding: c.Encoding, Comma: comma}
}
