package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyhackingspace/catenc/encoder"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Error(t, cfg.Validate(), "defaults name no columns")
}

func TestLoadYAMLAndEnv(t *testing.T) {
	path := writeConfig(t, `
scalar: [sex, embarked]
list: [cabins]
label: survived
param: 2.5
weighting: entry
blend_prior: true
capacity: 100
`)
	t.Setenv("CATENC_PARAM", "4")
	t.Setenv("CATENC_SCALAR", "pclass,sex")
	t.Setenv("CATENC_LIST_UPDATE", "list")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"pclass", "sex"}, cfg.Scalar)
	assert.Equal(t, []string{"cabins"}, cfg.List)
	assert.Equal(t, "survived", cfg.Label)
	assert.Equal(t, 4.0, cfg.Param)
	assert.Equal(t, "shrinkage", cfg.Blend)

	ec, err := cfg.Encoder()
	require.NoError(t, err)
	assert.Equal(t, encoder.PerEntryShrinkage, ec.Weighting)
	assert.True(t, ec.BlendPrior)
	assert.Equal(t, encoder.AfterList, ec.Update)
	assert.NotNil(t, ec.NewTable)

	schema := cfg.Schema()
	assert.Equal(t, cfg.Scalar, schema.Scalar)
	assert.Equal(t, "|", cfg.Binding().Splitter.Sep)
	assert.Equal(t, ',', cfg.Source().Comma)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "scalar: [a\n"))
	assert.Error(t, err)

	t.Setenv("CATENC_PARAM", "ten")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		valid bool
	}{
		{"ok", func(c *Config) {}, true},
		{"zero param", func(c *Config) { c.Param = 0 }, false},
		{"bad blend", func(c *Config) { c.Blend = "median" }, false},
		{"bad weighting", func(c *Config) { c.Weighting = "none" }, false},
		{"bad list update", func(c *Config) { c.ListUpdate = "row" }, false},
		{"empty column", func(c *Config) { c.Scalar = []string{""} }, false},
		{"no label", func(c *Config) { c.Label = "" }, false},
		{"both bounds", func(c *Config) { c.Capacity, c.Buckets = 10, 10 }, false},
		{"negative capacity", func(c *Config) { c.Capacity = -1 }, false},
		{"long delimiter", func(c *Config) { c.Delimiter = ",," }, false},
		{"tab delimiter", func(c *Config) { c.Delimiter = "\t" }, true},
		{"tokens without separator", func(c *Config) { c.Separator, c.Tokens = "", true }, true},
		{"no separator", func(c *Config) { c.Separator = "" }, false},
		{"ngram too large", func(c *Config) { c.Ngram = 9 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Scalar = []string{"a"}
			tt.edit(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestEncoderBuckets(t *testing.T) {
	cfg := Default()
	cfg.Scalar = []string{"a"}
	cfg.Buckets = 8
	cfg.Blend = "raw"
	ec, err := cfg.Encoder()
	require.NoError(t, err)
	assert.Equal(t, encoder.RawRatio, ec.Blend)

	enc, err := encoder.NewScalarWithConfig(1, ec)
	require.NoError(t, err)
	_, err = enc.Transform([]string{"x"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, enc.Size(0))
}
