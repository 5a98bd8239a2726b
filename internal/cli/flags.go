package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/happyhackingspace/catenc/internal/config"
)

// schemaFlags are the encoding settings shared by encode and evaluate.
// Explicitly set flags override the config file and the environment.
type schemaFlags struct {
	configPath string
	values     config.Config
}

func (f *schemaFlags) register(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML file with column and encoder settings")
	fs.StringSliceVar(&f.values.Scalar, "scalar", nil, "Single-valued categorical columns")
	fs.StringSliceVar(&f.values.List, "list", nil, "Multi-valued categorical columns")
	fs.StringVar(&f.values.Label, "label", d.Label, "Binary label column (1 = positive)")
	fs.Float64Var(&f.values.Param, "param", d.Param, "Smoothing strength, > 0")
	fs.StringVar(&f.values.Blend, "blend", d.Blend, "Scalar blend policy: shrinkage or raw")
	fs.StringVar(&f.values.Weighting, "weighting", d.Weighting, "List entry weighting: equal, entry or list")
	fs.BoolVar(&f.values.BlendPrior, "blend-prior", false, "Give list weight not claimed by entries to the prior")
	fs.StringVar(&f.values.ListUpdate, "list-update", d.ListUpdate, "When list entries are updated: entry (in list order) or list (after the whole list is read)")
	fs.BoolVar(&f.values.StrictLabels, "strict-labels", false, "Fail on labels other than 0 and 1")
	fs.IntVar(&f.values.Capacity, "capacity", 0, "Keep at most N categories per column (LRU)")
	fs.IntVar(&f.values.Buckets, "buckets", 0, "Hash categories into N buckets per column")
	fs.StringVar(&f.values.Separator, "separator", d.Separator, "Separator of list cell entries")
	fs.BoolVar(&f.values.Tokens, "tokens", false, "Split list cells into lowercased word tokens")
	fs.IntVar(&f.values.Ngram, "ngram", d.Ngram, "Largest token n-gram in --tokens mode")
	fs.StringVar(&f.values.Delimiter, "delimiter", d.Delimiter, "CSV field delimiter")
	fs.StringVar(&f.values.Encoding, "encoding", "", "Input charset (default: detect)")
}

// resolve merges defaults, the config file, the environment and the flags
// the user set, and validates the result.
func (f *schemaFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	set := map[string]func(){
		"scalar":        func() { cfg.Scalar = f.values.Scalar },
		"list":          func() { cfg.List = f.values.List },
		"label":         func() { cfg.Label = f.values.Label },
		"param":         func() { cfg.Param = f.values.Param },
		"blend":         func() { cfg.Blend = f.values.Blend },
		"weighting":     func() { cfg.Weighting = f.values.Weighting },
		"blend-prior":   func() { cfg.BlendPrior = f.values.BlendPrior },
		"list-update":   func() { cfg.ListUpdate = f.values.ListUpdate },
		"strict-labels": func() { cfg.StrictLabels = f.values.StrictLabels },
		"capacity":      func() { cfg.Capacity = f.values.Capacity },
		"buckets":       func() { cfg.Buckets = f.values.Buckets },
		"separator":     func() { cfg.Separator = f.values.Separator },
		"tokens":        func() { cfg.Tokens = f.values.Tokens },
		"ngram":         func() { cfg.Ngram = f.values.Ngram },
		"delimiter":     func() { cfg.Delimiter = f.values.Delimiter },
		"encoding":      func() { cfg.Encoding = f.values.Encoding },
	}
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		if apply, ok := set[fl.Name]; ok {
			apply()
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
