package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/happyhackingspace/catenc"
	"github.com/happyhackingspace/catenc/internal/config"
	"github.com/happyhackingspace/catenc/internal/dataset"
)

func (c *CLI) newEncodeCommand() *cobra.Command {
	var flags schemaFlags
	var outputPath string
	var keep []string
	var withLabel bool

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Stream rows and write their online target encodings as CSV",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Encode two columns of a CSV file
  catenc encode titanic.csv --scalar sex,embarked --label survived

  # Multi-valued column, entries separated by '|'
  catenc encode rows.csv --scalar city --list tags --label clicked

  # Tokenize free text into word entries, blend with the prior
  catenc encode rows.csv --list title --tokens --weighting entry --blend-prior

  # Read settings from a file, pipe data in
  cat rows.csv | catenc encode -c schema.yaml -s > encoded.csv

  # First table of an HTML page, keep the id column
  catenc encode report.html -c schema.yaml --keep id`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputPath(cmd, args)
			if err != nil || input == "" {
				return err
			}
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			return encode(cfg, input, out, keep, withLabel)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringSliceVar(&keep, "keep", nil, "Input columns copied to the output before the scores")
	cmd.Flags().BoolVar(&withLabel, "with-label", true, "Append the label column to the output")
	return cmd
}

func encode(cfg *config.Config, input string, out io.Writer, keep []string, withLabel bool) error {
	w := csv.NewWriter(out)
	var keepIdx []int

	stats, p, err := stream(cfg, input, func(header []string, p *catenc.Pipeline) error {
		idx, err := columnIndexes(header, keep)
		if err != nil {
			return err
		}
		keepIdx = idx
		row := append(append([]string{}, keep...), p.Columns()...)
		if withLabel {
			row = append(row, cfg.Label)
		}
		return w.Write(row)
	}, func(ex dataset.Example, scores []float64) error {
		row := make([]string, 0, len(keepIdx)+len(scores)+1)
		for _, i := range keepIdx {
			row = append(row, ex.Raw[i])
		}
		for _, s := range scores {
			row = append(row, strconv.FormatFloat(s, 'g', -1, 64))
		}
		if withLabel {
			row = append(row, strconv.Itoa(ex.Label))
		}
		return w.Write(row)
	})
	if err != nil {
		return err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("Encoding complete", "rows", stats.Rows, "skipped", stats.Skipped,
		"prior", p.Prior(), "categories", p.Cardinality())
	return nil
}

// stream opens input, builds the pipeline from cfg and encodes every row.
// onHeader runs once before the first row.
func stream(
	cfg *config.Config,
	input string,
	onHeader func(header []string, p *catenc.Pipeline) error,
	onRow func(ex dataset.Example, scores []float64) error,
) (dataset.Stats, *catenc.Pipeline, error) {
	encCfg, err := cfg.Encoder()
	if err != nil {
		return dataset.Stats{}, nil, err
	}
	p, err := catenc.New(cfg.Schema(), encCfg)
	if err != nil {
		return dataset.Stats{}, nil, err
	}

	src, closer, err := dataset.Open(input, cfg.Source())
	if err != nil {
		return dataset.Stats{}, nil, err
	}
	defer func() { _ = closer.Close() }()

	binder, err := dataset.NewBinder(src.Header(), cfg.Binding())
	if err != nil {
		return dataset.Stats{}, nil, err
	}
	if onHeader != nil {
		if err := onHeader(src.Header(), p); err != nil {
			return dataset.Stats{}, nil, err
		}
	}

	start := time.Now()
	slog.Debug("Streaming rows", "input", input, "scalar", cfg.Scalar, "list", cfg.List, "param", cfg.Param)
	stats, err := dataset.Stream(src, binder, func(ex dataset.Example) error {
		scores, err := p.Transform(ex.Scalars, ex.Lists, ex.Label)
		if err != nil {
			return fmt.Errorf("record %d: %w", ex.Record, err)
		}
		return onRow(ex, scores)
	})
	if err != nil {
		return stats, nil, err
	}
	slog.Debug("Stream finished", "rows", stats.Rows, "duration", time.Since(start))
	return stats, p, nil
}

func columnIndexes(header, names []string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		if idx[i] = lo.IndexOf(header, name); idx[i] < 0 {
			return nil, fmt.Errorf("column %q not found in header", name)
		}
	}
	return idx, nil
}

// inputPath returns the file argument, "-" for piped stdin, or "" after
// printing help when there is nothing to read.
func inputPath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if isStdinTerminal() {
		return "", cmd.Help()
	}
	return "-", nil
}

func isStdinTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
