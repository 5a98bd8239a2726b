package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/happyhackingspace/catenc"
	"github.com/happyhackingspace/catenc/internal/config"
	"github.com/happyhackingspace/catenc/internal/dataset"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var flags schemaFlags

	cmd := &cobra.Command{
		Use:   "evaluate [file]",
		Short: "Score the online encodings against the labels (log loss, ROC AUC)",
		Args:  cobra.MaximumNArgs(1),
		Example: `  catenc evaluate titanic.csv --scalar sex,embarked,pclass --label survived
  catenc evaluate rows.csv -c schema.yaml --param 1 --weighting entry`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := inputPath(cmd, args)
			if err != nil || input == "" {
				return err
			}
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			slog.Info("Evaluating", "input", input, "param", cfg.Param)
			start := time.Now()
			reports, p, err := evaluate(cfg, input)
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))
			printReport(cmd.OutOrStdout(), reports, p)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func evaluate(cfg *config.Config, input string) ([]catenc.ColumnReport, *catenc.Pipeline, error) {
	var ev *catenc.Evaluation
	stats, p, err := stream(cfg, input, func(_ []string, p *catenc.Pipeline) error {
		ev = catenc.NewEvaluation(p.Columns())
		return nil
	}, func(ex dataset.Example, scores []float64) error {
		return ev.Add(scores, ex.Label)
	})
	if err != nil {
		return nil, nil, err
	}
	if stats.Rows == 0 {
		return nil, nil, fmt.Errorf("no rows to evaluate")
	}
	return ev.Report(), p, nil
}

func printReport(w io.Writer, reports []catenc.ColumnReport, p *catenc.Pipeline) {
	if len(reports) == 0 {
		return
	}
	fmt.Fprintf(w, "Rows: %d  Positives: %d  Prior: %.4f\n",
		p.Rows(), reports[0].Positives, p.Prior())
	ec := p.Config()
	fmt.Fprintf(w, "Param: %g  Blend: %s  Weighting: %s  List update: %s  Blend prior: %t\n",
		ec.Param, ec.Blend, ec.Weighting, ec.Update, ec.BlendPrior)

	sizes := p.Cardinality()
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"column", "categories", "log loss", "auc"})
	table.AppendBulk(lo.Map(reports, func(r catenc.ColumnReport, i int) []string {
		return []string{r.Column, strconv.Itoa(sizes[i]), formatMetric(r.LogLoss), formatMetric(r.AUC)}
	}))
	table.Render()
}

func formatMetric(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
