package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/swindon/laravel-helpers/pkg/logger"
	"github.com/swindon/laravel-helpers/pkg/similarity"
)

const (
	metricSWG         = "swg"
	metricLevenshtein = "levenshtein"
)

type similarityOutput struct {
	Score      float64                `json:"score" yaml:"score"`
	Percent    bool                   `json:"percent,omitempty" yaml:"percent,omitempty"`
	Candidates []similarity.Candidate `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

func newSimilarityCommand(ctx *commandContext) *cobra.Command {
	var (
		caseSensitive bool
		foldAccents   bool
		noAlignment   bool
		explain       bool
		percent       bool
	)
	metric := newEnumValue(metricSWG, metricSWG, metricLevenshtein)

	cmd := &cobra.Command{
		Use:   "similarity <a> <b>",
		Short: "Score how similar two strings are",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []similarity.Option{
				similarity.WithCaseSensitive(caseSensitive),
				similarity.WithAccentFolding(foldAccents),
				similarity.WithAlignment(!noAlignment),
			}
			if metric.String() == metricLevenshtein {
				opts = append(opts, similarity.WithAlignmentMetric(similarity.Levenshtein()))
			}

			var score float64
			if percent {
				score = similarity.Percent(args[0], args[1], opts...)
			} else {
				score = similarity.Score(args[0], args[1], opts...)
			}

			ctx.log.DebugContext(cmd.Context(), "scored strings",
				logger.Score(score),
				logger.InputLength(len(args[0])+len(args[1])),
			)

			out := similarityOutput{Score: score, Percent: percent}
			if !explain {
				return ctx.writeResult(cmd, formatScore(score), out)
			}

			candidates := similarity.Candidates(args[0], args[1], opts...)
			out.Candidates = candidates
			if !ctx.wantsTable(cmd) {
				return ctx.writeStructured(cmd, out)
			}
			return writeCandidateTable(cmd, candidates, score, percent)
		},
	}

	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Compare without upper and lower case variants")
	cmd.Flags().BoolVar(&foldAccents, "fold-accents", false, "Ignore accents and other combining marks")
	cmd.Flags().BoolVar(&noAlignment, "no-alignment", false, "Skip the alignment metric")
	cmd.Flags().Var(metric, "metric", "Alignment metric: swg or levenshtein")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show every candidate score")
	cmd.Flags().BoolVar(&percent, "percent", false, "Report the score as a percentage")
	return cmd
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}

func writeCandidateTable(cmd *cobra.Command, candidates []similarity.Candidate, best float64, percent bool) error {
	rows := make([][]string, 0, len(candidates)+1)
	for _, c := range candidates {
		s := c.Score
		if percent {
			s *= 100
		}
		order := "a,b"
		if c.Swapped {
			order = "b,a"
		}
		rows = append(rows, []string{c.Metric, string(c.Variant), order, formatScore(s)})
	}
	rows = append(rows, []string{"max", "", "", formatScore(best)})

	out := renderTable(
		[]string{"Metric", "Variant", "Order", "Score"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
	)
	_, err := cmd.OutOrStdout().Write([]byte(out + "\n"))
	return err
}
