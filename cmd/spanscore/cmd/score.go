package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	spanscore "github.com/jamesainslie/go-spanscore"
	"github.com/jamesainslie/go-spanscore/internal/report"
)

func newScoreCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score FILE",
		Short: "Score a labelled file",
		Long: `Score the system labels of FILE against its gold labels and print
precision, recall and F1.

Examples:
  # BILOU labels like PER_B, PER_L, LOC_U, O in the last two columns
  spanscore score dev.conll

  # BIO labels, partial credit for overlapping spans
  spanscore score --bio --similarity dice dev.conll

  # CoNLL-2003 style B-PER tags, per-type table
  spanscore score --bio --label-regex '(?P<action>[BIO])(?:-(?P<type>.+))?' \
    --by-type --format table dev.conll`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, v, args[0])
		},
	}

	cmd.Flags().String("similarity", spanscore.SimilarityStrict, "similarity function (see 'spanscore similarities')")
	cmd.Flags().Bool("by-type", false, "also report metrics per span type")
	mustBindPFlag(v, "similarity", cmd.Flags().Lookup("similarity"))
	mustBindPFlag(v, "by_type", cmd.Flags().Lookup("by-type"))

	return cmd
}

func runScore(cmd *cobra.Command, v *viper.Viper, path string) error {
	format, err := report.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}
	logger, err := newLogger(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts := append(evaluatorOptions(v, logger), spanscore.WithSimilarity(v.GetString("similarity")))
	ev, err := spanscore.New(opts...)
	if err != nil {
		return err
	}

	totals, err := ev.ScoreFile(cmd.Context(), path)
	if err != nil {
		return err
	}

	r := report.Report{
		File:       path,
		Similarity: ev.Similarity(),
		Scheme:     ev.Scheme().String(),
		Blocks:     totals.Blocks,
		Tokens:     totals.Tokens,
		Overall:    metrics(totals.Counts),
	}
	if v.GetBool("by_type") {
		for _, name := range totals.TypeNames() {
			r.Types = append(r.Types, report.Row{Name: typeLabel(name), Metrics: metrics(totals.Types[name])})
		}
	}
	return report.Write(cmd.OutOrStdout(), format, r)
}

func metrics(c spanscore.Counts) report.Metrics {
	return report.FromCounts(c.Matched, c.Gold, c.System)
}

// typeLabel names the empty type in per-type output.
func typeLabel(name string) string {
	if name == "" {
		return "(untyped)"
	}
	return name
}
