package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	spanscore "github.com/jamesainslie/go-spanscore"
	"github.com/jamesainslie/go-spanscore/internal/conll"
	"github.com/jamesainslie/go-spanscore/internal/report"
)

func newCompareCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare FILE",
		Short: "Score a file under several similarity functions",
		Long: `Score FILE once per similarity function and list the results, best F1
first. By default every registered function is used.

Examples:
  spanscore compare dev.conll
  spanscore compare --similarities strict,dice --format table dev.conll`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, v, args[0])
		},
	}

	cmd.Flags().StringSlice("similarities", nil, "similarity functions to compare (default: all)")
	mustBindPFlag(v, "similarities", cmd.Flags().Lookup("similarities"))

	return cmd
}

func runCompare(cmd *cobra.Command, v *viper.Viper, path string) error {
	format, err := report.ParseFormat(v.GetString("format"))
	if err != nil {
		return err
	}
	logger, err := newLogger(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	lines, err := conll.LoadFile(path)
	if err != nil {
		return err
	}

	results, err := spanscore.Compare(cmd.Context(), lines, v.GetStringSlice("similarities"), evaluatorOptions(v, logger)...)
	if err != nil {
		return fmt.Errorf("comparing %s: %w", path, err)
	}

	rows := make([]report.Row, len(results))
	for i, res := range results {
		rows[i] = report.Row{Name: res.Similarity, Metrics: metrics(res.Totals.Counts)}
	}
	return report.WriteComparison(cmd.OutOrStdout(), format, rows)
}
