package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	spanscore "github.com/jamesainslie/go-spanscore"
)

func newSimilaritiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similarities",
		Short: "List the available similarity functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range spanscore.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
