package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/listcmp"
)

func newRankCmd(a *app) *cobra.Command {
	var partition bool

	rankCmd := &cobra.Command{
		Use:   "rank [file]",
		Short: "Multiply the positions of the sentinels after sorting",
		Long: `Reads every non-blank line as an expression, adds the two configured
sentinels, sorts everything and prints the product of the 1-based
positions of the sentinels.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			exprs, err := listcmp.ReadExpressions(in)
			if err != nil {
				return err
			}
			a.logger.Debug("expressions read", "count", len(exprs))

			rank := a.driver.RankQuery
			if partition {
				rank = a.driver.RankByPartition
			}

			product, err := rank(exprs, a.cfg.Sentinels[0], a.cfg.Sentinels[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), product)
			return nil
		},
	}

	rankCmd.Flags().BoolVar(&partition, "partition", false, "count the elements before each sentinel instead of sorting")

	return rankCmd
}
