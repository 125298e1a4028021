package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/listcmp"
)

func newPairsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pairs [file]",
		Short: "Sum the positions of the pairs that are in order",
		Long: `Reads blocks of two expressions separated by blank lines and prints the
sum of the 1-based positions of the blocks whose first expression orders
before the second one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			pairs, err := listcmp.ReadPairs(in)
			if err != nil {
				return err
			}
			a.logger.Debug("pairs read", "count", len(pairs))

			sum, err := a.driver.PairAgreementSum(pairs)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}
