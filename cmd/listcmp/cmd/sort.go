package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/listcmp"
)

func newSortCmd(a *app) *cobra.Command {
	var withSentinels bool

	sortCmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Print the expressions in order",
		Args:  cobra.MaximumNArgs(1),
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
			if withSentinels {
				exprs = append(exprs, a.cfg.Sentinels...)
			}

			sorted, err := a.driver.Sort(exprs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, expr := range sorted {
				fmt.Fprintln(out, expr)
			}
			return nil
		},
	}

	sortCmd.Flags().BoolVar(&withSentinels, "with-sentinels", false, "add the configured sentinels before sorting")

	return sortCmd
}
