package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare LEFT RIGHT",
		Short: "Compare two expressions",
		Long:  `Prints "less", "equal" or "greater" for the order of LEFT relative to RIGHT.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.driver.Compare(args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), o)
			return nil
		},
	}
}
