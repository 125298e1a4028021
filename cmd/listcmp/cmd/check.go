package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiam/listcmp"
	"github.com/xiam/listcmp/ast"
	"github.com/xiam/listcmp/parser"
)

var errInvalidLines = errors.New("invalid expressions found")

func newCheckCmd(a *app) *cobra.Command {
	var tree bool

	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate expressions",
		Long: `Parses every non-blank line and reports the ones that are not a single
well-formed expression. Comparisons don't validate their input, run this
first on untrusted files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			out := cmd.OutOrStdout()
			invalid := 0

			s := listcmp.NewLineScanner(in)
			for n := 1; s.Scan(); n++ {
				line := strings.TrimSpace(s.Text())
				if line == "" {
					continue
				}

				root, err := parser.Parse([]byte(line))
				if err != nil {
					invalid++
					fmt.Fprintf(out, "line %d: %v\n", n, err)
					continue
				}

				a.logger.Debug("expression ok", "line", n, "canonical", string(ast.Encode(root)))
				if tree {
					fmt.Fprintf(out, "line %d:\n", n)
					ast.Fprint(out, root)
				}
			}
			if err := s.Err(); err != nil {
				return err
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d", errInvalidLines, invalid)
			}
			return nil
		},
	}

	checkCmd.Flags().BoolVar(&tree, "tree", false, "print the tree of every valid expression")

	return checkCmd
}
