package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/xiam/listcmp"
	"github.com/xiam/listcmp/config"
)

// app holds what every subcommand needs once flags and config are loaded.
type app struct {
	cfgFile string
	envFile string
	verbose bool
	mode    string
	workers int

	cfg    *config.Config
	logger *slog.Logger
	driver *listcmp.Driver
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "listcmp",
		Short: "Order nested integer lists",
		Long: `listcmp compares nested integer lists such as [1,[2,3],4].

An integer compared against a list is handled as a list holding only
that integer. Lists compare element by element and a list that runs out
first orders first.

Commands:
  pairs    - sum of the positions of the pairs that are in order
  rank     - product of the sentinel positions after sorting
  sort     - print the expressions in order
  compare  - compare two expressions
  check    - validate expressions`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML")
	flags.StringVar(&a.envFile, "env-file", ".env", "file with LISTCMP_* environment variables")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&a.mode, "mode", "", "comparator: stream or tree (overrides config)")
	flags.IntVar(&a.workers, "workers", 0, "pairs compared concurrently (overrides config)")

	rootCmd.AddCommand(
		newPairsCmd(a),
		newRankCmd(a),
		newSortCmd(a),
		newCompareCmd(a),
		newCheckCmd(a),
	)

	return rootCmd
}

// Execute runs the listcmp command line.
func Execute() error {
	return newRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(a.envFile, cmd.Flags().Changed("env-file")); err != nil {
		return err
	}

	cfg, err := config.Read(a.cfgFile)
	if err != nil {
		return err
	}
	if a.mode != "" {
		cfg.Mode = a.mode
	}
	if a.workers > 0 {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	compare, err := listcmp.ComparatorFor(listcmp.Mode(cfg.Mode))
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.driver = listcmp.NewDriver(
		listcmp.WithComparator(compare),
		listcmp.WithWorkers(cfg.Workers),
		listcmp.WithLogger(a.logger),
	)

	a.logger.Debug("config loaded", "file", a.cfgFile, "mode", cfg.Mode, "workers", cfg.Workers)
	return nil
}

// openInput returns the named file, or stdin for no name or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}
