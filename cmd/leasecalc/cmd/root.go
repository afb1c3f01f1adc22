// Package cmd provides CLI commands for leasecalc.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lease-amortizer/render"
)

// NewRootCmd builds the leasecalc command tree. Output and errors are
// written to the command's configured writers.
func NewRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "leasecalc",
		Short: "Finance lease amortization and right-of-use asset calculator",
		Long: `leasecalc measures an annuity-style finance lease.

It prints:
- the initial lease liability
- the year-by-year amortization schedule
- the right-of-use asset and its straight-line depreciation

Example:
  leasecalc calculate --term 3 --payment 10000 --residual 2000 --rate 10 --idc 500`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel := slog.LevelWarn
			if debug {
				logLevel = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: logLevel,
			}))
			slog.SetDefault(logger)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(newCalculateCmd())

	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return run(NewRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", render.ErrorMessage(err))
		return err
	}
	return nil
}
