// Package cli implements the arith command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexshd/arith/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string  // "text" | "json" | "yaml"
	Type      string  // numeric type arguments are parsed as
	Tolerance float64 // relative tolerance for floating law checks

	Logger *slog.Logger
	Level  *slog.LevelVar // raised to debug by --verbose
}

// NewRootCommand creates the root command. Flag defaults come from cfg.
// A nil logger falls back to slog.Default(); level may be nil when the
// caller does not control the logger's level.
func NewRootCommand(cfg *config.Config, logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	if logger == nil {
		logger = slog.Default()
	}
	opts := &RootOptions{Logger: logger, Level: level}

	cmd := &cobra.Command{
		Use:   "arith",
		Short: "Generic arithmetic from the command line",
		Long: `Evaluate arithmetic operations over a chosen numeric type and verify
their algebraic laws (associativity, commutativity, identity, idempotence).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c := config.Config{Format: opts.Format, Type: opts.Type, Tolerance: opts.Tolerance, LogLevel: cfg.LogLevel}
			if err := c.Validate(); err != nil {
				return opts.formatter(cmd).fail(ExitCommandError, ErrCodeUsage, err)
			}
			if opts.Verbose && opts.Level != nil {
				opts.Level.Set(slog.LevelDebug)
			}
			opts.Logger.Debug("options", "format", opts.Format, "type", opts.Type, "tolerance", opts.Tolerance)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, fmt.Sprintf("output format %v", config.ValidFormats))
	cmd.PersistentFlags().StringVarP(&opts.Type, "type", "t", cfg.Type, fmt.Sprintf("numeric type %v", config.ValidTypes))
	cmd.PersistentFlags().Float64Var(&opts.Tolerance, "tolerance", cfg.Tolerance, "relative tolerance for floating comparisons")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewLawsCommand(opts))
	cmd.AddCommand(NewOpsCommand(opts))

	return cmd
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
