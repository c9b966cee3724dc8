// Command arith evaluates generic arithmetic operations and verifies their
// algebraic laws.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/alexshd/arith/internal/cli"
	"github.com/alexshd/arith/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCommandError)
	}

	level := new(slog.LevelVar)
	level.Set(cfg.Level())

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)

	if err := cli.NewRootCommand(cfg, logger, level).Execute(); err != nil {
		// ExitErrors were already written in the requested format.
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("command failed", "code", exitErr.Code, "error", err)
		} else {
			logger.Error("command failed", "error", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
