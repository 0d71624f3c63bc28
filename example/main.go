// Package main demonstrates usage of the path-error package.
//
// pathprobe is a small CLI whose subcommands fail in each of the ways the
// unified error model classifies: converted I/O and terminal failures,
// counter overflow, timeouts and internal misuse.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/next-trace/path-error/errzap"
)

func main() {
	level := zap.NewAtomicLevelAt(zap.ErrorLevel)

	logger, err := newConsoleLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger, level).Execute(); err != nil {
		logger.Error("command failed", errzap.Field(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd(logger *zap.Logger, level zap.AtomicLevel) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "pathprobe",
		Short:         "Exercise the unified error model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				level.SetLevel(zap.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(newStatCmd(logger))
	root.AddCommand(newTermCmd(logger))
	root.AddCommand(newSeqCmd(logger))
	root.AddCommand(newWaitCmd(logger))

	return root
}

func newStatCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "stat PATH...",
		Short: "Stat files; I/O failures are converted to kind Other",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := statAll(args)
			for _, info := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", info.Name(), info.Size())
			}
			if err != nil {
				logger.Debug("stat failed", zap.Int("paths", len(args)), errzap.Field(err))
			}

			return err
		},
	}
}

func newTermCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Print the terminal size of stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := termSize(int(os.Stdout.Fd()))
			if err != nil {
				logger.Debug("terminal size unavailable", errzap.Field(err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%dx%d\n", w, h)

			return nil
		},
	}
}

func newSeqCmd(logger *zap.Logger) *cobra.Command {
	var (
		start uint16
		count int
	)

	cmd := &cobra.Command{
		Use:   "seq",
		Short: "Emit packet sequence numbers; fails with PacketCounterOverflow when exhausted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counter := newSeqCounter(start)
			for i := 0; i < count; i++ {
				n, err := counter.Next()
				if err != nil {
					logger.Debug("sequence stopped", errzap.Field(err))
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), n)
			}

			return nil
		},
	}
	cmd.Flags().Uint16Var(&start, "start", 0, "First sequence number")
	cmd.Flags().IntVar(&count, "count", 1, "How many numbers to emit")

	return cmd
}

func newWaitCmd(logger *zap.Logger) *cobra.Command {
	var timeout, readyAfter time.Duration

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Simulate a handshake; fails with Timeout when it takes too long",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ready := make(chan struct{})
			t := time.AfterFunc(readyAfter, func() { close(ready) })
			defer t.Stop()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if err := handshake(ctx, ready, timeout); err != nil {
				logger.Debug("handshake failed", zap.Duration("timeout", timeout), errzap.Field(err))
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "handshake complete")

			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Second, "Handshake deadline")
	cmd.Flags().DurationVar(&readyAfter, "ready-after", 100*time.Millisecond, "When the simulated peer answers")

	return cmd
}

// newConsoleLogger returns a human-friendly console logger with timestamps.
// The level is adjustable after construction through the atomic level.
func newConsoleLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = level
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	return cfg.Build()
}
