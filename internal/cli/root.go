// SPDX-License-Identifier: MIT

// Package cli provides the numerics command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numerics/internal/config"
	"github.com/katalvlaran/numerics/internal/render"
)

// Version is set at build time.
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "numerics",
		Short: "Dense linear algebra on YAML matrix documents",
		Long: `numerics reads matrix, vector and mesh documents (YAML or JSON) and runs
determinant, inverse, product, power and norm computations on them.

Cells are parsed as the scalar type selected with --scalar.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cfg.File != "" {
				logger.Debug("config loaded", "file", cfg.File)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./numerics.yaml)")
	pf.String("scalar", "", "Scalar type of matrix cells (float64|complex128|int64)")
	pf.StringP("output", "o", "", "Output format (table|plain|yaml)")
	pf.Float64("epsilon", 0, "Absolute tolerance for approximate comparisons")
	pf.Int("precision", 0, "Significant digits for floating-point output (-1 for shortest)")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.String("log-format", "", "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("scalar", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"float64", "complex128", "int64"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{render.FormatTable, render.FormatPlain, render.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newVersionCommand(Version))
	rootCmd.AddCommand(newDetCommand())
	rootCmd.AddCommand(newInvCommand())
	rootCmd.AddCommand(newTransposeCommand())
	rootCmd.AddCommand(newMulCommand())
	rootCmd.AddCommand(newPowCommand())
	rootCmd.AddCommand(newNormCommand())
	rootCmd.AddCommand(newEqualCommand())
	rootCmd.AddCommand(newMeshCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return c
		}
	}

	return config.Default()
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}

	return slog.New(slog.DiscardHandler)
}

// newRenderer builds the renderer for cmd from the loaded config.
func newRenderer(cmd *cobra.Command) (*render.Renderer, error) {
	cfg := GetConfig(cmd.Context())

	return render.New(cmd.OutOrStdout(), cfg.Output, cfg.Precision)
}
