// Package cmd implements the CLI commands for corpuspipe using Cobra.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/corpuspipe/config"
)

// version is set at build time with -ldflags "-X .../cmd.version=...".
var version = "dev"

// NewRootCommand builds the command tree around a fresh configuration.
func NewRootCommand() *cobra.Command {
	v := config.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "corpuspipe",
		Short: "corpuspipe — build a domain-tagged Wikipedia paragraph corpus",
		Long: `corpuspipe fetches a fixed set of Wikipedia pages grouped into topical
domains, keeps the first few lead paragraphs of each page, cleans them, and
writes one JSON record per paragraph to a JSONL file for retrieval indexing.

Usage:
  corpuspipe build [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./corpuspipe.yaml if present)")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, config.DefaultLogLevel,
		"log level: debug, info, warn, error")
	// Lookup cannot fail for a flag registered above.
	_ = v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup(config.KeyLogLevel))

	rootCmd.AddCommand(newBuildCommand(v))
	rootCmd.AddCommand(newSeedsCommand(v))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "corpuspipe version %s\n", version)
		},
	})

	return rootCmd
}

// Execute runs the root command. Interrupts cancel in-flight lookups.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig loads .env and the config file into v.
// An explicit --config must exist; the default file is optional.
func initConfig(v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName("corpuspipe")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return nil
}
