package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"leadbook/internal/config"
	"leadbook/internal/logging"
)

var Version = "dev"

// env is filled by the root command before any subcommand runs.
type env struct {
	cfg config.Config
	log *logrus.Logger
}

func main() {
	e := &env{}
	rootCmd := &cobra.Command{
		Use:           "leadbook",
		Short:         "Lead tracking API with notes, activity history and dashboard stats",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			e.cfg, e.log = cfg, log
			return nil
		},
		// Bare invocation serves, as the binary always did.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), e)
		},
	}

	rootCmd.AddCommand(serveCmd(e))
	rootCmd.AddCommand(migrateCmd(e))
	rootCmd.AddCommand(seedCmd(e))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
