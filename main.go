package main

import (
	"fmt"
	"os"

	"github.com/hogwarts-cloud/sandboxctl/config"
	"github.com/hogwarts-cloud/sandboxctl/internal/describer"
	"github.com/hogwarts-cloud/sandboxctl/internal/logging"
	"github.com/hogwarts-cloud/sandboxctl/internal/properties"
	"github.com/hogwarts-cloud/sandboxctl/internal/writer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:   "sandboxctl",
	Short: "Generate a sandbox environment configuration from a setup properties file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := logging.New(cfg.LogLevel)

		props, err := properties.Load(cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to read setup properties: %w", err)
		}

		logger.WithField("input", cfg.Input).Debug("parsed setup properties")

		sandbox, err := describer.Describe(props)
		if err != nil {
			return fmt.Errorf("failed to describe resources: %w", err)
		}

		if err := writer.Write(cfg.Output, sandbox, cfg.Format); err != nil {
			return fmt.Errorf("failed to write configuration: %w", err)
		}

		logger.WithFields(logrus.Fields{
			"zone":            sandbox.Zones[0].Name,
			"global_settings": len(sandbox.GlobalConfig),
			"output":          cfg.Output,
			"format":          cfg.Format,
		}).Info("generated sandbox configuration")

		return nil
	},
}

func init() {
	config.RegisterFlags(root.Flags())
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
