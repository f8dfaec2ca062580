package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "satparse",
		Short:        "satparse",
		SilenceUsage: true,
		Long:         `CLI for tokenizing and parsing propositional-logic expressions.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if level, parseErr := logrus.ParseLevel(cfg.LogLevel); parseErr == nil {
				logger.SetLevel(level)
			}
			outputFormat = cfg.OutputFormat
			return nil
		},
	}

	configPath   string
	outputFormat string
	logger       = logrus.StandardLogger()
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to an optional satparse.yaml config file")
	return rootCmd.Execute()
}
