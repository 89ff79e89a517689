// Package cmd implements the b1 command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanc4-git/B1/config"
	"github.com/hanc4-git/B1/construction"
	"github.com/hanc4-git/B1/log"
	"github.com/hanc4-git/B1/run"
)

var logger = log.NamedLogger("cmd")

var (
	configPath string // YAML configuration file
	logLevel   string // Log verbosity level, overrides config
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "b1",
	Short:         "Build the B1 detector geometry and export it for transport codes",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"logging level, one of: panic, fatal, error, warn, info, debug")

	rootCmd.AddCommand(newConstructCmd(), newExportCmd(), newMaterialsCmd())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and applies flags changed on cmd.
func loadConfig(cmd *cobra.Command, override func(conf *config.Config)) (config.Config, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = logLevel
	}
	if override != nil {
		override(&conf)
	}
	if err := config.Check(&conf); err != nil {
		return config.Config{}, err
	}
	if err := log.SetLevel(conf.LogLevel); err != nil {
		return config.Config{}, err
	}
	logger.Debugf("Config: %#v", conf)
	return conf, nil
}

// initializeRun builds geometry described by conf.
func initializeRun(conf config.Config) (*run.Manager, error) {
	runManager := run.NewManager()
	runManager.SetUserInitialization(construction.NewB1(conf.Geometry))
	if err := runManager.Initialize(); err != nil {
		return nil, err
	}
	return runManager, nil
}
