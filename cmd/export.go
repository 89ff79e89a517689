package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hanc4-git/B1/config"
	"github.com/hanc4-git/B1/run"
)

func newExportCmd() *cobra.Command {
	var (
		format string // Export backend
		outDir string // Output directory
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Build geometry and write input files of the chosen backend",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, func(conf *config.Config) {
				if cmd.Flags().Changed("format") {
					conf.Export.Format = format
				}
				if cmd.Flags().Changed("out") {
					conf.Export.Dir = outDir
				}
			})
			if err != nil {
				return err
			}
			runManager, err := initializeRun(conf)
			if err != nil {
				return err
			}

			written, err := runManager.Export(conf.Export.Format, conf.Export.Dir)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	exportCmd.Flags().StringVar(&format, "format", "shield",
		"export backend, one of: "+strings.Join(run.BackendNames(), ", "))
	exportCmd.Flags().StringVar(&outDir, "out", "out", "output directory")
	return exportCmd
}
