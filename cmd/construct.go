package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanc4-git/B1/run"
)

func newConstructCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "construct",
		Short: "Build geometry and print the volume tree",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			runManager, err := initializeRun(conf)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Volumes:")
			for _, line := range run.Summary(runManager.World()) {
				fmt.Fprintln(out, "  "+line)
			}
			fmt.Fprintln(out, "Materials:")
			for _, mat := range runManager.Materials().Materials() {
				fmt.Fprintf(out, "  %s\n", mat)
				for i, fraction := range mat.MassFractions() {
					fmt.Fprintf(out, "    %-10s w=%.6f\n", mat.Components[i].Element.Name, fraction)
				}
			}
			return nil
		},
	}
}
