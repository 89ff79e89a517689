package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanc4-git/B1/material"
)

func newMaterialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List predefined materials and elements",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			materials := material.NewManager()
			for _, name := range material.NISTMaterialNames() {
				mat, err := materials.FindOrBuildMaterial(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), mat)
			}
			for _, symbol := range material.NISTElementSymbols() {
				element, err := materials.FindOrBuildElement(symbol)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), element)
			}
			return nil
		},
	}
}
