package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStartCmd(a *app) *cobra.Command {
	var referenceWeight int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new lifting program, replacing any saved one",
		Long: `Start a new lifting program from the configured template.

The reference weight drives every reference-based lift (e.g. "0.65r").
45 is a good number to start with if it's your first time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.svc.Start(cmd.Context(), referenceWeight)
			if err != nil {
				return err
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("Started program:"), p.Name)
			return nil
		},
	}

	cmd.Flags().IntVarP(&referenceWeight, "reference-weight", "r", 0, "reference weight to start with")
	_ = cmd.MarkFlagRequired("reference-weight")
	return cmd
}
