package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newNextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := a.svc.Next(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
			fmt.Fprintln(out, cyan(fmt.Sprintf("=== Day: %s ===", w.DayName)))
			for _, attempt := range w.Attempts {
				fmt.Fprintln(out, attempt)
			}
			return nil
		},
	}
}
