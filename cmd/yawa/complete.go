package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Record the results of the next workout and move on",
		Long: `Ask, lift by lift, whether the next workout was completed. Lifts with a rep
range also ask whether the top of the range was reached. The program advances
one day and every attempt is appended to the lift history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.svc.Complete(cmd.Context()); err != nil {
				return err
			}
			green := color.New(color.FgGreen, color.Bold).SprintFunc()
			fmt.Fprintln(cmd.OutOrStdout(), green("Well done!"))
			return nil
		},
	}
}
