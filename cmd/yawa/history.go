package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/claude/yawa/internal/models"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded lift attempts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("-n must not be negative")
			}
			entries, err := a.svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No lifts recorded yet.")
				return nil
			}

			green := color.New(color.FgGreen).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()
			red := color.New(color.FgRed).SprintFunc()
			gray := color.New(color.FgHiBlack).SprintFunc()

			for _, e := range entries {
				result := red(e.ResultText)
				switch {
				case e.Result.IsCompletedWithMaximumReps():
					result = green(e.ResultText)
				case e.Result.Kind == models.ResultCompleted:
					result = yellow(e.ResultText)
				}
				fmt.Fprintf(out, "%s  %s | %s\n", gray(e.RecordedAt.Local().Format("2006-01-02 15:04")), e.Attempt, result)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of attempts to show (0 for all)")
	return cmd
}
