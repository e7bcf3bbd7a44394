package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Display the current status of your lifting program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.svc.Status(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current program: %s\n", st.Name)
			fmt.Fprintf(out, "Current reference weight: %d\n", st.ReferenceWeight)
			fmt.Fprintf(out, "Starting reference weight: %d\n", st.StartingReferenceWeight)
			fmt.Fprintf(out, "Workouts completed: %d\n", st.WorkoutsCompleted)
			return nil
		},
	}
}
