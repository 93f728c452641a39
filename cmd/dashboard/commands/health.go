package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Print backend health status",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp(cliLogWriter())
			if err != nil {
				return err
			}
			defer application.Close()

			health, err := application.CheckHealth(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status:      %s\n", health.Status)
			fmt.Fprintf(out, "Version:     %s\n", health.Version)
			fmt.Fprintf(out, "Environment: %s\n", health.Environment)
			fmt.Fprintf(out, "Timestamp:   %s\n", health.Timestamp)

			if !health.IsHealthy() {
				return fmt.Errorf("backend is %s", health.Status)
			}
			return nil
		},
	}
}
