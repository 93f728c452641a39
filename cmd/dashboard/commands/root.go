package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"saas-dashboard/internal"
)

var envPath string

func Execute() error {
	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Read-only SaaS companies dashboard",
		SilenceUsage:  true,
		// без подкоманды работает как serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.PersistentFlags().StringVar(&envPath, "env", "", "path to .env file (default ./.env)")

	root.AddCommand(serveCmd(), healthCmd(), companiesCmd())
	return root.Execute()
}

func newApp(logWriter io.Writer) (*internal.App, error) {
	return internal.NewApp(internal.Options{EnvPath: envPath, LogWriter: logWriter})
}

// cliLogWriter - логи CLI-команд не смешиваются с их выводом
func cliLogWriter() io.Writer {
	return os.Stderr
}
