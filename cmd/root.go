package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errChecksFailed signals that at least one category failed. It maps to
// exit code 1 without being logged as an error.
var errChecksFailed = errors.New("one or more categories failed")

var rootCmd = &cobra.Command{
	Use:   "mobiletest",
	Short: "mobiletest - Run a simulated mobile responsiveness checklist and write a JSON report",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		SetupLogging(os.Stderr, "warn")
	},
	RunE: runSuite,
}

func SetVersion(v string) {
	rootCmd.Version = v
}

func Execute() {
	os.Exit(exitCode(rootCmd.Execute()))
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, errChecksFailed) {
		slog.Error("run failed", "error", err)
	}
	return 1
}
