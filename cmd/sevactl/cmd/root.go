package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sevactl",
		Short: "Sevahub operator tool",
		Long: `sevactl inspects how the Sevahub dashboards treat a session.

Available commands:
  gate         Show the gate decision for a token, role and required role
  whoami       Run a profile bootstrap against the platform API
  new-module   Scaffold a new guarded module
  version      Print the version

Use "sevactl [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is fine; flags and the environment still apply.
			_ = godotenv.Load()
		},
	}

	root.AddCommand(newGateCmd(), newWhoamiCmd(), newNewModuleCmd(), newVersionCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
