package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/taxpilot-dev/taxpilot/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "taxpilot",
		Short:   "Audit de balances comptables SYSCOHADA",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Optional .env overlay; a missing file is not an error.
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newAuditCommand(),
		newSessionsCommand(),
		newArchiveCommand(),
		newExportCommand(),
	)

	return rootCmd
}
