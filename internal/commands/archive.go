package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taxpilot-dev/taxpilot/internal/auditlog"
	"github.com/taxpilot-dev/taxpilot/internal/balance"
	"github.com/taxpilot-dev/taxpilot/internal/gitops"
)

func newArchiveCommand() *cobra.Command {
	var balancePath string
	var force bool

	cmd := &cobra.Command{
		Use:   "archive <session-id>",
		Short: "Figer une session terminee comme base des etats financiers",
		Long: `Fige la balance auditee d'une session terminee. Une session avec
des anomalies bloquantes restantes n'est archivable qu'avec --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := os.Getwd()
			if err != nil {
				return err
			}
			return runArchive(workspace, args[0], balancePath, force)
		},
	}

	cmd.Flags().StringVar(&balancePath, "balance", "", "balance CSV auditee par la session (obligatoire)")
	_ = cmd.MarkFlagRequired("balance")
	cmd.Flags().BoolVar(&force, "force", false, "archiver malgre des anomalies bloquantes")

	return cmd
}

func runArchive(workspace, sessionID, balancePath string, force bool) error {
	cfg, err := loadConfig(workspace)
	if err != nil {
		return err
	}
	st, err := openStore(workspace, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := readBalanceFile(balancePath, "standard")
	if err != nil {
		return err
	}
	snapshot := balance.TakeSnapshot(sessionID, entries, time.Now().UTC())

	archive, err := st.Archive(sessionID, snapshot, force)
	if err != nil {
		return err
	}

	session, err := st.Get(sessionID)
	if err != nil {
		return err
	}
	if _, err := writeReports(workspace, session, "both"); err != nil {
		return err
	}

	logErr := auditlog.Append(workspace, []auditlog.Event{{
		Timestamp:  time.Now().UTC(),
		Action:     auditlog.ActionArchive,
		SessionID:  sessionID,
		FiscalYear: archive.FiscalYear,
		Details:    fmt.Sprintf("archive %s forcee=%t", archive.ID, archive.Forced),
	}})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "avertissement: journal d'audit: %v\n", logErr)
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(workspace) {
		hash, err := gitops.CommitArchive(workspace, archive.ID, archive.FiscalYear,
			cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			fmt.Fprintf(os.Stderr, "avertissement: commit git: %v\n", err)
		} else {
			fmt.Printf("Commit git %s\n", hash)
		}
	}

	fmt.Printf("Archive %s creee (exercice %s, hash %s)\n", archive.ID, archive.FiscalYear, archive.Hash[:12])
	return nil
}
