package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/taxpilot-dev/taxpilot/internal/audit"
	"github.com/taxpilot-dev/taxpilot/internal/auditlog"
	"github.com/taxpilot-dev/taxpilot/internal/balance"
	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/model"
	"github.com/taxpilot-dev/taxpilot/internal/rules"
)

func newAuditCommand() *cobra.Command {
	var priorPath string
	var sector string
	var year string
	var format string

	cmd := &cobra.Command{
		Use:   "audit [balance.csv]",
		Short: "Auditer une balance de l'exercice",
		Long: `Execute les neuf niveaux de controles sur une balance CSV.
Sans argument, la premiere balance trouvee dans import/ est auditee
puis deplacee dans import/processed/.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := os.Getwd()
			if err != nil {
				return err
			}

			balancePath := ""
			fromImport := false
			if len(args) > 0 {
				balancePath = args[0]
			} else {
				files, err := balance.Scan(workspace)
				if err != nil {
					return err
				}
				if len(files) == 0 {
					return fmt.Errorf("aucune balance dans %s", filepath.Join(workspace, "import"))
				}
				balancePath = files[0].Path
				fromImport = true
			}

			if err := runAudit(workspace, balancePath, priorPath, sector, year, format); err != nil {
				return err
			}
			if fromImport {
				return balance.MarkProcessed(workspace, filepath.Base(balancePath))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&priorPath, "prior", "", "balance N-1 pour les controles de comparaison")
	cmd.Flags().StringVar(&sector, "sector", "", "secteur (defaut: taxpilot.yaml)")
	cmd.Flags().StringVar(&year, "year", "", "exercice (defaut: taxpilot.yaml)")
	cmd.Flags().StringVar(&format, "format", "standard", "format des fichiers de balance: standard ou compact")

	return cmd
}

func runAudit(workspace, balancePath, priorPath, sectorFlag, yearFlag, format string) error {
	cfg, err := loadConfig(workspace)
	if err != nil {
		return err
	}

	sector := cfg.Entity.Sector
	if sectorFlag != "" {
		sector = sectorFlag
	}
	year := cfg.Fiscal.Year
	if yearFlag != "" {
		year = yearFlag
	}
	if year == "" {
		return fmt.Errorf("exercice non defini: renseigner fiscal.year ou --year")
	}

	thresholds, err := thresholdsFrom(cfg)
	if err != nil {
		return err
	}
	registry, err := mapping.BuiltinRegistry()
	if err != nil {
		return err
	}
	chart, err := loadChart(workspace)
	if err != nil {
		return err
	}

	entries, err := readBalanceFile(balancePath, format)
	if err != nil {
		return err
	}
	var prior []model.BalanceEntry
	if priorPath != "" {
		if prior, err = readBalanceFile(priorPath, format); err != nil {
			return err
		}
	}

	st, err := openStore(workspace, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	archives, err := st.ListArchives()
	if err != nil {
		return err
	}

	orchestrator := audit.New(registry, chart, thresholds)
	session, err := orchestrator.Run(audit.Request{
		FiscalYear: year,
		Sector:     mapping.Sector(sector),
		Entries:    entries,
		Prior:      prior,
		Archives:   archives,
	}, cliCallbacks())
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	if err := st.Save(session); err != nil {
		// The audit itself succeeded; report and keep going.
		fmt.Fprintf(os.Stderr, "avertissement: session non sauvegardee: %v\n", err)
	}
	logErr := auditlog.Append(workspace, []auditlog.Event{{
		Timestamp:  time.Now().UTC(),
		Action:     auditlog.ActionAudit,
		SessionID:  session.ID,
		FiscalYear: session.FiscalYear,
		Details:    fmt.Sprintf("score %d, %d anomalie(s) bloquante(s)", session.Summary.GlobalScore, session.Summary.RemainingBlocking),
	}})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "avertissement: journal d'audit: %v\n", logErr)
	}

	printSummary(session)
	return nil
}

// cliCallbacks prints one line per level as the audit advances.
func cliCallbacks() audit.Callbacks {
	return audit.Callbacks{
		OnLevelStart: func(level model.Level, name string) {
			fmt.Printf("Niveau %d - %s\n", level, name)
		},
		OnLevelEnd: func(level model.Level, stats model.LevelStats) {
			fmt.Printf("  %d OK, %d anomalie(s), %d non applicable(s)\n",
				stats.OK, stats.Anomalies, stats.NotApplicable)
		},
	}
}

func printSummary(session *model.Session) {
	fmt.Printf("\nSession %s (exercice %s, secteur %s)\n", session.ID, session.FiscalYear, session.Sector)
	fmt.Printf("Score global: %d/100\n", session.Summary.GlobalScore)
	fmt.Printf("Anomalies bloquantes restantes: %d\n", session.Summary.RemainingBlocking)

	actionPlan := rules.ActionPlan(session.Results)
	if len(actionPlan) == 0 {
		fmt.Println("Aucune anomalie.")
		return
	}
	fmt.Println("\nPlan d'action:")
	for _, r := range actionPlan {
		fmt.Printf("  [%s] %s %s: %s\n", r.Severity, r.Ref, r.Name, r.Message)
		if r.Suggestion != "" {
			fmt.Printf("      -> %s\n", r.Suggestion)
		}
	}
}
