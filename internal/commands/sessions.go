package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taxpilot-dev/taxpilot/internal/audit"
)

func newSessionsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Lister les sessions d'audit terminees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := os.Getwd()
			if err != nil {
				return err
			}
			return runSessions(workspace, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "nombre maximal de sessions (0 = toutes)")
	cmd.AddCommand(newCompareCommand())

	return cmd
}

func runSessions(workspace string, limit int) error {
	cfg, err := loadConfig(workspace)
	if err != nil {
		return err
	}
	st, err := openStore(workspace, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	sessions, err := st.ListCompleted(limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("Aucune session terminee.")
		return nil
	}

	for _, s := range sessions {
		fmt.Printf("%s  exercice %s  secteur %-12s  score %3d  bloquantes %d  %s\n",
			s.ID, s.FiscalYear, s.Sector, s.Summary.GlobalScore,
			s.Summary.RemainingBlocking, s.FinishedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <session-avant> <session-apres>",
		Short: "Comparer deux sessions pour mesurer les corrections",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := os.Getwd()
			if err != nil {
				return err
			}
			return runCompare(workspace, args[0], args[1])
		},
	}
}

func runCompare(workspace, beforeID, afterID string) error {
	cfg, err := loadConfig(workspace)
	if err != nil {
		return err
	}
	st, err := openStore(workspace, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	before, err := st.Get(beforeID)
	if err != nil {
		return err
	}
	after, err := st.Get(afterID)
	if err != nil {
		return err
	}

	cmp := audit.Compare(before, after)
	fmt.Printf("Score: %d -> %d (%+d)\n",
		before.Summary.GlobalScore, after.Summary.GlobalScore, cmp.ScoreDelta)
	fmt.Printf("Corriges %d, ameliores %d, degrades %d, inchanges %d\n",
		cmp.Fixed, cmp.Improved, cmp.Degraded, cmp.Unchanged)

	for _, d := range cmp.Deltas {
		if d.Verdict == audit.VerdictUnchanged {
			continue
		}
		fmt.Printf("  %-8s %s\n", d.Verdict, d.Ref)
	}
	return nil
}
