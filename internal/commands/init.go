package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taxpilot-dev/taxpilot/internal/config"
	"github.com/taxpilot-dev/taxpilot/internal/gitops"
	"github.com/taxpilot-dev/taxpilot/internal/mapping"
	"github.com/taxpilot-dev/taxpilot/internal/plan"
)

func newInitCommand() *cobra.Command {
	var name string
	var sector string
	var year string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialiser un espace de travail d'audit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, sector, year)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "nom de l'entite auditee (obligatoire)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&sector, "sector", "SN", "secteur: SN, SMT, BANQUE, ASSURANCE, MICROFINANCE, EBNL")
	cmd.Flags().StringVar(&year, "year", "", "exercice audite, ex. 2025")

	return cmd
}

func runInit(dir, name, sector, year string) error {
	registry, err := mapping.BuiltinRegistry()
	if err != nil {
		return err
	}
	if _, err := registry.Resolve(mapping.Sector(sector)); err != nil {
		return err
	}

	dirs := []string{
		"plan",
		"import",
		filepath.Join("import", "processed"),
		"logs",
		exportsDir,
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name, sector, year)
	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the SYSCOHADA chart of accounts so it can be amended per
	// entity.
	f, err := os.Create(filepath.Join(dir, planFile))
	if err != nil {
		return fmt.Errorf("creating chart of accounts: %w", err)
	}
	if err := plan.WriteAccounts(f, plan.DefaultPlan()); err != nil {
		f.Close()
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing chart of accounts: %w", err)
	}

	gitignore := "sessions.db\nimport/processed/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Espace de travail initialise dans %s (%s)\n", dir, hash)
	return nil
}
