package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/taxpilot-dev/taxpilot/internal/auditlog"
	"github.com/taxpilot-dev/taxpilot/internal/model"
	"github.com/taxpilot-dev/taxpilot/internal/report"
)

func newExportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Exporter le rapport d'une session en CSV et HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := os.Getwd()
			if err != nil {
				return err
			}
			return runExport(workspace, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "both", "format de sortie: csv, html ou both")

	return cmd
}

func runExport(workspace, sessionID, format string) error {
	if format != "csv" && format != "html" && format != "both" {
		return fmt.Errorf("format inconnu %q (csv, html ou both)", format)
	}

	cfg, err := loadConfig(workspace)
	if err != nil {
		return err
	}
	st, err := openStore(workspace, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	session, err := st.Get(sessionID)
	if err != nil {
		return err
	}

	paths, err := writeReports(workspace, session, format)
	if err != nil {
		return err
	}

	logErr := auditlog.Append(workspace, []auditlog.Event{{
		Timestamp:  time.Now().UTC(),
		Action:     auditlog.ActionExport,
		SessionID:  session.ID,
		FiscalYear: session.FiscalYear,
		Details:    fmt.Sprintf("format %s", format),
	}})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "avertissement: journal d'audit: %v\n", logErr)
	}

	for _, p := range paths {
		fmt.Printf("Rapport ecrit: %s\n", p)
	}
	return nil
}

// writeReports renders a session under <workspace>/exports/ and returns
// the written paths.
func writeReports(workspace string, session *model.Session, format string) ([]string, error) {
	dir := filepath.Join(workspace, exportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating exports dir: %w", err)
	}

	var paths []string
	if format == "csv" || format == "both" {
		path := filepath.Join(dir, session.ID+".csv")
		if err := writeReportFile(path, session, report.WriteCSV); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	if format == "html" || format == "both" {
		path := filepath.Join(dir, session.ID+".html")
		if err := writeReportFile(path, session, report.WriteHTML); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeReportFile(path string, session *model.Session, render func(w io.Writer, s *model.Session) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render(f, session); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
