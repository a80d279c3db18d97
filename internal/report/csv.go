// Package report renders completed audit sessions as CSV and HTML.
// Rendering is deterministic: the same session always produces the same
// bytes, so exported reports can be diffed and committed.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// CSVHeader is the fixed header of an exported control report.
const CSVHeader = "Ref;Nom;Niveau;Statut;Severite;Message;Suggestion;Comptes;Reference"

// WriteCSV writes one row per control result, in the session's stored
// order (level ascending, then ref).
func WriteCSV(w io.Writer, session *model.Session) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	defer cw.Flush()

	if err := cw.Write(strings.Split(CSVHeader, ";")); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, r := range session.Results {
		row := []string{
			r.Ref,
			r.Name,
			strconv.Itoa(int(r.Level)),
			string(r.Status),
			severityCell(r),
			r.Message,
			r.Suggestion,
			accountsCell(r),
			r.RegulatoryRef,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing report row %s: %w", r.Ref, err)
		}
	}
	return cw.Error()
}

// severityCell leaves the column empty for passing or skipped controls;
// severity only means something on an anomaly.
func severityCell(r model.ControlResult) string {
	if r.Status != model.StatusAnomaly {
		return ""
	}
	return string(r.Severity)
}

func accountsCell(r model.ControlResult) string {
	if r.Details == nil || len(r.Details.Accounts) == 0 {
		return ""
	}
	return strings.Join(r.Details.Accounts, ",")
}
