package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

const htmlPage = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>Rapport d'audit {{.Session.ID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
h2 { font-size: 1.1em; margin-top: 1.5em; border-bottom: 1px solid #ccc; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; font-size: 0.9em; }
th { background: #f0f0f0; }
tr.anomalie td { background: #fff3f3; }
tr.non_applicable td { color: #888; }
.summary { background: #f7f7f7; padding: 1em; border: 1px solid #ddd; }
.summary b { font-size: 1.2em; }
</style>
</head>
<body>
<h1>Rapport d'audit {{.Session.ID}} &mdash; exercice {{.Session.FiscalYear}}</h1>
<div class="summary">
<p><b>Score global : {{.Session.Summary.GlobalScore}}/100</b></p>
<p>Secteur : {{.Session.Sector}} &middot;
Controles : {{.Session.Summary.TotalControls}} &middot;
Anomalies bloquantes restantes : {{.Session.Summary.RemainingBlocking}}</p>
</div>
{{range .Levels}}
<h2>Niveau {{.Level}} &mdash; {{.Name}} ({{.Stats.OK}}/{{.Stats.Total}} OK)</h2>
<table>
<tr><th>Ref</th><th>Nom</th><th>Statut</th><th>Severite</th><th>Message</th><th>Suggestion</th></tr>
{{range .Results}}
<tr class="{{.Class}}"><td>{{.Ref}}</td><td>{{.Name}}</td><td>{{.Status}}</td><td>{{.Severity}}</td><td>{{.Message}}</td><td>{{.Suggestion}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Parse(htmlPage))

type htmlLevel struct {
	Level   model.Level
	Name    string
	Stats   model.LevelStats
	Results []htmlRow
}

type htmlRow struct {
	Ref        string
	Name       string
	Status     string
	Severity   string
	Message    string
	Suggestion string
	Class      string
}

// WriteHTML renders a self-contained HTML report, results grouped by
// level in execution order.
func WriteHTML(w io.Writer, session *model.Session) error {
	data := struct {
		Session *model.Session
		Levels  []htmlLevel
	}{Session: session}

	for level := model.LevelMin; level <= model.LevelMax; level++ {
		group := htmlLevel{
			Level: level,
			Name:  model.LevelNames[level],
			Stats: session.Summary.ByLevel[level],
		}
		for _, r := range session.Results {
			if r.Level != level {
				continue
			}
			group.Results = append(group.Results, htmlRow{
				Ref:        r.Ref,
				Name:       r.Name,
				Status:     string(r.Status),
				Severity:   severityCell(r),
				Message:    r.Message,
				Suggestion: r.Suggestion,
				Class:      rowClass(r.Status),
			})
		}
		if len(group.Results) > 0 {
			data.Levels = append(data.Levels, group)
		}
	}

	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}
	return nil
}

func rowClass(status model.ControlStatus) string {
	switch status {
	case model.StatusAnomaly:
		return "anomalie"
	case model.StatusNotApplicable:
		return "non_applicable"
	default:
		return "ok"
	}
}
