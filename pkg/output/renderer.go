package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/corky-dev/corky/pkg/errors"
	"github.com/corky-dev/corky/pkg/logging"
	"github.com/corky-dev/corky/pkg/style"
	"github.com/corky-dev/corky/pkg/types"
	"gopkg.in/yaml.v3"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --output value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown output format %q (want text, json or yaml)", s)
}

// Renderer writes results to an io.Writer.
type Renderer struct {
	templates *template.Template
	styles    style.Registry
	writer    io.Writer
	color     bool
}

// NewRenderer creates a Renderer for w. Color is used only when requested
// and w is a terminal that accepts it.
func NewRenderer(w io.Writer, color bool) (*Renderer, error) {
	color = color && style.ColorEnabled(w)
	logger := logging.GetLogger("output")
	logger.Debug().Bool("color", color).Msg("Creating renderer")

	tmpl, err := template.New("output").Funcs(template.FuncMap{
		"summary": summaryTag,
		"outcome": outcomeTag,
		"join":    strings.Join,
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		templates: tmpl,
		styles:    style.Default(style.NewRenderer(w, color)),
		writer:    w,
		color:     color,
	}, nil
}

// RenderStatus writes drift reports.
func (r *Renderer) RenderStatus(statuses []types.LinkStatus, format Format) error {
	if statuses == nil {
		statuses = []types.LinkStatus{}
	}
	return r.render("status.tmpl", statuses, format)
}

// RenderList writes registered mailboxes.
func (r *Renderer) RenderList(entries []types.LinkEntry, format Format) error {
	if format == FormatText {
		return r.render("list.tmpl", entries, format)
	}
	rows := make([]listRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, listRow{
			ID:          e.Link.ID,
			Labels:      e.Link.Labels,
			Repo:        e.Link.RepoRef,
			RepoDerived: e.Link.RepoDerived(),
			DisplayName: e.Link.DisplayName,
			Account:     e.Link.Account,
			Path:        e.Path,
			Present:     e.Present,
		})
	}
	return r.render("", rows, format)
}

// RenderSyncSummary writes one line per reconciled link. Nothing is written
// for a single report.
func (r *Renderer) RenderSyncSummary(reports []types.SyncReport) error {
	if len(reports) < 2 {
		return nil
	}
	return r.render("sync.tmpl", reports, FormatText)
}

// RenderError writes err in the error style.
func (r *Renderer) RenderError(err error) error {
	return r.write("<Error>Error:</Error> " + err.Error())
}

// RenderMessage writes message in the named style.
func (r *Renderer) RenderMessage(styleName, message string) error {
	return r.write(fmt.Sprintf("<%s>%s</%s>", styleName, message, styleName))
}

func (r *Renderer) render(name string, data interface{}, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return r.write(buf.String())
}

func (r *Renderer) write(text string) error {
	var out string
	if r.color {
		out = r.styles.Expand(text)
	} else {
		out = style.Strip(text)
	}
	_, err := fmt.Fprintln(r.writer, out)
	return err
}

type listRow struct {
	ID          string   `json:"id" yaml:"id"`
	Labels      []string `json:"labels" yaml:"labels"`
	Repo        string   `json:"repo,omitempty" yaml:"repo,omitempty"`
	RepoDerived bool     `json:"repo_derived" yaml:"repo_derived"`
	DisplayName string   `json:"name,omitempty" yaml:"name,omitempty"`
	Account     string   `json:"account,omitempty" yaml:"account,omitempty"`
	Path        string   `json:"path" yaml:"path"`
	Present     bool     `json:"present" yaml:"present"`
}

func summaryTag(s types.LinkStatus) string {
	switch {
	case !s.Found:
		return "<Warning>" + s.Summary + "</Warning>"
	case s.UpToDate():
		return "<Success>" + s.Summary + "</Success>"
	}
	return "<Drift>" + s.Summary + "</Drift>"
}

func outcomeTag(rep types.SyncReport) string {
	text := string(rep.Outcome)
	if rep.Err != nil {
		text += ": " + rep.Err.Error()
	}
	switch rep.Outcome {
	case types.SyncFailed, types.SyncPushFailed:
		return "<Error>" + text + "</Error>"
	case types.SyncSkipped:
		return "<Muted>" + text + "</Muted>"
	}
	return "<Success>" + text + "</Success>"
}
