// Package report turns a validation outcome into text for people or tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/physrisk/internal/config"
	"github.com/aretw0/physrisk/pkg/schema"
)

// Issue is one offending field.
type Issue struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Reason   string `json:"reason"`
	Expected string `json:"expected,omitempty"`
}

// Report is the outcome of validating one payload.
type Report struct {
	Kind   string  `json:"kind"`
	Source string  `json:"source"`
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
	// Error holds a failure that is not tied to a field, e.g. unreadable input.
	Error string `json:"error,omitempty"`

	CheckedAt time.Time `json:"checked_at,omitzero"`
	ElapsedMS float64   `json:"elapsed_ms,omitempty"`
}

// Timed records when the check started and how long it took.
func (r Report) Timed(start time.Time, elapsed time.Duration) Report {
	r.CheckedAt = start.UTC()
	r.ElapsedMS = float64(elapsed) / float64(time.Millisecond)
	return r
}

// New builds a report from the error returned by validation; nil means valid.
func New(kind, source string, err error) Report {
	r := Report{Kind: kind, Source: source, Valid: err == nil}
	if err == nil {
		return r
	}
	var aggr *schema.AggregateError
	if !errors.As(err, &aggr) {
		r.Error = err.Error()
		return r
	}
	for _, ve := range aggr.Failures() {
		r.Issues = append(r.Issues, Issue{
			Path:     displayPath(ve.Key),
			Kind:     string(ve.Kind),
			Reason:   ve.Reason,
			Expected: ve.Expected,
		})
	}
	return r
}

func displayPath(key string) string {
	if key == "" {
		return "(root)"
	}
	return key
}

func (r Report) title() string {
	switch {
	case r.Valid:
		return fmt.Sprintf("%s: valid", r.Kind)
	case r.Error != "":
		return fmt.Sprintf("%s: not validated", r.Kind)
	case len(r.Issues) == 1:
		return fmt.Sprintf("%s: 1 validation error", r.Kind)
	}
	return fmt.Sprintf("%s: %d validation errors", r.Kind, len(r.Issues))
}

// Markdown renders the report as a markdown document.
func (r Report) Markdown() string {
	var sb strings.Builder
	mark := "✅"
	if !r.Valid {
		mark = "❌"
	}
	fmt.Fprintf(&sb, "# %s %s\n\n", mark, r.title())
	if r.Source != "" {
		fmt.Fprintf(&sb, "Source: `%s`\n\n", r.Source)
	}
	if r.Error != "" {
		fmt.Fprintf(&sb, "> %s\n", r.Error)
	}
	if len(r.Issues) > 0 {
		sb.WriteString("| Field | Kind | Reason |\n|---|---|---|\n")
		for _, is := range r.Issues {
			fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", is.Path, is.Kind, escapeCell(is.Reason))
		}
	}
	return sb.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// Plain renders the report as lines of text, colouring the status line
// with the given profile. termenv.Ascii disables colour.
func (r Report) Plain(p termenv.Profile) string {
	var sb strings.Builder
	status := p.String(r.title())
	if r.Valid {
		status = status.Foreground(p.Color("#4ade80")).Bold()
	} else {
		status = status.Foreground(p.Color("#f87171")).Bold()
	}
	sb.WriteString(status.String())
	if r.Source != "" {
		fmt.Fprintf(&sb, " (%s)", r.Source)
	}
	sb.WriteString("\n")
	if r.Error != "" {
		fmt.Fprintf(&sb, "  %s\n", r.Error)
	}
	for _, is := range r.Issues {
		fmt.Fprintf(&sb, "  %s [%s]: %s\n", is.Path, is.Kind, is.Reason)
	}
	return sb.String()
}

// JSON renders the report as indented JSON.
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Options controls Render.
type Options struct {
	Output config.Output
	// TTY reports whether w is an interactive terminal.
	TTY bool
	// Markdown renders markdown for terminals. Nil uses glamour.
	Markdown func(string) (string, error)
}

// Render writes r to w in the requested output mode. In auto mode,
// terminals get styled markdown and everything else plain text.
func Render(w io.Writer, r Report, opts Options) error {
	mode := opts.Output
	if mode == "" || mode == config.OutputAuto {
		mode = config.OutputPlain
		if opts.TTY {
			return renderStyled(w, r, opts.Markdown)
		}
	}

	switch mode {
	case config.OutputMarkdown:
		_, err := io.WriteString(w, r.Markdown())
		return err
	case config.OutputJSON:
		data, err := r.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.OutputPlain:
		profile := termenv.Ascii
		if opts.TTY {
			profile = termenv.ColorProfile()
		}
		_, err := io.WriteString(w, r.Plain(profile))
		return err
	}
	return fmt.Errorf("unsupported output %q", mode)
}

func renderStyled(w io.Writer, r Report, render func(string) (string, error)) error {
	if render == nil {
		render = NewRenderer()
	}
	out, err := render(r.Markdown())
	if err != nil {
		// Fall back to the raw document.
		out = r.Markdown()
	}
	_, err = io.WriteString(w, out)
	return err
}

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) { return "", err }
	}
	return r.Render
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
