package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/physrisk/internal/config"
	"github.com/aretw0/physrisk/pkg/schema"
)

func failure() error {
	return &schema.AggregateError{Errors: []error{
		schema.Missing("asset_type"),
		schema.Violation("items[2].latitude", "expected float | got string", "north"),
	}}
}

func TestNew(t *testing.T) {
	r := New("vulnerability-curve", "curve.json", failure())
	assert.False(t, r.Valid)
	require.Len(t, r.Issues, 2)
	assert.Equal(t, "asset_type", r.Issues[0].Path)
	assert.Equal(t, "missing", r.Issues[0].Kind)
	assert.Equal(t, "constraint", r.Issues[1].Kind)

	r = New("assets", "-", nil)
	assert.True(t, r.Valid)
	assert.Empty(t, r.Issues)

	r = New("assets", "-", errors.New("failed to parse json: EOF"))
	assert.False(t, r.Valid)
	assert.Equal(t, "failed to parse json: EOF", r.Error)
}

func TestNew_RootPath(t *testing.T) {
	r := New("asset", "", &schema.AggregateError{Errors: []error{
		&schema.ValidationError{Kind: schema.KindCoercion, Reason: "expected object"},
	}})
	assert.Equal(t, "(root)", r.Issues[0].Path)
}

func TestMarkdown(t *testing.T) {
	md := New("assets", "assets.json", failure()).Markdown()
	assert.Contains(t, md, "# ❌ assets: 2 validation errors")
	assert.Contains(t, md, "Source: `assets.json`")
	assert.Contains(t, md, "| `items[2].latitude` | constraint | expected float \\| got string |")

	md = New("assets", "", nil).Markdown()
	assert.Contains(t, md, "# ✅ assets: valid")
	assert.NotContains(t, md, "Source")
}

func TestPlain(t *testing.T) {
	out := New("assets", "assets.json", failure()).Plain(termenv.Ascii)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "assets: 2 validation errors (assets.json)", lines[0])
	assert.Equal(t, "  asset_type [missing]: field required", lines[1])
	assert.NotContains(t, out, "\x1b")

	colored := New("assets", "", nil).Plain(termenv.TrueColor)
	assert.Contains(t, colored, "\x1b[")
}

func TestRender(t *testing.T) {
	r := New("assets", "assets.json", failure())

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, r, Options{Output: config.OutputJSON}))
		var back Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
		assert.Equal(t, r, back)
	})

	t.Run("auto without terminal is plain", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, r, Options{Output: config.OutputAuto}))
		assert.True(t, strings.HasPrefix(buf.String(), "assets: 2 validation errors"))
		assert.NotContains(t, buf.String(), "\x1b")
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, r, Options{Output: config.OutputMarkdown}))
		assert.Equal(t, r.Markdown(), buf.String())
	})

	t.Run("auto on terminal is styled", func(t *testing.T) {
		var buf bytes.Buffer
		var got string
		err := Render(&buf, r, Options{Output: config.OutputAuto, TTY: true, Markdown: func(md string) (string, error) {
			got = md
			return "styled", nil
		}})
		require.NoError(t, err)
		assert.Equal(t, r.Markdown(), got)
		assert.Equal(t, "styled", buf.String())
	})

	t.Run("styling failure falls back", func(t *testing.T) {
		var buf bytes.Buffer
		err := Render(&buf, r, Options{TTY: true, Markdown: func(string) (string, error) {
			return "", errors.New("no style")
		}})
		require.NoError(t, err)
		assert.Equal(t, r.Markdown(), buf.String())
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, Render(&bytes.Buffer{}, r, Options{Output: "html"}))
	})
}

func TestGlamourRendering(t *testing.T) {
	g, err := glamour.NewTermRenderer(glamour.WithStandardStyle("notty"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, New("countries", "", nil), Options{TTY: true, Markdown: g.Render}))
	assert.Contains(t, buf.String(), "countries")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestTimed(t *testing.T) {
	start := time.Date(2026, 3, 1, 13, 0, 0, 0, time.FixedZone("CET", 3600))
	r := New("assets", "", nil).Timed(start, 1500*time.Microsecond)

	assert.Equal(t, time.UTC, r.CheckedAt.Location())
	assert.True(t, start.Equal(r.CheckedAt))
	assert.InDelta(t, 1.5, r.ElapsedMS, 1e-9)

	data, err := r.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"checked_at": "2026-03-01T12:00:00Z"`)
}
