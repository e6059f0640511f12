package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/edu-platform/educlient/shared/api"
)

// printTable writes rows under columns, or v as indented JSON with --json.
func (g *globalOptions) printTable(v any, columns []string, rows [][]string) error {
	if g.JSON {
		return g.printJSON(v)
	}
	w := tablewriter.NewWriter(g.out)
	w.Header(columns)
	if err := w.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	return w.Render()
}

func (g *globalOptions) printJSON(v any) error {
	enc := json.NewEncoder(g.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (g *globalOptions) printPagination(p *api.Pagination) {
	if g.JSON || p == nil {
		return
	}
	fmt.Fprintf(g.out, "page %d/%d, %d total\n", p.Page, p.TotalPages, p.Total)
}

// body returns markdown as is, or rendered to HTML with --render.
func (g *globalOptions) body(markdown string) (string, error) {
	if !g.Render {
		return markdown, nil
	}
	return g.renderer.Render(markdown)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func join(values []string) string {
	return strings.Join(values, ", ")
}
