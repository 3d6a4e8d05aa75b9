package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

// Format selects how a report is rendered.
type Format string

// Supported formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (available: text, table, json, yaml)", name)
}

// Write renders r to w.
func Write(w io.Writer, format Format, r Report) error {
	switch format {
	case FormatText:
		if err := writeLine(w, "", r.Overall); err != nil {
			return err
		}
		for _, row := range r.Types {
			if err := writeLine(w, row.Name, row.Metrics); err != nil {
				return err
			}
		}
		return nil
	case FormatTable:
		rows := append([]Row{{Name: "overall", Metrics: r.Overall}}, r.Types...)
		return writeTable(w, "Type", rows)
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	}
	return fmt.Errorf("unknown format %q", format)
}

// WriteComparison renders one row per similarity function.
func WriteComparison(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatText:
		for _, row := range rows {
			if err := writeLine(w, row.Name, row.Metrics); err != nil {
				return err
			}
		}
		return nil
	case FormatTable:
		return writeTable(w, "Similarity", rows)
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatYAML:
		return writeYAML(w, rows)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeLine(w io.Writer, name string, m Metrics) error {
	prefix := ""
	if name != "" {
		prefix = name + "\t"
	}
	_, err := fmt.Fprintf(w, "%sP: %v\tR: %v\t F: %v\n", prefix, m.Precision, m.Recall, m.F1)
	return err
}

func writeTable(w io.Writer, first string, rows []Row) error {
	table := createStandardTable([]string{first, "Precision", "Recall", "F1", "Matched", "Gold", "System"}, w)
	for _, r := range rows {
		m := r.Metrics
		row := []string{
			r.Name,
			fmt.Sprintf("%.4f", m.Precision),
			fmt.Sprintf("%.4f", m.Recall),
			fmt.Sprintf("%.4f", m.F1),
			formatScore(m.Matched),
			formatScore(m.Gold),
			formatScore(m.System),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// formatScore prints whole numbers without decimals.
func formatScore(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.4f", v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func createStandardTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
