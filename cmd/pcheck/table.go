package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/parsekit/errors"
)

type kindRow struct {
	Code        uint32      `yaml:"code"`
	Name        errors.Kind `yaml:"name"`
	Description string      `yaml:"description"`
}

func kindTable() []kindRow {
	all := errors.Kinds()
	rows := make([]kindRow, 0, len(all))
	for _, k := range all {
		rows = append(rows, kindRow{Code: k.Code(), Name: k, Description: k.Description()})
	}
	return rows
}

// writeTable prints the error kind code table as YAML or as a text table.
func writeTable(w io.Writer, format string) error {
	rows := kindTable()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode table: %w", err)
		}
		return enc.Close()
	case "text":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("CODE", "NAME", "DESCRIPTION")
		for _, r := range rows {
			t.Row(strconv.FormatUint(uint64(r.Code), 10), r.Name.String(), r.Description)
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unknown table format %q", format)
	}
}
