// Copyright Vespa.ai. Licensed under the terms of the Apache 2.0 license. See LICENSE in the project root.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// table writes rows of cells as left-aligned columns. Widths are measured in terminal cells.
type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(cells ...string) { t.rows = append(t.rows, cells) }

func (t *table) widths() []int {
	var widths []int
	measure := func(cells []string) {
		for i, cell := range cells {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}

func (t *table) write(w io.Writer) {
	widths := t.widths()
	line := func(cells []string, paint func(a ...interface{}) string) {
		var sb strings.Builder
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			padded := cell
			if i < len(cells)-1 {
				padded = runewidth.FillRight(cell, widths[i])
			}
			sb.WriteString(paint(padded))
		}
		fmt.Fprintln(w, sb.String())
	}
	if len(t.header) > 0 {
		line(t.header, color.New(color.Bold).Sprint)
	}
	for _, row := range t.rows {
		line(row, fmt.Sprint)
	}
}
