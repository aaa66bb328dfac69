// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-creds-manager/models"
)

const (
	uiDivider    = "──────────────────────────────────────────────────────"
	maxCellWidth = 24
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("f1: about │ ctrl+c: quit"))

	return b.String()
}

// renderFolderTypes renders the folder type selector with ft highlighted.
func renderFolderTypes(ft models.FolderType) string {
	parts := make([]string, 0, len(models.FolderTypes))
	for _, t := range models.FolderTypes {
		if t == ft {
			parts = append(parts, activeTabStyle.Render("["+t.Label()+"]"))
			continue
		}
		parts = append(parts, " "+t.Label()+" ")
	}
	return "Folder type  " + strings.Join(parts, " ")
}

// renderTable lays out header and rows in padded columns. The cell at
// (selRow, selCol) is highlighted; selRow -1 highlights nothing.
func renderTable(header []string, rows [][]string, selRow, selCol int) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(fitText(h, maxCellWidth))
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(fitText(cell, maxCellWidth)); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range header {
		if i > 0 {
			b.WriteString(" │ ")
		}
		b.WriteString(titleStyle.Render(padRight(fitText(h, maxCellWidth), widths[i])))
	}
	b.WriteString("\n  ")
	for i, w := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		}
		b.WriteString(strings.Repeat("─", w))
	}

	for r, row := range rows {
		b.WriteString("\n")
		if r == selRow {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		for i := range header {
			if i > 0 {
				b.WriteString(" │ ")
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cell = padRight(fitText(cell, maxCellWidth), widths[i])
			if r == selRow && i == selCol {
				cell = selectedStyle.Render(cell)
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}

func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func padRight(v string, width int) string {
	if gap := width - lipgloss.Width(v); gap > 0 {
		return v + strings.Repeat(" ", gap)
	}
	return v
}
