package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	uiDivider    = "──────────────────────────────────────────────────────"
	nameColWidth = 40
)

var fieldLabels = [...]string{"Email", "Folder ID", "Add path"}

func (m uploadModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	for i, input := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if focusField(i) == m.focus {
			label = focusedStyle.Render(labelStyle.Render(fieldLabels[i]))
		}
		b.WriteString(label)
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.viewFiles())
	b.WriteString("\n")
	b.WriteString(m.viewSubmit())

	if m.primary.visible() {
		b.WriteString("\n\n")
		b.WriteString(m.primary.View())
	}
	if m.secondary.visible() {
		b.WriteString("\n")
		b.WriteString(m.secondary.View())
	}

	hotKeys := "tab: next field  enter: add path  ctrl+d: remove  ctrl+u: upload  ctrl+y: copy results"
	if m.uploading {
		hotKeys = "esc: abandon upload"
	}

	return appStyle.Render(renderPage(titleStyle.Render("SharePoint uploader"), b.String(), helpStyle.Render(hotKeys)) +
		"\n" + helpStyle.Render(m.info.String()))
}

func (m uploadModel) viewFiles() string {
	files := m.selection.Files()

	header := fmt.Sprintf("Files (%d, %s)", len(files), humanize.Bytes(uint64(m.selection.TotalSize())))
	if m.focus == focusFiles {
		header = focusedStyle.Render(header)
	}

	if len(files) == 0 {
		return header + "\n  no files selected\n"
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for i, f := range files {
		row := fmt.Sprintf("%-*s %10s", nameColWidth, fitText(f.Name(), nameColWidth), humanize.Bytes(uint64(f.Size())))
		if m.focus == focusFiles && i == m.cursor {
			b.WriteString(cursorRowStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m uploadModel) viewSubmit() string {
	if m.uploading {
		return disabledStyle.Render("[ Upload ]") + " " + m.spinner.View() + " uploading..."
	}
	return "[ Upload ]"
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(data)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(hotKeys)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
