package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const uiDivider = "──────────────────────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
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
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// renderForm draws labelled inputs as a two-column table.
func renderForm(labels []string, inputs []textinput.Model) string {
	width := len("Field")
	for _, l := range labels {
		if len(l) > width {
			width = len(l)
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Value\n", width, "Field"))
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, l := range labels {
		b.WriteString(fmt.Sprintf("%-*s │ [", width, l))
		b.WriteString(inputs[i].View())
		b.WriteString("]\n")
	}
	return b.String()
}

func renderMessages(status, errMsg string) string {
	var b strings.Builder
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("OK: " + status))
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
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

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

// focusInput moves focus from inputs[from] to inputs[to] and returns to.
func focusInput(inputs []textinput.Model, from, to int) int {
	inputs[from].Blur()
	inputs[to].Focus()
	return to
}

func resetInputs(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].SetValue("")
		inputs[i].Blur()
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
}

func inputValues(inputs []textinput.Model) []string {
	values := make([]string, len(inputs))
	for i := range inputs {
		values[i] = strings.TrimSpace(inputs[i].Value())
	}
	return values
}
