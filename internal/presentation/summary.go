package presentation

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/megal/resourced/internal/datagen"
)

var (
	textMutedColor     = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"}
	statusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	statusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	statusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF8787", Dark: "#FF8787"}

	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(textMutedColor).Width(11)
	successStyle = lipgloss.NewStyle().Foreground(statusSuccessColor)
	warningStyle = lipgloss.NewStyle().Foreground(statusWarningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(statusErrorColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(textMutedColor)
)

// RenderSummary renders a generation report for the terminal.
func RenderSummary(r datagen.Report, root string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("resourced generate"))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(r.RunID))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("output", root)
	row("records", fmt.Sprintf("%d names, %d models, %d recipes", r.Names, r.Models, r.Recipes))
	row("files", fmt.Sprintf("%s written, %s unchanged",
		successStyle.Render(fmt.Sprint(r.Written)), mutedStyle.Render(fmt.Sprint(r.Unchanged))))
	if len(r.Pruned) > 0 {
		row("pruned", warningStyle.Render(fmt.Sprint(len(r.Pruned))))
	}
	if len(r.Collisions) > 0 {
		row("collisions", warningStyle.Render(strings.Join(r.Collisions, ", ")))
	}
	row("took", r.Duration.Round(time.Millisecond).String())

	return b.String()
}

// RenderDrifts renders check results with colored patch lines.
func RenderDrifts(drifts []datagen.Drift) string {
	if len(drifts) == 0 {
		return successStyle.Render("generated files are up to date") + "\n"
	}

	var b strings.Builder
	for _, d := range drifts {
		b.WriteString(titleStyle.Render(d.Path))
		b.WriteString(" ")
		b.WriteString(warningStyle.Render("(" + string(d.Kind) + ")"))
		b.WriteString("\n")
		for _, line := range strings.Split(strings.TrimSuffix(d.Patch, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "+"):
				b.WriteString(successStyle.Render(line))
			case strings.HasPrefix(line, "-"):
				b.WriteString(errorStyle.Render(line))
			default:
				b.WriteString(mutedStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(errorStyle.Render(fmt.Sprintf("%d file(s) out of date", len(drifts))))
	b.WriteString("\n")
	return b.String()
}
