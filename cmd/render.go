package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/ankhbayar/mcqgen/internal/quizgen"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8FAFC"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))
)

// optionLetters labels options the way the exported sheet does.
const optionLetters = "ABCDEF"

func renderProblems(w io.Writer, problems []quizgen.Problem) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("📝 Үүссэн бодлогууд (%d):", len(problems))))
	for i, p := range problems {
		fmt.Fprintln(w)
		fmt.Fprintln(w, questionStyle.Render(fmt.Sprintf("%d. %s", i+1, p.Question)))
		for j, opt := range p.Options {
			letter := "?"
			if j < len(optionLetters) {
				letter = string(optionLetters[j])
			}
			fmt.Fprintf(w, "   %s. %s\n", letter, opt)
		}
		fmt.Fprintln(w, answerStyle.Render(fmt.Sprintf("   Зөв хариулт: %s", p.CorrectAnswer)))
	}
}
