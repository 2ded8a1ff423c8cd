package quiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cdiazbas/norwegian-quiz/internal/bank"
	sess "github.com/cdiazbas/norwegian-quiz/internal/session"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/components"
	"github.com/cdiazbas/norwegian-quiz/internal/ui/theme"
)

// cardWidth caps the width of the question block.
const cardWidth = 72

func (q *QuizScreen) View(width, height int) string {
	cw := min(width-4, cardWidth)
	st := q.session.State()

	var sections []string
	sections = append(sections, renderStatsLine(st, cw))

	switch {
	case q.errMsg != "":
		sections = append(sections, renderMessage(cw, theme.Error, q.errMsg))
	case q.empty:
		sections = append(sections, renderEmpty(cw, st.Category))
	case st.CurrentQuestion == nil:
		sections = append(sections, renderMessage(cw, theme.TextDim, "Pulsa N para una nueva pregunta."))
	default:
		sections = append(sections, q.renderQuestion(st, cw))
		if q.result != nil {
			sections = append(sections, renderFeedback(q.result, cw))
		} else {
			sections = append(sections, renderActions(cw))
		}
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+content)
}

// renderStatsLine shows "Correctas / Total / Precisión".
func renderStatsLine(st sess.SessionState, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	line := label.Render("Correctas: ") + value.Render(fmt.Sprintf("%d", st.CorrectCount)) +
		label.Render("   Total: ") + value.Render(fmt.Sprintf("%d", st.TotalCount)) +
		label.Render("   Precisión: ") + value.Render(fmt.Sprintf("%.1f%%", st.Accuracy()))

	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(line)
}

func (q *QuizScreen) renderQuestion(st sess.SessionState, cw int) string {
	rec := st.CurrentQuestion

	badge := theme.Badge.Render(rec.Category)
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw - 6).
		Render(rec.Prompt)

	card := theme.QuestionCard.Width(cw).Render(badge + "\n\n" + prompt)
	return card + "\n\n" + q.choice.View()
}

func renderActions(cw int) string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton("Evaluar", "Enter", true).View(),
		"  ",
		components.NewButton("Nueva pregunta", "N", false).View(),
	)
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(buttons)
}

func renderFeedback(res *sess.Result, cw int) string {
	var b strings.Builder
	box := theme.ErrorBox
	if res.IsCorrect {
		box = theme.SuccessBox
		b.WriteString(theme.Correct.Render("¡Correcto!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Incorrecto"))
	}

	body := theme.Body.Width(cw - 6)
	if res.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(body.Render(res.Explanation))
	}

	if !res.IsCorrect {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Respuesta correcta: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(res.CorrectText))
		if res.CorrectExplanation != "" {
			b.WriteString("\n")
			b.WriteString(body.Render(res.CorrectExplanation))
		}
	}

	hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("Pulsa N o Enter para la siguiente pregunta.")

	return box.Width(cw).Render(b.String()) + "\n\n" + hint
}

func renderEmpty(cw int, category string) string {
	msg := "No hay preguntas disponibles."
	if category != "" && category != bank.AllCategories {
		msg = fmt.Sprintf("No hay preguntas disponibles en la categoría %q.", category)
	}
	return renderMessage(cw, theme.Error, msg+"\nElige otra categoría en el menú.")
}

func renderMessage(cw int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}
