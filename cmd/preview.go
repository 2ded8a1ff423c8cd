package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdiazbas/norwegian-quiz/internal/bank"
	"github.com/cdiazbas/norwegian-quiz/internal/session"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Answer questions in plain line mode (no TUI)",
	Long: `Draw questions from the bank and answer them on stdin.

Type 1, 2 or 3 to choose an option, an empty line to skip, or q to stop.
Useful for checking a new question bank quickly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("invalid --count %d: must be at least 1", count)
		}

		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = d.logger.Sync() }()

		return runPreview(cmd.InOrStdin(), cmd.OutOrStdout(), d.newSession(), count)
	},
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to ask")
}

// runPreview asks up to count questions from s, reading choices from in.
func runPreview(in io.Reader, out io.Writer, s *session.Session, count int) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Categoría: %s  (%d preguntas en el banco)\n\n", s.Category(), s.BankSize())

	for i := 1; i <= count; i++ {
		if err := s.NewQuestion(); err != nil {
			if errors.Is(err, bank.ErrEmptyBank) {
				fmt.Fprintln(out, "No hay preguntas disponibles.")
				break
			}
			return err
		}

		st := s.State()
		fmt.Fprintf(out, "── Pregunta %d/%d [%s] ──\n", i, count, st.CurrentQuestion.Category)
		fmt.Fprintln(out, st.CurrentQuestion.Prompt)
		for j, opt := range st.CurrentOptions {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt.Text)
		}

		fmt.Fprint(out, "\nTu respuesta: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(entrada cerrada)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "q" {
			fmt.Fprintln(out)
			break
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(st.CurrentOptions) {
			fmt.Fprintln(out, "(saltada)")
			fmt.Fprintln(out)
			continue
		}

		if err := s.SelectAnswer(st.CurrentOptions[n-1].Text); err != nil {
			return err
		}
		res, err := s.Submit()
		if err != nil {
			return err
		}

		if res.IsCorrect {
			fmt.Fprintln(out, "✓ ¡Correcto!")
		} else {
			fmt.Fprintln(out, "✗ Incorrecto.")
		}
		if res.Explanation != "" {
			fmt.Fprintln(out, res.Explanation)
		}
		if !res.IsCorrect {
			fmt.Fprintf(out, "Respuesta correcta: %s\n", res.CorrectText)
			if res.CorrectExplanation != "" {
				fmt.Fprintln(out, res.CorrectExplanation)
			}
		}
		fmt.Fprintln(out)
	}

	sum := session.BuildSummary(s)
	fmt.Fprintf(out, "── Resumen: %d/%d correctas (%.1f%%) ──\n", sum.TotalCorrect, sum.TotalQuestions, sum.Accuracy)
	return nil
}
