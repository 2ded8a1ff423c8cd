package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cdiazbas/norwegian-quiz/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Validate the question bank and print its size per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = d.logger.Sync() }()

		printBank(cmd.OutOrStdout(), d.bank)
		return nil
	},
}

// printBank writes the bank path, total size and per-category counts.
func printBank(w io.Writer, b *bank.Bank) {
	fmt.Fprintf(w, "Banco: %s\n", b.Path())
	fmt.Fprintf(w, "Preguntas: %d\n", b.Len())

	counts := b.CategoryCounts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %-30s %4d\n", name, counts[name])
	}
}
