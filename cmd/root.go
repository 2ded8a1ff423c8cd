package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "norquiz",
	Short: "Norwegian B2 multiple-choice quiz",
	Long:  "norquiz: terminal quiz for practising Norwegian at B2 level from a CSV or JSON question bank.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("bank", "", "Path to the question bank, .csv or .json (overrides NORQUIZ_BANK)")
	flags.String("category", "", "Initial category filter (overrides NORQUIZ_CATEGORY)")
	flags.Uint64("seed", 0, "Random seed, 0 for a random one (overrides NORQUIZ_SEED)")
	flags.String("log-file", "", "Log file path (overrides NORQUIZ_LOG_FILE)")
	flags.String("env", "", "Environment: local or production (overrides NORQUIZ_ENV)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}
