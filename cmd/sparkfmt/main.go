package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sparkfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sparkfmt",
	Short: "Canonical formatter for a Spark-flavored SQL dialect",
	Long:  `sparkfmt parses a SQL statement, reattaches its comments, and prints it back in one canonical layout.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
