package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sparkfmt/internal/config"
	"sparkfmt/internal/diag"
	"sparkfmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.sql",
	Short: "Parse a SQL file and show where its comments attached",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	cfg, _, err := config.Discover(".")
	if err != nil {
		return err
	}

	result, err := driver.ParseFile(args[0], maxDiagnostics, cfg.Format.MaxDepth)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		fmt.Fprint(os.Stderr, diag.FormatDiagnostics(result.Bag.Items(), result.FileSet, true))
		warnDiagLimit(result.Bag)
	}
	if result.Result.Stmt == nil || result.Bag.HasErrors() {
		return fmt.Errorf("parse: input has errors")
	}

	total := 0
	for _, a := range result.Result.Anchors {
		start, _ := result.FileSet.Resolve(a.Span)
		for _, c := range a.Lead {
			fmt.Fprintf(os.Stdout, "%d:%d\t%s\t%q\n", start.Line, start.Col, c.Attachment, c.Text)
			total++
		}
		for _, c := range a.Trail {
			fmt.Fprintf(os.Stdout, "%d:%d\t%s\t%q\n", start.Line, start.Col, c.Attachment, c.Text)
			total++
		}
	}
	fmt.Fprintf(os.Stdout, "ok: %d comment(s) attached\n", total)
	return nil
}
