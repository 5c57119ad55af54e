package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sparkfmt/internal/diag"
	"sparkfmt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.sql",
	Short: "Tokenize a SQL file",
	Long:  `Tokenize breaks a SQL file into its tokens, one per line, with positions.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	result, err := driver.TokenizeFile(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		fmt.Fprint(os.Stderr, diag.FormatDiagnostics(result.Bag.Items(), result.FileSet, true))
		warnDiagLimit(result.Bag)
	}

	switch format {
	case "pretty":
		for _, tok := range result.Tokens {
			start, _ := result.FileSet.Resolve(tok.Span)
			fmt.Fprintf(os.Stdout, "%d:%d\t%s\t%q\n", start.Line, start.Col, tok.Kind, tok.Text)
		}
	case "json":
		type jsonToken struct {
			Kind    string `json:"kind"`
			Text    string `json:"text"`
			Line    uint32 `json:"line"`
			Col     uint32 `json:"col"`
			Keyword bool   `json:"keyword,omitempty"`
			Literal bool   `json:"literal,omitempty"`
		}
		payload := make([]jsonToken, 0, len(result.Tokens))
		for _, tok := range result.Tokens {
			start, _ := result.FileSet.Resolve(tok.Span)
			payload = append(payload, jsonToken{
				Kind:    tok.Kind.String(),
				Text:    tok.Text,
				Line:    start.Line,
				Col:     start.Col,
				Keyword: tok.IsKeyword(),
				Literal: tok.IsLiteral(),
			})
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(payload); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("tokenize: input has lexical errors")
	}
	return nil
}

// warnDiagLimit notes when the bag filled up and later diagnostics were
// dropped.
func warnDiagLimit(bag *diag.Bag) {
	if bag.Len() >= int(bag.Cap()) {
		fmt.Fprintf(os.Stderr, "diagnostic limit of %d reached; further diagnostics were dropped\n", bag.Cap())
	}
}
