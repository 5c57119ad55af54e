package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sparkfmt"
	"sparkfmt/internal/config"
	"sparkfmt/internal/driver"
	"sparkfmt/internal/printer"
	"sparkfmt/internal/ui"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] [path...]",
	Short: "Format SQL files (reads stdin when given - or no paths)",
	Args:  cobra.ArbitraryArgs,
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted SQL to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "parallel workers (0 = one per CPU)")
	fmtCmd.Flags().Bool("no-cache", false, "bypass the on-disk result cache")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	cfg, _, err := config.Discover(".")
	if err != nil {
		return err
	}
	if jobs == 0 {
		jobs = cfg.Run.Jobs
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return runFmtStdin(cmd.InOrStdin(), check, cfg)
	}

	opts := driver.FormatOptions{
		Check:          check,
		Stdout:         writeToStdout,
		MaxDiagnostics: maxDiagnostics,
		MaxDepth:       cfg.Format.MaxDepth,
		Jobs:           jobs,
		Ext:            cfg.Run.Ext,
		Printer: printer.Options{
			IndentWidth: cfg.Format.IndentWidth,
			UseTabs:     cfg.Format.UseTabs,
		},
	}
	if cfg.Run.Cache && !noCache {
		cache, err := driver.OpenDiskCache("sparkfmt")
		if err == nil {
			opts.Cache = cache
		}
	}

	useUI := outputFormat == "text" && !writeToStdout && !quiet && isTerminal(os.Stdout)
	var (
		events chan driver.Event
		uiDone chan struct{}
	)
	if useUI {
		files, err := driver.CollectSourceFiles(args, cfg.Run.Ext)
		if err != nil {
			return err
		}
		events = make(chan driver.Event, len(files)*4)
		uiDone = make(chan struct{})
		opts.Progress = events
		program := tea.NewProgram(ui.NewProgressModel("sparkfmt", files, events))
		go func() {
			defer close(uiDone)
			_, _ = program.Run()
		}()
	}

	formatResults, runErr := driver.FormatPaths(cmd.Context(), args, opts)
	if events != nil {
		close(events)
		<-uiDone
	}
	if runErr != nil {
		return runErr
	}

	var hasErrors, hasChanges bool
	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(formatResults, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		renderFmtText(formatResults, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(formatResults, check); err != nil {
			return err
		}
		for _, res := range formatResults {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func runFmtStdin(in io.Reader, check bool, cfg config.Config) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	out, err := sparkfmt.FormatWith(string(data), sparkfmt.Options{
		MaxDepth:    cfg.Format.MaxDepth,
		IndentWidth: cfg.Format.IndentWidth,
		UseTabs:     cfg.Format.UseTabs,
	})
	if err != nil {
		return fmt.Errorf("fmt: <stdin>: %w", err)
	}
	if check {
		if out != string(data) {
			return fmt.Errorf("fmt: formatting changes required")
		}
		return nil
	}
	_, err = os.Stdout.WriteString(out)
	return err
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func renderFmtJSON(results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
