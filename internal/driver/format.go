package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sparkfmt/internal/comments"
	"sparkfmt/internal/diag"
	"sparkfmt/internal/ir"
	"sparkfmt/internal/lexer"
	"sparkfmt/internal/parser"
	"sparkfmt/internal/printer"
	"sparkfmt/internal/source"
)

// Status is a file's place in the run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusFormatting
	StatusDone
	StatusError
)

// Event reports per-file progress to an optional observer channel.
type Event struct {
	Path   string
	Status Status
	Err    error
}

// FormatOptions configures a formatting run over files and directories.
type FormatOptions struct {
	Check          bool // report Changed without touching files
	Stdout         bool // return formatted bytes instead of writing files
	MaxDiagnostics int
	MaxDepth       int
	Jobs           int    // worker count; 0 means one per CPU
	Ext            string // extension collected from directories; default ".sql"
	Printer        printer.Options
	Cache          *DiskCache   // optional result cache
	Progress       chan<- Event // optional; never closed by the driver
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Formatted []byte
	Err       error
}

// FormatPaths formats the given files and directories (recursively collecting
// source files), in parallel with bounded workers. Results come back indexed
// by the sorted file list, one slot per file; a per-file failure lands in its
// result, not in the returned error.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectSourceFiles(paths, opts.ext())
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]FormatResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		emit(opts.Progress, Event{Path: path, Status: StatusQueued})
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = FormatResult{Path: path, Err: err}
				return err
			}
			emit(opts.Progress, Event{Path: path, Status: StatusFormatting})
			results[i] = formatOne(path, opts)
			if results[i].Err != nil {
				emit(opts.Progress, Event{Path: path, Status: StatusError, Err: results[i].Err})
			} else {
				emit(opts.Progress, Event{Path: path, Status: StatusDone})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (o FormatOptions) ext() string {
	if o.Ext == "" {
		return ".sql"
	}
	return o.Ext
}

func emit(ch chan<- Event, ev Event) {
	if ch != nil {
		ch <- ev
	}
}

// CollectSourceFiles expands directories into their source files and returns
// a sorted, deduplicated list. Files named explicitly are kept regardless of
// extension.
func CollectSourceFiles(paths []string, ext string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(p, ext) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

func formatOne(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		result.Err = err
		return result
	}
	sf := fileSet.Get(fileID)

	if opts.Cache != nil {
		var payload Payload
		ok, err := opts.Cache.Get(cacheKey(sf.Hash, opts.Printer), &payload)
		if err == nil && ok && payload.InputHash == sf.Hash {
			return finishResult(result, sf, payload.Formatted, opts)
		}
	}

	formatted, stmt, err := FormatSource(sf, opts)
	if err != nil {
		result.Err = err
		return result
	}

	if opts.Check {
		if err := printer.CheckRoundTrip(formatted, stmt, opts.Printer); err != nil {
			result.Err = err
			return result
		}
	}

	if opts.Cache != nil {
		payload := Payload{Schema: cacheSchemaVersion, InputHash: sf.Hash, Formatted: formatted}
		// a cache write failure is not worth failing the run for
		_ = opts.Cache.Put(cacheKey(sf.Hash, opts.Printer), &payload)
	}

	return finishResult(result, sf, formatted, opts)
}

func finishResult(result FormatResult, sf *source.File, formatted []byte, opts FormatOptions) FormatResult {
	result.Changed = !bytes.Equal(sf.Content, formatted)

	if opts.Check {
		return result
	}
	if opts.Stdout {
		result.Formatted = formatted
		return result
	}
	if result.Changed {
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(result.Path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(result.Path, formatted, mode.Perm()); err != nil {
			result.Err = err
			result.Changed = false
		}
	}
	return result
}

// FormatSource runs the full pipeline on one loaded file and returns the
// canonical output plus the tree it was printed from.
func FormatSource(sf *source.File, opts FormatOptions) ([]byte, ir.Statement, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}
	bag := diag.NewBag(maxDiag)
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(sf, lexer.Options{Reporter: rep})
	res := parser.Parse(lx, parser.Options{Reporter: rep, MaxDepth: opts.MaxDepth})
	if res.Stmt == nil || bag.HasErrors() {
		return nil, nil, diagError(sf, bag)
	}
	if !comments.Attach(sf, res.Comments, res.Anchors, rep) {
		return nil, nil, diagError(sf, bag)
	}

	out := printer.Print(res.Stmt, opts.Printer)
	return out, res.Stmt, nil
}

func diagError(sf *source.File, bag *diag.Bag) error {
	d, ok := bag.FirstError()
	if !ok {
		return fmt.Errorf("%s: formatting failed", sf.Path)
	}
	if d.Primary.File == sf.ID {
		return fmt.Errorf("%s:%d: %s %s", sf.Path, sf.LineOf(d.Primary.Start), d.Code.ID(), d.Message)
	}
	return fmt.Errorf("%s: %s %s", sf.Path, d.Code.ID(), d.Message)
}
