package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"sparkfmt/internal/driver"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.sql"), "select 1")
	writeFile(t, filepath.Join(dir, "sub", "a.sql"), "select 2")
	writeFile(t, filepath.Join(dir, "readme.md"), "not sql")
	other := filepath.Join(dir, "explicit.txt")
	writeFile(t, other, "select 3")

	// the directory is walked for .sql; the explicit file is kept as-is,
	// and naming it twice must not duplicate it
	files, err := driver.CollectSourceFiles([]string{dir, other, other}, ".sql")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "b.sql"),
		filepath.Join(dir, "explicit.txt"),
		filepath.Join(dir, "sub", "a.sql"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("want %v, got %v", want, files)
	}
}

func TestCollectSourceFiles_MissingPath(t *testing.T) {
	_, err := driver.CollectSourceFiles([]string{filepath.Join(t.TempDir(), "nope")}, ".sql")
	if err == nil {
		t.Error("expected an error for a missing path")
	}
}

func TestFormatPaths_WritesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	writeFile(t, path, "select a , b from t where x = 1")

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("results: %+v", results)
	}
	if !results[0].Changed {
		t.Error("expected Changed on first run")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT a, b\nFROM t\nWHERE x=1\n"
	if string(content) != want {
		t.Errorf("file after format:\n%q", content)
	}

	// already canonical: second run reports no change
	results, err = driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed {
		t.Error("expected no change on second run")
	}
}

func TestFormatPaths_CheckLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	input := "select a from t"
	writeFile(t, path, input)

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Changed || results[0].Err != nil {
		t.Fatalf("result: %+v", results[0])
	}
	content, _ := os.ReadFile(path)
	if string(content) != input {
		t.Errorf("check mode modified the file: %q", content)
	}
}

func TestFormatPaths_Stdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	input := "select a from t"
	writeFile(t, path, input)

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{Stdout: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(results[0].Formatted) != "SELECT a\nFROM t\n" {
		t.Errorf("formatted: %q", results[0].Formatted)
	}
	content, _ := os.ReadFile(path)
	if string(content) != input {
		t.Errorf("stdout mode modified the file: %q", content)
	}
}

func TestFormatPaths_BadFileDoesNotStopTheRun(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.sql")
	good := filepath.Join(dir, "good.sql")
	writeFile(t, bad, "select 'unterminated")
	writeFile(t, good, "select 1")

	results, err := driver.FormatPaths(context.Background(), []string{dir}, driver.FormatOptions{Stdout: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Error("expected an error for the bad file")
	}
	if results[1].Err != nil || string(results[1].Formatted) != "SELECT 1\n" {
		t.Errorf("good file: %+v", results[1])
	}
}

func TestFormatPaths_EmptyDir(t *testing.T) {
	_, err := driver.FormatPaths(context.Background(), []string{t.TempDir()}, driver.FormatOptions{})
	if err == nil {
		t.Error("expected an error when no source files are found")
	}
}

func TestFormatPaths_Progress(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	writeFile(t, path, "select 1")

	events := make(chan driver.Event, 16)
	_, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Stdout:   true,
		Progress: events,
	})
	if err != nil {
		t.Fatal(err)
	}
	close(events)

	var statuses []driver.Status
	for ev := range events {
		if ev.Path != path {
			t.Errorf("unexpected path %q", ev.Path)
		}
		statuses = append(statuses, ev.Status)
	}
	want := []driver.Status{driver.StatusQueued, driver.StatusFormatting, driver.StatusDone}
	if !reflect.DeepEqual(statuses, want) {
		t.Errorf("want %v, got %v", want, statuses)
	}
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	writeFile(t, path, "select a")

	res, err := driver.TokenizeFile(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() {
		t.Fatal("unexpected diagnostics")
	}
	// SELECT, a, EOF
	if len(res.Tokens) != 3 {
		t.Errorf("expected 3 tokens, got %d", len(res.Tokens))
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.sql")
	writeFile(t, path, "-- header\nselect a from t")

	res, err := driver.ParseFile(path, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.HasErrors() || res.Result.Stmt == nil {
		t.Fatal("parse failed")
	}
	if len(res.Result.Anchors) == 0 {
		t.Error("expected anchors")
	}
}
