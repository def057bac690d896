package ctxcat_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"ctxcat/cli"
	"ctxcat/ctxcat"
)

func projFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"a.py":     "print('a')\n",
		"sub/b.py": "print('b')\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestGenerate(t *testing.T) {
	dir := projFixture(t)
	cfg := &cli.Config{
		Paths:  []string{dir},
		NoCopy: true,
	}

	app := ctxcat.New(cfg, nil)
	doc, summary := app.Generate()

	if summary.Root != dir {
		t.Errorf("expected detected root %s, got %s", dir, summary.Root)
	}
	want := []string{"a.py", "sub/b.py"}
	if !reflect.DeepEqual(summary.Included, want) {
		t.Errorf("expected included %v, got %v", want, summary.Included)
	}
	if summary.Stats.Files != 2 {
		t.Errorf("expected 2 files in stats, got %d", summary.Stats.Files)
	}

	for _, wantText := range []string{
		"## a.py",
		"## sub/b.py",
		"```py\nprint('a')\n```",
		"```py\nprint('b')\n```",
	} {
		if !strings.Contains(doc.Content, wantText) {
			t.Errorf("document missing %q", wantText)
		}
	}
}

func TestGenerateWithRootOverride(t *testing.T) {
	dir := projFixture(t)
	cfg := &cli.Config{
		Paths:  []string{filepath.Join(dir, "sub")},
		Root:   dir,
		NoCopy: true,
	}

	app := ctxcat.New(cfg, nil)
	_, summary := app.Generate()

	if summary.Root != dir {
		t.Errorf("expected overridden root %s, got %s", dir, summary.Root)
	}
	want := []string{"sub/b.py"}
	if !reflect.DeepEqual(summary.Included, want) {
		t.Errorf("expected included %v, got %v", want, summary.Included)
	}
}

func TestExecuteWritesOutputFile(t *testing.T) {
	dir := projFixture(t)
	out := filepath.Join(t.TempDir(), "context.md")
	cfg := &cli.Config{
		Paths:  []string{dir},
		Output: out,
		NoCopy: true,
	}

	app := ctxcat.New(cfg, nil)
	summary, err := app.Execute()
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(summary.Message, out) {
		t.Errorf("expected message naming the output file, got %q", summary.Message)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), "# File Structure") {
		t.Error("output file does not contain the composed document")
	}
}

func TestExecuteEmptySelection(t *testing.T) {
	cfg := &cli.Config{NoCopy: true}
	app := ctxcat.New(cfg, nil)

	summary, err := app.Execute()
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(summary.Message, "No files selected") {
		t.Errorf("expected empty-selection message, got %q", summary.Message)
	}
}

func TestExecuteToleratesUnreadableEntry(t *testing.T) {
	dir := projFixture(t)
	out := filepath.Join(t.TempDir(), "context.md")
	cfg := &cli.Config{
		Paths:  []string{dir, filepath.Join(dir, "missing.py")},
		Output: out,
		NoCopy: true,
	}

	app := ctxcat.New(cfg, nil)
	summary, err := app.Execute()
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(summary.Skipped) != 1 {
		t.Fatalf("expected one skipped entry, got %v", summary.Skipped)
	}
	if len(summary.Included) != 2 {
		t.Errorf("expected the readable files to survive, got %v", summary.Included)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	for _, want := range []string{"print('a')", "print('b')"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("document missing %q despite partial failure", want)
		}
	}
}
