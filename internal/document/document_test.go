package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// projFixture mirrors the canonical example: a.py and sub/b.py under one root.
func projFixture(t *testing.T) (root string, files []string) {
	t.Helper()
	root = t.TempDir()
	a := filepath.Join(root, "a.py")
	b := filepath.Join(root, "sub", "b.py")
	writeFile(t, a, "print('a')\n")
	writeFile(t, b, "print('b')\n")
	return root, []string{a, b}
}

func TestCompose(t *testing.T) {
	root, files := projFixture(t)
	doc := Compose(files, root)

	t.Run("document sections", func(t *testing.T) {
		for _, want := range []string{"# File Structure\n", "# File Contents\n"} {
			if !strings.Contains(doc.Content, want) {
				t.Errorf("document missing %q", want)
			}
		}
	})

	t.Run("relative path headers", func(t *testing.T) {
		for _, want := range []string{"## a.py\n", "## sub/b.py\n"} {
			if !strings.Contains(doc.Content, want) {
				t.Errorf("document missing header %q", want)
			}
		}
		if strings.Contains(doc.Content, "## "+files[0]) {
			t.Errorf("header uses absolute path instead of relative")
		}
	})

	t.Run("fenced contents with language hint", func(t *testing.T) {
		for _, want := range []string{
			"```py\nprint('a')\n```",
			"```py\nprint('b')\n```",
		} {
			if !strings.Contains(doc.Content, want) {
				t.Errorf("document missing fenced block %q", want)
			}
		}
	})

	t.Run("tree summary", func(t *testing.T) {
		for _, want := range []string{
			filepath.Base(root) + "/\n",
			"├── sub/\n",
			"│   └── b.py\n",
			"└── a.py\n",
		} {
			if !strings.Contains(doc.Content, want) {
				t.Errorf("tree missing line %q", want)
			}
		}
	})

	if len(doc.Errors) != 0 {
		t.Errorf("expected no read errors, got %v", doc.Errors)
	}
}

func TestComposeIdempotent(t *testing.T) {
	root, files := projFixture(t)

	first := Compose(files, root)
	second := Compose(files, root)
	if first.Content != second.Content {
		t.Fatal("composing an unchanged selection twice produced different documents")
	}
}

func TestComposeUnreadableFile(t *testing.T) {
	root, files := projFixture(t)
	missing := filepath.Join(root, "gone.py")
	doc := Compose(append(files, missing), root)

	if len(doc.Errors) != 1 || doc.Errors[0].Path != missing {
		t.Fatalf("expected one read error for %s, got %v", missing, doc.Errors)
	}
	if !strings.Contains(doc.Content, "## gone.py\n\nError reading file:") {
		t.Error("unreadable file is missing its placeholder note")
	}
	// The readable files must still be covered in full.
	for _, want := range []string{"print('a')", "print('b')"} {
		if !strings.Contains(doc.Content, want) {
			t.Errorf("document missing content %q despite partial failure", want)
		}
	}
}

func TestComposeFenceCollision(t *testing.T) {
	root := t.TempDir()
	tricky := filepath.Join(root, "README.md")
	writeFile(t, tricky, "usage:\n```sh\nctxcat .\n```\n")

	doc := Compose([]string{tricky}, root)

	if !strings.Contains(doc.Content, "~~~md\n") {
		t.Error("expected the composer to escalate to tilde fences")
	}
	if !strings.Contains(doc.Content, "```sh\nctxcat .\n```") {
		t.Error("file body with backtick fences was not preserved verbatim")
	}
}

func TestDisplayPath(t *testing.T) {
	t.Run("empty root keeps absolute path", func(t *testing.T) {
		if got := DisplayPath("/proj/a.py", ""); got != "/proj/a.py" {
			t.Errorf("got %q", got)
		}
	})
	t.Run("path outside root keeps absolute path", func(t *testing.T) {
		if got := DisplayPath("/other/a.py", "/proj"); got != "/other/a.py" {
			t.Errorf("got %q", got)
		}
	})
	t.Run("path under root becomes relative", func(t *testing.T) {
		if got := DisplayPath("/proj/sub/b.py", "/proj"); got != "sub/b.py" {
			t.Errorf("got %q", got)
		}
	})
}
