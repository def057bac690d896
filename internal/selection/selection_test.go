package selection

import (
	"reflect"
	"testing"
)

func TestAdd(t *testing.T) {
	s := New()

	added, duplicates := s.Add([]string{"/proj/a.py", "/proj/sub/b.py"})
	if added != 2 || duplicates != 0 {
		t.Fatalf("expected 2 added, 0 duplicates; got %d, %d", added, duplicates)
	}

	added, duplicates = s.Add([]string{"/proj/a.py", "/proj/c.py"})
	if added != 1 || duplicates != 1 {
		t.Fatalf("expected 1 added, 1 duplicate; got %d, %d", added, duplicates)
	}

	want := []string{"/proj/a.py", "/proj/sub/b.py", "/proj/c.py"}
	if !reflect.DeepEqual(s.Files(), want) {
		t.Errorf("expected insertion order %v, got %v", want, s.Files())
	}
}

func TestRemove(t *testing.T) {
	s := New()
	s.Add([]string{"/proj/a.py", "/proj/b.py"})

	if !s.Remove("/proj/a.py") {
		t.Fatal("expected Remove to report success")
	}
	if s.Remove("/proj/a.py") {
		t.Fatal("expected second Remove of the same path to report failure")
	}
	if s.Len() != 1 || s.Files()[0] != "/proj/b.py" {
		t.Errorf("unexpected selection after removal: %v", s.Files())
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Add([]string{"/proj/a.py"})
	s.SetRoot("/somewhere")

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty selection, got %v", s.Files())
	}
	if s.Root() != "" {
		t.Errorf("expected root override cleared, got %q", s.Root())
	}
}

func TestRoot(t *testing.T) {
	s := New()
	s.Add([]string{"/proj/a.py", "/proj/sub/b.py"})

	t.Run("auto-detected from selection", func(t *testing.T) {
		if got := s.Root(); got != "/proj" {
			t.Errorf("expected /proj, got %q", got)
		}
	})

	t.Run("override wins", func(t *testing.T) {
		s.SetRoot("/proj/sub")
		if got := s.Root(); got != "/proj/sub" {
			t.Errorf("expected override /proj/sub, got %q", got)
		}
	})

	t.Run("empty override restores detection", func(t *testing.T) {
		s.SetRoot("")
		if got := s.Root(); got != "/proj" {
			t.Errorf("expected /proj after clearing override, got %q", got)
		}
	})

	t.Run("recomputed after mutation", func(t *testing.T) {
		s.Remove("/proj/a.py")
		if got := s.Root(); got != "/proj/sub" {
			t.Errorf("expected /proj/sub after removal, got %q", got)
		}
	})
}
