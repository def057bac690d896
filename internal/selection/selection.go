package selection

import "ctxcat/internal/scan"

// Set is the ordered, deduplicated collection of files pending inclusion.
// It is mutated only from the UI event loop, so it needs no locking.
type Set struct {
	files        []string
	index        map[string]struct{}
	rootOverride string
}

// New returns an empty selection set.
func New() *Set {
	return &Set{index: make(map[string]struct{})}
}

// Add appends paths that are not already selected, preserving order, and
// reports how many were added and how many were duplicates.
func (s *Set) Add(paths []string) (added, duplicates int) {
	for _, path := range paths {
		if _, ok := s.index[path]; ok {
			duplicates++
			continue
		}
		s.index[path] = struct{}{}
		s.files = append(s.files, path)
		added++
	}
	return added, duplicates
}

// Remove drops a single path from the selection.
func (s *Set) Remove(path string) bool {
	if _, ok := s.index[path]; !ok {
		return false
	}
	delete(s.index, path)
	for i, f := range s.files {
		if f == path {
			s.files = append(s.files[:i], s.files[i+1:]...)
			break
		}
	}
	return true
}

// Clear resets the selection and any root override.
func (s *Set) Clear() {
	s.files = nil
	s.index = make(map[string]struct{})
	s.rootOverride = ""
}

// Files returns the selected paths in insertion order. The caller must not
// mutate the returned slice.
func (s *Set) Files() []string {
	return s.files
}

// Len returns the number of selected files.
func (s *Set) Len() int {
	return len(s.files)
}

// Root returns the override if one is set, otherwise the common ancestor
// directory of the current selection.
func (s *Set) Root() string {
	if s.rootOverride != "" {
		return s.rootOverride
	}
	return scan.CommonRoot(s.files)
}

// SetRoot overrides the detected root. An empty dir restores auto-detection.
func (s *Set) SetRoot(dir string) {
	s.rootOverride = dir
}
