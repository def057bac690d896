package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"ctxcat/model"
)

// Skip reasons surfaced to the user.
const (
	ReasonNotFound   = "not found"
	ReasonUnreadable = "unreadable"
	ReasonBinary     = "binary file"
	ReasonTooLarge   = "exceeds size limit"
	ReasonExcluded   = "matches exclude pattern"
	ReasonHidden     = "hidden"
)

// Options controls which files survive folder expansion.
type Options struct {
	Excludes      []string // doublestar patterns matched against slash-separated relative paths
	MaxFileSizeKB int      // <= 0 disables the size limit
	IncludeHidden bool
}

// Result is the flat, deduplicated outcome of expanding the user's selection.
type Result struct {
	Files   []string // absolute paths, first-seen order
	Skipped []model.SkippedFile
}

// Collect expands the given files and folders into a flat list of file paths.
// Folders are walked recursively with the configured filters; paths named
// directly bypass the filters, since the user asked for them explicitly.
// Problems never abort the run; they are recorded on the result instead.
func Collect(paths []string, opts Options, logger *zap.Logger) Result {
	var res Result
	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		res.Files = append(res.Files, path)
	}
	skip := func(path, reason string) {
		res.Skipped = append(res.Skipped, model.SkippedFile{Path: path, Reason: reason})
		logger.Debug("skipping path", zap.String("path", path), zap.String("reason", reason))
	}

	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			skip(path, ReasonUnreadable)
			continue
		}

		info, err := os.Stat(absPath)
		if err != nil {
			if os.IsNotExist(err) {
				skip(path, ReasonNotFound)
			} else {
				skip(path, ReasonUnreadable)
			}
			continue
		}

		if !info.IsDir() {
			add(absPath)
			continue
		}

		walkDir(absPath, opts, logger, add, skip)
	}

	logger.Debug("collection finished",
		zap.Int("files", len(res.Files)),
		zap.Int("skipped", len(res.Skipped)))
	return res
}

// walkDir recursively collects regular files under dir, applying the filters.
func walkDir(dir string, opts Options, logger *zap.Logger, add func(string), skip func(path, reason string)) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			skip(path, ReasonUnreadable)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == dir {
			return nil
		}

		relPath, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			relPath = d.Name()
		}
		relPath = filepath.ToSlash(relPath)

		if !opts.IncludeHidden && isHidden(d.Name()) {
			skip(path, ReasonHidden)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if matchesExclude(relPath, d.Name(), opts.Excludes, logger) {
			skip(path, ReasonExcluded)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			skip(path, ReasonUnreadable)
			return nil
		}
		if opts.MaxFileSizeKB > 0 && info.Size() > int64(opts.MaxFileSizeKB)*1024 {
			skip(path, ReasonTooLarge)
			return nil
		}

		isBinary, binErr := isBinaryFile(path)
		if binErr != nil {
			skip(path, ReasonUnreadable)
			return nil
		}
		if isBinary {
			skip(path, ReasonBinary)
			return nil
		}

		add(path)
		return nil
	})
	if err != nil {
		logger.Warn("directory walk failed", zap.String("dir", dir), zap.Error(err))
	}
}

// matchesExclude reports whether the relative path or the entry name matches
// any of the user's exclude patterns. Invalid patterns are ignored.
func matchesExclude(relPath, name string, patterns []string, logger *zap.Logger) bool {
	for _, pattern := range patterns {
		for _, candidate := range []string{relPath, name} {
			ok, err := doublestar.Match(pattern, candidate)
			if err != nil {
				logger.Warn("invalid exclude pattern", zap.String("pattern", pattern), zap.Error(err))
				break
			}
			if ok {
				return true
			}
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
