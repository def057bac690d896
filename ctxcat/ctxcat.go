// Package ctxcat wires the scan, compose, and clipboard steps together and
// exposes them for the command-line entry point and for library use.
package ctxcat

import (
	"fmt"
	"os"
	"runtime/debug"

	"go.uber.org/zap"

	"ctxcat/cli"
	"ctxcat/internal/clipboard"
	"ctxcat/internal/document"
	"ctxcat/internal/scan"
	"ctxcat/model"
)

// App orchestrates one generation run.
type App struct {
	cfg    *cli.Config
	logger *zap.Logger
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance. A nil logger disables debug logging.
func New(cfg *cli.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{cfg: cfg, logger: logger}
}

// ScanOptions derives the folder-expansion filters from the configuration.
func (a *App) ScanOptions() scan.Options {
	return scan.Options{
		Excludes:      a.cfg.Excludes,
		MaxFileSizeKB: a.cfg.MaxFileSizeKB,
		IncludeHidden: a.cfg.Hidden,
	}
}

// Generate expands the configured paths and composes the Markdown document.
// It never fails on individual files; everything that could not be included
// is recorded on the summary.
func (a *App) Generate() (document.Document, model.Summary) {
	collected := scan.Collect(a.cfg.Paths, a.ScanOptions(), a.logger)

	root := a.cfg.Root
	if root == "" {
		root = scan.CommonRoot(collected.Files)
	}

	doc := document.Compose(collected.Files, root)

	summary := model.Summary{
		Root:    root,
		Skipped: append(collected.Skipped, doc.Errors...),
		Stats:   document.Analyze(doc.Content),
	}
	summary.Stats.Files = len(collected.Files)
	for _, f := range collected.Files {
		summary.Included = append(summary.Included, document.DisplayPath(f, root))
	}
	return doc, summary
}

// Execute runs a full headless pass: generate the document, then deliver it
// to the clipboard, stdout, or an output file per the configuration.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	doc, summary := a.Generate()
	if len(summary.Included) == 0 {
		summary.Message = "No files selected. Nothing to copy."
		return summary, nil
	}

	if a.cfg.Output != "" {
		if writeErr := os.WriteFile(a.cfg.Output, []byte(doc.Content), 0644); writeErr != nil {
			return summary, fmt.Errorf("failed to write output file: %w", writeErr)
		}
		summary.Message = fmt.Sprintf("Document written to %s.", a.cfg.Output)
	}
	if a.cfg.Print {
		fmt.Print(doc.Content)
	}

	if !a.cfg.NoCopy {
		if copyErr := clipboard.Copy(doc.Content); copyErr != nil {
			// A clipboard failure does not invalidate the document; the
			// user may still have it via --print or --output.
			warning := fmt.Sprintf("Clipboard copy failed: %v.", copyErr)
			if summary.Message == "" {
				summary.Message = warning
			} else {
				summary.Message += " " + warning
			}
		} else if summary.Message == "" {
			summary.Message = "Document copied to clipboard."
		}
	}

	return summary, nil
}
