package ui

import (
	"os"

	"github.com/fatih/color"

	"ctxcat/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(os.Stderr, "  "+format+"\n", a...)
}

// PrintRunSummary reports the outcome of a headless generation run.
func PrintRunSummary(summary model.Summary) {
	Header("\n--- Context Summary ---")

	if summary.Message != "" {
		Info("%s", summary.Message)
	}

	if len(summary.Included) == 0 {
		Warning("No files were included.")
	} else {
		Success("Included %d file(s) under root %s:", len(summary.Included), summary.Root)
		for _, f := range summary.Included {
			Path("- %s", f)
		}
		Info("Document: %d code block(s), %d byte(s), ~%d token(s)",
			summary.Stats.CodeBlocks, summary.Stats.Bytes, summary.Stats.Tokens)
	}

	if len(summary.Skipped) > 0 {
		Warning("Skipped %d path(s):", len(summary.Skipped))
		for _, s := range summary.Skipped {
			Path("- %s (%s)", s.Path, s.Reason)
		}
	}
}
