package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ctxcat/cli"
	"ctxcat/ctxcat"
	"ctxcat/internal/tui"
	"ctxcat/internal/ui"
	"ctxcat/internal/version"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Version {
		fmt.Println(version.Get().String())
		return
	}

	logger := zap.NewNop()
	if cfg.Verbose && cfg.Headless() {
		devLogger, logErr := zap.NewDevelopment()
		if logErr == nil {
			logger = devLogger
			defer logger.Sync()
		}
	}

	if cfg.Headless() {
		app := ctxcat.New(cfg, logger)
		summary, err := app.Execute()
		if err != nil {
			if e, ok := err.(*ctxcat.DetailedError); ok {
				fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
			}
			ui.Error("Error: %v", err)
			os.Exit(1)
		}
		ui.PrintRunSummary(summary)
		return
	}

	model := tui.New(cfg, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
