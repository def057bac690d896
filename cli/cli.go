package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	Paths         []string
	Print         bool
	Output        string
	NoCopy        bool
	Excludes      []string
	MaxFileSizeKB int
	Hidden        bool
	Root          string
	NoAnimation   bool
	Verbose       bool
	Version       bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.BoolVarP(&cfg.Print, "print", "p", false, "Print the composed document to stdout instead of opening the picker.")
	pflag.StringVarP(&cfg.Output, "output", "o", "", "Write the composed document to a file instead of opening the picker.")
	pflag.BoolVar(&cfg.NoCopy, "no-copy", false, "Do not place the document on the system clipboard.")
	pflag.StringSliceVarP(&cfg.Excludes, "exclude", "x", []string{}, "Glob patterns to skip while expanding folders (e.g. '**/*_test.go', 'vendor/**').")
	pflag.IntVar(&cfg.MaxFileSizeKB, "max-size", 1024, "Skip files larger than this many KB while expanding folders.")
	pflag.BoolVar(&cfg.Hidden, "hidden", false, "Include hidden files and directories while expanding folders.")
	pflag.StringVar(&cfg.Root, "root", "", "Override the detected root directory for relative paths.")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable loading spinner while scanning.")
	pflag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log skipped files and scan details to stderr.")
	pflag.BoolVar(&cfg.Version, "version", false, "Print version information and exit.")

	pflag.Usage = func() {
		fmt.Println("Usage: ctxcat [flags] [path ...]")
		fmt.Println("\nConcatenate files into one Markdown document and copy it to the clipboard.")
		fmt.Println("Without -p or -o an interactive picker opens, seeded with the given paths.")
		fmt.Println("\nExample: ctxcat -p src/ README.md | less")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()
	cfg.Paths = pflag.Args()

	// Validate mutually exclusive flags
	if cfg.Print && cfg.Output != "" {
		return nil, fmt.Errorf("error: --print and --output are mutually exclusive")
	}

	return cfg, nil
}

// Headless reports whether the run should skip the interactive picker.
func (c *Config) Headless() bool {
	return c.Print || c.Output != ""
}
