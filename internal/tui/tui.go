package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"ctxcat/cli"
	"ctxcat/internal/clipboard"
	"ctxcat/internal/document"
	"ctxcat/internal/scan"
	"ctxcat/internal/selection"
)

// --- Styles ---
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	rootStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// --- Messages ---
type scanResultMsg struct {
	result scan.Result
}

// --- Key bindings ---
type keyMap struct {
	Add      key.Binding
	Root     key.Binding
	Remove   key.Binding
	Clear    key.Binding
	Generate key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:      key.NewBinding(key.WithKeys("a")),
		Root:     key.NewBinding(key.WithKeys("r")),
		Remove:   key.NewBinding(key.WithKeys("d", "x", "delete", "backspace")),
		Clear:    key.NewBinding(key.WithKeys("c")),
		Generate: key.NewBinding(key.WithKeys("enter", "g")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// item is one selected file in the list.
type item struct {
	path string
	root string
}

func (i item) Title() string       { return document.DisplayPath(i.path, i.root) }
func (i item) Description() string { return i.path }
func (i item) FilterValue() string { return i.path }

type mode int

const (
	modeBrowse mode = iota
	modeAddPath
	modeSetRoot
)

// Model is the interactive picker: a selection list, a root line, a status
// line, and a text prompt for adding paths. Dropping a file onto most
// terminals types its path, which lands in the same prompt.
type Model struct {
	cfg    *cli.Config
	logger *zap.Logger
	sel    *selection.Set

	list    list.Model
	input   textinput.Model
	spinner spinner.Model
	keys    keyMap

	mode      mode
	scanning  bool
	status    string
	statusErr bool
	width     int
	height    int
}

// New builds the picker, seeded with the paths given on the command line.
func New(cfg *cli.Config, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "ctxcat — selected files"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	input := textinput.New()
	input.Prompt = promptStyle.Render("> ")

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	sel := selection.New()
	if cfg.Root != "" {
		sel.SetRoot(cfg.Root)
	}

	return Model{
		cfg:      cfg,
		logger:   logger,
		sel:      sel,
		list:     l,
		input:    input,
		spinner:  s,
		keys:     defaultKeyMap(),
		scanning: len(cfg.Paths) > 0,
	}
}

func (m Model) Init() tea.Cmd {
	if len(m.cfg.Paths) == 0 {
		return nil
	}
	cmds := []tea.Cmd{m.scanCmd(m.cfg.Paths)}
	if !m.cfg.NoAnimation {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// scanCmd expands paths off the UI loop and reports back with a message.
func (m Model) scanCmd(paths []string) tea.Cmd {
	opts := scan.Options{
		Excludes:      m.cfg.Excludes,
		MaxFileSizeKB: m.cfg.MaxFileSizeKB,
		IncludeHidden: m.cfg.Hidden,
	}
	logger := m.logger
	return func() tea.Msg {
		return scanResultMsg{result: scan.Collect(paths, opts, logger)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(4, msg.Height-6))
		return m, nil

	case scanResultMsg:
		m.scanning = false
		added, duplicates := m.sel.Add(msg.result.Files)
		m.setStatus(addStatus(added, duplicates, len(msg.result.Skipped)), false)
		m.refreshItems()
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updatePrompt(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateBrowse handles keys in the main list view.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Do not steal keys while the list's fuzzy filter is open.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAddPath
		m.input.Placeholder = "path to add (drag-and-drop types it here)"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Root):
		m.mode = modeSetRoot
		m.input.Placeholder = "root directory (empty = auto-detect)"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Remove):
		if it, ok := m.list.SelectedItem().(item); ok {
			m.sel.Remove(it.path)
			m.setStatus(fmt.Sprintf("Removed %s", it.Title()), false)
			m.refreshItems()
		}
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.sel.Clear()
		if m.cfg.Root != "" {
			m.sel.SetRoot(m.cfg.Root)
		}
		m.setStatus("Selection cleared", false)
		m.refreshItems()
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		m.generate()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updatePrompt handles keys while the add-path or set-root prompt is open.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		value := trimDroppedPath(m.input.Value())
		promptMode := m.mode
		m.mode = modeBrowse
		m.input.Blur()

		if promptMode == modeSetRoot {
			m.applyRoot(value)
			return m, nil
		}
		if value == "" {
			return m, nil
		}
		m.scanning = true
		m.setStatus("Scanning…", false)
		cmds := []tea.Cmd{m.scanCmd([]string{value})}
		if !m.cfg.NoAnimation {
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// applyRoot validates and applies a root override typed by the user.
func (m *Model) applyRoot(value string) {
	if value == "" {
		m.sel.SetRoot("")
		m.setStatus("Root auto-detection restored", false)
		m.refreshItems()
		return
	}
	abs, err := filepath.Abs(value)
	if err != nil {
		m.setStatus(fmt.Sprintf("Invalid root: %v", err), true)
		return
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		m.setStatus(fmt.Sprintf("Not a directory: %s", abs), true)
		return
	}
	m.sel.SetRoot(abs)
	m.setStatus(fmt.Sprintf("Root set to %s", abs), false)
	m.refreshItems()
}

// generate composes the document from the current selection and copies it to
// the clipboard, synchronously.
func (m *Model) generate() {
	files := m.sel.Files()
	if len(files) == 0 {
		m.setStatus("No files selected", true)
		return
	}

	root := m.sel.Root()
	doc := document.Compose(files, root)
	stats := document.Analyze(doc.Content)

	if err := clipboard.Copy(doc.Content); err != nil {
		m.setStatus(fmt.Sprintf("Clipboard: %v", err), true)
		return
	}

	status := fmt.Sprintf("Copied %d file(s), ~%d token(s) to clipboard", len(files), stats.Tokens)
	if n := len(doc.Errors); n > 0 {
		status += fmt.Sprintf(" (%d unreadable, noted inline)", n)
	}
	m.setStatus(status, false)
}

// refreshItems rebuilds the list from the selection with the current root,
// so displayed relative paths stay in sync after every mutation.
func (m *Model) refreshItems() {
	root := m.sel.Root()
	items := make([]list.Item, 0, m.sel.Len())
	for _, f := range m.sel.Files() {
		items = append(items, item{path: f, root: root})
	}
	m.list.SetItems(items)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) View() string {
	var b strings.Builder

	root := m.sel.Root()
	if root == "" {
		root = "not set"
	}
	fmt.Fprintln(&b, rootStyle.Render("Root: "+root))

	fmt.Fprintln(&b, m.list.View())

	if m.scanning && !m.cfg.NoAnimation {
		fmt.Fprintf(&b, "%s scanning…\n", m.spinner.View())
	}

	if m.mode != modeBrowse {
		fmt.Fprintln(&b, m.input.View())
	}

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		fmt.Fprintln(&b, style.Render(m.status))
	}

	fmt.Fprintln(&b, helpStyle.Render("a add  d remove  c clear  r root  enter copy  / filter  q quit"))
	return b.String()
}

// addStatus phrases the result of an add the way the user expects: how many
// files landed, how many were already selected, how many were skipped.
func addStatus(added, duplicates, skipped int) string {
	parts := []string{fmt.Sprintf("Added %d file(s)", added)}
	if duplicates > 0 {
		parts = append(parts, fmt.Sprintf("%d duplicate(s)", duplicates))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}
	return strings.Join(parts, ", ")
}

// trimDroppedPath cleans up the quoting and escapes terminals add when a
// file is dragged onto the window.
func trimDroppedPath(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = strings.ReplaceAll(s, `\ `, " ")
	return s
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
