package gen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Resolution is the decision taken for a file that already exists.
type Resolution int

const (
	ResolutionSkip Resolution = iota
	ResolutionOverwrite
	ResolutionCancel
)

var (
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

// Resolver decides what to do with an existing destination file based on
// the CLI's conflict flags.
type Resolver struct {
	force bool
	skip  bool
	diff  bool
}

// NewResolver builds a resolver from the mutually exclusive conflict flags.
func NewResolver(force, skip, diff bool) (*Resolver, error) {
	count := 0
	for _, f := range []bool{force, skip, diff} {
		if f {
			count++
		}
	}
	if count > 1 {
		return nil, fmt.Errorf("--force, --skip and --diff are mutually exclusive")
	}
	return &Resolver{force: force, skip: skip, diff: diff}, nil
}

// Resolve returns the decision for path, which already holds existing
// content. With --diff the user reviews the change and picks from a menu;
// --force and --skip decide without prompting. With no flag the conflict
// stands: the caller surfaces its error.
func (r *Resolver) Resolve(path string, existing, generated []byte) (Resolution, error) {
	switch {
	case r.force:
		return ResolutionOverwrite, nil
	case r.skip:
		return ResolutionSkip, nil
	case r.diff:
		if err := showDiff(path, existing, generated); err != nil {
			return ResolutionCancel, err
		}
		return promptResolution(path)
	default:
		return ResolutionCancel, nil
	}
}

// Interactive reports whether the resolver prompts before deciding.
func (r *Resolver) Interactive() bool {
	return r.diff
}

// showDiff prints a short diff inline or pages a long one in a viewport.
func showDiff(path string, existing, generated []byte) error {
	diff := Diff(path, existing, generated)
	if diff == "" {
		fmt.Println(mutedStyle.Render("Generated content is identical to " + path))
		return nil
	}

	if strings.Count(diff, "\n") <= 20 {
		fmt.Println(diff)
		return nil
	}

	p := tea.NewProgram(pagerModel{path: path, diff: diff}, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("showing diff: %w", err)
	}
	return nil
}

// promptResolution shows the overwrite/skip/cancel menu.
func promptResolution(path string) (Resolution, error) {
	p := tea.NewProgram(menuModel{path: path})
	final, err := p.Run()
	if err != nil {
		return ResolutionCancel, fmt.Errorf("showing conflict menu: %w", err)
	}

	m := final.(menuModel)
	if m.selected == nil {
		return ResolutionCancel, nil
	}
	return *m.selected, nil
}

type menuModel struct {
	path     string
	cursor   int
	selected *Resolution
}

var menuChoices = []struct {
	label      string
	resolution Resolution
}{
	{"Overwrite (replace with generated code)", ResolutionOverwrite},
	{"Skip (keep existing file)", ResolutionSkip},
	{"Cancel generation", ResolutionCancel},
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(menuChoices)-1 {
				m.cursor++
			}
		case "enter":
			resolution := menuChoices[m.cursor].resolution
			m.selected = &resolution
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder
	b.WriteString(warningStyle.Render("File exists: ") + pathStyle.Render(m.path) + "\n\n")
	b.WriteString(mutedStyle.Render("  [↑/↓] Navigate    [Enter] Select    [q] Cancel") + "\n\n")

	for i, choice := range menuChoices {
		if i == m.cursor {
			b.WriteString("  " + selectedStyle.Render("> "+choice.label) + "\n")
		} else {
			b.WriteString("    " + choice.label + "\n")
		}
	}
	return b.String()
}

type pagerModel struct {
	path     string
	diff     string
	viewport viewport.Model
	ready    bool
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.viewport.ScrollUp(1)
		case "down", "j":
			m.viewport.ScrollDown(1)
		case "pgup", "b":
			m.viewport.PageUp()
		case "pgdown", "f", "space":
			m.viewport.PageDown()
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.viewport.SetContent(m.diff)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "Loading diff..."
	}
	header := mutedStyle.Render("Diff: " + m.path)
	footer := mutedStyle.Render("[↑/↓] Scroll    [q] Continue")
	return header + "\n" + m.viewport.View() + "\n" + footer
}
