package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("#6366F1")

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accentColor).
			Bold(true).
			Padding(0, 1)

	frameStyle = lipgloss.NewStyle().Margin(1, 2)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// listItem wraps one choice, keeping its position in the caller's slice so
// filtering does not change the returned index.
type listItem struct {
	index int
	label string
}

func (i listItem) Title() string       { return i.label }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.label }

type selectModel struct {
	list   list.Model
	chosen int
}

func newSelectModel(prompt string, items []string) selectModel {
	listItems := make([]list.Item, len(items))
	for i, label := range items {
		listItems[i] = listItem{index: i, label: label}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(accentColor).
		BorderLeftForeground(accentColor)

	l := list.New(listItems, delegate, 0, 0)
	l.Title = prompt
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(len(items) > 1)

	return selectModel{list: l, chosen: -1}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := frameStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case tea.KeyMsg:
		if msg.String() == "enter" && m.list.FilterState() != list.Filtering {
			if it, ok := m.list.SelectedItem().(listItem); ok {
				m.chosen = it.index
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	return frameStyle.Render(m.list.View())
}

type inputModel struct {
	prompt string
	input  textinput.Model
	done   bool
}

func newInputModel(prompt string) inputModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. one piece"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Focus()
	return inputModel{prompt: prompt, input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter to search • esc to quit"))
	return frameStyle.Render(b.String())
}

func runSelect(ctx context.Context, in io.Reader, out io.Writer, prompt string, items []string) (int, error) {
	prog := tea.NewProgram(newSelectModel(prompt, items),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := prog.Run()
	if err != nil {
		return -1, fmt.Errorf("running selector: %w", err)
	}

	m, ok := final.(selectModel)
	if !ok || m.chosen < 0 {
		return -1, ErrCancelled
	}
	return m.chosen, nil
}

func runInput(ctx context.Context, in io.Reader, out io.Writer, prompt string) (string, error) {
	prog := tea.NewProgram(newInputModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("running input: %w", err)
	}

	m, ok := final.(inputModel)
	if !ok || !m.done {
		return "", ErrCancelled
	}
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		return "", fmt.Errorf("no input provided")
	}
	return query, nil
}
