package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cryptsteps/internal/registry"
)

var (
	pickerTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	pickerItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	pickerFooterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// PickerModel is the Bubble Tea model for choosing a game mode.
type PickerModel struct {
	items    []registry.GameInfo
	cursor   int
	width    int
	keys     KeyMap
	quitting bool
	selected *registry.GameInfo
}

// NewPickerModel lists every registered mode.
func NewPickerModel(width int) PickerModel {
	return PickerModel{
		items: registry.List(),
		width: width,
		keys:  DefaultKeyMap(),
	}
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Confirm):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(pickerTitleStyle.Render("C R Y P T   S T E P S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + pickerItemStyle.Render(item.Title)
		if i == m.cursor {
			line = "> " + pickerSelectedStyle.Render(item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(pickerFooterStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen mode, or nil if none was chosen.
func (m PickerModel) Selected() *registry.GameInfo {
	return m.selected
}

// centerText centers text within width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPicker shows the picker and returns the chosen mode ID, or "" when the
// user quit.
func RunPicker(width int) (string, error) {
	p := tea.NewProgram(NewPickerModel(width), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(PickerModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().ID, nil
}
