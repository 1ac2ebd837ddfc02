package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"scidrill/internal/ui/theme"
)

// MultiSelect is a checkbox list used for topic selection.
type MultiSelectItem struct {
	Label   string
	Detail  string
	Checked bool
}

type MultiSelect struct {
	items   []MultiSelectItem
	cursor  int
	focused bool
}

func NewMultiSelect(items []MultiSelectItem) MultiSelect {
	return MultiSelect{items: items}
}

func (m *MultiSelect) Focus()         { m.focused = true }
func (m *MultiSelect) Blur()          { m.focused = false }
func (m MultiSelect) Focused() bool   { return m.focused }
func (m MultiSelect) Items() []MultiSelectItem {
	out := make([]MultiSelectItem, len(m.items))
	copy(out, m.items)
	return out
}

// Selected returns the checked labels in list order.
func (m MultiSelect) Selected() []string {
	out := []string{}
	for _, item := range m.items {
		if item.Checked {
			out = append(out, item.Label)
		}
	}
	return out
}

func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	if !m.focused || len(m.items) == 0 {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		m.items[m.cursor].Checked = !m.items[m.cursor].Checked
	}
	return m, nil
}

func (m MultiSelect) View() string {
	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		check := "[ ]"
		if item.Checked {
			check = "[x]"
		}
		line := fmt.Sprintf("%s %s", check, item.Label)
		if item.Detail != "" {
			line += "  " + theme.Muted.Render(item.Detail)
		}
		if i == m.cursor && m.focused {
			line = lipgloss.NewStyle().Foreground(theme.Lavender).Render("> ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
