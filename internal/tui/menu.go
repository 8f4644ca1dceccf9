package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-content-admin/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuEntry struct {
	label    string
	page     string
	resource models.Resource
}

type MenuModel struct {
	items []menuEntry
	idx   int
}

// NewMenuModel lists the items and categories of every resource and puts
// the cursor on start.
func NewMenuModel(resources []models.Resource, start models.Resource) *MenuModel {
	m := &MenuModel{}
	for _, r := range resources {
		m.items = append(m.items,
			menuEntry{label: resourceLabel(r), page: pageList, resource: r},
			menuEntry{label: resourceLabel(r) + ": categories", page: pageCategories, resource: r},
		)
	}
	for i, item := range m.items {
		if item.resource == start {
			m.idx = i
			break
		}
	}
	return m
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		if len(m.items) == 0 {
			return m, nil
		}
		entry := m.items[m.idx]
		return m, func() tea.Msg {
			return NavigateTo{Page: entry.page, Payload: resourceSelectedMsg{resource: entry.resource}}
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // reserve space for selection marker and space ("<marker> <id>")

	actionColWidth := lipgloss.Width("Section")
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Section"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.label))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: navigate │ v: version │ q: quit")
}

func resourceLabel(r models.Resource) string {
	switch r {
	case models.ResourceBlogs:
		return "Blogs"
	case models.ResourceProducts:
		return "Products"
	default:
		return string(r)
	}
}
