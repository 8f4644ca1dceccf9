package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/internal/service"
	"github.com/MKhiriev/go-content-admin/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	opLoadCategories = "loadCategories"
	opCreateCategory = "createCategory"
	opDeleteCategory = "deleteCategory"
)

type categoriesModel struct {
	ctx           context.Context
	synchronizers map[models.Resource]service.ListSynchronizer

	sync   service.ListSynchronizer
	cursor int

	creating  bool
	name      textinput.Model
	confirm   bool
	confirmID int64
}

func newCategoriesModel(ctx context.Context, synchronizers map[models.Resource]service.ListSynchronizer) *categoriesModel {
	in := textinput.New()
	in.Placeholder = "Category name"
	in.CharLimit = 64
	in.Width = 32

	return &categoriesModel{
		ctx:           ctx,
		synchronizers: synchronizers,
		name:          in,
	}
}

func (m *categoriesModel) Init() tea.Cmd {
	return nil
}

func (m *categoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resourceSelectedMsg:
		s, ok := m.synchronizers[msg.resource]
		if !ok {
			return m, nil
		}
		m.sync = s
		m.cursor = 0
		m.creating = false
		m.confirm = false
		return m, m.cmdOp(opLoadCategories, s.LoadCategories)

	case stateChangedMsg:
		if m.sync != nil && msg.resource == m.sync.Resource() {
			n := len(m.sync.Store().State().Categories)
			if m.cursor >= n {
				m.cursor = max(n-1, 0)
			}
		}
		return m, nil
	}

	if m.sync == nil {
		return m, nil
	}
	if m.creating {
		return m.updateCreate(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.confirm {
		return m.updateConfirm(keyMsg)
	}

	s := m.sync
	categories := s.Store().State().Categories
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(categories)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.creating = true
		m.name.SetValue("")
		return m, m.name.Focus()
	case key.Matches(keyMsg, keys.delete):
		if m.cursor < len(categories) {
			m.confirm = true
			m.confirmID = categories[m.cursor].ID
		}
	case key.Matches(keyMsg, keys.retry):
		return m, m.cmdOp(opLoadCategories, s.LoadCategories)
	case key.Matches(keyMsg, keys.dismiss):
		s.Store().Dispatch(mirror.ClearError{})
	case key.Matches(keyMsg, keys.esc):
		resource := s.Resource()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageList, Payload: resourceSelectedMsg{resource: resource}}
		}
	case key.Matches(keyMsg, keys.quit):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	}
	return m, nil
}

func (m *categoriesModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.creating = false
			m.name.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.creating = false
			m.name.Blur()
			s, payload := m.sync, models.CategoryPayload{Name: m.name.Value()}
			return m, m.cmdOp(opCreateCategory, func(ctx context.Context) error {
				return s.CreateCategory(ctx, payload)
			})
		}
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *categoriesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s, id := m.sync, m.confirmID
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = false
		return m, m.cmdOp(opDeleteCategory, func(ctx context.Context) error {
			return s.DeleteCategory(ctx, id)
		})
	case key.Matches(msg, keys.no):
		m.confirm = false
	}
	return m, nil
}

func (m *categoriesModel) cmdOp(op string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m *categoriesModel) View() string {
	if m.sync == nil {
		return renderPage("CATEGORIES", "", "esc: back")
	}

	state := m.sync.Store().State()
	var b strings.Builder

	if banner := renderErrorBanner(state.Error); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("  %-6s │ %-32s │ %-20s\n", "ID", "Name", "Slug"))
	b.WriteString(strings.Repeat("─", 66))
	b.WriteString("\n")

	if len(state.Categories) == 0 {
		if state.LoadingCategories {
			b.WriteString("  loading...\n")
		} else {
			b.WriteString("  no categories\n")
		}
	}
	for i, c := range state.Categories {
		row := fmt.Sprintf("%-6d │ %-32s │ %-20s", c.ID, fitText(c.Name, 32), fitText(valueOrDash(c.Slug), 20))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	if m.creating {
		b.WriteString("\nNew category: ")
		b.WriteString(m.name.View())
	}
	if m.confirm {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Delete category #%d?\n\ny yes    n no", m.confirmID)))
	}

	hotKeys := "↑/↓: navigate │ n: new │ d: delete │ ctrl+r: reload │ esc: entries │ q: menu"
	if m.creating {
		hotKeys = "enter: create │ esc: cancel"
	}
	title := strings.ToUpper(resourceLabel(m.sync.Resource())) + " │ categories"
	return renderPage(title, b.String(), hotKeys)
}
