package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-content-admin/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldImage
	fieldCategory
	fieldFeatured
	fieldPublished
	fieldContent
	fieldCount
)

var errCategoryNotNumber = errors.New("category id must be a number")

// itemFormModel edits one entry. original is nil for a new entry.
type itemFormModel struct {
	original  *models.Item
	inputs    [fieldFeatured]textinput.Model
	featured  bool
	published bool
	content   textarea.Model
	focus     int
	err       string
}

func newItemForm(original *models.Item) itemFormModel {
	m := itemFormModel{original: original}

	placeholders := [fieldFeatured]string{
		fieldTitle:       "Title",
		fieldDescription: "Short description",
		fieldImage:       "Local file path or image URL",
		fieldCategory:    "Category ID",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 512
		in.Width = 48
		m.inputs[i] = in
	}

	m.content = textarea.New()
	m.content.Placeholder = "Body text"
	m.content.SetWidth(60)
	m.content.SetHeight(6)

	if original != nil {
		m.inputs[fieldTitle].SetValue(original.Title)
		m.inputs[fieldDescription].SetValue(original.Description)
		m.inputs[fieldImage].SetValue(original.Image)
		if original.CategoryID > 0 {
			m.inputs[fieldCategory].SetValue(strconv.FormatInt(original.CategoryID, 10))
		}
		m.featured = original.Featured
		m.published = original.Published
		m.content.SetValue(blocksText(original.Content))
	}

	m.setFocus(fieldTitle)
	return m
}

func (m itemFormModel) Update(msg tea.Msg) (itemFormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return formCancelledMsg{} }
	case key.Matches(keyMsg, keys.submit):
		draft, err := m.draft()
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		original := m.original
		return m, func() tea.Msg { return formSubmittedMsg{original: original, draft: draft} }
	case key.Matches(keyMsg, keys.tab):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case key.Matches(keyMsg, keys.enter) && m.focus < fieldContent:
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(keyMsg, keys.toggle) && m.focus == fieldFeatured:
		m.featured = !m.featured
		return m, nil
	case key.Matches(keyMsg, keys.toggle) && m.focus == fieldPublished:
		m.published = !m.published
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m itemFormModel) updateFocused(msg tea.Msg) (itemFormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus < fieldFeatured:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case m.focus == fieldContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *itemFormModel) setFocus(field int) {
	m.focus = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if field == fieldContent {
		m.content.Focus()
	} else {
		m.content.Blur()
	}
}

// draft builds the submitted entry. Fields the form does not show, such as
// the introduction blocks, are carried over from the original.
func (m itemFormModel) draft() (models.ItemDraft, error) {
	var payload models.ItemPayload
	if m.original != nil {
		payload = m.original.Payload()
	}

	payload.Title = strings.TrimSpace(m.inputs[fieldTitle].Value())
	payload.Description = strings.TrimSpace(m.inputs[fieldDescription].Value())
	payload.Featured = m.featured
	payload.Published = m.published

	payload.CategoryID = 0
	if raw := strings.TrimSpace(m.inputs[fieldCategory].Value()); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			return models.ItemDraft{}, errCategoryNotNumber
		}
		payload.CategoryID = id
	}

	var imagePath string
	image := strings.TrimSpace(m.inputs[fieldImage].Value())
	switch {
	case m.original != nil && image == m.original.Image:
	case image == "":
		payload.Image = ""
		payload.ImagePublicID = ""
	case isRemoteURL(image):
		payload.Image = image
		payload.ImagePublicID = ""
	default:
		imagePath = image
	}

	text := m.content.Value()
	switch {
	case m.original != nil && text == blocksText(m.original.Content):
	case strings.TrimSpace(text) == "":
		payload.Content = nil
	default:
		payload.Content = []models.Block{{Text: text}}
	}

	return models.ItemDraft{Payload: payload, ImagePath: imagePath}, nil
}

func (m itemFormModel) View() string {
	var b strings.Builder

	labels := [fieldFeatured]string{
		fieldTitle:       "Title",
		fieldDescription: "Description",
		fieldImage:       "Image",
		fieldCategory:    "Category",
	}
	for i, in := range m.inputs {
		b.WriteString(m.label(i, labels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(m.label(fieldFeatured, "Featured"))
	b.WriteString(checkbox(m.featured))
	b.WriteString("\n")
	b.WriteString(m.label(fieldPublished, "Published"))
	b.WriteString(checkbox(m.published))
	b.WriteString("\n\n")
	b.WriteString(m.label(fieldContent, "Content"))
	b.WriteString("\n")
	b.WriteString(m.content.View())

	if m.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.err))
	}

	title := "NEW ENTRY"
	if m.original != nil {
		title = fmt.Sprintf("EDIT ENTRY #%d", m.original.ID)
	}
	return renderPage(title, b.String(), "tab/shift+tab: field │ space: toggle │ ctrl+s: save │ esc: cancel")
}

func (m itemFormModel) label(field int, name string) string {
	text := fmt.Sprintf("%-12s ", name+":")
	if m.focus == field {
		return selectedStyle.Render(text)
	}
	return text
}

func checkbox(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func isRemoteURL(v string) bool {
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}

// blocksText renders blocks as plain text, one paragraph per block.
func blocksText(blocks []models.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch {
		case b.Heading != "" && b.Text != "":
			parts = append(parts, b.Heading+"\n"+b.Text)
		case b.Heading != "":
			parts = append(parts, b.Heading)
		default:
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
