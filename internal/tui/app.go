package tui

import (
	"slices"

	"github.com/MKhiriev/go-content-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) renders toasts raised by the service layer
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	buildInfo  models.AppBuildInfo

	notifications <-chan models.Notification
	toasts        []toast
	nextToastID   int

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, notifications <-chan models.Notification) RootModel {
	return RootModel{
		pages:         pages,
		current:       pages[startPage],
		buildInfo:     buildInfo,
		notifications: notifications,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForNotification(r.notifications)}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case toastMsg:
		r.nextToastID++
		r.toasts = append(r.toasts, toast{id: r.nextToastID, note: msg.note})
		return r, tea.Batch(waitForNotification(r.notifications), expireToast(r.nextToastID))

	case toastExpiredMsg:
		r.toasts = slices.DeleteFunc(slices.Clone(r.toasts), func(t toast) bool { return t.id == msg.id })
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	view := renderPage("CONTENT ADMIN", "", "")
	if r.current != nil {
		view = r.current.View()
	}
	if toasts := renderToasts(r.toasts); toasts != "" {
		view += "\n\n" + toasts
	}
	return appStyle.Render(view)
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
