package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-admin/models"
)

// recordingPage remembers the last message it received.
type recordingPage struct {
	name string
	last tea.Msg
}

func (p *recordingPage) Init() tea.Cmd { return nil }

func (p *recordingPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.last = msg
	return p, nil
}

func (p *recordingPage) View() string { return "page " + p.name }

func newTestRoot(notifications <-chan models.Notification) (RootModel, *recordingPage) {
	other := &recordingPage{name: "other"}
	pages := map[string]tea.Model{
		pageMenu: NewMenuModel(models.Resources(), models.ResourceBlogs),
		pageList: other,
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"), notifications), other
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _ := newTestRoot(nil)

	updated, cmd := root.Update(keyPress("ctrl+c"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root, _ := newTestRoot(nil)

	updated, _ := root.Update(keyPress("v"))
	root = updated.(RootModel)
	require.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "v1.2.3")
	assert.Contains(t, root.View(), "abc123")

	updated, _ = root.Update(keyPress("down"))
	root = updated.(RootModel)
	assert.Equal(t, 0, root.current.(*MenuModel).idx, "keys are swallowed while the window is open")

	updated, _ = root.Update(keyPress("esc"))
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	root, other := newTestRoot(nil)
	updated, _ := root.Update(NavigateTo{Page: pageList})
	root = updated.(RootModel)

	updated, _ = root.Update(keyPress("v"))
	root = updated.(RootModel)

	assert.False(t, root.showBuildInfo)
	assert.Equal(t, keyPress("v"), other.last)
}

func TestRootModel_NavigateTo(t *testing.T) {
	root, other := newTestRoot(nil)

	updated, cmd := root.Update(NavigateTo{Page: "missing"})
	assert.Nil(t, cmd)
	assert.IsType(t, &MenuModel{}, updated.(RootModel).current)

	payload := resourceSelectedMsg{resource: models.ResourceProducts}
	updated, cmd = root.Update(NavigateTo{Page: pageList, Payload: payload})
	root = updated.(RootModel)
	assert.Same(t, other, root.current)
	require.NotNil(t, cmd)
	assert.Equal(t, payload, cmd())
	assert.Contains(t, root.View(), "page other")
}

func TestRootModel_Toasts(t *testing.T) {
	ch := make(chan models.Notification, 1)
	root, _ := newTestRoot(ch)

	ch <- models.Notification{Level: models.NotificationSuccess, Title: "Created", Message: "entry saved"}
	msg := waitForNotification(ch)()
	require.IsType(t, toastMsg{}, msg)

	updated, cmd := root.Update(msg)
	root = updated.(RootModel)
	assert.NotNil(t, cmd)
	require.Len(t, root.toasts, 1)
	assert.Contains(t, root.View(), "Created")
	assert.Contains(t, root.View(), "entry saved")

	updated, _ = root.Update(toastExpiredMsg{id: root.toasts[0].id})
	root = updated.(RootModel)
	assert.Empty(t, root.toasts)
	assert.NotContains(t, root.View(), "entry saved")
}

func TestWaitForNotification(t *testing.T) {
	assert.Nil(t, waitForNotification(nil))

	ch := make(chan models.Notification)
	close(ch)
	assert.Nil(t, waitForNotification(ch)())
}

func TestRenderToasts_ShowsNewest(t *testing.T) {
	var toasts []toast
	for i, title := range []string{"one", "two", "three", "four"} {
		toasts = append(toasts, toast{id: i, note: models.Notification{Title: title}})
	}

	out := renderToasts(toasts)

	assert.NotContains(t, out, "one")
	assert.Contains(t, out, "four")
	assert.Empty(t, renderToasts(nil))
}
