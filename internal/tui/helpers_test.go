package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/internal/mock"
	"github.com/MKhiriev/go-content-admin/internal/service"
	"github.com/MKhiriev/go-content-admin/models"
)

type listFixture struct {
	model   *listModel
	sync    *mock.MockListSynchronizer
	history *mock.MockSearchHistory
	store   *mirror.Store
}

// newTestList: хелпер: список блогов поверх мока синхронизатора и настоящего зеркала
func newTestList(t *testing.T) *listFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := mock.NewMockListSynchronizer(ctrl)
	history := mock.NewMockSearchHistory(ctrl)
	store := mirror.NewStore(2)
	s.EXPECT().Store().Return(store).AnyTimes()
	s.EXPECT().Resource().Return(models.ResourceBlogs).AnyTimes()

	synchronizers := map[models.Resource]service.ListSynchronizer{models.ResourceBlogs: s}
	m := newListModel(context.Background(), synchronizers, history, 10*time.Millisecond)
	m.sync = s

	return &listFixture{model: m, sync: s, history: history, store: store}
}

func (f *listFixture) seedActive(items ...models.Item) {
	gen := f.store.Begin(mirror.CollectionActive)
	f.store.Dispatch(mirror.SetItems{Collection: mirror.CollectionActive, Items: items, Generation: gen})
}

func (f *listFixture) seedTrash(items ...models.Item) {
	f.store.Dispatch(mirror.SetViewMode{Mode: mirror.ViewTrash})
	gen := f.store.Begin(mirror.CollectionDeleted)
	f.store.Dispatch(mirror.SetItems{Collection: mirror.CollectionDeleted, Items: items, Generation: gen})
}

func (f *listFixture) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = f.model.Update(keyPress(k))
	}
	return cmd
}

func entry(id int64, title string) models.Item {
	return models.Item{ID: id, Title: title, Description: title + " description"}
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// runCmd executes cmd and every command of a batch it returns. It must only
// be used on commands that do not wait on timers.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
