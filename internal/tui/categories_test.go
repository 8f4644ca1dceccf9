package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/internal/mock"
	"github.com/MKhiriev/go-content-admin/internal/service"
	"github.com/MKhiriev/go-content-admin/models"
)

func newTestCategories(t *testing.T) (*categoriesModel, *mock.MockListSynchronizer, *mirror.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := mock.NewMockListSynchronizer(ctrl)
	store := mirror.NewStore(10)
	s.EXPECT().Store().Return(store).AnyTimes()
	s.EXPECT().Resource().Return(models.ResourceProducts).AnyTimes()

	m := newCategoriesModel(context.Background(), map[models.Resource]service.ListSynchronizer{models.ResourceProducts: s})
	s.EXPECT().LoadCategories(gomock.Any()).Return(nil)
	_, cmd := m.Update(resourceSelectedMsg{resource: models.ResourceProducts})
	runCmd(t, cmd)

	gen := store.Begin(mirror.CollectionCategories)
	store.Dispatch(mirror.SetCategories{
		Categories: []models.Category{{ID: 1, Name: "Shoes"}, {ID: 2, Name: "Hats", Slug: "hats"}},
		Generation: gen,
	})
	return m, s, store
}

func TestCategories_CreateCategory(t *testing.T) {
	m, s, _ := newTestCategories(t)

	m.Update(keyPress("n"))
	require.True(t, m.creating)
	m.Update(keyPress("B"))
	m.Update(keyPress("a"))
	m.Update(keyPress("g"))

	s.EXPECT().CreateCategory(gomock.Any(), models.CategoryPayload{Name: "Bag"}).Return(nil)
	_, cmd := m.Update(keyPress("enter"))
	msgs := runCmd(t, cmd)

	done, ok := findMsg[opDoneMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, opCreateCategory, done.op)
	assert.False(t, m.creating)
}

func TestCategories_CreateCancelled(t *testing.T) {
	m, _, _ := newTestCategories(t)

	m.Update(keyPress("n"))
	m.Update(keyPress("esc"))

	assert.False(t, m.creating)
}

func TestCategories_DeleteWithConfirmation(t *testing.T) {
	m, s, _ := newTestCategories(t)

	m.Update(keyPress("down"))
	m.Update(keyPress("d"))
	require.True(t, m.confirm)
	assert.Contains(t, m.View(), "Delete category #2?")

	s.EXPECT().DeleteCategory(gomock.Any(), int64(2)).Return(nil)
	_, cmd := m.Update(keyPress("y"))
	runCmd(t, cmd)
	assert.False(t, m.confirm)
}

func TestCategories_ReloadAndDismiss(t *testing.T) {
	m, s, store := newTestCategories(t)
	store.Dispatch(mirror.SetError{Record: mirror.ErrorRecord{Type: mirror.ErrorCategories, Message: "boom"}})

	s.EXPECT().LoadCategories(gomock.Any()).Return(nil)
	_, cmd := m.Update(keyPress("ctrl+r"))
	runCmd(t, cmd)

	m.Update(keyPress("x"))
	assert.Nil(t, store.State().Error)
}

func TestCategories_StateChangeClampsCursor(t *testing.T) {
	m, _, store := newTestCategories(t)
	m.Update(keyPress("down"))

	gen := store.Begin(mirror.CollectionCategories)
	store.Dispatch(mirror.SetCategories{Categories: []models.Category{{ID: 1, Name: "Shoes"}}, Generation: gen})
	m.Update(stateChangedMsg{resource: models.ResourceProducts})

	assert.Equal(t, 0, m.cursor)
}

func TestCategories_EscReturnsToList(t *testing.T) {
	m, _, _ := newTestCategories(t)

	_, cmd := m.Update(keyPress("esc"))
	require.NotNil(t, cmd)

	assert.Equal(t, NavigateTo{Page: pageList, Payload: resourceSelectedMsg{resource: models.ResourceProducts}}, cmd())
}

func TestCategories_View(t *testing.T) {
	m, _, _ := newTestCategories(t)

	view := m.View()
	assert.Contains(t, view, "PRODUCTS │ categories")
	assert.Contains(t, view, "Shoes")
	assert.Contains(t, view, "hats")
}
