package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-admin/models"
)

func TestMenuModel_StartsOnConfiguredResource(t *testing.T) {
	m := NewMenuModel(models.Resources(), models.ResourceProducts)

	require.Len(t, m.items, 4)
	assert.Equal(t, models.ResourceProducts, m.items[m.idx].resource)
	assert.Equal(t, pageList, m.items[m.idx].page)
}

func TestMenuModel_EnterOpensSelectedPage(t *testing.T) {
	m := NewMenuModel(models.Resources(), models.ResourceBlogs)

	m.Update(keyPress("down"))
	_, cmd := m.Update(keyPress("enter"))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{
		Page:    pageCategories,
		Payload: resourceSelectedMsg{resource: models.ResourceBlogs},
	}, cmd())
}

func TestMenuModel_CursorBounds(t *testing.T) {
	m := NewMenuModel(models.Resources(), models.ResourceBlogs)

	m.Update(keyPress("up"))
	assert.Equal(t, 0, m.idx)

	for range 10 {
		m.Update(keyPress("down"))
	}
	assert.Equal(t, len(m.items)-1, m.idx)
}

func TestMenuModel_View(t *testing.T) {
	view := NewMenuModel(models.Resources(), models.ResourceBlogs).View()

	assert.Contains(t, view, "MAIN MENU")
	assert.Contains(t, view, "Blogs")
	assert.Contains(t, view, "Products: categories")
}
