package tui

import (
	"github.com/MKhiriev/go-content-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in [RootModel].
const (
	pageMenu       = "menu"
	pageList       = "list"
	pageCategories = "categories"
)

// NavigateTo switches the active page. When Payload is set it is delivered
// to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// resourceSelectedMsg opens a page on the synchronizer of resource.
type resourceSelectedMsg struct {
	resource models.Resource
}

// stateChangedMsg is sent after every dispatch to the mirror of resource.
// Pages read the mirror on render, so the message only triggers a redraw.
type stateChangedMsg struct {
	resource models.Resource
}

// opDoneMsg reports the end of a synchronizer call started by a page.
type opDoneMsg struct {
	op  string
	err error
}

type searchTickMsg struct {
	seq  int
	term string
}

type recentLoadedMsg struct {
	terms []string
}

type toastMsg struct {
	note models.Notification
}

type toastExpiredMsg struct {
	id int
}

type copiedMsg struct {
	url string
	err error
}

type formSubmittedMsg struct {
	original *models.Item
	draft    models.ItemDraft
}

type formCancelledMsg struct{}
