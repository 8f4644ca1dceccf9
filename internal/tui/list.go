package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/internal/service"
	"github.com/MKhiriev/go-content-admin/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type listMode int

const (
	listBrowse listMode = iota
	listSearch
	listConfirm
	listForm
)

// Operation names carried by opDoneMsg.
const (
	opRefresh     = "refresh"
	opSearch      = "search"
	opViewMode    = "view"
	opCreate      = "create"
	opUpdate      = "update"
	opDelete      = "delete"
	opRestore     = "restore"
	opHardDelete  = "hardDelete"
	opClearRecent = "clearRecent"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type itemLoadedMsg struct {
	item models.Item
	err  error
}

type listModel struct {
	ctx           context.Context
	synchronizers map[models.Resource]service.ListSynchronizer
	history       service.SearchHistory
	debounce      time.Duration

	sync   service.ListSynchronizer
	cursor int
	mode   listMode

	search    textinput.Model
	searchSeq int
	recent    []string
	recentIdx int

	confirm   confirmModel
	confirmID int64

	form    itemFormModel
	spinner spinner.Model
	status  string
}

func newListModel(ctx context.Context, synchronizers map[models.Resource]service.ListSynchronizer, history service.SearchHistory, debounce time.Duration) *listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Placeholder = "search"
	in.CharLimit = 128
	in.Width = 40

	return &listModel{
		ctx:           ctx,
		synchronizers: synchronizers,
		history:       history,
		debounce:      debounce,
		search:        in,
		spinner:       s,
	}
}

func (m *listModel) Init() tea.Cmd {
	return nil
}

func (m *listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resourceSelectedMsg:
		s, ok := m.synchronizers[msg.resource]
		if !ok {
			return m, nil
		}
		m.sync = s
		m.cursor = 0
		m.mode = listBrowse
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdOp(opRefresh, s.RefreshAll), m.cmdLoadRecent())

	case stateChangedMsg:
		if m.sync != nil && msg.resource == m.sync.Resource() {
			m.clampCursor()
		}
		return m, nil

	case opDoneMsg:
		switch {
		case msg.err == nil && msg.op == opSearch:
			return m, m.cmdLoadRecent()
		case msg.err != nil && msg.op == opClearRecent:
			m.status = "could not clear recent searches"
		case msg.err != nil && !isCancelled(msg.err):
			m.status = msg.op + " failed"
		}
		return m, nil

	case itemLoadedMsg:
		if msg.err != nil {
			return m, nil
		}
		item := msg.item
		m.form = newItemForm(&item)
		m.mode = listForm
		return m, textinput.Blink

	case searchTickMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		return m, m.cmdSearch(msg.term)

	case recentLoadedMsg:
		m.recent = msg.terms
		m.recentIdx = 0
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "image URL copied"
		}
		return m, nil

	case formSubmittedMsg:
		m.mode = listBrowse
		return m, m.cmdSave(msg)

	case formCancelledMsg:
		m.mode = listBrowse
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.sync == nil {
		return m, nil
	}

	switch m.mode {
	case listForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case listSearch:
		return m.updateSearch(msg)
	case listConfirm:
		return m.updateConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.updateBrowse(keyMsg)
}

func (m *listModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.sync
	store := s.Store()
	state := store.State()
	m.status = ""

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(mirror.Derive(state).Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.left):
		store.Dispatch(mirror.PrevPage{})
		m.cursor = 0
	case key.Matches(msg, keys.right):
		store.Dispatch(mirror.NextPage{})
		m.cursor = 0
	case key.Matches(msg, keys.tab):
		mode := mirror.ViewTrash
		if state.ViewMode == mirror.ViewTrash {
			mode = mirror.ViewActive
		}
		m.cursor = 0
		return m, m.cmdOp(opViewMode, func(ctx context.Context) error {
			return s.SetViewMode(ctx, mode)
		})
	case key.Matches(msg, keys.showAll):
		store.Dispatch(mirror.SetShowAll{ShowAll: !state.ShowAll})
		m.cursor = 0
	case key.Matches(msg, keys.search):
		m.mode = listSearch
		m.search.SetValue(state.SearchTerm)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, keys.newItem):
		if state.ViewMode == mirror.ViewTrash {
			return m, nil
		}
		m.form = newItemForm(nil)
		m.mode = listForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
		item, ok := m.current()
		if !ok || state.ViewMode == mirror.ViewTrash {
			return m, nil
		}
		return m, m.cmdGet(item.ID)
	case key.Matches(msg, keys.delete):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		m.confirm = confirmModel{message: item.Title, hard: state.ViewMode == mirror.ViewTrash}
		m.confirmID = item.ID
		m.mode = listConfirm
	case key.Matches(msg, keys.restore):
		item, ok := m.current()
		if !ok || state.ViewMode != mirror.ViewTrash {
			return m, nil
		}
		return m, m.cmdOp(opRestore, func(ctx context.Context) error {
			return s.Restore(ctx, item.ID)
		})
	case key.Matches(msg, keys.copy):
		item, ok := m.current()
		if !ok || item.Image == "" {
			return m, nil
		}
		return m, cmdCopy(item.Image)
	case key.Matches(msg, keys.retry):
		return m, tea.Batch(m.spinner.Tick, m.cmdOp(opRefresh, s.RefreshAll))
	case key.Matches(msg, keys.dismiss):
		store.Dispatch(mirror.ClearError{})
	case key.Matches(msg, keys.category):
		resource := s.Resource()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageCategories, Payload: resourceSelectedMsg{resource: resource}}
		}
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

// updateSearch edits the search term. Every change restarts the debounce
// timer; only the tick carrying the latest sequence number runs the search.
func (m *listModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.searchSeq++
			m.mode = listBrowse
			m.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.searchSeq++
			m.mode = listBrowse
			m.search.Blur()
			m.cursor = 0
			return m, m.cmdSearch(m.search.Value())
		case key.Matches(keyMsg, keys.tab):
			if len(m.recent) == 0 {
				return m, nil
			}
			m.search.SetValue(m.recent[m.recentIdx%len(m.recent)])
			m.search.CursorEnd()
			m.recentIdx++
			return m, m.scheduleSearch()
		case key.Matches(keyMsg, keys.clearAll):
			return m, m.cmdClearRecent()
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.scheduleSearch())
}

func (m *listModel) scheduleSearch() tea.Cmd {
	m.searchSeq++
	seq, term := m.searchSeq, m.search.Value()
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq, term: term}
	})
}

func (m *listModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	s, id := m.sync, m.confirmID
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.mode = listBrowse
		if m.confirm.hard {
			return m, m.cmdOp(opHardDelete, func(ctx context.Context) error {
				return s.HardDelete(ctx, id)
			})
		}
		return m, m.cmdOp(opDelete, func(ctx context.Context) error {
			return s.Delete(ctx, id)
		})
	case key.Matches(keyMsg, keys.no):
		m.mode = listBrowse
	}
	return m, nil
}

// current returns the item under the cursor on the visible page.
func (m *listModel) current() (models.Item, bool) {
	items := mirror.Derive(m.sync.Store().State()).Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return models.Item{}, false
	}
	return items[m.cursor], true
}

func (m *listModel) clampCursor() {
	n := len(mirror.Derive(m.sync.Store().State()).Items)
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *listModel) cmdOp(op string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m *listModel) cmdSearch(term string) tea.Cmd {
	s := m.sync
	return m.cmdOp(opSearch, func(ctx context.Context) error {
		return s.Search(ctx, term)
	})
}

func (m *listModel) cmdGet(id int64) tea.Cmd {
	ctx, s := m.ctx, m.sync
	return func() tea.Msg {
		item, err := s.Get(ctx, id)
		return itemLoadedMsg{item: item, err: err}
	}
}

func (m *listModel) cmdSave(msg formSubmittedMsg) tea.Cmd {
	s := m.sync
	if msg.original == nil {
		return m.cmdOp(opCreate, func(ctx context.Context) error {
			_, err := s.Create(ctx, msg.draft)
			return err
		})
	}
	original := *msg.original
	return m.cmdOp(opUpdate, func(ctx context.Context) error {
		_, err := s.Update(ctx, original, msg.draft)
		return err
	})
}

func (m *listModel) cmdLoadRecent() tea.Cmd {
	if m.history == nil {
		return nil
	}
	ctx, history := m.ctx, m.history
	return func() tea.Msg {
		terms, err := history.Recent(ctx)
		if err != nil {
			return nil
		}
		return recentLoadedMsg{terms: terms}
	}
}

func (m *listModel) cmdClearRecent() tea.Cmd {
	if m.history == nil {
		return nil
	}
	ctx, history := m.ctx, m.history
	return func() tea.Msg {
		if err := history.Clear(ctx); err != nil {
			return opDoneMsg{op: opClearRecent, err: err}
		}
		return recentLoadedMsg{}
	}
}

func cmdCopy(url string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(url); err != nil {
			return copiedMsg{url: url, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{url: url}
	}
}

func (m *listModel) View() string {
	if m.sync == nil {
		return renderPage("ENTRIES", "", "esc: back")
	}

	state := m.sync.Store().State()
	switch m.mode {
	case listForm:
		return m.form.View()
	case listConfirm:
		return m.confirm.View()
	}

	var b strings.Builder

	if banner := renderErrorBanner(state.Error); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderSearch(state))
	b.WriteString("\n\n")
	b.WriteString(m.renderTable(state))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	title := fmt.Sprintf("%s │ %s", strings.ToUpper(resourceLabel(m.sync.Resource())), state.ViewMode)
	if state.LoadingItems || state.Submitting {
		title += " " + m.spinner.View()
	}
	return renderPage(title, b.String(), m.hotKeys(state))
}

func (m *listModel) renderSearch(state mirror.State) string {
	if m.mode != listSearch {
		return "Search: " + valueOrDash(state.SearchTerm)
	}

	var b strings.Builder
	b.WriteString("Search: ")
	b.WriteString(m.search.View())
	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("recent: " + strings.Join(m.recent, " · ")))
	}
	return b.String()
}

func (m *listModel) renderTable(state mirror.State) string {
	page := mirror.Derive(state)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-6s │ %-32s │ %-16s │ %-9s │ %-8s\n", "ID", "Title", "Category", "Published", "Featured"))
	b.WriteString(strings.Repeat("─", 84))
	b.WriteString("\n")

	switch {
	case page.OutOfRange:
		b.WriteString(fmt.Sprintf("  page %d is empty, use ← to go back\n", page.CurrentPage))
	case len(page.Items) == 0 && state.LoadingItems:
		b.WriteString("  loading...\n")
	case len(page.Items) == 0:
		b.WriteString("  no entries\n")
	}

	for i, item := range page.Items {
		row := fmt.Sprintf("%-6d │ %-32s │ %-16s │ %-9s │ %-8s",
			item.ID,
			fitText(item.Title, 32),
			fitText(valueOrDash(item.Category), 16),
			yesNo(item.Published),
			yesNo(item.Featured),
		)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if state.ShowAll {
		b.WriteString(fmt.Sprintf("all %d entries", page.Filtered))
	} else {
		b.WriteString(fmt.Sprintf("page %d/%d │ %d entries", page.CurrentPage, max(page.TotalPages, 1), page.Filtered))
	}

	collection := mirror.CollectionActive
	if state.ViewMode == mirror.ViewTrash {
		collection = mirror.CollectionDeleted
	}
	b.WriteString(" │ sync: ")
	b.WriteString(state.Tag(collection).String())
	return b.String()
}

func (m *listModel) hotKeys(state mirror.State) string {
	switch {
	case m.mode == listSearch:
		return "enter: search now │ tab: recent │ ctrl+x: clear recent │ esc: close"
	case state.ViewMode == mirror.ViewTrash:
		return "↑/↓ ←/→ │ u: restore │ d: delete forever │ /: search │ a: all │ tab: entries │ g: categories │ esc: menu"
	default:
		return "↑/↓ ←/→ │ n: new │ e: edit │ d: trash │ c: copy image │ /: search │ a: all │ tab: trash │ g: categories │ esc: menu"
	}
}

// isCancelled reports whether err only means the operation was superseded
// or the program is shutting down.
func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
