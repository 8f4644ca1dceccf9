package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-content-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	toastTTL       = 4 * time.Second
	maxToastsShown = 3
)

type toast struct {
	id   int
	note models.Notification
}

// waitForNotification blocks until the service layer raises a notification.
// A closed channel ends the loop.
func waitForNotification(ch <-chan models.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		note, ok := <-ch
		if !ok {
			return nil
		}
		return toastMsg{note: note}
	}
}

func expireToast(id int) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func renderToasts(toasts []toast) string {
	if len(toasts) == 0 {
		return ""
	}
	start := max(len(toasts)-maxToastsShown, 0)

	parts := make([]string, 0, maxToastsShown)
	for _, t := range toasts[start:] {
		title := t.note.Title
		switch t.note.Level {
		case models.NotificationError:
			title = errorStyle.Render(title)
		case models.NotificationSuccess:
			title = successStyle.Render(title)
		default:
			title = titleStyle.Render(title)
		}

		body := title
		if t.note.Message != "" {
			body += "\n" + humanizeMessage(t.note.Message)
		}
		parts = append(parts, toastStyle.Render(body))
	}
	return strings.Join(parts, "\n")
}
