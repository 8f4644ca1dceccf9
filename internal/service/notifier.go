// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/models"
)

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(logger *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements [Notifier].
func (n *LogNotifier) Notify(note models.Notification) {
	ev := n.logger.Info()
	if note.Level == models.NotificationError {
		ev = n.logger.Warn()
	}
	ev.Str("func", "LogNotifier.Notify").
		Str("notification_level", note.Level.String()).
		Str("title", note.Title).
		Msg(note.Message)
}

// ChanNotifier delivers notifications on a buffered channel, typically read
// by the terminal UI to render toasts. When the buffer is full the
// notification is dropped rather than blocking the caller.
type ChanNotifier struct {
	ch chan models.Notification
}

func NewChanNotifier(buffer int) *ChanNotifier {
	return &ChanNotifier{ch: make(chan models.Notification, buffer)}
}

// Notify implements [Notifier].
func (n *ChanNotifier) Notify(note models.Notification) {
	select {
	case n.ch <- note:
	default:
	}
}

// C returns the receive side of the notification channel.
func (n *ChanNotifier) C() <-chan models.Notification {
	return n.ch
}

// MultiNotifier fans a notification out to every notifier in order.
type MultiNotifier []Notifier

// Notify implements [Notifier].
func (m MultiNotifier) Notify(note models.Notification) {
	for _, n := range m {
		n.Notify(note)
	}
}

func newNotification(level models.NotificationLevel, title, message string) models.Notification {
	return models.Notification{Level: level, Title: title, Message: message, At: time.Now()}
}
