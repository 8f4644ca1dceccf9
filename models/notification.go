// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NotificationLevel is the severity of a user-facing notification.
type NotificationLevel int

const (
	NotificationInfo NotificationLevel = iota
	NotificationSuccess
	NotificationError
)

func (l NotificationLevel) String() string {
	switch l {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a short-lived message (a toast) raised by the service
// layer after an operation succeeds or fails for good.
type Notification struct {
	Level   NotificationLevel
	Title   string
	Message string
	At      time.Time
}
