// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-content-admin/internal/adapter"
	"github.com/MKhiriev/go-content-admin/internal/config"
	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/internal/store"
	"github.com/MKhiriev/go-content-admin/models"
)

// notificationBuffer is the number of toasts kept while the UI is busy.
const notificationBuffer = 32

// ClientServices groups the per-resource synchronizers and what they share.
type ClientServices struct {
	Synchronizers map[models.Resource]ListSynchronizer
	RefreshJobs   map[models.Resource]RefreshJob
	History       SearchHistory

	// Notifications carries every toast raised by the synchronizers.
	Notifications *ChanNotifier
}

// NewClientServices builds one synchronizer, with its own mirror store, per
// content API.
func NewClientServices(cfg config.Sync, apis []adapter.ContentAPI, uploads adapter.UploadService, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	notifications := NewChanNotifier(notificationBuffer)
	notifier := MultiNotifier{NewLogNotifier(logger), notifications}
	history := NewSearchHistory(storages.LocalStateRepository, logger)

	services := &ClientServices{
		Synchronizers: make(map[models.Resource]ListSynchronizer, len(apis)),
		RefreshJobs:   make(map[models.Resource]RefreshJob, len(apis)),
		History:       history,
		Notifications: notifications,
	}

	for _, api := range apis {
		child := logger.WithField("resource", api.Resource().String())

		mirrorStore := mirror.NewStore(cfg.PageSize)
		envelope := NewEnvelope(mirrorStore, notifier, cfg, child)
		synchronizer := NewListSynchronizer(api, uploads, history, mirrorStore, envelope, notifier, child)

		services.Synchronizers[api.Resource()] = synchronizer
		services.RefreshJobs[api.Resource()] = NewRefreshJob(synchronizer, child)
	}

	return services
}

// Close stops every refresh job and cancels in-flight operations.
func (s *ClientServices) Close() {
	for _, job := range s.RefreshJobs {
		job.Stop()
	}
	for _, synchronizer := range s.Synchronizers {
		synchronizer.Close()
	}
}
