// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/internal/service"
	"github.com/MKhiriev/go-content-admin/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	resource  models.Resource
	debounce  time.Duration
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, resource models.Resource, debounce time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	if _, ok := services.Synchronizers[resource]; !ok {
		return nil, errors.New("tui: no synchronizer for resource " + resource.String())
	}
	return &TUI{
		services:  services,
		resource:  resource,
		debounce:  debounce,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the terminal UI until the user quits or ctx is cancelled.
// Quitting with ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	resources := make([]models.Resource, 0, len(t.services.Synchronizers))
	for _, r := range models.Resources() {
		if _, ok := t.services.Synchronizers[r]; ok {
			resources = append(resources, r)
		}
	}

	pages := map[string]tea.Model{
		pageMenu:       NewMenuModel(resources, t.resource),
		pageList:       newListModel(ctx, t.services.Synchronizers, t.services.History, t.debounce),
		pageCategories: newCategoriesModel(ctx, t.services.Synchronizers),
	}

	var notifications <-chan models.Notification
	if t.services.Notifications != nil {
		notifications = t.services.Notifications.C()
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo, notifications)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	// Dispatches may happen inside Update, so the message is sent from a
	// separate goroutine to keep the event loop free.
	for resource, s := range t.services.Synchronizers {
		unsubscribe := s.Store().Subscribe(func(mirror.State) {
			go p.Send(stateChangedMsg{resource: resource})
		})
		defer unsubscribe()
	}

	t.logger.Info().Str("func", "TUI.Run").Str("resource", t.resource.String()).Msg("terminal UI started")

	finalModel, runErr := p.Run()
	if runErr != nil {
		if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
