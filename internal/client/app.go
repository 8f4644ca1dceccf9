// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-content-admin/internal/adapter"
	"github.com/MKhiriev/go-content-admin/internal/config"
	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/service"
	"github.com/MKhiriev/go-content-admin/internal/tui"
	"github.com/MKhiriev/go-content-admin/internal/workers"
	"github.com/MKhiriev/go-content-admin/models"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services  *service.ClientServices
	ui        UI
	workerCfg config.Workers
	logger    *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workerCfg config.Workers, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are nil")
	}
	if ui == nil {
		return nil, errors.New("ui is nil")
	}
	return &App{services: services, ui: ui, workerCfg: workerCfg, logger: logger}, nil
}

// Run starts the refresh jobs and blocks in the UI until the user quits or
// the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.services.Close()

	jobs := make([]workers.Worker, 0, len(a.services.RefreshJobs))
	for _, r := range models.Resources() {
		if job, ok := a.services.RefreshJobs[r]; ok {
			jobs = append(jobs, job)
		}
	}
	refresh := workers.New(a.workerCfg.RefreshInterval, jobs...)
	refresh.Run(ctx)
	defer refresh.Stop()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.run").Msg("user quit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// NewContentAPIs builds one content API adapter per managed resource.
func NewContentAPIs(cfg config.Adapter, apiToken string, logger *logger.Logger) ([]adapter.ContentAPI, error) {
	resources := models.Resources()
	apis := make([]adapter.ContentAPI, 0, len(resources))
	for _, r := range resources {
		api, err := adapter.NewHTTPContentAdapter(cfg, apiToken, r, logger.WithField("resource", r.String()))
		if err != nil {
			return nil, fmt.Errorf("create %s adapter: %w", r, err)
		}
		apis = append(apis, api)
	}
	return apis, nil
}
