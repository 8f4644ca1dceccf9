// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-content-admin/internal/adapter"
	"github.com/MKhiriev/go-content-admin/internal/app"
	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/internal/validators"
	"github.com/MKhiriev/go-content-admin/models"
	"golang.org/x/sync/errgroup"
)

// cleanupTimeout bounds best-effort image removals that run after the
// operation that triggered them has finished.
const cleanupTimeout = 10 * time.Second

type listSynchronizer struct {
	api       adapter.ContentAPI
	uploads   adapter.UploadService
	history   SearchHistory
	store     *mirror.Store
	envelope  *Envelope
	notifier  Notifier
	validator validators.Validator

	// root is cancelled by Close; every operation context is derived from it.
	root   context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	inflight map[mirror.Collection]*inflightFetch

	loadingMu         sync.Mutex
	loadingItems      int
	loadingCategories int

	logger *logger.Logger
}

type inflightFetch struct {
	cancel context.CancelFunc
}

// NewListSynchronizer creates a synchronizer writing to store. history may
// be nil, in which case search terms are not recorded.
func NewListSynchronizer(
	api adapter.ContentAPI,
	uploads adapter.UploadService,
	history SearchHistory,
	store *mirror.Store,
	envelope *Envelope,
	notifier Notifier,
	logger *logger.Logger,
) ListSynchronizer {
	root, cancel := context.WithCancel(context.Background())

	return &listSynchronizer{
		api:       api,
		uploads:   uploads,
		history:   history,
		store:     store,
		envelope:  envelope,
		notifier:  notifier,
		validator: validators.NewContentValidator(),
		root:      root,
		cancel:    cancel,
		inflight:  make(map[mirror.Collection]*inflightFetch),
		logger:    logger,
	}
}

func (s *listSynchronizer) Resource() models.Resource {
	return s.api.Resource()
}

func (s *listSynchronizer) Store() *mirror.Store {
	return s.store
}

func (s *listSynchronizer) Close() {
	s.cancel()
}

// ── Loading ──────────────────────────────────────────────────────────────────

func (s *listSynchronizer) LoadActive(ctx context.Context) error {
	return s.load(ctx, mirror.CollectionActive)
}

func (s *listSynchronizer) LoadAll(ctx context.Context) error {
	return s.load(ctx, mirror.CollectionAll)
}

func (s *listSynchronizer) LoadDeleted(ctx context.Context) error {
	return s.load(ctx, mirror.CollectionDeleted)
}

func (s *listSynchronizer) LoadCategories(ctx context.Context) error {
	return s.load(ctx, mirror.CollectionCategories)
}

// RefreshAll loads categories first so that the item lists that follow can
// resolve category names.
func (s *listSynchronizer) RefreshAll(ctx context.Context) error {
	ctx, release := s.bind(ctx)
	defer release()

	return s.envelope.Do(ctx, mirror.ErrorGeneral, func(ctx context.Context) error {
		if _, err := s.fetch(ctx, mirror.CollectionCategories); err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, c := range []mirror.Collection{mirror.CollectionActive, mirror.CollectionAll, mirror.CollectionDeleted} {
			g.Go(func() error {
				_, err := s.fetch(gctx, c)
				return err
			})
		}
		return g.Wait()
	})
}

func (s *listSynchronizer) Search(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	state := s.store.Dispatch(mirror.SetSearchTerm{Term: term})

	if term != "" && s.history != nil {
		if _, err := s.history.Push(ctx, term); err != nil {
			s.logger.Warn().
				Str("func", "listSynchronizer.Search").
				Err(err).
				Msg("failed to record recent search")
		}
	}

	if state.ViewMode != mirror.ViewActive {
		return nil
	}
	return s.load(ctx, mirror.CollectionActive)
}

func (s *listSynchronizer) SetViewMode(ctx context.Context, mode mirror.ViewMode) error {
	s.store.Dispatch(mirror.SetViewMode{Mode: mode})

	if mode == mirror.ViewTrash {
		return s.load(ctx, mirror.CollectionDeleted)
	}
	return s.load(ctx, mirror.CollectionActive)
}

func (s *listSynchronizer) Get(ctx context.Context, id int64) (models.Item, error) {
	if id <= 0 {
		return models.Item{}, s.rejected(ErrValidationInvalidID)
	}

	ctx, release := s.bind(ctx)
	defer release()

	var item models.Item
	err := s.envelope.Do(ctx, mirror.ErrorItems, func(ctx context.Context) error {
		got, err := s.api.GetByID(ctx, id, s.store.State().Categories)
		if err != nil {
			return err
		}
		item = got
		return nil
	})
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// ── Mutations ────────────────────────────────────────────────────────────────

func (s *listSynchronizer) Create(ctx context.Context, draft models.ItemDraft) (models.Item, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Item{}, s.rejected(err)
	}

	ctx, release := s.bind(ctx)
	defer release()

	s.store.Dispatch(mirror.SetSubmitting{Submitting: true})
	defer s.store.Dispatch(mirror.SetSubmitting{Submitting: false})

	payload := draft.Payload
	var (
		uploaded *models.UploadResult
		created  models.Item
	)
	err := s.envelope.Do(ctx, mirror.ErrorItems, func(ctx context.Context) error {
		if draft.ImagePath != "" && uploaded == nil {
			res, err := s.uploadImage(ctx, draft.ImagePath)
			if err != nil {
				return err
			}
			uploaded = &res
			payload.Image = res.URL
			payload.ImagePublicID = res.PublicID
		}

		item, err := s.api.Create(ctx, payload)
		if err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		if uploaded != nil {
			s.discardImage(ctx, uploaded.PublicID)
		}
		return models.Item{}, err
	}

	created = s.withCategory(created)
	s.store.Dispatch(mirror.AddItem{Item: created})
	s.notifier.Notify(newNotification(models.NotificationSuccess, app.TitleCreated,
		fmt.Sprintf("%q was created", created.Title)))

	s.reconcile(ctx, mirror.CollectionActive)
	return created, nil
}

func (s *listSynchronizer) Update(ctx context.Context, original models.Item, draft models.ItemDraft) (models.Item, error) {
	if original.ID <= 0 {
		return models.Item{}, s.rejected(ErrValidationInvalidID)
	}
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Item{}, s.rejected(err)
	}

	patch := models.ChangedFields(original, draft.Payload)
	if patch.IsEmpty() && draft.ImagePath == "" {
		s.notifier.Notify(newNotification(models.NotificationInfo, app.TitleNoChanges,
			fmt.Sprintf("%q was left as is", original.Title)))
		return original, nil
	}

	ctx, release := s.bind(ctx)
	defer release()

	s.store.Dispatch(mirror.SetSubmitting{Submitting: true})
	defer s.store.Dispatch(mirror.SetSubmitting{Submitting: false})

	var (
		uploaded *models.UploadResult
		updated  models.Item
	)
	err := s.envelope.Do(ctx, mirror.ErrorItems, func(ctx context.Context) error {
		if draft.ImagePath != "" && uploaded == nil {
			res, err := s.uploadImage(ctx, draft.ImagePath)
			if err != nil {
				return err
			}
			uploaded = &res
			patch.Image = &res.URL
			patch.ImagePublicID = &res.PublicID
		}

		item, err := s.api.Update(ctx, original.ID, patch)
		if err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		if uploaded != nil {
			s.discardImage(ctx, uploaded.PublicID)
		}
		return models.Item{}, err
	}

	if updated.ID == 0 {
		updated = original.Apply(patch)
	}
	updated = s.withCategory(updated)

	s.store.Dispatch(mirror.UpdateItem{ID: original.ID, Item: updated})
	s.notifier.Notify(newNotification(models.NotificationSuccess, app.TitleUpdated,
		fmt.Sprintf("%q was updated", updated.Title)))

	if patch.Image != nil && original.Image != "" && *patch.Image != original.Image {
		s.discardImage(ctx, imageRef(original))
	}

	s.reconcile(ctx, mirror.CollectionActive)
	return updated, nil
}

func (s *listSynchronizer) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return s.rejected(ErrValidationInvalidID)
	}

	ctx, release := s.bind(ctx)
	defer release()

	err := s.envelope.Do(ctx, mirror.ErrorItems, func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.store.Dispatch(mirror.DeleteItem{ID: id})
	s.notifier.Notify(newNotification(models.NotificationSuccess, app.TitleMovedToTrash,
		fmt.Sprintf("entry %d was moved to the trash", id)))

	s.reconcile(ctx, mirror.CollectionDeleted)
	return nil
}

func (s *listSynchronizer) Restore(ctx context.Context, id int64) error {
	item, ok := s.store.State().FindDeleted(id)
	if !ok {
		return s.rejected(ErrValidationNotInTrash)
	}

	ctx, release := s.bind(ctx)
	defer release()

	err := s.envelope.Do(ctx, mirror.ErrorItems, func(ctx context.Context) error {
		return s.api.Restore(ctx, id)
	})
	if err != nil {
		return err
	}

	s.store.Dispatch(mirror.RestoreItem{Item: item})
	s.notifier.Notify(newNotification(models.NotificationSuccess, app.TitleRestored,
		fmt.Sprintf("%q was restored", item.Title)))

	s.reconcile(ctx, mirror.CollectionActive)
	return nil
}

// HardDelete does not reconcile: the trash was already patched and nothing
// else references a purged item.
func (s *listSynchronizer) HardDelete(ctx context.Context, id int64) error {
	if id <= 0 {
		return s.rejected(ErrValidationInvalidID)
	}
	item, _ := s.store.State().FindDeleted(id)

	ctx, release := s.bind(ctx)
	defer release()

	err := s.envelope.Do(ctx, mirror.ErrorItems, func(ctx context.Context) error {
		return s.api.HardDelete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.store.Dispatch(mirror.HardDeleteItem{ID: id})
	s.notifier.Notify(newNotification(models.NotificationSuccess, app.TitleDeleted,
		fmt.Sprintf("entry %d was deleted permanently", id)))

	if ref := imageRef(item); ref != "" {
		s.discardImage(ctx, ref)
	}
	return nil
}

func (s *listSynchronizer) CreateCategory(ctx context.Context, payload models.CategoryPayload) error {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Slug = strings.TrimSpace(payload.Slug)
	if err := s.validator.Validate(ctx, payload); err != nil {
		return s.rejected(err)
	}

	ctx, release := s.bind(ctx)
	defer release()

	err := s.envelope.Do(ctx, mirror.ErrorCategories, func(ctx context.Context) error {
		return s.api.CreateCategory(ctx, payload)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(newNotification(models.NotificationSuccess, app.TitleCategoryCreated,
		fmt.Sprintf("%q was created", payload.Name)))

	s.reconcile(ctx, mirror.CollectionCategories)
	return nil
}

func (s *listSynchronizer) DeleteCategory(ctx context.Context, id int64) error {
	if id <= 0 {
		return s.rejected(ErrValidationInvalidID)
	}

	ctx, release := s.bind(ctx)
	defer release()

	err := s.envelope.Do(ctx, mirror.ErrorCategories, func(ctx context.Context) error {
		return s.api.DeleteCategory(ctx, id)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(newNotification(models.NotificationSuccess, app.TitleCategoryDeleted,
		fmt.Sprintf("category %d was deleted", id)))

	s.reconcile(ctx, mirror.CollectionCategories)
	return nil
}

// ── Fetching ─────────────────────────────────────────────────────────────────

// load fetches c inside the envelope, superseding any fetch of c that is
// still in flight.
func (s *listSynchronizer) load(ctx context.Context, c mirror.Collection) error {
	ctx, release := s.acquire(ctx, c)
	defer release()

	category := mirror.ErrorItems
	if c == mirror.CollectionCategories {
		category = mirror.ErrorCategories
	}

	return s.envelope.Do(ctx, category, func(ctx context.Context) error {
		_, err := s.fetch(ctx, c)
		return err
	})
}

// reconcile refetches c once after a successful mutation. A failure keeps
// the optimistic patch, marks c stale and is only logged.
func (s *listSynchronizer) reconcile(ctx context.Context, c mirror.Collection) {
	ctx, release := s.acquire(ctx, c)
	defer release()

	gen, err := s.fetch(ctx, c)
	if err == nil {
		return
	}
	if isCancelled(err) || ctx.Err() != nil {
		return
	}

	s.logger.Warn().
		Str("func", "listSynchronizer.reconcile").
		Str("collection", c.String()).
		Err(err).
		Msg("reconciliation fetch failed")
	s.store.Dispatch(mirror.MarkStale{Collection: c, Generation: gen})
}

// fetch begins a new generation of c, loads it and hands the response to the
// store together with the generation, so that a response overtaken by a
// newer fetch is dropped.
func (s *listSynchronizer) fetch(ctx context.Context, c mirror.Collection) (uint64, error) {
	gen := s.store.Begin(c)

	s.setLoading(c, true)
	defer s.setLoading(c, false)

	if c == mirror.CollectionCategories {
		categories, err := s.api.GetCategories(ctx)
		if err != nil {
			return gen, err
		}
		s.store.Dispatch(mirror.SetCategories{Categories: categories, Generation: gen})
		return gen, nil
	}

	state := s.store.State()
	var (
		items []models.Item
		err   error
	)
	switch c {
	case mirror.CollectionActive:
		// in the trash view the term filters the trash on the client
		if state.ViewMode == mirror.ViewActive && state.SearchTerm != "" {
			items, err = s.api.Search(ctx, state.SearchTerm, state.Categories)
		} else {
			items, err = s.api.GetAll(ctx, state.Categories)
		}
	case mirror.CollectionAll:
		items, err = s.api.GetAll(ctx, state.Categories)
	case mirror.CollectionDeleted:
		items, err = s.api.GetDeleted(ctx, state.Categories)
	default:
		return gen, fmt.Errorf("unknown collection %d", c)
	}
	if err != nil {
		return gen, err
	}

	s.store.Dispatch(mirror.SetItems{Collection: c, Items: items, Generation: gen})
	return gen, nil
}

func (s *listSynchronizer) setLoading(c mirror.Collection, on bool) {
	delta := -1
	if on {
		delta = 1
	}

	s.loadingMu.Lock()
	defer s.loadingMu.Unlock()

	if c == mirror.CollectionCategories {
		s.loadingCategories += delta
		s.store.Dispatch(mirror.SetCategoriesLoading{Loading: s.loadingCategories > 0})
		return
	}
	s.loadingItems += delta
	s.store.Dispatch(mirror.SetItemsLoading{Loading: s.loadingItems > 0})
}

// ── Contexts ─────────────────────────────────────────────────────────────────

// bind derives an operation context from ctx that is also cancelled by Close.
func (s *listSynchronizer) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	opCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.root, cancel)
	if s.root.Err() != nil {
		cancel()
	}

	return opCtx, func() {
		stop()
		cancel()
	}
}

// acquire binds ctx and registers it as the in-flight fetch of c, cancelling
// the previous one.
func (s *listSynchronizer) acquire(ctx context.Context, c mirror.Collection) (context.Context, context.CancelFunc) {
	opCtx, cancel := s.bind(ctx)
	f := &inflightFetch{cancel: cancel}

	s.mu.Lock()
	if prev, ok := s.inflight[c]; ok {
		prev.cancel()
	}
	s.inflight[c] = f
	s.mu.Unlock()

	return opCtx, func() {
		cancel()
		s.mu.Lock()
		if s.inflight[c] == f {
			delete(s.inflight, c)
		}
		s.mu.Unlock()
	}
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// rejected reports a validation error to the user. The envelope is never
// entered, so no Error Record is set.
func (s *listSynchronizer) rejected(err error) error {
	s.notifier.Notify(newNotification(models.NotificationError, app.TitleValidation, err.Error()))
	return err
}

func (s *listSynchronizer) uploadImage(ctx context.Context, path string) (models.UploadResult, error) {
	file, closer, err := openUploadFile(path)
	if err != nil {
		return models.UploadResult{}, err
	}
	defer closer.Close()

	return s.uploads.UploadImage(ctx, file, string(s.api.Resource()))
}

// discardImage removes an image that is no longer referenced. Failures are
// logged only.
func (s *listSynchronizer) discardImage(ctx context.Context, ref string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	deleted, err := s.uploads.DeleteFile(ctx, ref, models.FileKindImage)
	if err != nil {
		s.logger.Warn().
			Str("func", "listSynchronizer.discardImage").
			Str("ref", ref).
			Err(err).
			Msg("failed to delete image")
		return
	}
	s.logger.Debug().
		Str("func", "listSynchronizer.discardImage").
		Str("ref", ref).
		Bool("deleted", deleted).
		Msg("image cleanup finished")
}

func (s *listSynchronizer) withCategory(item models.Item) models.Item {
	return models.AttachCategories([]models.Item{item}, s.store.State().Categories)[0]
}

// imageRef returns the identifier used to delete the image of item.
func imageRef(item models.Item) string {
	if item.ImagePublicID != "" {
		return item.ImagePublicID
	}
	return item.Image
}
