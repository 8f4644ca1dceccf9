// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-content-admin/internal/app"
	"github.com/MKhiriev/go-content-admin/internal/config"
	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/internal/utils"
	"github.com/MKhiriev/go-content-admin/models"
	"github.com/sethvargo/go-retry"
)

// Envelope runs remote operations with a bounded number of attempts and a
// linear backoff between them, and reports the outcome to the mirror store
// and the notifier.
type Envelope struct {
	store    mirror.Dispatcher
	notifier Notifier

	maxRetries int
	unit       time.Duration

	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewEnvelope returns an envelope making cfg.MaxRetries attempts, waiting
// n*cfg.BackoffUnit after the n-th failed attempt.
func NewEnvelope(store mirror.Dispatcher, notifier Notifier, cfg config.Sync, logger *logger.Logger) *Envelope {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = config.DefaultMaxRetries
	}

	return &Envelope{
		store:      store,
		notifier:   notifier,
		maxRetries: maxRetries,
		unit:       cfg.BackoffUnit,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// Do runs op until it succeeds, fails permanently, or runs out of attempts.
//
// On success any Error Record is cleared. On final failure an Error Record of
// the given category is set, an error notification naming the category and
// the number of attempts is raised, and an *[ExhaustedError] is returned.
// When ctx is cancelled, during an attempt or a backoff sleep, Do returns the
// context error and reports nothing.
//
// Every attempt shares one trace id.
func (e *Envelope) Do(ctx context.Context, category mirror.ErrorCategory, op func(ctx context.Context) error) error {
	if _, ok := utils.GetTraceIDFromContext(ctx); !ok {
		ctx = utils.WithTraceID(ctx, e.ids.Generate())
	}
	log := e.logger.With().Str("category", string(category)).Logger()

	var (
		attempts int
		lastErr  error
	)
	err := retry.Do(ctx, linearBackoff(e.unit, e.maxRetries), func(ctx context.Context) error {
		attempts++
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if isCancelled(err) || ctx.Err() != nil || isPermanent(err) {
			return err
		}

		log.Warn().
			Str("func", "Envelope.Do").
			Int("attempt", attempts).
			Err(err).
			Msg("attempt failed")
		return retry.RetryableError(err)
	})
	if err == nil {
		e.store.Dispatch(mirror.ClearError{})
		return nil
	}

	if ctx.Err() != nil || isCancelled(err) {
		log.Debug().
			Str("func", "Envelope.Do").
			Int("attempts", attempts).
			Msg("operation cancelled")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}

	if lastErr == nil {
		lastErr = err
	}
	exhausted := &ExhaustedError{Category: category, Attempts: attempts, Err: lastErr}
	message := userMessage(lastErr)

	log.Error().
		Str("func", "Envelope.Do").
		Int("attempts", attempts).
		Err(lastErr).
		Msg("operation failed")

	e.store.Dispatch(mirror.SetError{Record: mirror.ErrorRecord{Type: category, Message: message}})
	e.notifier.Notify(newNotification(models.NotificationError, app.TitleFailed,
		fmt.Sprintf("%s operation failed after %d attempt(s): %s", category, attempts, message)))

	return exhausted
}

// linearBackoff waits unit, 2*unit, ... between attempts and stops after
// maxRetries attempts. A Backoff is stateful, so one is built per call.
func linearBackoff(unit time.Duration, maxRetries int) retry.Backoff {
	var n int
	return retry.BackoffFunc(func() (time.Duration, bool) {
		n++
		if n >= maxRetries {
			return 0, true
		}
		return time.Duration(n) * unit, false
	})
}

// IsExhausted reports whether err was already surfaced to the user by an
// envelope, so callers can swallow it.
func IsExhausted(err error) bool {
	var exhausted *ExhaustedError
	return errors.As(err, &exhausted)
}
