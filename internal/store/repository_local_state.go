// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-admin/internal/logger"
)

const (
	localStateTable  = "local_state"
	localStateKey    = "state_key"
	localStateValue  = "state_value"
	localStateUpdate = "updated_at"
)

type localStateRepository struct {
	*DB
	builder sq.StatementBuilderType
	now     func() time.Time
	logger  *logger.Logger
}

func NewLocalStateRepository(db *DB, logger *logger.Logger) LocalStateRepository {
	return &localStateRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
		logger:  logger,
	}
}

func (l *localStateRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := l.builder.
		Select(localStateValue).
		From(localStateTable).
		Where(sq.Eq{localStateKey: key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrStateNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.Get").
			Str("key", key).
			Msg("failed to query local state")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (l *localStateRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := l.builder.
		Insert(localStateTable).
		Columns(localStateKey, localStateValue, localStateUpdate).
		Values(key, value, l.now().UTC()).
		Suffix(fmt.Sprintf("ON CONFLICT (%[1]s) DO UPDATE SET %[2]s = excluded.%[2]s, %[3]s = excluded.%[3]s",
			localStateKey, localStateValue, localStateUpdate)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.Put").
			Str("key", key).
			Msg("failed to upsert local state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localStateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := l.builder.
		Delete(localStateTable).
		Where(sq.Eq{localStateKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.Delete").
			Str("key", key).
			Msg("failed to delete local state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
