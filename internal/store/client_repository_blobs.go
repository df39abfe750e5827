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

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
)

type blobRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlobRepository returns a BlobRepository backed by db.
func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	return &blobRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *blobRepository) SaveBlob(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertBlobQuery, key, value, time.Now().UnixNano()); err != nil {
		log.Err(err).
			Str("func", "blobRepository.SaveBlob").
			Str("key", key).
			Msg("failed to upsert blob")
		return fmt.Errorf("%w: failed to save blob %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (r *blobRepository) LoadBlob(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("value").
		From(tableSyncBlobs).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "blobRepository.LoadBlob").
			Str("key", key).
			Msg("failed to load blob")
		return nil, false, fmt.Errorf("%w: failed to load blob %q: %w", ErrExecutingQuery, key, err)
	}

	return value, true, nil
}
