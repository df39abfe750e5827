// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-sync/internal/config"
	"github.com/MKhiriev/go-quiz-sync/internal/logger"
)

// ClientStorages groups the client repositories that share one SQLite
// database.
type ClientStorages struct {
	// ActionRepository holds the pending queue and the failed bucket.
	ActionRepository ActionRepository

	// BlobRepository holds per-user sync metadata.
	BlobRepository BlobRepository

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DB.DSN, applies
// the schema migrations and wires the repositories to it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ActionRepository: NewActionRepository(db, logger),
		BlobRepository:   NewBlobRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database handle. Committed data is already on disk.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
