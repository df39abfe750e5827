// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// psql renders every statement with SQLite '?' placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	tablePendingActions = "pending_actions"
	tableFailedActions  = "failed_actions"
	tableSyncBlobs      = "sync_blobs"
)

var pendingColumns = []string{
	"seq",
	"id",
	"user_id",
	"action_type",
	"payload",
	"enqueued_at",
	"retry_count",
	"next_attempt_at",
	"last_error",
}

var failedColumns = []string{
	"seq",
	"id",
	"user_id",
	"action_type",
	"payload",
	"enqueued_at",
	"retry_count",
	"last_error",
	"failed_at",
	"reason",
}

// restoreFailedQuery copies the failed bucket back to the pending tail in the
// order the actions originally entered the queue. New seq values are drawn
// from AUTOINCREMENT. Rows whose id is already pending are skipped.
const restoreFailedQuery = `
	INSERT OR IGNORE INTO pending_actions (
		id,
		user_id,
		action_type,
		payload,
		enqueued_at,
		retry_count,
		next_attempt_at,
		last_error
	)
	SELECT id, user_id, action_type, payload, enqueued_at, 0, 0, ''
	FROM failed_actions
	WHERE user_id = ?
	ORDER BY seq;`

// upsertBlobQuery inserts a blob or overwrites the stored one in place.
const upsertBlobQuery = `
	INSERT INTO sync_blobs (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

func selectPendingQuery(userID int64) sq.SelectBuilder {
	return psql.Select(pendingColumns...).
		From(tablePendingActions).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("seq")
}

func selectFailedQuery(userID int64) sq.SelectBuilder {
	return psql.Select(failedColumns...).
		From(tableFailedActions).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("seq")
}

func countQuery(table string, userID int64) sq.SelectBuilder {
	return psql.Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"user_id": userID})
}

// toUnixNano stores the zero time as 0 so that it survives a round trip.
func toUnixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
