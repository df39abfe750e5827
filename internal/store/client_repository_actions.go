// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-quiz-sync/internal/logger"
	"github.com/MKhiriev/go-quiz-sync/models"
)

type actionRepository struct {
	*DB
	logger *logger.Logger
}

// NewActionRepository returns an ActionRepository backed by db.
func NewActionRepository(db *DB, logger *logger.Logger) ActionRepository {
	return &actionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *actionRepository) Append(ctx context.Context, action models.PendingAction) (models.PendingAction, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(tablePendingActions).
		Columns(pendingColumns[1:]...).
		Values(pendingValues(action)[1:]...).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "actionRepository.Append").Msg("failed to build insert query")
		return models.PendingAction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.Append").
			Int64("user_id", action.UserID).
			Str("action_id", action.ID).
			Msg("failed to insert pending action")
		return models.PendingAction{}, fmt.Errorf("%w: failed to append action (id=%s): %w", ErrExecutingStatement, action.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil || affected == 0 {
		log.Error().
			Str("func", "actionRepository.Append").
			Int64("user_id", action.UserID).
			Str("action_id", action.ID).
			Msg("pending action insert affected no rows")
		return models.PendingAction{}, ErrActionNotSaved
	}

	seq, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "actionRepository.Append").Msg("failed to read assigned seq")
		return models.PendingAction{}, fmt.Errorf("failed to read assigned seq: %w", err)
	}
	action.Seq = seq

	return action, nil
}

func (r *actionRepository) Load(ctx context.Context, userID int64) ([]models.PendingAction, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectPendingQuery(userID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "actionRepository.Load").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.Load").
			Int64("user_id", userID).
			Msg("failed to query pending actions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var queue []models.PendingAction
	for rows.Next() {
		action, scanErr := scanPending(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "actionRepository.Load").
				Int64("user_id", userID).
				Msg("failed to scan pending action row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		queue = append(queue, action)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "actionRepository.Load").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending action rows: %w", rowsErr)
	}

	return queue, nil
}

func (r *actionRepository) Persist(ctx context.Context, userID int64, queue []models.PendingAction) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "actionRepository.Persist").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	deleteQuery, deleteArgs, err := psql.Delete(tablePendingActions).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "actionRepository.Persist").
			Int64("user_id", userID).
			Msg("failed to clear pending queue")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, action := range queue {
		action.UserID = userID

		insert := psql.Insert(tablePendingActions)
		if action.Seq > 0 {
			insert = insert.Columns(pendingColumns...).Values(pendingValues(action)...)
		} else {
			insert = insert.Columns(pendingColumns[1:]...).Values(pendingValues(action)[1:]...)
		}

		query, args, buildErr := insert.ToSql()
		if buildErr != nil {
			err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "actionRepository.Persist").
				Int64("user_id", userID).
				Str("action_id", action.ID).
				Msg("failed to write pending action")
			return fmt.Errorf("%w: failed to persist action (id=%s): %w", ErrExecutingStatement, action.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "actionRepository.Persist").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *actionRepository) Remove(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(tablePendingActions).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "actionRepository.Remove").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.Remove").
			Int64("user_id", userID).
			Str("action_id", id).
			Msg("failed to delete pending action")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, id)
}

func (r *actionRepository) MarkRetry(ctx context.Context, userID int64, id string, retryCount int, nextAttemptAt time.Time, lastErr string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(tablePendingActions).
		Set("retry_count", retryCount).
		Set("next_attempt_at", toUnixNano(nextAttemptAt)).
		Set("last_error", lastErr).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "actionRepository.MarkRetry").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.MarkRetry").
			Int64("user_id", userID).
			Str("action_id", id).
			Int("retry_count", retryCount).
			Msg("failed to update retry state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, id)
}

func (r *actionRepository) MoveToFailed(ctx context.Context, action models.FailedAction) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "actionRepository.MoveToFailed").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	deleteQuery, deleteArgs, err := psql.Delete(tablePendingActions).
		Where(sq.Eq{"user_id": action.UserID, "id": action.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "actionRepository.MoveToFailed").
			Int64("user_id", action.UserID).
			Str("action_id", action.ID).
			Msg("failed to delete pending action")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	insertQuery, insertArgs, err := psql.Replace(tableFailedActions).
		Columns(failedColumns...).
		Values(failedValues(action)...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).
			Str("func", "actionRepository.MoveToFailed").
			Int64("user_id", action.UserID).
			Str("action_id", action.ID).
			Msg("failed to insert failed action")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "actionRepository.MoveToFailed").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *actionRepository) LoadFailed(ctx context.Context, userID int64) ([]models.FailedAction, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectFailedQuery(userID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "actionRepository.LoadFailed").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.LoadFailed").
			Int64("user_id", userID).
			Msg("failed to query failed actions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var bucket []models.FailedAction
	for rows.Next() {
		action, scanErr := scanFailed(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "actionRepository.LoadFailed").
				Int64("user_id", userID).
				Msg("failed to scan failed action row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		bucket = append(bucket, action)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "actionRepository.LoadFailed").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating failed action rows: %w", rowsErr)
	}

	return bucket, nil
}

func (r *actionRepository) ClearFailed(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(tableFailedActions).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "actionRepository.ClearFailed").Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.ClearFailed").
			Int64("user_id", userID).
			Msg("failed to clear failed actions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return int(affected), nil
}

func (r *actionRepository) RestoreFailed(ctx context.Context, userID int64) (restored int, err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "actionRepository.RestoreFailed").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, restoreFailedQuery, userID)
	if err != nil {
		log.Err(err).
			Str("func", "actionRepository.RestoreFailed").
			Int64("user_id", userID).
			Msg("failed to copy failed actions to pending queue")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleteQuery, deleteArgs, err := psql.Delete(tableFailedActions).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// rows skipped by the insert are already pending, so they count as nothing restored
	requeued, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "actionRepository.RestoreFailed").
			Int64("user_id", userID).
			Msg("failed to clear failed actions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "actionRepository.RestoreFailed").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return int(requeued), nil
}

func (r *actionRepository) Counts(ctx context.Context, userID int64) (int, int, error) {
	log := logger.FromContext(ctx)

	pending, err := r.count(ctx, tablePendingActions, userID)
	if err != nil {
		log.Err(err).Str("func", "actionRepository.Counts").Int64("user_id", userID).Msg("failed to count pending actions")
		return 0, 0, err
	}

	failed, err := r.count(ctx, tableFailedActions, userID)
	if err != nil {
		log.Err(err).Str("func", "actionRepository.Counts").Int64("user_id", userID).Msg("failed to count failed actions")
		return 0, 0, err
	}

	return pending, failed, nil
}

func (r *actionRepository) count(ctx context.Context, table string, userID int64) (int, error) {
	query, args, err := countQuery(table, userID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

func pendingValues(a models.PendingAction) []any {
	return []any{
		a.Seq,
		a.ID,
		a.UserID,
		string(a.Type),
		[]byte(a.Payload),
		toUnixNano(a.EnqueuedAt),
		a.RetryCount,
		toUnixNano(a.NextAttemptAt),
		a.LastError,
	}
}

func failedValues(a models.FailedAction) []any {
	return []any{
		a.Seq,
		a.ID,
		a.UserID,
		string(a.Type),
		[]byte(a.Payload),
		toUnixNano(a.EnqueuedAt),
		a.RetryCount,
		a.LastError,
		toUnixNano(a.FailedAt),
		string(a.Reason),
	}
}

func scanPending(rows *sql.Rows) (models.PendingAction, error) {
	var (
		action      models.PendingAction
		actionType  string
		payload     []byte
		enqueuedAt  int64
		nextAttempt int64
	)

	err := rows.Scan(
		&action.Seq,
		&action.ID,
		&action.UserID,
		&actionType,
		&payload,
		&enqueuedAt,
		&action.RetryCount,
		&nextAttempt,
		&action.LastError,
	)
	if err != nil {
		return models.PendingAction{}, err
	}

	action.Type = models.ActionType(actionType)
	action.Payload = json.RawMessage(payload)
	action.EnqueuedAt = fromUnixNano(enqueuedAt)
	action.NextAttemptAt = fromUnixNano(nextAttempt)

	return action, nil
}

func scanFailed(rows *sql.Rows) (models.FailedAction, error) {
	var (
		action     models.FailedAction
		actionType string
		payload    []byte
		enqueuedAt int64
		failedAt   int64
		reason     string
	)

	err := rows.Scan(
		&action.Seq,
		&action.ID,
		&action.UserID,
		&actionType,
		&payload,
		&enqueuedAt,
		&action.RetryCount,
		&action.LastError,
		&failedAt,
		&reason,
	)
	if err != nil {
		return models.FailedAction{}, err
	}

	action.Type = models.ActionType(actionType)
	action.Payload = json.RawMessage(payload)
	action.EnqueuedAt = fromUnixNano(enqueuedAt)
	action.FailedAt = fromUnixNano(failedAt)
	action.Reason = models.FailReason(reason)

	return action, nil
}

func requireAffected(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w (id=%s)", ErrActionNotFound, id)
	}
	return nil
}
