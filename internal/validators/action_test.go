// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-quiz-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func validQuizAttempt() models.QuizAttemptPayload {
	return models.QuizAttemptPayload{
		QuizID:      "quiz-1",
		Score:       7,
		MaxScore:    10,
		Answers:     []models.QuizAnswer{{QuestionID: "q1", Answer: "b", Correct: true}},
		StartedAt:   testNow.Add(-5 * time.Minute),
		CompletedAt: testNow,
	}
}

func validProgressUpdate() models.ProgressUpdatePayload {
	return models.ProgressUpdatePayload{CourseID: "go-101", LessonID: "l-1", Percent: 50, UpdatedAt: testNow}
}

func validGamificationUpdate() models.GamificationUpdatePayload {
	return models.GamificationUpdatePayload{TotalXP: 120, Level: 2, StreakDays: 3, Badges: []string{"first-quiz"}, UpdatedAt: testNow}
}

func mustRaw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewActionValidator(t *testing.T) {
	require.NotNil(t, NewActionValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewActionValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("enqueue request value and pointer", func(t *testing.T) {
		req := models.EnqueueRequest{Type: models.ActionProgressUpdate, Payload: mustRaw(t, validProgressUpdate())}
		assert.NoError(t, v.Validate(ctx, req))
		assert.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("payload structs", func(t *testing.T) {
		quiz := validQuizAttempt()
		progress := validProgressUpdate()
		gamification := validGamificationUpdate()
		assert.NoError(t, v.Validate(ctx, quiz))
		assert.NoError(t, v.Validate(ctx, &progress))
		assert.NoError(t, v.Validate(ctx, gamification))
	})
}

// ---------------------------------------------------------------------------
// EnqueueRequest
// ---------------------------------------------------------------------------

func TestValidate_EnqueueRequest(t *testing.T) {
	v := NewActionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.EnqueueRequest
		wantErr error
	}{
		{
			name:    "unknown type",
			req:     models.EnqueueRequest{Type: "delete_account", Payload: json.RawMessage(`{}`)},
			wantErr: ErrUnknownActionType,
		},
		{
			name:    "empty payload",
			req:     models.EnqueueRequest{Type: models.ActionQuizAttempt},
			wantErr: ErrEmptyPayload,
		},
		{
			name:    "null payload",
			req:     models.EnqueueRequest{Type: models.ActionQuizAttempt, Payload: json.RawMessage(" null ")},
			wantErr: ErrEmptyPayload,
		},
		{
			name:    "payload is not an object",
			req:     models.EnqueueRequest{Type: models.ActionProgressUpdate, Payload: json.RawMessage(`[1,2]`)},
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "wrong field type",
			req:     models.EnqueueRequest{Type: models.ActionGamificationUpdate, Payload: json.RawMessage(`{"total_xp":"lots"}`)},
			wantErr: ErrMalformedPayload,
		},
		{
			name:    "semantic error surfaces",
			req:     models.EnqueueRequest{Type: models.ActionProgressUpdate, Payload: json.RawMessage(`{"course_id":"c","lesson_id":"l","percent":140,"updated_at":"2026-01-01T00:00:00Z"}`)},
			wantErr: ErrInvalidProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, v.Validate(ctx, tt.req), tt.wantErr)
		})
	}
}

func TestValidate_EnqueueRequest_FieldScoping(t *testing.T) {
	v := NewActionValidator()
	ctx := context.Background()

	req := models.EnqueueRequest{Type: models.ActionQuizAttempt, Payload: json.RawMessage(`{}`)}
	assert.NoError(t, v.Validate(ctx, req, FieldActionType))
	assert.ErrorIs(t, v.Validate(ctx, req, FieldPayload), ErrEmptyQuizID)
	assert.ErrorIs(t, v.Validate(ctx, req, "colour"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// PendingAction
// ---------------------------------------------------------------------------

func TestValidate_PendingAction(t *testing.T) {
	v := NewActionValidator()
	ctx := context.Background()

	valid := models.PendingAction{
		ID:      "0190f6a4-0000-7000-8000-000000000001",
		UserID:  1,
		Type:    models.ActionGamificationUpdate,
		Payload: mustRaw(t, validGamificationUpdate()),
	}
	require.NoError(t, v.Validate(ctx, valid))

	noID := valid
	noID.ID = ""
	assert.ErrorIs(t, v.Validate(ctx, noID), ErrInvalidActionID)

	noUser := valid
	noUser.UserID = 0
	assert.ErrorIs(t, v.Validate(ctx, &noUser), ErrInvalidUserID)

	assert.NoError(t, v.Validate(ctx, noUser, FieldActionID, FieldPayload))
}

// ---------------------------------------------------------------------------
// Payload rules
// ---------------------------------------------------------------------------

func TestValidate_QuizAttempt(t *testing.T) {
	v := NewActionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.QuizAttemptPayload)
		wantErr error
	}{
		{"missing quiz id", func(p *models.QuizAttemptPayload) { p.QuizID = "" }, ErrEmptyQuizID},
		{"zero max score", func(p *models.QuizAttemptPayload) { p.MaxScore = 0 }, ErrInvalidScore},
		{"score above max", func(p *models.QuizAttemptPayload) { p.Score = 11 }, ErrInvalidScore},
		{"negative score", func(p *models.QuizAttemptPayload) { p.Score = -1 }, ErrInvalidScore},
		{"missing completion", func(p *models.QuizAttemptPayload) { p.CompletedAt = time.Time{} }, ErrMissingTimestamp},
		{"started after completion", func(p *models.QuizAttemptPayload) { p.StartedAt = p.CompletedAt.Add(time.Second) }, ErrInvalidAttemptTimes},
		{"answer without question", func(p *models.QuizAttemptPayload) { p.Answers[0].QuestionID = "" }, ErrEmptyQuestionID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validQuizAttempt()
			tt.mutate(&p)
			assert.ErrorIs(t, v.Validate(ctx, p), tt.wantErr)
		})
	}
}

func TestValidate_ProgressUpdate(t *testing.T) {
	v := NewActionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.ProgressUpdatePayload)
		wantErr error
	}{
		{"missing course", func(p *models.ProgressUpdatePayload) { p.CourseID = "" }, ErrEmptyCourseID},
		{"missing lesson", func(p *models.ProgressUpdatePayload) { p.LessonID = "" }, ErrEmptyLessonID},
		{"negative percent", func(p *models.ProgressUpdatePayload) { p.Percent = -0.5 }, ErrInvalidProgress},
		{"percent above 100", func(p *models.ProgressUpdatePayload) { p.Percent = 100.1 }, ErrInvalidProgress},
		{"missing timestamp", func(p *models.ProgressUpdatePayload) { p.UpdatedAt = time.Time{} }, ErrMissingTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProgressUpdate()
			tt.mutate(&p)
			assert.ErrorIs(t, v.Validate(ctx, p), tt.wantErr)
		})
	}
}

func TestValidate_GamificationUpdate(t *testing.T) {
	v := NewActionValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(p *models.GamificationUpdatePayload)
		wantErr error
	}{
		{"negative xp", func(p *models.GamificationUpdatePayload) { p.TotalXP = -1 }, ErrNegativeXP},
		{"level zero", func(p *models.GamificationUpdatePayload) { p.Level = 0 }, ErrInvalidLevel},
		{"negative streak", func(p *models.GamificationUpdatePayload) { p.StreakDays = -2 }, ErrNegativeStreak},
		{"empty badge", func(p *models.GamificationUpdatePayload) { p.Badges = append(p.Badges, "") }, ErrEmptyBadge},
		{"missing timestamp", func(p *models.GamificationUpdatePayload) { p.UpdatedAt = time.Time{} }, ErrMissingTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validGamificationUpdate()
			tt.mutate(&p)
			assert.ErrorIs(t, v.Validate(ctx, p), tt.wantErr)
		})
	}
}
