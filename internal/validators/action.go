// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-quiz-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldActionID targets the generated action identifier.
	FieldActionID = "id"

	// FieldUserID targets the owner of a queued action.
	FieldUserID = "user_id"

	// FieldActionType targets the action type, which must have a handler.
	FieldActionType = "action_type"

	// FieldPayload targets the type-specific payload, which is decoded and
	// checked against the rules of its action type.
	FieldPayload = "payload"
)

// ActionValidator implements Validator for queued actions and their payloads:
// EnqueueRequest, PendingAction, QuizAttemptPayload, ProgressUpdatePayload and
// GamificationUpdatePayload, in value or pointer form.
type ActionValidator struct {
}

// NewActionValidator constructs a new ActionValidator and returns it as the
// Validator interface.
func NewActionValidator() Validator {
	return &ActionValidator{}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj is not a supported model. Optional fields
// restrict validation to the named subset.
func (v *ActionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EnqueueRequest:
		return v.validateEnqueueRequest(ctx, value, fields...)
	case *models.EnqueueRequest:
		return v.validateEnqueueRequest(ctx, *value, fields...)

	case models.PendingAction:
		return v.validatePendingAction(ctx, value, fields...)
	case *models.PendingAction:
		return v.validatePendingAction(ctx, *value, fields...)

	case models.QuizAttemptPayload:
		return validateQuizAttempt(value)
	case *models.QuizAttemptPayload:
		return validateQuizAttempt(*value)

	case models.ProgressUpdatePayload:
		return validateProgressUpdate(value)
	case *models.ProgressUpdatePayload:
		return validateProgressUpdate(*value)

	case models.GamificationUpdatePayload:
		return validateGamificationUpdate(value)
	case *models.GamificationUpdatePayload:
		return validateGamificationUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ActionValidator) validateEnqueueRequest(_ context.Context, req models.EnqueueRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldActionType, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldActionType:
			if !req.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownActionType, req.Type)
			}
		case FieldPayload:
			if err := validatePayload(req.Type, req.Payload); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ActionValidator) validatePendingAction(ctx context.Context, action models.PendingAction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldActionID, FieldUserID, FieldActionType, FieldPayload}
	}

	req := models.EnqueueRequest{Type: action.Type, Payload: action.Payload}
	for _, f := range fields {
		switch f {
		case FieldActionID:
			if action.ID == "" {
				return ErrInvalidActionID
			}
		case FieldUserID:
			if action.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldActionType, FieldPayload:
			if err := v.validateEnqueueRequest(ctx, req, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePayload decodes raw into the payload type of actionType and checks it.
func validatePayload(actionType models.ActionType, raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyPayload
	}

	switch actionType {
	case models.ActionQuizAttempt:
		var p models.QuizAttemptPayload
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return validateQuizAttempt(p)
	case models.ActionProgressUpdate:
		var p models.ProgressUpdatePayload
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return validateProgressUpdate(p)
	case models.ActionGamificationUpdate:
		var p models.GamificationUpdatePayload
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return validateGamificationUpdate(p)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownActionType, actionType)
	}
}

func validateQuizAttempt(p models.QuizAttemptPayload) error {
	if p.QuizID == "" {
		return ErrEmptyQuizID
	}
	if p.MaxScore <= 0 || p.Score < 0 || p.Score > p.MaxScore {
		return ErrInvalidScore
	}
	if p.CompletedAt.IsZero() {
		return fmt.Errorf("%w: completed_at", ErrMissingTimestamp)
	}
	if !p.StartedAt.IsZero() && p.StartedAt.After(p.CompletedAt) {
		return ErrInvalidAttemptTimes
	}
	for _, a := range p.Answers {
		if a.QuestionID == "" {
			return ErrEmptyQuestionID
		}
	}
	return nil
}

func validateProgressUpdate(p models.ProgressUpdatePayload) error {
	if p.CourseID == "" {
		return ErrEmptyCourseID
	}
	if p.LessonID == "" {
		return ErrEmptyLessonID
	}
	if p.Percent < 0 || p.Percent > 100 {
		return ErrInvalidProgress
	}
	if p.UpdatedAt.IsZero() {
		return fmt.Errorf("%w: updated_at", ErrMissingTimestamp)
	}
	return nil
}

func validateGamificationUpdate(p models.GamificationUpdatePayload) error {
	if p.TotalXP < 0 {
		return ErrNegativeXP
	}
	if p.Level < 1 {
		return ErrInvalidLevel
	}
	if p.StreakDays < 0 {
		return ErrNegativeStreak
	}
	for _, b := range p.Badges {
		if b == "" {
			return ErrEmptyBadge
		}
	}
	if p.UpdatedAt.IsZero() {
		return fmt.Errorf("%w: updated_at", ErrMissingTimestamp)
	}
	return nil
}
