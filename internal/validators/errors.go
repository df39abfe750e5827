// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidActionID   = errors.New("invalid action ID")
	ErrUnknownActionType = errors.New("unknown action type")
	ErrEmptyPayload      = errors.New("payload is required")
	ErrMalformedPayload  = errors.New("malformed payload")

	ErrEmptyQuizID         = errors.New("quiz ID is required")
	ErrInvalidScore        = errors.New("score must be within [0, max_score] and max_score positive")
	ErrEmptyQuestionID     = errors.New("answer question ID is required")
	ErrInvalidAttemptTimes = errors.New("attempt must complete after it started")

	ErrEmptyCourseID   = errors.New("course ID is required")
	ErrEmptyLessonID   = errors.New("lesson ID is required")
	ErrInvalidProgress = errors.New("progress percent must be within [0, 100]")

	ErrNegativeXP     = errors.New("total XP cannot be negative")
	ErrInvalidLevel   = errors.New("level must be at least 1")
	ErrNegativeStreak = errors.New("streak days cannot be negative")
	ErrEmptyBadge     = errors.New("badge name cannot be empty")

	ErrMissingTimestamp = errors.New("timestamp is required")
)
