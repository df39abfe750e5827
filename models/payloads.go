// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// QuizAttemptPayload is the body of an ActionQuizAttempt action.
type QuizAttemptPayload struct {
	QuizID      string       `json:"quiz_id"`
	CourseID    string       `json:"course_id,omitempty"`
	Score       float64      `json:"score"`
	MaxScore    float64      `json:"max_score"`
	Answers     []QuizAnswer `json:"answers,omitempty"`
	StartedAt   time.Time    `json:"started_at,omitzero"`
	CompletedAt time.Time    `json:"completed_at"`
}

// QuizAnswer is a single answered question inside a quiz attempt.
type QuizAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
	Correct    bool   `json:"correct"`
}

// ProgressUpdatePayload is the body of an ActionProgressUpdate action.
// Percent is the absolute completion in the range [0, 100].
type ProgressUpdatePayload struct {
	CourseID  string    `json:"course_id"`
	LessonID  string    `json:"lesson_id"`
	Percent   float64   `json:"percent"`
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GamificationUpdatePayload is the body of an ActionGamificationUpdate action.
// All values are absolute totals so that replaying an older update after a
// newer one is harmless on the remote side, which keeps the latest UpdatedAt.
type GamificationUpdatePayload struct {
	TotalXP    int64     `json:"total_xp"`
	Level      int       `json:"level"`
	StreakDays int       `json:"streak_days"`
	Badges     []string  `json:"badges,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
