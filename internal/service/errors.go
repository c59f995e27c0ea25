// Package service implements the memorization, session, quiz and daily-verse
// services on top of the durable store and the content catalog.
package service

import "errors"

// Common service errors.
var (
	// ErrSessionNotFound is returned when a session ID does not refer to an
	// open session. A session that was already completed is treated the same
	// way: it can no longer be completed.
	ErrSessionNotFound = errors.New("session not found")

	// ErrQuizNotFound is returned when a quiz ID is not in the quiz bank.
	ErrQuizNotFound = errors.New("quiz not found")
)
