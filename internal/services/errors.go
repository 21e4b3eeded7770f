// Package services defines the business logic for mood logging, journaling,
// chat sessions, the survey scorer, and the analytics aggregator. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrTokenRequired is returned when an operation is attempted without a
	// session token (the partition key for all per-user data).
	ErrTokenRequired = errors.New("session token required")

	// ErrInvalidMoodScore is returned when a mood score falls outside the
	// 1–10 scale.
	ErrInvalidMoodScore = errors.New("mood score must be between 1 and 10")

	// ErrMoodLabelRequired is returned when a mood log is submitted without
	// a label.
	ErrMoodLabelRequired = errors.New("mood label required")

	// ErrContentRequired is returned when a journal entry or chat message is
	// submitted with empty content.
	ErrContentRequired = errors.New("content required")

	// ErrSessionNotFound indicates that the referenced chat session does not
	// exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidRole is returned when a chat message role is neither "user"
	// nor "assistant".
	ErrInvalidRole = errors.New("role must be \"user\" or \"assistant\"")

	// ErrEmptyConversation is returned when a chat request carries no
	// messages to answer.
	ErrEmptyConversation = errors.New("conversation is empty")

	// ErrNoResponses is returned when a survey submission contains no
	// answers at all.
	ErrNoResponses = errors.New("survey responses required")
)
