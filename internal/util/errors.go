package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrSkillNotFound        = errors.New("skill not found")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrAttemptSubmitted     = errors.New("attempt already submitted")
	ErrIncompleteSubmission = errors.New("all questions must be answered")
	ErrAttemptNotCompleted  = errors.New("attempt not completed")
	ErrProjectNotFound      = errors.New("project not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
)
