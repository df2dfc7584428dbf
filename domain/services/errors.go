package services

import "errors"

var (
	ErrSubjectNotFound     = errors.New("subject not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrReminderAlreadySent = errors.New("reminder already sent for this task")
	ErrSweepInProgress     = errors.New("reminder sweep already in progress")
	ErrUnsupportedChannel  = errors.New("unsupported notification channel")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCode        = errors.New("invalid or expired recovery code")

	ErrNewsNotFound    = errors.New("news not found")
	ErrChatUnavailable = errors.New("chat assistant is not configured")
)
