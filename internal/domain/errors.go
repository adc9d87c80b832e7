package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrServiceNotFound      = errors.New("service not found")
	ErrCategoryNotFound     = errors.New("service category not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAttachmentNotFound   = errors.New("attachment not found")

	ErrUsernameTaken = errors.New("username already taken")
	ErrNIKRegistered = errors.New("nik already registered")

	// ErrApplicationNumberExhausted is returned when a fresh application
	// number could not be generated after the bounded number of retries.
	ErrApplicationNumberExhausted = errors.New("application number space exhausted")
)
