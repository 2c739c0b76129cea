package models

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameTaken    = errors.New("username already registered")
	ErrSessionNotFound  = errors.New("session not found")
	ErrCacheMiss        = errors.New("cache miss")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)
