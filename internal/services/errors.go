package services

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be > 0")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrChargeLimitExceeded = errors.New("charge limit exceeded")
)
