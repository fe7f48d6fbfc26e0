package models

import "errors"

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrSlotInPast       = errors.New("selected time slot has already passed")
	ErrValidation       = errors.New("validation error")
)

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("a user with this email already exists")
)
