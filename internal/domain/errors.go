package domain

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEventNotFound         = errors.New("event not found")
	ErrOriginRequired        = errors.New("origin header required")
	ErrAlreadyBooked         = errors.New("event already booked")
	ErrNotEventHost          = errors.New("not the event host")
	ErrEventAlreadyCompleted = errors.New("event already completed")
	ErrHostNotOnboarded      = errors.New("host has no connected account")
	ErrInvalidID             = errors.New("invalid id")
)
