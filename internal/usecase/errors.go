package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal error")
	ErrRoleNotFound       = errors.New("role not found")
	ErrInvalidUserProfile = errors.New("invalid user skill profile")
)
