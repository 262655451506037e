package services

import "errors"

// Domain errors surfaced to handlers, which translate them into the
// response envelope and status code.
var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTitleTaken         = errors.New("a blog with this title already exists")
	ErrSlugTaken          = errors.New("another blog already uses this title")
)
