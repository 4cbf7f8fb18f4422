package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrNoDatabase = errors.New("database not configured")
)
