package services

import "errors"

// ErrUserNotFound is returned when a user reference (id or demo alias) resolves to nothing.
var ErrUserNotFound = errors.New("User not found")
