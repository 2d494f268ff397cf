package repository

import "errors"

// ErrNotFound is returned when a referenced id or username does not resolve.
var ErrNotFound = errors.New("record not found")
