package repository

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
