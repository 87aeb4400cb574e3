package service

import (
	"github.com/emzola/librarium/data"
)

// ErrFailedValidation is re-exported so callers can detect precondition
// failures without importing the data package. Every error returned by the
// service wraps this sentinel; lookups that simply find nothing report
// absence with a boolean instead of an error.
var ErrFailedValidation = data.ErrFailedValidation

// failedValidation logs the rejected operation at DEBUG level and wraps
// the validator error map in a single error value.
func (s *service) failedValidation(errorMap map[string]string) error {
	s.logger.PrintDebug("operation rejected", errorMap)
	return data.FailedValidation(errorMap)
}
