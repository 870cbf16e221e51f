// services/errors.go - Shared Service Error Values
package services

import "errors"

// Service-level failures are exposed as distinct values so callers can
// discriminate them with errors.Is. Period state-machine failures
// (models.ErrOutOfPeriod, models.ErrAlreadyCompleted, models.ErrUnknownRecurrence)
// propagate from the models package unchanged.
var (
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrNotParticipating     = errors.New("not participating in this challenge")
	ErrAlreadyParticipating = errors.New("already participating in this challenge")
	ErrRecordNotFound       = errors.New("no period record found for this participation")
	ErrDuplicateRecord      = errors.New("period record already exists for this period")
)
