package service

import "errors"

var (
	ErrCompetitionNotFound  = errors.New("competition not found")
	ErrIdeaNotFound         = errors.New("idea not found")
	ErrRegistrationNotFound = errors.New("registration not found")

	ErrNotIdeaOwner         = errors.New("idea belongs to another participant")
	ErrNotRegistrationOwner = errors.New("registration belongs to another participant")

	ErrAlreadyRegistered    = errors.New("participant already has an active registration for this competition")
	ErrIdeaAlreadyCommitted = errors.New("idea is already bound to an active registration for this competition")

	ErrCompetitionClosed     = errors.New("competition is closed")
	ErrRegistrationNotActive = errors.New("registration is not in the Submitted state")

	ErrInvalidTimeWindow       = errors.New("competition must open before its registration deadline, and the update deadline may not precede it")
	ErrInvalidEligibilityRange = errors.New("eligibility bounds must satisfy min <= max")
)
