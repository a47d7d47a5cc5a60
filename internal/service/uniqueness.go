package service

import (
	"ideathon-registration-api/internal/common"
	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/repo/repo_errors"
)

// checkUniqueness is the optimistic pre-check over a snapshot of the competition's
// active registrations. ownId is the registration being amended, empty for a first
// submission; an amendment is exempt from conflicting with itself. The partial
// unique indexes remain authoritative under concurrent submissions.
func checkUniqueness(payload *entity.RegistrationPayload, active []entity.Registration, ownId string) error {
	for i := range active {
		existing := &active[i]
		if existing.Status != common.Submitted {
			continue
		}
		if ownId != "" && existing.Id.String() == ownId {
			continue
		}

		if existing.ParticipantId.String() == payload.ParticipantId {
			return ErrAlreadyRegistered
		}
		if existing.IdeaId.String() == payload.IdeaId {
			return ErrIdeaAlreadyCommitted
		}
	}

	return nil
}

// uniqueViolationToSentinel maps a store-level constraint violation to the matching
// user-facing conflict error.
func uniqueViolationToSentinel(violation *repo_errors.UniqueViolationError) error {
	switch violation.Constraint {
	case common.ConstraintParticipantSlot:
		return ErrAlreadyRegistered
	case common.ConstraintIdeaSlot:
		return ErrIdeaAlreadyCommitted
	}

	return violation
}
