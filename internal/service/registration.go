package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ideathon-registration-api/internal/common"
	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/repo"
	"ideathon-registration-api/internal/repo/repo_errors"
)

type RegistrationService struct {
	registrationRepo repo.Registration
	competitionRepo  repo.Competition
	ideaRepo         repo.Idea
	acknowledger     Acknowledger
	policy           EligibilityPolicy
	clock            func() time.Time
}

func NewRegistrationService(repos *repo.Repositories, policy EligibilityPolicy, acknowledger Acknowledger) *RegistrationService {
	return &RegistrationService{
		registrationRepo: repos.Registration,
		competitionRepo:  repos.Competition,
		ideaRepo:         repos.Idea,
		acknowledger:     acknowledger,
		policy:           policy,
		clock:            time.Now,
	}
}

// SubmitRegistration runs the full pipeline for a first submission: idea lookup,
// eligibility, uniqueness pre-check, then the Draft -> Submitted transition. Any
// rejection leaves no trace; only a committed insert is ever visible.
func (s *RegistrationService) SubmitRegistration(ctx context.Context, payload *entity.RegistrationPayload) (*entity.RegistrationOutputModel, error) {
	competition, err := s.competitionRepo.GetCompetitionById(ctx, payload.CompetitionId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrCompetitionNotFound
		}

		return nil, err
	}

	if competition.Status != common.CompetitionOpen {
		return nil, ErrCompetitionClosed
	}

	idea, err := s.ideaRepo.GetIdeaById(ctx, payload.IdeaId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrIdeaNotFound
		}

		return nil, err
	}
	if idea.ParticipantId.String() != payload.ParticipantId {
		return nil, ErrNotIdeaOwner
	}

	now := s.clock()
	if eligibilityErr := evaluateEligibility(payload, competition, now, false, s.policy); eligibilityErr != nil {
		return nil, eligibilityErr
	}

	active, err := s.registrationRepo.GetActiveRegistrations(ctx, payload.CompetitionId)
	if err != nil {
		return nil, err
	}
	if err := checkUniqueness(payload, active, ""); err != nil {
		return nil, err
	}

	id, err := s.registrationRepo.CreateRegistration(ctx, &entity.CreateRegistrationInput{
		Payload:        payload,
		Status:         common.Submitted,
		CreatedAt:      now,
		LastModifiedAt: now,
	})
	if err != nil {
		// Lost the race against a concurrent submission: the pre-check passed but the
		// store's unique index fired. Report the precise conflict, not a generic one.
		var violation *repo_errors.UniqueViolationError
		if errors.As(err, &violation) {
			return nil, s.resolveConflict(ctx, payload, violation)
		}

		return nil, err
	}

	registration, err := s.registrationRepo.GetRegistrationById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	s.acknowledge(ctx, registration, competition, idea, common.RegistrationCreated, now)

	return mapRegistration(registration), nil
}

// AmendRegistration is the re-entrant Submitted -> Submitted transition. The id,
// createdAt and the (competition, participant, idea) binding are immutable; every
// other field is replaced and lastModifiedAt moves forward.
func (s *RegistrationService) AmendRegistration(ctx context.Context, registrationId string, payload *entity.RegistrationPayload) (*entity.RegistrationOutputModel, error) {
	registration, err := s.registrationRepo.GetRegistrationById(ctx, registrationId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}

		return nil, err
	}

	if registration.ParticipantId.String() != payload.ParticipantId {
		return nil, ErrNotRegistrationOwner
	}
	if registration.Status != common.Submitted {
		return nil, ErrRegistrationNotActive
	}

	competition, err := s.competitionRepo.GetCompetitionById(ctx, registration.CompetitionId.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrCompetitionNotFound
		}

		return nil, err
	}

	now := s.clock()
	if eligibilityErr := evaluateEligibility(payload, competition, now, true, s.policy); eligibilityErr != nil {
		return nil, eligibilityErr
	}

	err = s.registrationRepo.AmendRegistrationById(ctx, registrationId, &entity.AmendRegistrationInput{
		Payload:        payload,
		LastModifiedAt: now,
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRegistrationNotActive
		}

		return nil, err
	}

	registration, err = s.registrationRepo.GetRegistrationById(ctx, registrationId)
	if err != nil {
		return nil, err
	}

	idea, err := s.ideaRepo.GetIdeaById(ctx, registration.IdeaId.String())
	if err != nil {
		return nil, err
	}

	s.acknowledge(ctx, registration, competition, idea, common.RegistrationAmended, now)

	return mapRegistration(registration), nil
}

// WithdrawRegistration is the participant-initiated terminal transition.
func (s *RegistrationService) WithdrawRegistration(ctx context.Context, registrationId string, participantId string) error {
	registration, err := s.registrationRepo.GetRegistrationById(ctx, registrationId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrRegistrationNotFound
		}

		return err
	}

	if registration.ParticipantId.String() != participantId {
		return ErrNotRegistrationOwner
	}
	if registration.Status != common.Submitted {
		return ErrRegistrationNotActive
	}

	return s.registrationRepo.UpdateRegistrationStatusById(ctx, registrationId, common.Withdrawn, s.clock())
}

func (s *RegistrationService) GetRegistrationById(ctx context.Context, registrationId string) (*entity.RegistrationOutputModel, error) {
	registration, err := s.registrationRepo.GetRegistrationById(ctx, registrationId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRegistrationNotFound
		}

		return nil, err
	}

	return mapRegistration(registration), nil
}

// Status is owner-only: registrations are not public records.
func (s *RegistrationService) GetRegistrationStatusById(ctx context.Context, registrationId string, participantId string) (string, error) {
	registration, err := s.registrationRepo.GetRegistrationById(ctx, registrationId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return "", ErrRegistrationNotFound
		}

		return "", err
	}

	if registration.ParticipantId.String() != participantId {
		return "", ErrNotRegistrationOwner
	}

	return registration.Status, nil
}

func (s *RegistrationService) GetUserRegistrations(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.RegistrationOutputModel, error) {
	registrations, err := s.registrationRepo.GetRegistrationsByParticipantId(ctx, participantId, pg)
	if err != nil {
		return nil, err
	}

	return mapRegistrations(registrations), nil
}

func (s *RegistrationService) GetCompetitionRegistrations(ctx context.Context, competitionId string, pg *entity.PaginationInput) ([]entity.RegistrationOutputModel, error) {
	if _, err := s.competitionRepo.GetCompetitionById(ctx, competitionId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrCompetitionNotFound
		}

		return nil, err
	}

	registrations, err := s.registrationRepo.GetRegistrationsByCompetitionId(ctx, competitionId, pg)
	if err != nil {
		return nil, err
	}

	return mapRegistrations(registrations), nil
}

// resolveConflict re-fetches after a constraint violation and reports the reason the
// snapshot would now show; falls back to the constraint name if the winner is already
// gone again.
func (s *RegistrationService) resolveConflict(ctx context.Context, payload *entity.RegistrationPayload, violation *repo_errors.UniqueViolationError) error {
	active, err := s.registrationRepo.GetActiveRegistrations(ctx, payload.CompetitionId)
	if err == nil {
		if checkErr := checkUniqueness(payload, active, ""); checkErr != nil {
			return checkErr
		}
	}

	return uniqueViolationToSentinel(violation)
}

// acknowledge is best-effort: the transition is already committed, so an emitter
// failure is logged and dropped rather than rolled back.
func (s *RegistrationService) acknowledge(ctx context.Context, registration *entity.Registration, competition *entity.Competition, idea *entity.Idea, transition string, now time.Time) {
	if s.acknowledger == nil {
		return
	}

	event := buildAcknowledgment(registration, competition, idea, transition, now)
	if err := s.acknowledger.Emit(ctx, event); err != nil {
		slog.Error("acknowledgment emission failed",
			"registrationId", event.RegistrationId,
			"transition", transition,
			"error", err)
	}
}
