package service

import (
	"context"
	"errors"
	"time"

	"ideathon-registration-api/internal/common"
	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/repo"
	"ideathon-registration-api/internal/repo/repo_errors"
)

type CompetitionService struct {
	competitionRepo  repo.Competition
	registrationRepo repo.Registration
	clock            func() time.Time
}

func NewCompetitionService(repos *repo.Repositories) *CompetitionService {
	return &CompetitionService{
		competitionRepo:  repos.Competition,
		registrationRepo: repos.Registration,
		clock:            time.Now,
	}
}

func (s *CompetitionService) CreateCompetition(ctx context.Context, input *entity.CreateCompetitionInput) (*entity.CompetitionOutputModel, error) {
	if !input.OpensAt.Before(input.RegistrationDeadline) {
		return nil, ErrInvalidTimeWindow
	}
	if input.UpdateDeadline != nil && input.UpdateDeadline.Before(input.RegistrationDeadline) {
		return nil, ErrInvalidTimeWindow
	}
	if input.MinAge > input.MaxAge || input.MinTeamSize > input.MaxTeamSize {
		return nil, ErrInvalidEligibilityRange
	}

	input.Status = common.CompetitionOpen
	id, err := s.competitionRepo.CreateCompetition(ctx, input)
	if err != nil {
		return nil, err
	}

	competition, err := s.competitionRepo.GetCompetitionById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapCompetition(competition), nil
}

func (s *CompetitionService) GetCompetitionById(ctx context.Context, competitionId string) (*entity.CompetitionOutputModel, error) {
	competition, err := s.competitionRepo.GetCompetitionById(ctx, competitionId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrCompetitionNotFound
		}

		return nil, err
	}

	return mapCompetition(competition), nil
}

func (s *CompetitionService) GetOpenCompetitions(ctx context.Context, pg *entity.PaginationInput) ([]entity.CompetitionOutputModel, error) {
	competitions, err := s.competitionRepo.GetCompetitionsByStatus(ctx, common.CompetitionOpen, pg)
	if err != nil {
		return nil, err
	}

	return mapCompetitions(competitions), nil
}

// CloseCompetition ends the competition and moves its Submitted registrations to
// Closed, the system-initiated terminal transition. Returns how many registrations
// were closed.
func (s *CompetitionService) CloseCompetition(ctx context.Context, competitionId string) (int, error) {
	competition, err := s.competitionRepo.GetCompetitionById(ctx, competitionId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return 0, ErrCompetitionNotFound
		}

		return 0, err
	}

	if competition.Status == common.CompetitionClosed {
		return 0, ErrCompetitionClosed
	}

	if err := s.competitionRepo.UpdateCompetitionStatusById(ctx, competitionId, common.CompetitionClosed); err != nil {
		return 0, err
	}

	return s.registrationRepo.CloseSubmittedRegistrations(ctx, competitionId, s.clock())
}
