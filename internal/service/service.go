package service

import (
	"context"
	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Competition interface {
	CreateCompetition(ctx context.Context, input *entity.CreateCompetitionInput) (*entity.CompetitionOutputModel, error)
	GetCompetitionById(ctx context.Context, competitionId string) (*entity.CompetitionOutputModel, error)
	GetOpenCompetitions(ctx context.Context, pg *entity.PaginationInput) ([]entity.CompetitionOutputModel, error)
	CloseCompetition(ctx context.Context, competitionId string) (int, error)
}

type Idea interface {
	CreateIdea(ctx context.Context, input *entity.CreateIdeaInput) (*entity.IdeaOutputModel, error)
	GetIdeaById(ctx context.Context, ideaId string) (*entity.IdeaOutputModel, error)
	GetUserIdeas(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.IdeaOutputModel, error)
}

type Registration interface {
	SubmitRegistration(ctx context.Context, payload *entity.RegistrationPayload) (*entity.RegistrationOutputModel, error)
	AmendRegistration(ctx context.Context, registrationId string, payload *entity.RegistrationPayload) (*entity.RegistrationOutputModel, error)
	WithdrawRegistration(ctx context.Context, registrationId string, participantId string) error

	GetRegistrationById(ctx context.Context, registrationId string) (*entity.RegistrationOutputModel, error)
	GetRegistrationStatusById(ctx context.Context, registrationId string, participantId string) (string, error)
	GetUserRegistrations(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.RegistrationOutputModel, error)
	GetCompetitionRegistrations(ctx context.Context, competitionId string, pg *entity.PaginationInput) ([]entity.RegistrationOutputModel, error)
}

type Services struct {
	Diagnostics  Diagnostics
	Competition  Competition
	Idea         Idea
	Registration Registration
}

func NewServices(repos *repo.Repositories, policy EligibilityPolicy, acknowledger Acknowledger) *Services {
	return &Services{
		Diagnostics:  NewDiagnosticsService(repos),
		Competition:  NewCompetitionService(repos),
		Idea:         NewIdeaService(repos),
		Registration: NewRegistrationService(repos, policy, acknowledger),
	}
}
