package repo

import (
	"context"
	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/repo/pgdb"
	"ideathon-registration-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type Competition interface {
	CreateCompetition(ctx context.Context, input *entity.CreateCompetitionInput) (uuid.UUID, error)
	GetCompetitionById(ctx context.Context, id string) (*entity.Competition, error)
	GetCompetitionsByStatus(ctx context.Context, status string, pg *entity.PaginationInput) ([]entity.Competition, error)
	UpdateCompetitionStatusById(ctx context.Context, id string, newStatus string) error
}

type Idea interface {
	CreateIdea(ctx context.Context, input *entity.CreateIdeaInput) (uuid.UUID, error)
	GetIdeaById(ctx context.Context, id string) (*entity.Idea, error)
	GetIdeasByParticipantId(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.Idea, error)
}

type Registration interface {
	CreateRegistration(ctx context.Context, input *entity.CreateRegistrationInput) (uuid.UUID, error)
	GetRegistrationById(ctx context.Context, id string) (*entity.Registration, error)
	GetActiveRegistrations(ctx context.Context, competitionId string) ([]entity.Registration, error)
	GetRegistrationsByParticipantId(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.Registration, error)
	GetRegistrationsByCompetitionId(ctx context.Context, competitionId string, pg *entity.PaginationInput) ([]entity.Registration, error)
	AmendRegistrationById(ctx context.Context, id string, input *entity.AmendRegistrationInput) error
	UpdateRegistrationStatusById(ctx context.Context, id string, newStatus string, modifiedAt time.Time) error
	CloseSubmittedRegistrations(ctx context.Context, competitionId string, modifiedAt time.Time) (int, error)
}

type Repositories struct {
	Diagnostics
	Competition
	Idea
	Registration
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics:  pgdb.NewDiagnosticsRepo(p),
		Competition:  pgdb.NewCompetitionRepo(p),
		Idea:         pgdb.NewIdeaRepo(p),
		Registration: pgdb.NewRegistrationRepo(p),
	}
}
