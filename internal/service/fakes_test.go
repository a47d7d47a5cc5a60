package service

import (
	"context"
	"time"

	"ideathon-registration-api/internal/common"
	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type fakeCompetitionRepo struct {
	competitions  map[string]entity.Competition
	updatedStatus map[string]string
}

func newFakeCompetitionRepo(competitions ...entity.Competition) *fakeCompetitionRepo {
	r := &fakeCompetitionRepo{
		competitions:  make(map[string]entity.Competition),
		updatedStatus: make(map[string]string),
	}
	for _, c := range competitions {
		r.competitions[c.Id.String()] = c
	}
	return r
}

func (r *fakeCompetitionRepo) CreateCompetition(ctx context.Context, input *entity.CreateCompetitionInput) (uuid.UUID, error) {
	id := uuid.New()
	r.competitions[id.String()] = entity.Competition{
		Id:                   id,
		Name:                 input.Name,
		Description:          input.Description,
		Status:               input.Status,
		OpensAt:              input.OpensAt,
		RegistrationDeadline: input.RegistrationDeadline,
		UpdateDeadline:       input.UpdateDeadline,
		MinAge:               input.MinAge,
		MaxAge:               input.MaxAge,
		MinTeamSize:          input.MinTeamSize,
		MaxTeamSize:          input.MaxTeamSize,
	}
	return id, nil
}

func (r *fakeCompetitionRepo) GetCompetitionById(ctx context.Context, id string) (*entity.Competition, error) {
	c, ok := r.competitions[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCompetitionRepo) GetCompetitionsByStatus(ctx context.Context, status string, pg *entity.PaginationInput) ([]entity.Competition, error) {
	out := make([]entity.Competition, 0)
	for _, c := range r.competitions {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompetitionRepo) UpdateCompetitionStatusById(ctx context.Context, id string, newStatus string) error {
	c, ok := r.competitions[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	c.Status = newStatus
	r.competitions[id] = c
	r.updatedStatus[id] = newStatus
	return nil
}

type fakeIdeaRepo struct {
	ideas map[string]entity.Idea
}

func newFakeIdeaRepo(ideas ...entity.Idea) *fakeIdeaRepo {
	r := &fakeIdeaRepo{ideas: make(map[string]entity.Idea)}
	for _, i := range ideas {
		r.ideas[i.Id.String()] = i
	}
	return r
}

func (r *fakeIdeaRepo) CreateIdea(ctx context.Context, input *entity.CreateIdeaInput) (uuid.UUID, error) {
	id := uuid.New()
	r.ideas[id.String()] = entity.Idea{
		Id:            id,
		ParticipantId: uuid.MustParse(input.ParticipantId),
		Title:         input.Title,
		Category:      input.Category,
		Pitch:         input.Pitch,
	}
	return id, nil
}

func (r *fakeIdeaRepo) GetIdeaById(ctx context.Context, id string) (*entity.Idea, error) {
	i, ok := r.ideas[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	return &i, nil
}

func (r *fakeIdeaRepo) GetIdeasByParticipantId(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.Idea, error) {
	out := make([]entity.Idea, 0)
	for _, i := range r.ideas {
		if i.ParticipantId.String() == participantId {
			out = append(out, i)
		}
	}
	return out, nil
}

// fakeRegistrationRepo keeps registrations in memory and mimics the store's
// behavior closely enough for the state-machine tests. createFunc, when set,
// intercepts inserts so tests can inject unique-constraint violations.
type fakeRegistrationRepo struct {
	registrations map[string]entity.Registration
	createFunc    func(ctx context.Context, input *entity.CreateRegistrationInput) (uuid.UUID, error)
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{registrations: make(map[string]entity.Registration)}
}

func (r *fakeRegistrationRepo) CreateRegistration(ctx context.Context, input *entity.CreateRegistrationInput) (uuid.UUID, error) {
	if r.createFunc != nil {
		return r.createFunc(ctx, input)
	}
	return r.insert(input)
}

func (r *fakeRegistrationRepo) insert(input *entity.CreateRegistrationInput) (uuid.UUID, error) {
	id := uuid.New()
	p := input.Payload
	r.registrations[id.String()] = entity.Registration{
		Id:             id,
		CompetitionId:  uuid.MustParse(p.CompetitionId),
		ParticipantId:  uuid.MustParse(p.ParticipantId),
		IdeaId:         uuid.MustParse(p.IdeaId),
		TeamName:       p.TeamName,
		TeamMembers:    p.TeamMembers,
		Age:            p.Age,
		TeamSize:       p.TeamSize,
		ContactEmail:   p.ContactEmail,
		ContactPhone:   p.ContactPhone,
		PitchDetails:   p.PitchDetails,
		RepositoryUrl:  p.RepositoryUrl,
		Documents:      p.Documents,
		AcceptedTerms:  p.AcceptedTerms,
		Status:         input.Status,
		CreatedAt:      input.CreatedAt,
		LastModifiedAt: input.LastModifiedAt,
	}
	return id, nil
}

func (r *fakeRegistrationRepo) GetRegistrationById(ctx context.Context, id string) (*entity.Registration, error) {
	reg, ok := r.registrations[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	return &reg, nil
}

func (r *fakeRegistrationRepo) GetActiveRegistrations(ctx context.Context, competitionId string) ([]entity.Registration, error) {
	out := make([]entity.Registration, 0)
	for _, reg := range r.registrations {
		if reg.CompetitionId.String() == competitionId && reg.Status == common.Submitted {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepo) GetRegistrationsByParticipantId(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.Registration, error) {
	out := make([]entity.Registration, 0)
	for _, reg := range r.registrations {
		if reg.ParticipantId.String() == participantId {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepo) GetRegistrationsByCompetitionId(ctx context.Context, competitionId string, pg *entity.PaginationInput) ([]entity.Registration, error) {
	out := make([]entity.Registration, 0)
	for _, reg := range r.registrations {
		if reg.CompetitionId.String() == competitionId {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepo) AmendRegistrationById(ctx context.Context, id string, input *entity.AmendRegistrationInput) error {
	reg, ok := r.registrations[id]
	if !ok || reg.Status != common.Submitted {
		return repo_errors.ErrNotFound
	}

	p := input.Payload
	reg.TeamName = p.TeamName
	reg.TeamMembers = p.TeamMembers
	reg.Age = p.Age
	reg.TeamSize = p.TeamSize
	reg.ContactEmail = p.ContactEmail
	reg.ContactPhone = p.ContactPhone
	reg.PitchDetails = p.PitchDetails
	reg.RepositoryUrl = p.RepositoryUrl
	reg.Documents = p.Documents
	reg.AcceptedTerms = p.AcceptedTerms
	reg.LastModifiedAt = input.LastModifiedAt
	r.registrations[id] = reg
	return nil
}

func (r *fakeRegistrationRepo) UpdateRegistrationStatusById(ctx context.Context, id string, newStatus string, modifiedAt time.Time) error {
	reg, ok := r.registrations[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	reg.Status = newStatus
	reg.LastModifiedAt = modifiedAt
	r.registrations[id] = reg
	return nil
}

func (r *fakeRegistrationRepo) CloseSubmittedRegistrations(ctx context.Context, competitionId string, modifiedAt time.Time) (int, error) {
	closed := 0
	for id, reg := range r.registrations {
		if reg.CompetitionId.String() == competitionId && reg.Status == common.Submitted {
			reg.Status = common.Closed
			reg.LastModifiedAt = modifiedAt
			r.registrations[id] = reg
			closed++
		}
	}
	return closed, nil
}

type fakeAcknowledger struct {
	events  []AcknowledgmentEvent
	emitErr error
}

func (a *fakeAcknowledger) Emit(ctx context.Context, event AcknowledgmentEvent) error {
	a.events = append(a.events, event)
	return a.emitErr
}
