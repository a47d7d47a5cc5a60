package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"ideathon-registration-api/internal/common"
	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/repo/repo_errors"
	"ideathon-registration-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RegistrationRepo struct {
	*postgres.Postgres
}

func NewRegistrationRepo(pgdb *postgres.Postgres) *RegistrationRepo {
	return &RegistrationRepo{pgdb}
}

const registrationColumns = "id, competition_id, participant_id, idea_id, team_name, team_members, age, team_size, contact_email, contact_phone, pitch_details, repository_url, documents, accepted_terms, status, created_at, last_modified_at"

const uniqueViolationCode = "23505"

func (r *RegistrationRepo) CreateRegistration(ctx context.Context, input *entity.CreateRegistrationInput) (uuid.UUID, error) {
	p := input.Payload
	competitionId, err := uuid.Parse(p.CompetitionId)
	if err != nil {
		return uuid.Nil, err
	}
	participantId, err := uuid.Parse(p.ParticipantId)
	if err != nil {
		return uuid.Nil, err
	}
	ideaId, err := uuid.Parse(p.IdeaId)
	if err != nil {
		return uuid.Nil, err
	}

	var repositoryUrl sql.NullString
	if p.RepositoryUrl != "" {
		repositoryUrl = sql.NullString{String: p.RepositoryUrl, Valid: true}
	}

	createSql, args, _ := r.SqlBuilder.
		Insert("registration").
		Columns("competition_id", "participant_id", "idea_id", "team_name", "team_members",
			"age", "team_size", "contact_email", "contact_phone", "pitch_details",
			"repository_url", "documents", "accepted_terms", "status", "created_at", "last_modified_at").
		Values(competitionId, participantId, ideaId, p.TeamName, pq.Array(p.TeamMembers),
			p.Age, p.TeamSize, p.ContactEmail, p.ContactPhone, p.PitchDetails,
			repositoryUrl, pq.Array(p.Documents), p.AcceptedTerms, input.Status, input.CreatedAt, input.LastModifiedAt).
		Suffix("RETURNING id").
		ToSql()

	var registrationId uuid.UUID
	err = r.Database.QueryRowContext(ctx, createSql, args...).Scan(&registrationId)
	if err != nil {
		return uuid.Nil, translateUniqueViolation(err)
	}

	return registrationId, nil
}

func (r *RegistrationRepo) GetRegistrationById(ctx context.Context, id string) (*entity.Registration, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getSql, args, _ := r.SqlBuilder.
		Select(registrationColumns).
		From("registration").
		Where("id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRowContext(ctx, getSql, args...)
	registration, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return registration, nil
}

// GetActiveRegistrations feeds the uniqueness pre-check with a snapshot of the
// competition's Submitted registrations.
func (r *RegistrationRepo) GetActiveRegistrations(ctx context.Context, competitionId string) ([]entity.Registration, error) {
	uuidForm, err := uuid.Parse(competitionId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getSql, args, _ := r.SqlBuilder.
		Select(registrationColumns).
		From("registration").
		Where("competition_id = ?", uuidForm).
		Where("status = ?", common.Submitted).
		ToSql()

	return r.queryRegistrations(ctx, getSql, args)
}

func (r *RegistrationRepo) GetRegistrationsByParticipantId(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.Registration, error) {
	uuidForm, err := uuid.Parse(participantId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getSql, args, _ := r.SqlBuilder.
		Select(registrationColumns).
		From("registration").
		Where("participant_id = ?", uuidForm).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryRegistrations(ctx, getSql, args)
}

func (r *RegistrationRepo) GetRegistrationsByCompetitionId(ctx context.Context, competitionId string, pg *entity.PaginationInput) ([]entity.Registration, error) {
	uuidForm, err := uuid.Parse(competitionId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getSql, args, _ := r.SqlBuilder.
		Select(registrationColumns).
		From("registration").
		Where("competition_id = ?", uuidForm).
		OrderBy("created_at ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryRegistrations(ctx, getSql, args)
}

func (r *RegistrationRepo) AmendRegistrationById(ctx context.Context, id string, input *entity.AmendRegistrationInput) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	p := input.Payload
	var repositoryUrl sql.NullString
	if p.RepositoryUrl != "" {
		repositoryUrl = sql.NullString{String: p.RepositoryUrl, Valid: true}
	}

	// id, created_at and the (competition, participant, idea) binding never change here
	updateSql, args, _ := r.SqlBuilder.
		Update("registration").
		Set("team_name", p.TeamName).
		Set("team_members", pq.Array(p.TeamMembers)).
		Set("age", p.Age).
		Set("team_size", p.TeamSize).
		Set("contact_email", p.ContactEmail).
		Set("contact_phone", p.ContactPhone).
		Set("pitch_details", p.PitchDetails).
		Set("repository_url", repositoryUrl).
		Set("documents", pq.Array(p.Documents)).
		Set("accepted_terms", p.AcceptedTerms).
		Set("last_modified_at", input.LastModifiedAt).
		Where("id = ?", uuidForm).
		Where("status = ?", common.Submitted).
		ToSql()

	res, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return translateUniqueViolation(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *RegistrationRepo) UpdateRegistrationStatusById(ctx context.Context, id string, newStatus string, modifiedAt time.Time) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("registration").
		Set("status", newStatus).
		Set("last_modified_at", modifiedAt).
		Where("id = ?", uuidForm).
		ToSql()

	res, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *RegistrationRepo) CloseSubmittedRegistrations(ctx context.Context, competitionId string, modifiedAt time.Time) (int, error) {
	uuidForm, err := uuid.Parse(competitionId)
	if err != nil {
		return 0, repo_errors.ErrNotFound
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("registration").
		Set("status", common.Closed).
		Set("last_modified_at", modifiedAt).
		Where("competition_id = ?", uuidForm).
		Where("status = ?", common.Submitted).
		ToSql()

	res, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}

func (r *RegistrationRepo) queryRegistrations(ctx context.Context, sqlReq string, args []interface{}) ([]entity.Registration, error) {
	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]entity.Registration, 0)
	for rows.Next() {
		registration, err := scanRegistration(rows)
		if err != nil {
			return registrations, err
		}
		registrations = append(registrations, *registration)
	}
	if err = rows.Err(); err != nil {
		return registrations, err
	}

	return registrations, nil
}

func scanRegistration(row rowScanner) (*entity.Registration, error) {
	var registration entity.Registration
	var repositoryUrl sql.NullString

	err := row.Scan(&registration.Id, &registration.CompetitionId, &registration.ParticipantId, &registration.IdeaId,
		&registration.TeamName, pq.Array(&registration.TeamMembers), &registration.Age, &registration.TeamSize,
		&registration.ContactEmail, &registration.ContactPhone, &registration.PitchDetails,
		&repositoryUrl, pq.Array(&registration.Documents), &registration.AcceptedTerms,
		&registration.Status, &registration.CreatedAt, &registration.LastModifiedAt)
	if err != nil {
		return nil, err
	}

	registration.RepositoryUrl = repositoryUrl.String

	return &registration, nil
}

func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
		return &repo_errors.UniqueViolationError{Constraint: pqErr.Constraint}
	}

	return err
}
