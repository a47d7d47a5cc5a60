package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/repo/repo_errors"
	"ideathon-registration-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type CompetitionRepo struct {
	*postgres.Postgres
}

func NewCompetitionRepo(pgdb *postgres.Postgres) *CompetitionRepo {
	return &CompetitionRepo{pgdb}
}

const competitionColumns = "created_at, id, name, description, status, opens_at, registration_deadline, update_deadline, min_age, max_age, min_team_size, max_team_size"

func (r *CompetitionRepo) CreateCompetition(ctx context.Context, input *entity.CreateCompetitionInput) (uuid.UUID, error) {
	createSql, args, _ := r.SqlBuilder.
		Insert("competition").
		Columns("name", "description", "status", "opens_at", "registration_deadline", "update_deadline",
			"min_age", "max_age", "min_team_size", "max_team_size").
		Values(input.Name, input.Description, input.Status, input.OpensAt, input.RegistrationDeadline, input.UpdateDeadline,
			input.MinAge, input.MaxAge, input.MinTeamSize, input.MaxTeamSize).
		Suffix("RETURNING id").
		ToSql()

	var competitionId uuid.UUID
	err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&competitionId)
	if err != nil {
		return uuid.Nil, err
	}

	return competitionId, nil
}

func (r *CompetitionRepo) GetCompetitionById(ctx context.Context, id string) (*entity.Competition, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getSql, args, _ := r.SqlBuilder.
		Select(competitionColumns).
		From("competition").
		Where("id = ?", uuidForm).
		ToSql()

	row := r.Database.QueryRowContext(ctx, getSql, args...)
	competition, err := scanCompetition(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return competition, nil
}

func (r *CompetitionRepo) GetCompetitionsByStatus(ctx context.Context, status string, pg *entity.PaginationInput) ([]entity.Competition, error) {
	getSql, args, _ := r.SqlBuilder.
		Select(competitionColumns).
		From("competition").
		Where("status = ?", status).
		OrderBy("opens_at ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	competitions := make([]entity.Competition, 0)
	for rows.Next() {
		competition, err := scanCompetition(rows)
		if err != nil {
			return competitions, err
		}
		competitions = append(competitions, *competition)
	}
	if err = rows.Err(); err != nil {
		return competitions, err
	}

	return competitions, nil
}

func (r *CompetitionRepo) UpdateCompetitionStatusById(ctx context.Context, id string, newStatus string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("competition").
		Set("status", newStatus).
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompetition(row rowScanner) (*entity.Competition, error) {
	var competition entity.Competition
	var createdAt time.Time
	var updateDeadline sql.NullTime

	err := row.Scan(&createdAt, &competition.Id, &competition.Name, &competition.Description, &competition.Status,
		&competition.OpensAt, &competition.RegistrationDeadline, &updateDeadline,
		&competition.MinAge, &competition.MaxAge, &competition.MinTeamSize, &competition.MaxTeamSize)
	if err != nil {
		return nil, err
	}

	competition.CreatedAt = createdAt.Format(time.RFC3339)
	if updateDeadline.Valid {
		deadline := updateDeadline.Time
		competition.UpdateDeadline = &deadline
	}

	return &competition, nil
}
