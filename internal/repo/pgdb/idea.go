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

type IdeaRepo struct {
	*postgres.Postgres
}

func NewIdeaRepo(pgdb *postgres.Postgres) *IdeaRepo {
	return &IdeaRepo{pgdb}
}

func (r *IdeaRepo) CreateIdea(ctx context.Context, input *entity.CreateIdeaInput) (uuid.UUID, error) {
	participantId, err := uuid.Parse(input.ParticipantId)
	if err != nil {
		return uuid.Nil, err
	}

	createSql, args, _ := r.SqlBuilder.
		Insert("idea").
		Columns("participant_id", "title", "category", "pitch").
		Values(participantId, input.Title, input.Category, input.Pitch).
		Suffix("RETURNING id").
		ToSql()

	var ideaId uuid.UUID
	err = r.Database.QueryRowContext(ctx, createSql, args...).Scan(&ideaId)
	if err != nil {
		return uuid.Nil, err
	}

	return ideaId, nil
}

func (r *IdeaRepo) GetIdeaById(ctx context.Context, id string) (*entity.Idea, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "participant_id", "title", "category", "pitch").
		From("idea").
		Where("id = ?", uuidForm).
		ToSql()

	var idea entity.Idea
	var createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getSql, args...)
	err = row.Scan(&createdAt, &idea.Id, &idea.ParticipantId, &idea.Title, &idea.Category, &idea.Pitch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	idea.CreatedAt = createdAt.Format(time.RFC3339)

	return &idea, nil
}

func (r *IdeaRepo) GetIdeasByParticipantId(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.Idea, error) {
	uuidForm, err := uuid.Parse(participantId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getSql, args, _ := r.SqlBuilder.
		Select("created_at", "id", "participant_id", "title", "category", "pitch").
		From("idea").
		Where("participant_id = ?", uuidForm).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ideas := make([]entity.Idea, 0)
	for rows.Next() {
		var idea entity.Idea
		var createdAt time.Time
		if err := rows.Scan(&createdAt, &idea.Id, &idea.ParticipantId, &idea.Title, &idea.Category, &idea.Pitch); err != nil {
			return ideas, err
		}
		idea.CreatedAt = createdAt.Format(time.RFC3339)
		ideas = append(ideas, idea)
	}
	if err = rows.Err(); err != nil {
		return ideas, err
	}

	return ideas, nil
}
