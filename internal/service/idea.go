package service

import (
	"context"
	"errors"

	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/repo"
	"ideathon-registration-api/internal/repo/repo_errors"
)

// IdeaService is the catalog's read side plus the minimal producer; the registration
// engine itself never mutates ideas.
type IdeaService struct {
	ideaRepo repo.Idea
}

func NewIdeaService(repos *repo.Repositories) *IdeaService {
	return &IdeaService{ideaRepo: repos.Idea}
}

func (s *IdeaService) CreateIdea(ctx context.Context, input *entity.CreateIdeaInput) (*entity.IdeaOutputModel, error) {
	id, err := s.ideaRepo.CreateIdea(ctx, input)
	if err != nil {
		return nil, err
	}

	idea, err := s.ideaRepo.GetIdeaById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapIdea(idea), nil
}

func (s *IdeaService) GetIdeaById(ctx context.Context, ideaId string) (*entity.IdeaOutputModel, error) {
	idea, err := s.ideaRepo.GetIdeaById(ctx, ideaId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrIdeaNotFound
		}

		return nil, err
	}

	return mapIdea(idea), nil
}

func (s *IdeaService) GetUserIdeas(ctx context.Context, participantId string, pg *entity.PaginationInput) ([]entity.IdeaOutputModel, error) {
	ideas, err := s.ideaRepo.GetIdeasByParticipantId(ctx, participantId, pg)
	if err != nil {
		return nil, err
	}

	return mapIdeas(ideas), nil
}
