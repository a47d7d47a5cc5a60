package service

import (
	"time"

	"ideathon-registration-api/internal/entity"
)

func mapCompetition(c *entity.Competition) *entity.CompetitionOutputModel {
	out := &entity.CompetitionOutputModel{
		Id:                   c.Id.String(),
		Name:                 c.Name,
		Description:          c.Description,
		Status:               c.Status,
		OpensAt:              c.OpensAt.Format(time.RFC3339),
		RegistrationDeadline: c.RegistrationDeadline.Format(time.RFC3339),
		MinAge:               c.MinAge,
		MaxAge:               c.MaxAge,
		MinTeamSize:          c.MinTeamSize,
		MaxTeamSize:          c.MaxTeamSize,
		CreatedAt:            c.CreatedAt,
	}
	if c.UpdateDeadline != nil {
		out.UpdateDeadline = c.UpdateDeadline.Format(time.RFC3339)
	}

	return out
}

func mapCompetitions(c []entity.Competition) []entity.CompetitionOutputModel {
	s := make([]entity.CompetitionOutputModel, 0)
	for _, competition := range c {
		s = append(s, *mapCompetition(&competition))
	}

	return s
}

func mapIdea(i *entity.Idea) *entity.IdeaOutputModel {
	return &entity.IdeaOutputModel{
		Id:            i.Id.String(),
		ParticipantId: i.ParticipantId.String(),
		Title:         i.Title,
		Category:      i.Category,
		Pitch:         i.Pitch,
		CreatedAt:     i.CreatedAt,
	}
}

func mapIdeas(i []entity.Idea) []entity.IdeaOutputModel {
	s := make([]entity.IdeaOutputModel, 0)
	for _, idea := range i {
		s = append(s, *mapIdea(&idea))
	}

	return s
}

func mapRegistration(r *entity.Registration) *entity.RegistrationOutputModel {
	return &entity.RegistrationOutputModel{
		Id:             r.Id.String(),
		CompetitionId:  r.CompetitionId.String(),
		ParticipantId:  r.ParticipantId.String(),
		IdeaId:         r.IdeaId.String(),
		TeamName:       r.TeamName,
		TeamMembers:    r.TeamMembers,
		Age:            r.Age,
		TeamSize:       r.TeamSize,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		PitchDetails:   r.PitchDetails,
		RepositoryUrl:  r.RepositoryUrl,
		Documents:      r.Documents,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		LastModifiedAt: r.LastModifiedAt.Format(time.RFC3339),
	}
}

func mapRegistrations(r []entity.Registration) []entity.RegistrationOutputModel {
	s := make([]entity.RegistrationOutputModel, 0)
	for _, registration := range r {
		s = append(s, *mapRegistration(&registration))
	}

	return s
}
