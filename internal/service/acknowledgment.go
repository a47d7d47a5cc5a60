package service

import (
	"context"
	"fmt"
	"time"

	"ideathon-registration-api/internal/common"
	"ideathon-registration-api/internal/entity"
)

// AcknowledgmentEvent is handed to the notification collaborator after a successful
// registration transition. Delivery is best-effort and at-least-once; duplicates are
// tolerable downstream.
type AcknowledgmentEvent struct {
	RegistrationId  string    `json:"registrationId"`
	CompetitionId   string    `json:"competitionId"`
	CompetitionName string    `json:"competitionName"`
	IdeaId          string    `json:"ideaId"`
	IdeaTitle       string    `json:"ideaTitle"`
	ParticipantId   string    `json:"participantId"`
	TeamName        string    `json:"teamName"`
	ContactEmail    string    `json:"contactEmail"`
	ContactPhone    string    `json:"contactPhone"`
	Transition      string    `json:"transition"`
	Summary         string    `json:"summary"`
	OccurredAt      time.Time `json:"occurredAt"`
}

type Acknowledger interface {
	Emit(ctx context.Context, event AcknowledgmentEvent) error
}

func buildAcknowledgment(registration *entity.Registration, competition *entity.Competition, idea *entity.Idea, transition string, now time.Time) AcknowledgmentEvent {
	summary := fmt.Sprintf("team %q registered idea %q for %q", registration.TeamName, idea.Title, competition.Name)
	if transition == common.RegistrationAmended {
		summary = fmt.Sprintf("team %q updated its registration of idea %q for %q", registration.TeamName, idea.Title, competition.Name)
	}

	return AcknowledgmentEvent{
		RegistrationId:  registration.Id.String(),
		CompetitionId:   competition.Id.String(),
		CompetitionName: competition.Name,
		IdeaId:          idea.Id.String(),
		IdeaTitle:       idea.Title,
		ParticipantId:   registration.ParticipantId.String(),
		TeamName:        registration.TeamName,
		ContactEmail:    registration.ContactEmail,
		ContactPhone:    registration.ContactPhone,
		Transition:      transition,
		Summary:         summary,
		OccurredAt:      now,
	}
}
