package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Registration struct {
	Id             uuid.UUID `json:"id" db:"id"`
	CompetitionId  uuid.UUID `json:"competitionId" db:"competition_id"`
	ParticipantId  uuid.UUID `json:"participantId" db:"participant_id"`
	IdeaId         uuid.UUID `json:"ideaId" db:"idea_id"`
	TeamName       string    `json:"teamName" db:"team_name"`
	TeamMembers    []string  `json:"teamMembers" db:"team_members"`
	Age            int       `json:"age" db:"age"`
	TeamSize       int       `json:"teamSize" db:"team_size"`
	ContactEmail   string    `json:"contactEmail" db:"contact_email"`
	ContactPhone   string    `json:"contactPhone" db:"contact_phone"`
	PitchDetails   string    `json:"pitchDetails" db:"pitch_details"`
	RepositoryUrl  string    `json:"repositoryUrl" db:"repository_url"`
	Documents      []string  `json:"documents" db:"documents"`
	AcceptedTerms  bool      `json:"acceptedTerms" db:"accepted_terms"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	LastModifiedAt time.Time `json:"lastModifiedAt" db:"last_modified_at"`
}

// Payload shared by first submission and amendment. CompetitionId, ParticipantId and
// IdeaId identify the binding on first submission; on amendment only ParticipantId is
// consulted (for the ownership check), the binding itself is immutable.
type RegistrationPayload struct {
	CompetitionId string
	ParticipantId string
	IdeaId        string
	TeamName      string
	TeamMembers   []string
	Age           int
	TeamSize      int
	ContactEmail  string
	ContactPhone  string
	PitchDetails  string
	RepositoryUrl string
	Documents     []string
	AcceptedTerms bool
}

// service + repo input model
type CreateRegistrationInput struct {
	Payload        *RegistrationPayload // given
	Status         string               // should be set: "Submitted"
	CreatedAt      time.Time            // should be set: clock instant of the transition
	LastModifiedAt time.Time            // should be set: same instant
	// Id UUID sets automatically
}

// service + repo input model
type AmendRegistrationInput struct {
	Payload        *RegistrationPayload // given
	LastModifiedAt time.Time            // should be set: clock instant of the transition
}

// controller model
type RegistrationOutputModel struct {
	Id             string   `json:"id"`
	CompetitionId  string   `json:"competitionId"`
	ParticipantId  string   `json:"participantId"`
	IdeaId         string   `json:"ideaId"`
	TeamName       string   `json:"teamName"`
	TeamMembers    []string `json:"teamMembers"`
	Age            int      `json:"age"`
	TeamSize       int      `json:"teamSize"`
	ContactEmail   string   `json:"contactEmail"`
	ContactPhone   string   `json:"contactPhone"`
	PitchDetails   string   `json:"pitchDetails"`
	RepositoryUrl  string   `json:"repositoryUrl,omitempty"`
	Documents      []string `json:"documents"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
	LastModifiedAt string   `json:"lastModifiedAt"`
}
