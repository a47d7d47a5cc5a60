package entity

import (
	"github.com/google/uuid"
)

// db model; the registration engine only ever reads ideas
type Idea struct {
	Id            uuid.UUID `json:"id" db:"id"`
	ParticipantId uuid.UUID `json:"participantId" db:"participant_id"`
	Title         string    `json:"title" db:"title"`
	Category      string    `json:"category" db:"category"`
	Pitch         string    `json:"pitch" db:"pitch"`
	CreatedAt     string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateIdeaInput struct {
	ParticipantId string // given
	Title         string // given
	Category      string // given
	Pitch         string // given
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type IdeaOutputModel struct {
	Id            string `json:"id"`
	ParticipantId string `json:"participantId"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Pitch         string `json:"pitch"`
	CreatedAt     string `json:"createdAt"`
}
