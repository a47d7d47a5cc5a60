package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Competition struct {
	Id                   uuid.UUID  `json:"id" db:"id"`
	Name                 string     `json:"name" db:"name"`
	Description          string     `json:"description" db:"description"`
	Status               string     `json:"status" db:"status"`
	OpensAt              time.Time  `json:"opensAt" db:"opens_at"`
	RegistrationDeadline time.Time  `json:"registrationDeadline" db:"registration_deadline"`
	UpdateDeadline       *time.Time `json:"updateDeadline" db:"update_deadline"`
	MinAge               int        `json:"minAge" db:"min_age"`
	MaxAge               int        `json:"maxAge" db:"max_age"`
	MinTeamSize          int        `json:"minTeamSize" db:"min_team_size"`
	MaxTeamSize          int        `json:"maxTeamSize" db:"max_team_size"`
	CreatedAt            string     `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateCompetitionInput struct {
	Name                 string     // given
	Description          string     // given
	OpensAt              time.Time  // given
	RegistrationDeadline time.Time  // given
	UpdateDeadline       *time.Time // given, optional
	MinAge               int        // given
	MaxAge               int        // given
	MinTeamSize          int        // given
	MaxTeamSize          int        // given
	Status               string     // should be set: "Open"
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model
type CompetitionOutputModel struct {
	Id                   string `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Status               string `json:"status"`
	OpensAt              string `json:"opensAt"`
	RegistrationDeadline string `json:"registrationDeadline"`
	UpdateDeadline       string `json:"updateDeadline,omitempty"`
	MinAge               int    `json:"minAge"`
	MaxAge               int    `json:"maxAge"`
	MinTeamSize          int    `json:"minTeamSize"`
	MaxTeamSize          int    `json:"maxTeamSize"`
	CreatedAt            string `json:"createdAt"`
}
