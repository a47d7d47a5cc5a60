package common

// Registration statuses. Draft never reaches the server, it is client-side scratch
// state prior to the first successful submission.
const (
	Submitted = "Submitted"
	Withdrawn = "Withdrawn"
	Closed    = "Closed"
)

// Competition statuses
const (
	CompetitionOpen   = "Open"
	CompetitionClosed = "Closed"
)

// Transition kinds carried on acknowledgment events
const (
	RegistrationCreated = "Created"
	RegistrationAmended = "Amended"
)

// Names of the partial unique indexes guarding registration slots. The pre-check in
// the service is optimistic only; these indexes are the source of truth under races.
const (
	ConstraintParticipantSlot = "uq_registration_participant"
	ConstraintIdeaSlot        = "uq_registration_idea"
)
