package notifier

import (
	"context"
	"log/slog"

	"ideathon-registration-api/internal/service"
)

// LogAcknowledger is the in-process acknowledgment transport: it records the event on
// the structured log where the notification collaborator tails it. Swappable for a
// queue or webhook without touching the engine.
type LogAcknowledger struct {
	log *slog.Logger
}

func NewLogAcknowledger() *LogAcknowledger {
	return &LogAcknowledger{log: slog.Default()}
}

func (a *LogAcknowledger) Emit(ctx context.Context, event service.AcknowledgmentEvent) error {
	a.log.InfoContext(ctx, "registration acknowledgment",
		"registrationId", event.RegistrationId,
		"competitionId", event.CompetitionId,
		"ideaId", event.IdeaId,
		"participantId", event.ParticipantId,
		"contactEmail", event.ContactEmail,
		"transition", event.Transition,
		"summary", event.Summary,
		"occurredAt", event.OccurredAt,
	)

	return nil
}
