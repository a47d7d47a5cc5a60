package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ideathon-registration-api/internal/common"
	"ideathon-registration-api/internal/entity"

	"github.com/google/uuid"
)

func newCompetitionFixture() (*CompetitionService, *fakeCompetitionRepo, *fakeRegistrationRepo) {
	competitionRepo := newFakeCompetitionRepo()
	registrationRepo := newFakeRegistrationRepo()
	service := &CompetitionService{
		competitionRepo:  competitionRepo,
		registrationRepo: registrationRepo,
		clock:            func() time.Time { return duringRegistration },
	}

	return service, competitionRepo, registrationRepo
}

func TestCreateCompetitionValidatesTimeWindow(t *testing.T) {
	service, _, _ := newCompetitionFixture()

	input := &entity.CreateCompetitionInput{
		Name: "Backwards", Description: "deadline precedes opening",
		OpensAt:              registrationClose,
		RegistrationDeadline: opensAt,
		MinAge:               18, MaxAge: 35, MinTeamSize: 1, MaxTeamSize: 5,
	}
	if _, err := service.CreateCompetition(context.Background(), input); !errors.Is(err, ErrInvalidTimeWindow) {
		t.Fatalf("expected ErrInvalidTimeWindow, got %v", err)
	}

	early := opensAt.Add(time.Hour)
	input = &entity.CreateCompetitionInput{
		Name: "Early Update Deadline", Description: "update deadline precedes registration deadline",
		OpensAt:              opensAt,
		RegistrationDeadline: registrationClose,
		UpdateDeadline:       &early,
		MinAge:               18, MaxAge: 35, MinTeamSize: 1, MaxTeamSize: 5,
	}
	if _, err := service.CreateCompetition(context.Background(), input); !errors.Is(err, ErrInvalidTimeWindow) {
		t.Fatalf("expected ErrInvalidTimeWindow, got %v", err)
	}
}

func TestCreateCompetitionValidatesEligibilityRanges(t *testing.T) {
	service, _, _ := newCompetitionFixture()

	input := &entity.CreateCompetitionInput{
		Name: "Inverted", Description: "min above max",
		OpensAt:              opensAt,
		RegistrationDeadline: registrationClose,
		MinAge:               36, MaxAge: 18, MinTeamSize: 1, MaxTeamSize: 5,
	}
	if _, err := service.CreateCompetition(context.Background(), input); !errors.Is(err, ErrInvalidEligibilityRange) {
		t.Fatalf("expected ErrInvalidEligibilityRange, got %v", err)
	}
}

func TestCreateCompetitionStartsOpen(t *testing.T) {
	service, _, _ := newCompetitionFixture()

	input := &entity.CreateCompetitionInput{
		Name: "Spring Ideathon", Description: "annual event",
		OpensAt:              opensAt,
		RegistrationDeadline: registrationClose,
		MinAge:               18, MaxAge: 35, MinTeamSize: 1, MaxTeamSize: 5,
	}
	competition, err := service.CreateCompetition(context.Background(), input)
	if err != nil {
		t.Fatalf("create competition: %v", err)
	}
	if competition.Status != common.CompetitionOpen {
		t.Fatalf("expected Open, got %q", competition.Status)
	}
}

func TestCloseCompetitionClosesSubmittedRegistrations(t *testing.T) {
	service, competitionRepo, registrationRepo := newCompetitionFixture()

	competition := testCompetition()
	competitionRepo.competitions[competition.Id.String()] = *competition

	submittedA := activeRegistration(competition.Id.String(), uuid.NewString(), uuid.NewString())
	submittedB := activeRegistration(competition.Id.String(), uuid.NewString(), uuid.NewString())
	withdrawn := activeRegistration(competition.Id.String(), uuid.NewString(), uuid.NewString())
	withdrawn.Status = common.Withdrawn
	for _, reg := range []entity.Registration{submittedA, submittedB, withdrawn} {
		registrationRepo.registrations[reg.Id.String()] = reg
	}

	closed, err := service.CloseCompetition(context.Background(), competition.Id.String())
	if err != nil {
		t.Fatalf("close competition: %v", err)
	}
	if closed != 2 {
		t.Fatalf("expected 2 registrations closed, got %d", closed)
	}

	if registrationRepo.registrations[submittedA.Id.String()].Status != common.Closed {
		t.Fatal("expected submitted registration moved to Closed")
	}
	if registrationRepo.registrations[withdrawn.Id.String()].Status != common.Withdrawn {
		t.Fatal("withdrawn registration must stay Withdrawn")
	}
	if competitionRepo.updatedStatus[competition.Id.String()] != common.CompetitionClosed {
		t.Fatal("expected competition marked Closed")
	}
}

func TestCloseCompetitionTwice(t *testing.T) {
	service, competitionRepo, _ := newCompetitionFixture()

	competition := testCompetition()
	competition.Status = common.CompetitionClosed
	competitionRepo.competitions[competition.Id.String()] = *competition

	if _, err := service.CloseCompetition(context.Background(), competition.Id.String()); !errors.Is(err, ErrCompetitionClosed) {
		t.Fatalf("expected ErrCompetitionClosed, got %v", err)
	}
}

func TestCloseCompetitionNotFound(t *testing.T) {
	service, _, _ := newCompetitionFixture()

	if _, err := service.CloseCompetition(context.Background(), uuid.NewString()); !errors.Is(err, ErrCompetitionNotFound) {
		t.Fatalf("expected ErrCompetitionNotFound, got %v", err)
	}
}
