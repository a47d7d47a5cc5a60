package service

import (
	"testing"
	"time"

	"ideathon-registration-api/internal/common"
	"ideathon-registration-api/internal/entity"

	"github.com/google/uuid"
)

var (
	opensAt            = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	registrationClose  = opensAt.Add(7 * 24 * time.Hour)
	duringRegistration = opensAt.Add(24 * time.Hour)
)

func testCompetition() *entity.Competition {
	return &entity.Competition{
		Id:                   uuid.New(),
		Name:                 "Spring Ideathon",
		Status:               common.CompetitionOpen,
		OpensAt:              opensAt,
		RegistrationDeadline: registrationClose,
		MinAge:               18,
		MaxAge:               35,
		MinTeamSize:          1,
		MaxTeamSize:          5,
	}
}

func validPayload(competition *entity.Competition) *entity.RegistrationPayload {
	return &entity.RegistrationPayload{
		CompetitionId: competition.Id.String(),
		ParticipantId: uuid.NewString(),
		IdeaId:        uuid.NewString(),
		TeamName:      "Night Owls",
		TeamMembers:   []string{"Priya", "Dev"},
		Age:           20,
		TeamSize:      3,
		ContactEmail:  "owls@example.com",
		ContactPhone:  "1234567890",
		PitchDetails:  "A marketplace matching idle lab equipment with student teams that need it.",
		AcceptedTerms: true,
	}
}

func requireEligible(t *testing.T, err *EligibilityError) {
	t.Helper()
	if err != nil {
		t.Fatalf("expected eligible, got %s: %s", err.Kind, err.Message)
	}
}

func requireKind(t *testing.T, err *EligibilityError, kind EligibilityKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got eligible", kind)
	}
	if err.Kind != kind {
		t.Fatalf("expected %s, got %s: %s", kind, err.Kind, err.Message)
	}
}

func TestEvaluateBeforeOpening(t *testing.T) {
	competition := testCompetition()
	err := evaluateEligibility(validPayload(competition), competition, opensAt.Add(-time.Second), false, DefaultEligibilityPolicy())
	requireKind(t, err, NotYetOpen)
	if !err.Deadline.Equal(opensAt) {
		t.Fatalf("expected opening instant %v carried, got %v", opensAt, err.Deadline)
	}
}

func TestEvaluateTemporalBoundaries(t *testing.T) {
	competition := testCompetition()
	policy := DefaultEligibilityPolicy()

	// opensAt <= now and now <= deadline are both inclusive
	requireEligible(t, evaluateEligibility(validPayload(competition), competition, opensAt, false, policy))
	requireEligible(t, evaluateEligibility(validPayload(competition), competition, registrationClose, false, policy))

	err := evaluateEligibility(validPayload(competition), competition, registrationClose.Add(time.Second), false, policy)
	requireKind(t, err, DeadlinePassed)
	if !err.Deadline.Equal(registrationClose) {
		t.Fatalf("expected deadline %v carried, got %v", registrationClose, err.Deadline)
	}
}

func TestEvaluateAmendmentWithoutUpdateDeadline(t *testing.T) {
	competition := testCompetition()
	err := evaluateEligibility(validPayload(competition), competition, registrationClose.Add(time.Second), true, DefaultEligibilityPolicy())
	requireKind(t, err, DeadlinePassed)
}

func TestEvaluateAmendmentWithUpdateDeadline(t *testing.T) {
	competition := testCompetition()
	updateDeadline := registrationClose.Add(48 * time.Hour)
	competition.UpdateDeadline = &updateDeadline

	at := registrationClose.Add(time.Hour)
	requireEligible(t, evaluateEligibility(validPayload(competition), competition, at, true, DefaultEligibilityPolicy()))

	// the extended window applies to amendments only
	err := evaluateEligibility(validPayload(competition), competition, at, false, DefaultEligibilityPolicy())
	requireKind(t, err, DeadlinePassed)

	err = evaluateEligibility(validPayload(competition), competition, updateDeadline.Add(time.Second), true, DefaultEligibilityPolicy())
	requireKind(t, err, DeadlinePassed)
}

func TestEvaluateAgeBoundaries(t *testing.T) {
	competition := testCompetition()
	policy := DefaultEligibilityPolicy()

	for _, age := range []int{18, 35} {
		payload := validPayload(competition)
		payload.Age = age
		requireEligible(t, evaluateEligibility(payload, competition, duringRegistration, false, policy))
	}

	for _, age := range []int{17, 36} {
		payload := validPayload(competition)
		payload.Age = age
		err := evaluateEligibility(payload, competition, duringRegistration, false, policy)
		requireKind(t, err, AgeOutOfRange)
		if err.Min != 18 || err.Max != 35 {
			t.Fatalf("expected bounds 18..35 carried, got %d..%d", err.Min, err.Max)
		}
	}
}

func TestEvaluateTeamSizeBoundaries(t *testing.T) {
	competition := testCompetition()
	policy := DefaultEligibilityPolicy()

	for _, size := range []int{1, 5} {
		payload := validPayload(competition)
		payload.TeamSize = size
		requireEligible(t, evaluateEligibility(payload, competition, duringRegistration, false, policy))
	}

	payload := validPayload(competition)
	payload.TeamSize = 6
	err := evaluateEligibility(payload, competition, duringRegistration, false, policy)
	requireKind(t, err, TeamSizeOutOfRange)
	if err.Min != 1 || err.Max != 5 {
		t.Fatalf("expected bounds 1..5 carried, got %d..%d", err.Min, err.Max)
	}
}

func TestEvaluateMobileNumber(t *testing.T) {
	competition := testCompetition()
	policy := DefaultEligibilityPolicy()

	for _, phone := range []string{"12345", "12345678901", "12345abcde", ""} {
		payload := validPayload(competition)
		payload.ContactPhone = phone
		err := evaluateEligibility(payload, competition, duringRegistration, false, policy)
		requireKind(t, err, InvalidField)
		if err.Field != RuleMobileNumber {
			t.Fatalf("expected mobile-number rule named, got %q", err.Field)
		}
	}

	payload := validPayload(competition)
	payload.ContactPhone = "1234567890"
	requireEligible(t, evaluateEligibility(payload, competition, duringRegistration, false, policy))
}

func TestEvaluateEmailSuffix(t *testing.T) {
	competition := testCompetition()
	policy := DefaultEligibilityPolicy()

	payload := validPayload(competition)
	payload.ContactEmail = "team@example.dev"
	err := evaluateEligibility(payload, competition, duringRegistration, false, policy)
	requireKind(t, err, InvalidField)
	if err.Field != RuleEmail {
		t.Fatalf("expected email rule named, got %q", err.Field)
	}

	// suffix list is policy, not a hard-coded invariant
	policy.AllowedEmailSuffixes = []string{".dev"}
	requireEligible(t, evaluateEligibility(payload, competition, duringRegistration, false, policy))
}

func TestEvaluateRepositoryUrl(t *testing.T) {
	competition := testCompetition()
	policy := DefaultEligibilityPolicy()

	payload := validPayload(competition)
	payload.RepositoryUrl = ""
	requireEligible(t, evaluateEligibility(payload, competition, duringRegistration, false, policy))

	payload.RepositoryUrl = "https://github.com/night-owls/marketplace"
	requireEligible(t, evaluateEligibility(payload, competition, duringRegistration, false, policy))

	for _, url := range []string{"github.com/night-owls/marketplace", "https://example.com/x/y", "https://github.com/incomplete"} {
		payload.RepositoryUrl = url
		err := evaluateEligibility(payload, competition, duringRegistration, false, policy)
		requireKind(t, err, InvalidField)
		if err.Field != RuleRepositoryUrl {
			t.Fatalf("expected repository-url rule named for %q, got %q", url, err.Field)
		}
	}
}

func TestEvaluatePitchLengthIsPolicy(t *testing.T) {
	competition := testCompetition()
	policy := DefaultEligibilityPolicy()

	payload := validPayload(competition)
	payload.PitchDetails = "too short"
	err := evaluateEligibility(payload, competition, duringRegistration, false, policy)
	requireKind(t, err, InvalidField)
	if err.Field != RulePitchDetails {
		t.Fatalf("expected pitch rule named, got %q", err.Field)
	}

	policy.PitchMinLength = 5
	requireEligible(t, evaluateEligibility(payload, competition, duringRegistration, false, policy))
}

func TestEvaluateTermsMustBeAccepted(t *testing.T) {
	competition := testCompetition()
	payload := validPayload(competition)
	payload.AcceptedTerms = false

	err := evaluateEligibility(payload, competition, duringRegistration, false, DefaultEligibilityPolicy())
	requireKind(t, err, InvalidField)
	if err.Field != RuleAcceptedTerms {
		t.Fatalf("expected terms rule named, got %q", err.Field)
	}
}

func TestEvaluateShortCircuitsInOrder(t *testing.T) {
	competition := testCompetition()
	payload := validPayload(competition)
	payload.Age = 40
	payload.ContactPhone = "123"

	// temporal gate wins over age, age wins over field shape
	err := evaluateEligibility(payload, competition, opensAt.Add(-time.Hour), false, DefaultEligibilityPolicy())
	requireKind(t, err, NotYetOpen)

	err = evaluateEligibility(payload, competition, duringRegistration, false, DefaultEligibilityPolicy())
	requireKind(t, err, AgeOutOfRange)
}
