package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"ideathon-registration-api/internal/entity"
)

type EligibilityKind string

const (
	NotYetOpen         EligibilityKind = "NotYetOpen"
	DeadlinePassed     EligibilityKind = "DeadlinePassed"
	AgeOutOfRange      EligibilityKind = "AgeOutOfRange"
	TeamSizeOutOfRange EligibilityKind = "TeamSizeOutOfRange"
	InvalidField       EligibilityKind = "InvalidField"
)

// Field rule names reported on InvalidField failures
const (
	RuleMobileNumber  = "contactPhone"
	RuleEmail         = "contactEmail"
	RuleRepositoryUrl = "repositoryUrl"
	RulePitchDetails  = "pitchDetails"
	RuleAcceptedTerms = "acceptedTerms"
)

// EligibilityError reports the first rule a candidate payload violated. Range kinds
// carry the competition's bounds, temporal kinds the relevant deadline, InvalidField
// the offending field rule, so the caller can render a rule-specific message.
type EligibilityError struct {
	Kind     EligibilityKind
	Field    string
	Min      int
	Max      int
	Deadline time.Time
	Message  string
}

func (e *EligibilityError) Error() string {
	return e.Message
}

// EligibilityPolicy holds the checks the platform treats as tunable policy rather
// than competition data.
type EligibilityPolicy struct {
	PitchMinLength       int
	AllowedEmailSuffixes []string
}

func DefaultEligibilityPolicy() EligibilityPolicy {
	return EligibilityPolicy{
		PitchMinLength:       50,
		AllowedEmailSuffixes: []string{".com", ".org", ".net", ".edu", ".in"},
	}
}

var (
	mobileNumberPattern  = regexp.MustCompile(`^[0-9]{10}$`)
	repositoryUrlPattern = regexp.MustCompile(`^https?://(github\.com|gitlab\.com|bitbucket\.org)/[\w.-]+/[\w.-]+/?$`)
)

// evaluateEligibility checks a candidate payload against a competition. Checks run
// in a fixed order and stop at the first failure so error messages are reproducible.
// Pure: no side effects, the caller supplies the instant to evaluate at.
// For amendments the temporal gate uses the competition's update deadline; with no
// update deadline configured, amendments are rejected once the registration deadline
// has passed.
func evaluateEligibility(payload *entity.RegistrationPayload, competition *entity.Competition, now time.Time, amendment bool, policy EligibilityPolicy) *EligibilityError {
	if now.Before(competition.OpensAt) {
		return &EligibilityError{
			Kind:     NotYetOpen,
			Deadline: competition.OpensAt,
			Message:  fmt.Sprintf("registration opens at %s", competition.OpensAt.Format(time.RFC3339)),
		}
	}

	deadline := competition.RegistrationDeadline
	if amendment && competition.UpdateDeadline != nil {
		deadline = *competition.UpdateDeadline
	}
	if now.After(deadline) {
		return &EligibilityError{
			Kind:     DeadlinePassed,
			Deadline: deadline,
			Message:  fmt.Sprintf("deadline passed at %s", deadline.Format(time.RFC3339)),
		}
	}

	if payload.Age < competition.MinAge || payload.Age > competition.MaxAge {
		return &EligibilityError{
			Kind:    AgeOutOfRange,
			Min:     competition.MinAge,
			Max:     competition.MaxAge,
			Message: fmt.Sprintf("age must be between %d and %d", competition.MinAge, competition.MaxAge),
		}
	}

	if payload.TeamSize < competition.MinTeamSize || payload.TeamSize > competition.MaxTeamSize {
		return &EligibilityError{
			Kind:    TeamSizeOutOfRange,
			Min:     competition.MinTeamSize,
			Max:     competition.MaxTeamSize,
			Message: fmt.Sprintf("team size must be between %d and %d", competition.MinTeamSize, competition.MaxTeamSize),
		}
	}

	if !mobileNumberPattern.MatchString(payload.ContactPhone) {
		return invalidField(RuleMobileNumber, "mobile number must be exactly 10 digits")
	}

	if !emailSuffixAllowed(payload.ContactEmail, policy.AllowedEmailSuffixes) {
		return invalidField(RuleEmail, "email must end in an accepted domain suffix")
	}

	if payload.RepositoryUrl != "" && !repositoryUrlPattern.MatchString(payload.RepositoryUrl) {
		return invalidField(RuleRepositoryUrl, "repository url must point to a hosted repository")
	}

	if len(payload.PitchDetails) < policy.PitchMinLength {
		return invalidField(RulePitchDetails, fmt.Sprintf("pitch details must be at least %d characters", policy.PitchMinLength))
	}

	if !payload.AcceptedTerms {
		return invalidField(RuleAcceptedTerms, "terms must be accepted")
	}

	return nil
}

func emailSuffixAllowed(email string, suffixes []string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	for _, suffix := range suffixes {
		if strings.HasSuffix(email, suffix) {
			return true
		}
	}

	return false
}

func invalidField(field string, message string) *EligibilityError {
	return &EligibilityError{Kind: InvalidField, Field: field, Message: message}
}
