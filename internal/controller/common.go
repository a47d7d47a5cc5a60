package controller

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"ideathon-registration-api/internal/service"

	"github.com/go-playground/validator/v10"
)

const (
	defaultLimit  = 5
	defaultOffset = 0
)

type errorResponse struct {
	Reason string `json:"reason"`
}

// eligibilityResponse carries the violated rule and its parameters so the UI can
// render rule-specific messaging (exact bounds, exact deadline).
type eligibilityResponse struct {
	Reason   string `json:"reason"`
	Rule     string `json:"rule"`
	Field    string `json:"field,omitempty"`
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}

func newEligibilityResponse(e *service.EligibilityError) eligibilityResponse {
	resp := eligibilityResponse{
		Reason: e.Message,
		Rule:   string(e.Kind),
		Field:  e.Field,
	}

	switch e.Kind {
	case service.AgeOutOfRange, service.TeamSizeOutOfRange:
		resp.Min = e.Min
		resp.Max = e.Max
	case service.NotYetOpen, service.DeadlinePassed:
		resp.Deadline = e.Deadline.Format(time.RFC3339)
	}

	return resp
}

func getAllErrorMessages(err error) string {
	var builder strings.Builder
	for _, fe := range err.(validator.ValidationErrors) {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	s, i := "", int32(0)
	if fe.Type() == reflect.TypeOf(s) {
		return getMessageForString(fe)
	}

	if fe.Type() == reflect.TypeOf(i) {
		return getMessageForInt(fe)
	}

	if fe.Type() == reflect.TypeOf(0) {
		return getMessageForInt(fe)
	}

	return "Unknown error (2)"
}

func getMessageForInt(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	case "uuid":
		return "should be a valid uuid"
	case "datetime":
		return "should be a valid RFC3339 instant"
	case "email":
		return "should be a valid email address"
	case "url":
		return "should be a valid url"
	}

	return "incorrect value passed"
}
