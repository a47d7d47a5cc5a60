package controller

import (
	"errors"
	"net/http"

	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type registrationRoutesHandler struct {
	registrationService service.Registration
	validate            *validator.Validate
}

func newRegistrationRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *registrationRoutesHandler {
	h := &registrationRoutesHandler{registrationService: services.Registration, validate: v}

	outer.POST("/registrations/new", h.SubmitRegistration)
	outer.PATCH("/registrations/:registrationId/edit", h.AmendRegistration)
	outer.PUT("/registrations/:registrationId/withdraw", h.WithdrawRegistration)
	outer.GET("/registrations/:registrationId", h.GetRegistration)
	outer.GET("/registrations/:registrationId/status", h.GetRegistrationStatus)
	outer.GET("/registrations/my", h.GetUserRegistrations)

	return h
}

type registrationPayloadInput struct {
	CompetitionId string   `json:"competitionId" validate:"required,uuid"`
	ParticipantId string   `json:"participantId" validate:"required,uuid"`
	IdeaId        string   `json:"ideaId" validate:"required,uuid"`
	TeamName      string   `json:"teamName" validate:"required,max=100"`
	TeamMembers   []string `json:"teamMembers" validate:"dive,max=100"`
	Age           int      `json:"age" validate:"required,gte=0,lte=150"`
	TeamSize      int      `json:"teamSize" validate:"required,gte=1"`
	ContactEmail  string   `json:"contactEmail" validate:"required,max=100"`
	ContactPhone  string   `json:"contactPhone" validate:"required,max=20"`
	PitchDetails  string   `json:"pitchDetails" validate:"required,max=5000"`
	RepositoryUrl string   `json:"repositoryUrl" validate:"omitempty,max=200"`
	Documents     []string `json:"documents" validate:"dive,max=500"`
	AcceptedTerms bool     `json:"acceptedTerms"`
}

func (i *registrationPayloadInput) toPayload() *entity.RegistrationPayload {
	return &entity.RegistrationPayload{
		CompetitionId: i.CompetitionId,
		ParticipantId: i.ParticipantId,
		IdeaId:        i.IdeaId,
		TeamName:      i.TeamName,
		TeamMembers:   i.TeamMembers,
		Age:           i.Age,
		TeamSize:      i.TeamSize,
		ContactEmail:  i.ContactEmail,
		ContactPhone:  i.ContactPhone,
		PitchDetails:  i.PitchDetails,
		RepositoryUrl: i.RepositoryUrl,
		Documents:     i.Documents,
		AcceptedTerms: i.AcceptedTerms,
	}
}

// /registrations/new
func (h *registrationRoutesHandler) SubmitRegistration(c echo.Context) error {
	var input registrationPayloadInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	registration, err := h.registrationService.SubmitRegistration(c.Request().Context(), input.toPayload())
	if err == nil {
		if e := c.JSON(http.StatusOK, registration); e != nil {
			return e
		}

		return nil
	}

	return respondRegistrationError(c, err)
}

// /registrations/:registrationId/edit
func (h *registrationRoutesHandler) AmendRegistration(c echo.Context) error {
	registrationId := c.Param("registrationId")

	var input registrationPayloadInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	registration, err := h.registrationService.AmendRegistration(c.Request().Context(), registrationId, input.toPayload())
	if err == nil {
		if e := c.JSON(http.StatusOK, registration); e != nil {
			return e
		}

		return nil
	}

	return respondRegistrationError(c, err)
}

type withdrawRegistrationInput struct {
	ParticipantId string `query:"participantId" validate:"required,uuid"`
}

// /registrations/:registrationId/withdraw
func (h *registrationRoutesHandler) WithdrawRegistration(c echo.Context) error {
	registrationId := c.Param("registrationId")

	var input withdrawRegistrationInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	err := h.registrationService.WithdrawRegistration(c.Request().Context(), registrationId, input.ParticipantId)
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]string{"status": "Withdrawn"}); e != nil {
			return e
		}

		return nil
	}

	return respondRegistrationError(c, err)
}

// /registrations/:registrationId
func (h *registrationRoutesHandler) GetRegistration(c echo.Context) error {
	registration, err := h.registrationService.GetRegistrationById(c.Request().Context(), c.Param("registrationId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, registration); e != nil {
			return e
		}

		return nil
	}

	return respondRegistrationError(c, err)
}

type getRegistrationStatusInput struct {
	ParticipantId string `query:"participantId" validate:"required,uuid"`
}

// /registrations/:registrationId/status
func (h *registrationRoutesHandler) GetRegistrationStatus(c echo.Context) error {
	var input getRegistrationStatusInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	status, err := h.registrationService.GetRegistrationStatusById(c.Request().Context(), c.Param("registrationId"), input.ParticipantId)
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]string{"status": status}); e != nil {
			return e
		}

		return nil
	}

	return respondRegistrationError(c, err)
}

type getUserRegistrationsInput struct {
	Limit         int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset        int32  `query:"offset" validate:"gte=0"`
	ParticipantId string `query:"participantId" validate:"required,uuid"`
}

// /registrations/my
func (h *registrationRoutesHandler) GetUserRegistrations(c echo.Context) error {
	input := getUserRegistrationsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	registrations, err := h.registrationService.GetUserRegistrations(c.Request().Context(), input.ParticipantId, pg)
	if err != nil {
		return respondRegistrationError(c, err)
	}

	if e := c.JSON(http.StatusOK, registrations); e != nil {
		return e
	}

	return nil
}

// respondRegistrationError maps the engine's failure taxonomy onto rule-specific
// responses; no failure collapses into a generic "invalid request".
func respondRegistrationError(c echo.Context, err error) error {
	var eligibilityErr *service.EligibilityError
	if errors.As(err, &eligibilityErr) {
		status := http.StatusBadRequest
		switch eligibilityErr.Kind {
		case service.NotYetOpen, service.DeadlinePassed:
			status = http.StatusForbidden
		}
		if e := c.JSON(status, newEligibilityResponse(eligibilityErr)); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrCompetitionNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"There is no competition with given id"})
	case service.ErrIdeaNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"There is no idea with given id"})
	case service.ErrRegistrationNotFound:
		return c.JSON(http.StatusNotFound, errorResponse{"There is no registration with given id"})
	case service.ErrNotIdeaOwner:
		return c.JSON(http.StatusForbidden, errorResponse{"The chosen idea belongs to another participant"})
	case service.ErrNotRegistrationOwner:
		return c.JSON(http.StatusForbidden, errorResponse{"Only the registering participant may change this registration"})
	case service.ErrAlreadyRegistered:
		return c.JSON(http.StatusConflict, errorResponse{"You already have an active registration for this competition"})
	case service.ErrIdeaAlreadyCommitted:
		return c.JSON(http.StatusConflict, errorResponse{"This idea is already registered in this competition"})
	case service.ErrCompetitionClosed:
		return c.JSON(http.StatusForbidden, errorResponse{"The competition is closed"})
	case service.ErrRegistrationNotActive:
		return c.JSON(http.StatusConflict, errorResponse{"The registration is no longer active"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{"Error"})
	}
}
