package controller

import (
	"net/http"
	"time"

	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type competitionRoutesHandler struct {
	competitionService  service.Competition
	registrationService service.Registration
	validate            *validator.Validate
}

func newCompetitionRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *competitionRoutesHandler {
	h := &competitionRoutesHandler{
		competitionService:  services.Competition,
		registrationService: services.Registration,
		validate:            v,
	}

	outer.GET("/competitions", h.GetCompetitions)
	outer.POST("/competitions/new", h.PostCompetition)
	outer.GET("/competitions/:competitionId", h.GetCompetition)
	outer.GET("/competitions/:competitionId/registrations", h.GetCompetitionRegistrations)
	outer.PUT("/competitions/:competitionId/close", h.CloseCompetition)

	return h
}

type getCompetitionsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /competitions
func (h *competitionRoutesHandler) GetCompetitions(c echo.Context) error {
	input := getCompetitionsInput{Limit: defaultLimit, Offset: defaultOffset}
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
	competitions, err := h.competitionService.GetOpenCompetitions(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, competitions); e != nil {
		return e
	}

	return nil
}

type postCompetitionInput struct {
	Name                 string `json:"name" validate:"required,max=100"`
	Description          string `json:"description" validate:"required,max=500"`
	OpensAt              string `json:"opensAt" validate:"required"`
	RegistrationDeadline string `json:"registrationDeadline" validate:"required"`
	UpdateDeadline       string `json:"updateDeadline" validate:"omitempty"`
	MinAge               int    `json:"minAge" validate:"gte=0,lte=150"`
	MaxAge               int    `json:"maxAge" validate:"gte=0,lte=150"`
	MinTeamSize          int    `json:"minTeamSize" validate:"gte=1"`
	MaxTeamSize          int    `json:"maxTeamSize" validate:"gte=1"`
}

// /competitions/new
func (h *competitionRoutesHandler) PostCompetition(c echo.Context) error {
	var input postCompetitionInput
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

	opensAt, err := time.Parse(time.RFC3339, input.OpensAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"'opensAt': should be a valid RFC3339 instant"})
	}
	registrationDeadline, err := time.Parse(time.RFC3339, input.RegistrationDeadline)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{"'registrationDeadline': should be a valid RFC3339 instant"})
	}

	var updateDeadline *time.Time
	if input.UpdateDeadline != "" {
		parsed, err := time.Parse(time.RFC3339, input.UpdateDeadline)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{"'updateDeadline': should be a valid RFC3339 instant"})
		}
		updateDeadline = &parsed
	}

	model := &entity.CreateCompetitionInput{
		Name: input.Name, Description: input.Description,
		OpensAt: opensAt, RegistrationDeadline: registrationDeadline, UpdateDeadline: updateDeadline,
		MinAge: input.MinAge, MaxAge: input.MaxAge,
		MinTeamSize: input.MinTeamSize, MaxTeamSize: input.MaxTeamSize,
	}

	competition, err := h.competitionService.CreateCompetition(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, competition); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidTimeWindow:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"The competition must open before its registration deadline, and the update deadline may not precede it"}); e != nil {
			return e
		}
	case service.ErrInvalidEligibilityRange:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Eligibility bounds must satisfy min <= max"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

// /competitions/:competitionId
func (h *competitionRoutesHandler) GetCompetition(c echo.Context) error {
	competition, err := h.competitionService.GetCompetitionById(c.Request().Context(), c.Param("competitionId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, competition); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrCompetitionNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no competition with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}

// /competitions/:competitionId/registrations
func (h *competitionRoutesHandler) GetCompetitionRegistrations(c echo.Context) error {
	input := getCompetitionsInput{Limit: defaultLimit, Offset: defaultOffset}
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
	registrations, err := h.registrationService.GetCompetitionRegistrations(c.Request().Context(), c.Param("competitionId"), pg)
	if err != nil {
		return respondRegistrationError(c, err)
	}

	if e := c.JSON(http.StatusOK, registrations); e != nil {
		return e
	}

	return nil
}

// /competitions/:competitionId/close
func (h *competitionRoutesHandler) CloseCompetition(c echo.Context) error {
	closed, err := h.competitionService.CloseCompetition(c.Request().Context(), c.Param("competitionId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]int{"closedRegistrations": closed}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrCompetitionNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no competition with given id"}); e != nil {
			return e
		}
	case service.ErrCompetitionClosed:
		if e := c.JSON(http.StatusConflict, errorResponse{"The competition is already closed"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}
