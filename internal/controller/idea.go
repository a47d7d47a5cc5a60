package controller

import (
	"net/http"

	"ideathon-registration-api/internal/entity"
	"ideathon-registration-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type ideaRoutesHandler struct {
	ideaService service.Idea
	validate    *validator.Validate
}

func newIdeaRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *ideaRoutesHandler {
	h := &ideaRoutesHandler{ideaService: services.Idea, validate: v}

	outer.POST("/ideas/new", h.PostIdea)
	outer.GET("/ideas/my", h.GetUserIdeas)
	outer.GET("/ideas/:ideaId", h.GetIdea)

	return h
}

type postIdeaInput struct {
	ParticipantId string `json:"participantId" validate:"required,uuid"`
	Title         string `json:"title" validate:"required,max=100"`
	Category      string `json:"category" validate:"required,max=50"`
	Pitch         string `json:"pitch" validate:"required,max=5000"`
}

// /ideas/new
func (h *ideaRoutesHandler) PostIdea(c echo.Context) error {
	var input postIdeaInput
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

	model := &entity.CreateIdeaInput{
		ParticipantId: input.ParticipantId,
		Title:         input.Title,
		Category:      input.Category,
		Pitch:         input.Pitch,
	}

	idea, err := h.ideaService.CreateIdea(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, idea); e != nil {
		return e
	}

	return nil
}

type getUserIdeasInput struct {
	Limit         int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset        int32  `query:"offset" validate:"gte=0"`
	ParticipantId string `query:"participantId" validate:"required,uuid"`
}

// /ideas/my
func (h *ideaRoutesHandler) GetUserIdeas(c echo.Context) error {
	input := getUserIdeasInput{Limit: defaultLimit, Offset: defaultOffset}
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
	ideas, err := h.ideaService.GetUserIdeas(c.Request().Context(), input.ParticipantId, pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, ideas); e != nil {
		return e
	}

	return nil
}

// /ideas/:ideaId
func (h *ideaRoutesHandler) GetIdea(c echo.Context) error {
	idea, err := h.ideaService.GetIdeaById(c.Request().Context(), c.Param("ideaId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, idea); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrIdeaNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no idea with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return nil
}
