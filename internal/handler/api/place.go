package api

import (
	"errors"
	"net/http"

	reqdto "tourbook/internal/handler/dto/request"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlaceHandler struct {
	commands commands.PlaceCommands
	queries  queries.PlaceQueries
}

func NewPlaceHandler(cmd commands.PlaceCommands, q queries.PlaceQueries) *PlaceHandler {
	return &PlaceHandler{commands: cmd, queries: q}
}

// @Summary List places
// @Tags places
// @Produce json
// @Success 200 {array} queries.PlaceView
// @Router /places [get]
func (h *PlaceHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get place
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} queries.PlaceView
// @Failure 404 {object} map[string]string
// @Router /places/{id} [get]
func (h *PlaceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid place ID",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Place not found",
			})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Create place
// @Description Admin adds a destination
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePlaceRequest true "Place"
// @Success 201 {object} queries.PlaceView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /places [post]
func (h *PlaceHandler) Create(c *gin.Context) {
	var req reqdto.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondPlaceWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update place
// @Tags places
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Place ID"
// @Param request body reqdto.UpdatePlaceRequest true "Partial update"
// @Success 200 {object} queries.PlaceView
// @Failure 404 {object} map[string]string
// @Router /places/{id} [patch]
func (h *PlaceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid place ID",
		})
		return
	}

	var req reqdto.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondPlaceWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete place
// @Tags places
// @Security BearerAuth
// @Param id path string true "Place ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /places/{id} [delete]
func (h *PlaceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid place ID",
		})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondPlaceWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondPlaceWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Place not found",
		})
	case errors.Is(err, errs.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Place validation failed",
		})
	case errors.Is(err, errs.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
