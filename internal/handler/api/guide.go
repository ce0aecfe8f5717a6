package api

import (
	"errors"
	"net/http"

	"tourbook/internal/domain/user"
	reqdto "tourbook/internal/handler/dto/request"
	"tourbook/internal/handler/middleware"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GuideHandler struct {
	commands commands.GuideCommands
	queries  queries.GuideQueries
}

func NewGuideHandler(cmd commands.GuideCommands, q queries.GuideQueries) *GuideHandler {
	return &GuideHandler{commands: cmd, queries: q}
}

// @Summary List guides
// @Description All guides, optionally filtered by place
// @Tags guides
// @Produce json
// @Param place_id query string false "Filter by place"
// @Success 200 {array} queries.GuideView
// @Router /guides [get]
func (h *GuideHandler) List(c *gin.Context) {
	if placeParam := c.Query("place_id"); placeParam != "" {
		placeID, err := uuid.Parse(placeParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid place ID",
			})
			return
		}
		views, err := h.queries.ListByPlace(c.Request.Context(), placeID)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
			return
		}
		c.JSON(http.StatusOK, views)
		return
	}

	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get guide
// @Tags guides
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} queries.GuideView
// @Failure 404 {object} map[string]string
// @Router /guides/{id} [get]
func (h *GuideHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guide ID",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guide not found",
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

// @Summary Create guide
// @Description Admin adds a guide to the directory
// @Tags guides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGuideRequest true "Guide"
// @Success 201 {object} queries.GuideView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guides [post]
func (h *GuideHandler) Create(c *gin.Context) {
	var req reqdto.CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondGuideWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update guide
// @Description Admin edits any guide; a guide edits their own record
// @Tags guides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guide ID"
// @Param request body reqdto.UpdateGuideRequest true "Partial update"
// @Success 200 {object} queries.GuideView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guides/{id} [patch]
func (h *GuideHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guide ID",
		})
		return
	}

	actorID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	if role != user.RoleAdmin && actorID != id {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You can only edit your own guide record",
		})
		return
	}

	var req reqdto.UpdateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		respondGuideWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete guide
// @Tags guides
// @Security BearerAuth
// @Param id path string true "Guide ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /guides/{id} [delete]
func (h *GuideHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guide ID",
		})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondGuideWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondGuideWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guide not found",
		})
	case errors.Is(err, errs.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Guide email already registered",
		})
	case errors.Is(err, errs.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Guide validation failed",
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
