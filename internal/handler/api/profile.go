package api

import (
	"errors"
	"net/http"

	reqdto "tourbook/internal/handler/dto/request"
	"tourbook/internal/handler/httperr"
	"tourbook/internal/handler/middleware"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	commands commands.ProfileCommands
	queries  queries.ProfileQueries
}

func NewProfileHandler(cmd commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{commands: cmd, queries: q}
}

// @Summary Load own profile
// @Description Profile for the edit form; missing fields come back as defaults
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.ProfileView
// @Router /profile [get]
func (h *ProfileHandler) Load(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	view, err := h.queries.Load(c.Request.Context(), userID, role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Save own profile
// @Description Partial update of the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveProfileRequest true "Profile edits"
// @Success 200 {object} queries.ProfileView
// @Failure 422 {object} httperr.Response
// @Router /profile [put]
func (h *ProfileHandler) Save(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.commands.Save(c.Request.Context(), userID, role, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Profile validation failed", nil)
		case errors.Is(err, errs.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Profile not found", nil)
		case errors.Is(err, errs.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
