//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/user"
	"tourbook/internal/handler/api"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	createFn     func(ctx context.Context, input commands.CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error)
	transitionFn func(ctx context.Context, id uuid.UUID, target booking.Status, actorID uuid.UUID) error
	cancelFn     func(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

func (s *stubBookingCommands) Create(ctx context.Context, input commands.CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error) {
	return s.createFn(ctx, input, userID)
}

func (s *stubBookingCommands) Transition(ctx context.Context, id uuid.UUID, target booking.Status, actorID uuid.UUID) error {
	return s.transitionFn(ctx, id, target, actorID)
}

func (s *stubBookingCommands) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	return s.cancelFn(ctx, id, actorID)
}

type stubBookingQueries struct {
	getFn         func(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	listByUserFn  func(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error)
	listByGuideFn func(ctx context.Context, guideID uuid.UUID) ([]*queries.BookingView, error)
}

func (s *stubBookingQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return s.getFn(ctx, id)
}

func (s *stubBookingQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return s.listByUserFn(ctx, userID)
}

func (s *stubBookingQueries) ListByGuide(ctx context.Context, guideID uuid.UUID) ([]*queries.BookingView, error) {
	return s.listByGuideFn(ctx, guideID)
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubBookingCommands
	queries  *stubBookingQueries
	userID   uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.commands = &stubBookingCommands{}
	s.queries = &stubBookingQueries{}
	handler := api.NewBookingHandler(s.commands, s.queries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleUser)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, handler.Create)
	s.router.GET("/bookings", authMiddleware, handler.ListMine)
	s.router.GET("/bookings/:id", authMiddleware, handler.Get)
	s.router.PATCH("/bookings/:id/status", authMiddleware, handler.Transition)
	s.router.DELETE("/bookings/:id", authMiddleware, handler.Cancel)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) perform(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) validCreateBody() map[string]any {
	return map[string]any{
		"guide_id": uuid.New().String(),
		"place_id": uuid.New().String(),
		"date":     "2025-12-04",
		"time":     "09:30",
		"guests":   2,
		"phone1":   "+91 9400000001",
		"phone2":   "+91 9400000002",
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("returns 201 with the created view", func() {
		s.commands.createFn = func(_ context.Context, input commands.CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error) {
			s.Equal(s.userID, userID)
			return &queries.BookingView{
				ID:        uuid.New(),
				UserID:    userID,
				Status:    "pending",
				CreatedAt: time.Now(),
			}, nil
		}

		w := s.perform(http.MethodPost, "/bookings", s.validCreateBody())
		s.Equal(http.StatusCreated, w.Code)
		s.Contains(w.Body.String(), `"status":"pending"`)
	})

	s.Run("missing fields are rejected before the usecase", func() {
		w := s.perform(http.MethodPost, "/bookings", map[string]any{"date": "2025-12-04"})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("maps ValidationFailed to 422", func() {
		s.commands.createFn = func(context.Context, commands.CreateBookingInput, uuid.UUID) (*queries.BookingView, error) {
			return nil, errs.ErrValidationFailed
		}
		w := s.perform(http.MethodPost, "/bookings", s.validCreateBody())
		s.Equal(http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("maps NotFound to 404", func() {
		s.commands.createFn = func(context.Context, commands.CreateBookingInput, uuid.UUID) (*queries.BookingView, error) {
			return nil, errs.ErrNotFound
		}
		w := s.perform(http.MethodPost, "/bookings", s.validCreateBody())
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("maps StoreUnavailable to 503", func() {
		s.commands.createFn = func(context.Context, commands.CreateBookingInput, uuid.UUID) (*queries.BookingView, error) {
			return nil, errs.ErrStoreUnavailable
		}
		w := s.perform(http.MethodPost, "/bookings", s.validCreateBody())
		s.Equal(http.StatusServiceUnavailable, w.Code)
	})

	s.Run("rejects unauthenticated requests", func() {
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(nil))
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("hides other people's bookings", func() {
		s.queries.getFn = func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			return &queries.BookingView{ID: id, UserID: uuid.New(), GuideID: uuid.New()}, nil
		}

		w := s.perform(http.MethodGet, "/bookings/"+uuid.NewString(), nil)
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("owner sees their booking", func() {
		s.queries.getFn = func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			return &queries.BookingView{ID: id, UserID: s.userID, GuideID: uuid.New()}, nil
		}

		w := s.perform(http.MethodGet, "/bookings/"+uuid.NewString(), nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("invalid id is a 400", func() {
		w := s.perform(http.MethodGet, "/bookings/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestTransition() {
	s.Run("valid transition returns 204", func() {
		s.commands.transitionFn = func(_ context.Context, _ uuid.UUID, target booking.Status, actorID uuid.UUID) error {
			s.Equal(booking.StatusConfirmed, target)
			s.Equal(s.userID, actorID)
			return nil
		}

		w := s.perform(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status",
			map[string]any{"status": "confirmed"})
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("unknown target status is rejected", func() {
		w := s.perform(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status",
			map[string]any{"status": "completed"})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("maps Unauthorized to 403", func() {
		s.commands.transitionFn = func(context.Context, uuid.UUID, booking.Status, uuid.UUID) error {
			return errs.ErrUnauthorized
		}
		w := s.perform(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status",
			map[string]any{"status": "rejected"})
		s.Equal(http.StatusForbidden, w.Code)
	})

	s.Run("maps InvalidTransition to 409", func() {
		s.commands.transitionFn = func(context.Context, uuid.UUID, booking.Status, uuid.UUID) error {
			return errs.ErrInvalidTransition
		}
		w := s.perform(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status",
			map[string]any{"status": "confirmed"})
		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("cancel returns 204", func() {
		s.commands.cancelFn = func(_ context.Context, _ uuid.UUID, actorID uuid.UUID) error {
			s.Equal(s.userID, actorID)
			return nil
		}
		w := s.perform(http.MethodDelete, "/bookings/"+uuid.NewString(), nil)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("maps NotCancellable to 409", func() {
		s.commands.cancelFn = func(context.Context, uuid.UUID, uuid.UUID) error {
			return errs.ErrNotCancellable
		}
		w := s.perform(http.MethodDelete, "/bookings/"+uuid.NewString(), nil)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("maps NotFound to 404", func() {
		s.commands.cancelFn = func(context.Context, uuid.UUID, uuid.UUID) error {
			return errs.ErrNotFound
		}
		w := s.perform(http.MethodDelete, "/bookings/"+uuid.NewString(), nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}
