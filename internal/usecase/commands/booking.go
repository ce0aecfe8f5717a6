package commands

import (
	"context"
	"log/slog"

	"tourbook/internal/domain/booking"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	GuideID  uuid.UUID
	PlaceID  uuid.UUID
	Date     string
	Time     string
	Guests   int
	Phone1   string
	Phone2   string
	Requests string
}

type BookingCommands interface {
	// Create inserts a pending booking with denormalized guide/place/tourist
	// snapshots taken now.
	Create(ctx context.Context, input CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error)
	// Transition confirms or rejects a pending booking; only the assigned
	// guide may call it, and only pending bookings move.
	Transition(ctx context.Context, id uuid.UUID, target booking.Status, actorID uuid.UUID) error
	// Cancel hard-deletes a pending booking on behalf of its owning tourist.
	Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	guides   queries.GuideReadStore
	places   queries.PlaceReadStore
	users    queries.UserReadStore
	views    queries.BookingQueries
	notifier ApprovalNotifier
	clock    clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	guides queries.GuideReadStore,
	places queries.PlaceReadStore,
	users queries.UserReadStore,
	views queries.BookingQueries,
	notifier ApprovalNotifier,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		guides:   guides,
		places:   places,
		users:    users,
		views:    views,
		notifier: notifier,
		clock:    clock,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput, userID uuid.UUID) (*queries.BookingView, error) {
	guideView, err := c.guides.FindByID(ctx, input.GuideID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	placeView, err := c.places.FindByID(ctx, input.PlaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	tourist, err := c.users.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	touristName := tourist.DisplayName
	if touristName == "" {
		touristName = tourist.Email
	}

	entity, err := booking.NewBooking(booking.Draft{
		UserID:      userID,
		GuideID:     input.GuideID,
		PlaceID:     input.PlaceID,
		GuideName:   guideView.Name,
		PlaceName:   placeView.Name,
		PlaceImage:  placeView.Image,
		TouristName: touristName,
		Date:        input.Date,
		Time:        input.Time,
		Guests:      input.Guests,
		Phone1:      input.Phone1,
		Phone2:      input.Phone2,
		Requests:    input.Requests,
	}, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	id, err := c.bookings.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	// Read-after-write so the caller gets the stored view
	view, err := c.views.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *bookingCommandsImpl) Transition(ctx context.Context, id uuid.UUID, target booking.Status, actorID uuid.UUID) error {
	entity, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if err := entity.Transition(target, actorID); err != nil {
		switch err {
		case booking.ErrNotAssignedTo:
			return errs.Mark(err, errs.ErrUnauthorized)
		default:
			return errs.Mark(err, errs.ErrInvalidTransition)
		}
	}

	updated, err := c.bookings.UpdateStatusIfPending(ctx, id, target)
	if err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if !updated {
		// A concurrent actor got there first
		return errs.ErrInvalidTransition
	}

	if target == booking.StatusConfirmed {
		c.sendApprovalEmail(ctx, entity)
	}
	return nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	entity, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if err := entity.AuthorizeCancel(actorID); err != nil {
		switch err {
		case booking.ErrNotOwnedBy:
			return errs.Mark(err, errs.ErrUnauthorized)
		default:
			return errs.Mark(err, errs.ErrNotCancellable)
		}
	}

	deleted, err := c.bookings.DeleteIfPending(ctx, id)
	if err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if !deleted {
		return errs.ErrNotCancellable
	}
	return nil
}

// sendApprovalEmail is best-effort: any failure is logged and swallowed so
// the confirm operation never fails on notification problems.
func (c *bookingCommandsImpl) sendApprovalEmail(ctx context.Context, entity *booking.Booking) {
	tourist, err := c.users.FindByID(ctx, entity.UserID())
	if err != nil {
		slog.Warn("approval email skipped: tourist lookup failed",
			"booking_id", entity.ID(), "error", err)
		return
	}

	ok := c.notifier.SendApprovalEmail(ctx, ApprovalEmail{
		TouristName:  entity.TouristName(),
		TouristEmail: tourist.Email,
		GuideName:    entity.GuideName(),
		PlaceName:    entity.PlaceName(),
		Date:         entity.Date(),
		Time:         entity.Time(),
	})
	if !ok {
		slog.Warn("approval email not delivered", "booking_id", entity.ID())
	}
}
