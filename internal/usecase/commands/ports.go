package commands

import (
	"context"

	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/guide"
	"tourbook/internal/domain/place"
	"tourbook/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side repository ports. Status mutation and cancellation are
// conditional at the store so two racing actors cannot both win.

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatusIfPending flips status only when the row is still pending;
	// reports whether a row was updated.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, to booking.Status) (bool, error)
	// DeleteIfPending removes the row only while pending; reports whether a
	// row was deleted.
	DeleteIfPending(ctx context.Context, id uuid.UUID) (bool, error)
}

type GuideRepository interface {
	Create(ctx context.Context, g *guide.Guide) error
	Update(ctx context.Context, id uuid.UUID, update GuideUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GuideUpdate is a partial update; nil fields are left untouched.
type GuideUpdate struct {
	Name       *string
	Phone      *string
	Experience *string
	Rate       *string
	Languages  []string
	Bio        *string
	Location   *string
	PlaceID    *uuid.UUID
	PlaceName  *string
	Image      *string
	Status     *string
}

type PlaceRepository interface {
	Create(ctx context.Context, p *place.Place) error
	Update(ctx context.Context, id uuid.UUID, update PlaceUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PlaceUpdate struct {
	Name        *string
	Description *string
	History     *string
	TicketPrice *string
	OpenTime    *string
	CloseTime   *string
	Image       *string
	Gallery     []string
}

// ProfileUpdate is the partial profile write applied to the users record for
// non-guide roles; nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string
	Phone     *string
	Languages []string
	Bio       *string
	Location  *string
	Image     *string
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	// SaveProfile is the primary profile write for non-guide roles; failures
	// propagate to the caller.
	SaveProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) error
	// MirrorProfile updates the denormalized display name and photo kept on
	// the users record. Callers treat failure as best-effort.
	MirrorProfile(ctx context.Context, id uuid.UUID, displayName string, photoURL *string) error
}

// ApprovalEmail carries the template parameters for the booking-approved
// notification.
type ApprovalEmail struct {
	TouristName  string
	TouristEmail string
	GuideName    string
	PlaceName    string
	Date         string
	Time         string
}

// ApprovalNotifier is fire-and-forget: implementations log failures and
// report success, they never propagate an error into the booking flow.
type ApprovalNotifier interface {
	SendApprovalEmail(ctx context.Context, mail ApprovalEmail) bool
}
