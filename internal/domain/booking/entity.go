package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingDate     = errors.New("date is required")
	ErrMissingTime     = errors.New("time is required")
	ErrMissingPhone    = errors.New("both contact numbers are required")
	ErrInvalidGuests   = errors.New("guests must be a positive integer")
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrNotPending      = errors.New("booking is no longer pending")
	ErrInvalidTarget   = errors.New("invalid target status")
	ErrNotAssignedTo   = errors.New("booking is not assigned to this guide")
	ErrNotOwnedBy      = errors.New("booking is not owned by this tourist")
	ErrMissingIdentity = errors.New("guide, place and tourist identifiers are required")
)

// Booking ties one tourist, one guide and one place to a requested date/time.
// Guide/place/tourist names and the place image are denormalized snapshots
// taken at creation; they are never refreshed when the source records change.
type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	guideID     uuid.UUID
	placeID     uuid.UUID
	guideName   string
	placeName   string
	placeImage  string
	touristName string
	date        string
	time        string
	guests      int
	phone1      string
	phone2      string
	requests    string
	status      Status
	createdAt   time.Time
}

type Draft struct {
	UserID      uuid.UUID
	GuideID     uuid.UUID
	PlaceID     uuid.UUID
	GuideName   string
	PlaceName   string
	PlaceImage  string
	TouristName string
	Date        string
	Time        string
	Guests      int
	Phone1      string
	Phone2      string
	Requests    string
}

// NewBooking re-validates everything the booking form promises client-side;
// the form's required attributes are not a server-side guarantee.
func NewBooking(d Draft, now time.Time) (*Booking, error) {
	if d.UserID == uuid.Nil || d.GuideID == uuid.Nil || d.PlaceID == uuid.Nil {
		return nil, ErrMissingIdentity
	}
	if strings.TrimSpace(d.Date) == "" {
		return nil, ErrMissingDate
	}
	if strings.TrimSpace(d.Time) == "" {
		return nil, ErrMissingTime
	}
	if strings.TrimSpace(d.Phone1) == "" || strings.TrimSpace(d.Phone2) == "" {
		return nil, ErrMissingPhone
	}
	if d.Guests < 1 {
		return nil, ErrInvalidGuests
	}

	return &Booking{
		id:          uuid.New(),
		userID:      d.UserID,
		guideID:     d.GuideID,
		placeID:     d.PlaceID,
		guideName:   strings.TrimSpace(d.GuideName),
		placeName:   strings.TrimSpace(d.PlaceName),
		placeImage:  d.PlaceImage,
		touristName: strings.TrimSpace(d.TouristName),
		date:        strings.TrimSpace(d.Date),
		time:        strings.TrimSpace(d.Time),
		guests:      d.Guests,
		phone1:      strings.TrimSpace(d.Phone1),
		phone2:      strings.TrimSpace(d.Phone2),
		requests:    strings.TrimSpace(d.Requests),
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func ReconstructBooking(
	id, userID, guideID, placeID uuid.UUID,
	guideName, placeName, placeImage, touristName string,
	date, timeOfDay string,
	guests int,
	phone1, phone2, requests string,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		guideID:     guideID,
		placeID:     placeID,
		guideName:   guideName,
		placeName:   placeName,
		placeImage:  placeImage,
		touristName: touristName,
		date:        date,
		time:        timeOfDay,
		guests:      guests,
		phone1:      phone1,
		phone2:      phone2,
		requests:    requests,
		status:      status,
		createdAt:   createdAt,
	}
}

// Transition is the only path that mutates status. Only the assigned guide
// may confirm or reject, and only while the booking is still pending.
func (b *Booking) Transition(to Status, actorID uuid.UUID) error {
	if to != StatusConfirmed && to != StatusRejected {
		return ErrInvalidTarget
	}
	if actorID != b.guideID {
		return ErrNotAssignedTo
	}
	if !CanTransition(b.status, to) {
		return ErrNotPending
	}
	b.status = to
	return nil
}

// AuthorizeCancel checks the cancellation guards without mutating anything;
// cancellation itself is a hard delete at the store.
func (b *Booking) AuthorizeCancel(actorID uuid.UUID) error {
	if actorID != b.userID {
		return ErrNotOwnedBy
	}
	if b.status != StatusPending {
		return ErrNotPending
	}
	return nil
}

func (b *Booking) IsPending() bool { return b.status == StatusPending }

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) GuideID() uuid.UUID   { return b.guideID }
func (b *Booking) PlaceID() uuid.UUID   { return b.placeID }
func (b *Booking) GuideName() string    { return b.guideName }
func (b *Booking) PlaceName() string    { return b.placeName }
func (b *Booking) PlaceImage() string   { return b.placeImage }
func (b *Booking) TouristName() string  { return b.touristName }
func (b *Booking) Date() string         { return b.date }
func (b *Booking) Time() string         { return b.time }
func (b *Booking) Guests() int          { return b.guests }
func (b *Booking) Phone1() string       { return b.phone1 }
func (b *Booking) Phone2() string       { return b.phone2 }
func (b *Booking) Requests() string     { return b.requests }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
