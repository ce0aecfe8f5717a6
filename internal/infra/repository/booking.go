package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain/booking"
	"tourbook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, user_id, guide_id, place_id,
			guide_name, place_name, place_image, tourist_name,
			date, time, guests, phone1, phone2, requests,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.UserID(), b.GuideID(), b.PlaceID(),
		b.GuideName(), b.PlaceName(), b.PlaceImage(), b.TouristName(),
		b.Date(), b.Time(), b.Guests(), b.Phone1(), b.Phone2(), b.Requests(),
		b.Status().String(), b.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, pgErrKind(err))
	}
	return b.ID(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, user_id, guide_id, place_id,
		       guide_name, place_name, place_image, tourist_name,
		       date, time, guests, phone1, phone2, requests,
		       status, created_at
		FROM bookings
		WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

// UpdateStatusIfPending is the concurrency guard: the WHERE clause makes
// the pending check and the flip a single atomic statement, so of two
// racing transitions only one sees a matched row.
func (r *BookingRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, to booking.Status) (bool, error) {
	const query = `UPDATE bookings SET status = $2 WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, query, id, to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) DeleteIfPending(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM bookings WHERE id = $1 AND status = 'pending'`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, userID, guideID, placeID                    uuid.UUID
		guideName, placeName, placeImage, touristName   string
		date, bookingTime, phone1, phone2, requests, st string
		guests                                          int
		createdAt                                       time.Time
	)
	err := row.Scan(
		&id, &userID, &guideID, &placeID,
		&guideName, &placeName, &placeImage, &touristName,
		&date, &bookingTime, &guests, &phone1, &phone2, &requests,
		&st, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	status, err := booking.NewStatus(st)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, userID, guideID, placeID,
		guideName, placeName, placeImage, touristName,
		date, bookingTime, guests, phone1, phone2, requests,
		status, createdAt,
	), nil
}
