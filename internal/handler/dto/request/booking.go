package request

import (
	"tourbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuideID  uuid.UUID `json:"guide_id" binding:"required"`
	PlaceID  uuid.UUID `json:"place_id" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	Time     string    `json:"time" binding:"required"`
	Guests   int       `json:"guests" binding:"required,min=1"`
	Phone1   string    `json:"phone1" binding:"required"`
	Phone2   string    `json:"phone2" binding:"required"`
	Requests string    `json:"requests"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		GuideID:  r.GuideID,
		PlaceID:  r.PlaceID,
		Date:     r.Date,
		Time:     r.Time,
		Guests:   r.Guests,
		Phone1:   r.Phone1,
		Phone2:   r.Phone2,
		Requests: r.Requests,
	}
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed rejected"`
}
