package request

import (
	"tourbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateGuideRequest struct {
	Name       string     `json:"name" binding:"required"`
	Email      string     `json:"email" binding:"required,email"`
	Phone      string     `json:"phone"`
	Experience string     `json:"experience"`
	Rate       string     `json:"rate"`
	Languages  []string   `json:"languages"`
	Bio        string     `json:"bio"`
	Location   string     `json:"location"`
	PlaceID    *uuid.UUID `json:"place_id"`
	Image      string     `json:"image"`
}

func (r CreateGuideRequest) ToInput() commands.CreateGuideInput {
	return commands.CreateGuideInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Experience: r.Experience,
		Rate:       r.Rate,
		Languages:  r.Languages,
		Bio:        r.Bio,
		Location:   r.Location,
		PlaceID:    r.PlaceID,
		Image:      r.Image,
	}
}

type UpdateGuideRequest struct {
	Name       *string    `json:"name"`
	Phone      *string    `json:"phone"`
	Experience *string    `json:"experience"`
	Rate       *string    `json:"rate"`
	Languages  []string   `json:"languages"`
	Bio        *string    `json:"bio"`
	Location   *string    `json:"location"`
	PlaceID    *uuid.UUID `json:"place_id"`
	Image      *string    `json:"image"`
	Status     *string    `json:"status"`
}

func (r UpdateGuideRequest) ToInput() commands.UpdateGuideInput {
	return commands.UpdateGuideInput{
		Name:       r.Name,
		Phone:      r.Phone,
		Experience: r.Experience,
		Rate:       r.Rate,
		Languages:  r.Languages,
		Bio:        r.Bio,
		Location:   r.Location,
		PlaceID:    r.PlaceID,
		Image:      r.Image,
		Status:     r.Status,
	}
}
