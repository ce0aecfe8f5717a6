package request

import (
	"tourbook/internal/usecase/commands"
)

type CreatePlaceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	History     string   `json:"history"`
	TicketPrice string   `json:"ticket_price"`
	OpenTime    string   `json:"open_time"`
	CloseTime   string   `json:"close_time"`
	Image       string   `json:"image"`
	Gallery     []string `json:"gallery"`
}

func (r CreatePlaceRequest) ToInput() commands.CreatePlaceInput {
	return commands.CreatePlaceInput{
		Name:        r.Name,
		Description: r.Description,
		History:     r.History,
		TicketPrice: r.TicketPrice,
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
		Image:       r.Image,
		Gallery:     r.Gallery,
	}
}

type UpdatePlaceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	History     *string  `json:"history"`
	TicketPrice *string  `json:"ticket_price"`
	OpenTime    *string  `json:"open_time"`
	CloseTime   *string  `json:"close_time"`
	Image       *string  `json:"image"`
	Gallery     []string `json:"gallery"`
}

func (r UpdatePlaceRequest) ToInput() commands.UpdatePlaceInput {
	return commands.UpdatePlaceInput{
		Name:        r.Name,
		Description: r.Description,
		History:     r.History,
		TicketPrice: r.TicketPrice,
		OpenTime:    r.OpenTime,
		CloseTime:   r.CloseTime,
		Image:       r.Image,
		Gallery:     r.Gallery,
	}
}
