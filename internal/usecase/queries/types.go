package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	GuideID     uuid.UUID `json:"guide_id"`
	PlaceID     uuid.UUID `json:"place_id"`
	GuideName   string    `json:"guide_name"`
	PlaceName   string    `json:"place_name"`
	PlaceImage  string    `json:"place_image"`
	TouristName string    `json:"tourist_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Guests      int       `json:"guests"`
	Phone1      string    `json:"phone1"`
	Phone2      string    `json:"phone2"`
	Requests    string    `json:"requests"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type GuideView struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Experience string     `json:"experience"`
	Rate       string     `json:"rate"`
	Languages  []string   `json:"languages"`
	Bio        string     `json:"bio"`
	Location   string     `json:"location"`
	PlaceID    *uuid.UUID `json:"place_id,omitempty"`
	PlaceName  string     `json:"place_name"`
	Image      string     `json:"image"`
	Status     string     `json:"status"`
	Joined     time.Time  `json:"joined"`
}

type PlaceView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	History     string          `json:"history"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	OpenTime    string          `json:"open_time"`
	CloseTime   string          `json:"close_time"`
	Image       string          `json:"image"`
	Gallery     []string        `json:"gallery"`
	CreatedAt   time.Time       `json:"created_at"`
}

type UserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileView merges guide and user profile shapes; non-guide users get the
// guide-only fields as zero values.
type ProfileView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Experience string    `json:"experience"`
	Languages  []string  `json:"languages"`
	Bio        string    `json:"bio"`
	Location   string    `json:"location"`
	Image      string    `json:"image"`
	Role       string    `json:"role"`
}
