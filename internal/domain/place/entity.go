package place

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingName    = errors.New("place name is required")
	ErrNegativePrice  = errors.New("ticket price cannot be negative")
	ErrInvalidGallery = errors.New("gallery entries cannot be empty")
)

// Place is an admin-owned destination record.
type Place struct {
	id          uuid.UUID
	name        string
	description string
	history     string
	ticketPrice decimal.Decimal
	openTime    string
	closeTime   string
	image       string
	gallery     []string
	createdAt   time.Time
}

type Draft struct {
	Name        string
	Description string
	History     string
	TicketPrice decimal.Decimal
	OpenTime    string
	CloseTime   string
	Image       string
	Gallery     []string
}

func NewPlace(d Draft, now time.Time) (*Place, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	if d.TicketPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	for _, g := range d.Gallery {
		if strings.TrimSpace(g) == "" {
			return nil, ErrInvalidGallery
		}
	}

	return &Place{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(d.Description),
		history:     strings.TrimSpace(d.History),
		ticketPrice: d.TicketPrice,
		openTime:    strings.TrimSpace(d.OpenTime),
		closeTime:   strings.TrimSpace(d.CloseTime),
		image:       d.Image,
		gallery:     d.Gallery,
		createdAt:   now,
	}, nil
}

func ReconstructPlace(
	id uuid.UUID,
	name, description, history string,
	ticketPrice decimal.Decimal,
	openTime, closeTime, image string,
	gallery []string,
	createdAt time.Time,
) *Place {
	return &Place{
		id:          id,
		name:        name,
		description: description,
		history:     history,
		ticketPrice: ticketPrice,
		openTime:    openTime,
		closeTime:   closeTime,
		image:       image,
		gallery:     gallery,
		createdAt:   createdAt,
	}
}

func (p *Place) ID() uuid.UUID                { return p.id }
func (p *Place) Name() string                 { return p.name }
func (p *Place) Description() string          { return p.description }
func (p *Place) History() string              { return p.history }
func (p *Place) TicketPrice() decimal.Decimal { return p.ticketPrice }
func (p *Place) OpenTime() string             { return p.openTime }
func (p *Place) CloseTime() string            { return p.closeTime }
func (p *Place) Image() string                { return p.image }
func (p *Place) Gallery() []string            { return p.gallery }
func (p *Place) CreatedAt() time.Time         { return p.createdAt }
