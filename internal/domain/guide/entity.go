package guide

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName  = errors.New("guide name is required")
	ErrMissingEmail = errors.New("guide email is required")
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Guide profile record. PlaceID/PlaceName is a denormalized snapshot of the
// destination the guide works at; it is not refreshed when the place changes.
type Guide struct {
	id         uuid.UUID
	name       string
	email      string
	phone      string
	experience string
	rate       string
	languages  []string
	bio        string
	location   string
	placeID    *uuid.UUID
	placeName  string
	image      string
	status     string
	joined     time.Time
}

type Draft struct {
	ID         uuid.UUID // matches the auth uid when the guide signs up
	Name       string
	Email      string
	Phone      string
	Experience string
	Rate       string
	Languages  []string
	Bio        string
	Location   string
	PlaceID    *uuid.UUID
	PlaceName  string
	Image      string
}

func NewGuide(d Draft, joined time.Time) (*Guide, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	email := strings.TrimSpace(d.Email)
	if email == "" {
		return nil, ErrMissingEmail
	}

	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Guide{
		id:         id,
		name:       name,
		email:      email,
		phone:      strings.TrimSpace(d.Phone),
		experience: strings.TrimSpace(d.Experience),
		rate:       strings.TrimSpace(d.Rate),
		languages:  NormalizeLanguages(d.Languages),
		bio:        strings.TrimSpace(d.Bio),
		location:   strings.TrimSpace(d.Location),
		placeID:    d.PlaceID,
		placeName:  strings.TrimSpace(d.PlaceName),
		image:      d.Image,
		status:     StatusActive,
		joined:     joined,
	}, nil
}

func ReconstructGuide(
	id uuid.UUID,
	name, email, phone, experience, rate string,
	languages []string,
	bio, location string,
	placeID *uuid.UUID,
	placeName, image, status string,
	joined time.Time,
) *Guide {
	return &Guide{
		id:         id,
		name:       name,
		email:      email,
		phone:      phone,
		experience: experience,
		rate:       rate,
		languages:  languages,
		bio:        bio,
		location:   location,
		placeID:    placeID,
		placeName:  placeName,
		image:      image,
		status:     status,
		joined:     joined,
	}
}

func (g *Guide) ID() uuid.UUID       { return g.id }
func (g *Guide) Name() string        { return g.name }
func (g *Guide) Email() string       { return g.email }
func (g *Guide) Phone() string       { return g.phone }
func (g *Guide) Experience() string  { return g.experience }
func (g *Guide) Rate() string        { return g.rate }
func (g *Guide) Languages() []string { return g.languages }
func (g *Guide) Bio() string         { return g.bio }
func (g *Guide) Location() string    { return g.location }
func (g *Guide) PlaceID() *uuid.UUID { return g.placeID }
func (g *Guide) PlaceName() string   { return g.placeName }
func (g *Guide) Image() string       { return g.image }
func (g *Guide) Status() string      { return g.status }
func (g *Guide) Joined() time.Time   { return g.joined }
