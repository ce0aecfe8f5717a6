package commands

import (
	"context"

	"tourbook/internal/domain/place"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/config"
	"tourbook/internal/pkg/dataurl"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePlaceInput struct {
	Name        string
	Description string
	History     string
	TicketPrice string
	OpenTime    string
	CloseTime   string
	Image       string
	Gallery     []string
}

type UpdatePlaceInput struct {
	Name        *string
	Description *string
	History     *string
	TicketPrice *string
	OpenTime    *string
	CloseTime   *string
	Image       *string
	Gallery     []string
}

type PlaceCommands interface {
	Create(ctx context.Context, input CreatePlaceInput) (*queries.PlaceView, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePlaceInput) (*queries.PlaceView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type placeCommandsImpl struct {
	places PlaceRepository
	views  queries.PlaceQueries
	images config.ImageConfig
	clock  clock.Clock
}

func NewPlaceCommands(places PlaceRepository, views queries.PlaceQueries, images config.ImageConfig, clock clock.Clock) PlaceCommands {
	return &placeCommandsImpl{places: places, views: views, images: images, clock: clock}
}

func (c *placeCommandsImpl) Create(ctx context.Context, input CreatePlaceInput) (*queries.PlaceView, error) {
	if err := c.validateImages(input.Image, input.Gallery); err != nil {
		return nil, err
	}

	price, err := parsePrice(input.TicketPrice)
	if err != nil {
		return nil, err
	}

	p, err := place.NewPlace(place.Draft{
		Name:        input.Name,
		Description: input.Description,
		History:     input.History,
		TicketPrice: price,
		OpenTime:    input.OpenTime,
		CloseTime:   input.CloseTime,
		Image:       input.Image,
		Gallery:     input.Gallery,
	}, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	if err := c.places.Create(ctx, p); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return c.views.GetByID(ctx, p.ID())
}

func (c *placeCommandsImpl) Update(ctx context.Context, id uuid.UUID, input UpdatePlaceInput) (*queries.PlaceView, error) {
	var img string
	if input.Image != nil {
		img = *input.Image
	}
	if err := c.validateImages(img, input.Gallery); err != nil {
		return nil, err
	}
	if input.TicketPrice != nil {
		if _, err := parsePrice(*input.TicketPrice); err != nil {
			return nil, err
		}
	}

	update := PlaceUpdate{
		Name:        input.Name,
		Description: input.Description,
		History:     input.History,
		TicketPrice: input.TicketPrice,
		OpenTime:    input.OpenTime,
		CloseTime:   input.CloseTime,
		Image:       input.Image,
		Gallery:     input.Gallery,
	}

	if err := c.places.Update(ctx, id, update); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return c.views.GetByID(ctx, id)
}

func (c *placeCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.places.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

func (c *placeCommandsImpl) validateImages(image string, gallery []string) error {
	if err := dataurl.Validate(image, c.images.GuidePhotoMaxBytes); err != nil {
		return errs.Mark(err, errs.ErrValidationFailed)
	}
	for _, g := range gallery {
		if err := dataurl.Validate(g, c.images.GuidePhotoMaxBytes); err != nil {
			return errs.Mark(err, errs.ErrValidationFailed)
		}
	}
	return nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errs.Mark(err, errs.ErrValidationFailed)
	}
	return price, nil
}
