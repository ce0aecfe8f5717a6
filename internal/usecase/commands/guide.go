package commands

import (
	"context"

	"tourbook/internal/domain/guide"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/config"
	"tourbook/internal/pkg/dataurl"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateGuideInput struct {
	Name       string
	Email      string
	Phone      string
	Experience string
	Rate       string
	Languages  []string
	Bio        string
	Location   string
	PlaceID    *uuid.UUID
	Image      string
}

type UpdateGuideInput struct {
	Name       *string
	Phone      *string
	Experience *string
	Rate       *string
	Languages  []string
	Bio        *string
	Location   *string
	PlaceID    *uuid.UUID
	Image      *string
	Status     *string
}

// GuideCommands is the admin-facing directory maintenance surface.
type GuideCommands interface {
	Create(ctx context.Context, input CreateGuideInput) (*queries.GuideView, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateGuideInput) (*queries.GuideView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type guideCommandsImpl struct {
	guides GuideRepository
	views  queries.GuideQueries
	places queries.PlaceReadStore
	images config.ImageConfig
	clock  clock.Clock
}

func NewGuideCommands(
	guides GuideRepository,
	views queries.GuideQueries,
	places queries.PlaceReadStore,
	images config.ImageConfig,
	clock clock.Clock,
) GuideCommands {
	return &guideCommandsImpl{
		guides: guides,
		views:  views,
		places: places,
		images: images,
		clock:  clock,
	}
}

func (c *guideCommandsImpl) Create(ctx context.Context, input CreateGuideInput) (*queries.GuideView, error) {
	if err := dataurl.Validate(input.Image, c.images.GuidePhotoMaxBytes); err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	placeName, err := c.resolvePlaceName(ctx, input.PlaceID)
	if err != nil {
		return nil, err
	}

	g, err := guide.NewGuide(guide.Draft{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Experience: input.Experience,
		Rate:       input.Rate,
		Languages:  input.Languages,
		Bio:        input.Bio,
		Location:   input.Location,
		PlaceID:    input.PlaceID,
		PlaceName:  placeName,
		Image:      input.Image,
	}, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	if err := c.guides.Create(ctx, g); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return c.views.GetByID(ctx, g.ID())
}

func (c *guideCommandsImpl) Update(ctx context.Context, id uuid.UUID, input UpdateGuideInput) (*queries.GuideView, error) {
	if input.Image != nil {
		if err := dataurl.Validate(*input.Image, c.images.GuidePhotoMaxBytes); err != nil {
			return nil, errs.Mark(err, errs.ErrValidationFailed)
		}
	}

	update := GuideUpdate{
		Name:       input.Name,
		Phone:      input.Phone,
		Experience: input.Experience,
		Rate:       input.Rate,
		Languages:  input.Languages,
		Bio:        input.Bio,
		Location:   input.Location,
		Image:      input.Image,
		Status:     input.Status,
	}
	if input.PlaceID != nil {
		placeName, err := c.resolvePlaceName(ctx, input.PlaceID)
		if err != nil {
			return nil, err
		}
		update.PlaceID = input.PlaceID
		update.PlaceName = &placeName
	}

	if err := c.guides.Update(ctx, id, update); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return c.views.GetByID(ctx, id)
}

func (c *guideCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.guides.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

// resolvePlaceName denormalizes the assigned place's name onto the guide
// row. An unknown place id is a validation problem, not a 404.
func (c *guideCommandsImpl) resolvePlaceName(ctx context.Context, placeID *uuid.UUID) (string, error) {
	if placeID == nil {
		return "", nil
	}
	view, err := c.places.FindByID(ctx, *placeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.Mark(err, errs.ErrValidationFailed)
		}
		return "", errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return view.Name, nil
}
