package commands

import (
	"context"
	"log/slog"

	"tourbook/internal/domain/guide"
	"tourbook/internal/domain/user"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/config"
	"tourbook/internal/pkg/dataurl"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/patch"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
)

// SaveProfileInput carries the edit form. Nil fields are untouched;
// Languages arrives as the comma-separated form value.
type SaveProfileInput struct {
	Name       *string
	Phone      *string
	Experience *string
	Languages  *string
	Bio        *string
	Location   *string
	Image      *string
}

type ProfileCommands interface {
	// Save applies the edits for the caller's own profile and returns the
	// refreshed view.
	Save(ctx context.Context, uid uuid.UUID, role user.Role, input SaveProfileInput) (*queries.ProfileView, error)
}

type profileCommandsImpl struct {
	guides   GuideRepository
	users    UserRepository
	userRead queries.UserReadStore
	views    queries.ProfileQueries
	images   config.ImageConfig
	clock    clock.Clock
}

func NewProfileCommands(
	guides GuideRepository,
	users UserRepository,
	userRead queries.UserReadStore,
	views queries.ProfileQueries,
	images config.ImageConfig,
	clock clock.Clock,
) ProfileCommands {
	return &profileCommandsImpl{
		guides:   guides,
		users:    users,
		userRead: userRead,
		views:    views,
		images:   images,
		clock:    clock,
	}
}

func (c *profileCommandsImpl) Save(ctx context.Context, uid uuid.UUID, role user.Role, input SaveProfileInput) (*queries.ProfileView, error) {
	if input.Image != nil {
		if err := dataurl.Validate(*input.Image, c.images.ProfilePhotoMaxBytes); err != nil {
			return nil, errs.Mark(err, errs.ErrValidationFailed)
		}
	}

	if role == user.RoleGuide {
		if err := c.saveGuide(ctx, uid, input); err != nil {
			return nil, err
		}
		// Guides keep their profile on the guides row; the users record only
		// mirrors name and photo so session rendering never needs that row.
		c.mirrorToUsers(ctx, uid, input)
	} else {
		// Everyone else has no guides row, so the users record is the
		// profile itself and this write must not be swallowed.
		if err := c.saveUser(ctx, uid, input); err != nil {
			return nil, err
		}
	}

	return c.views.Load(ctx, uid, role)
}

func (c *profileCommandsImpl) saveUser(ctx context.Context, uid uuid.UUID, input SaveProfileInput) error {
	update := ProfileUpdate{
		Phone:    input.Phone,
		Bio:      input.Bio,
		Location: input.Location,
		Image:    input.Image,
	}
	if input.Name != nil {
		// The name lands on the auth record, so it obeys display-name rules.
		name, err := user.NewDisplayName(*input.Name)
		if err != nil {
			return errs.Mark(err, errs.ErrValidationFailed)
		}
		trimmed := name.Value()
		update.Name = &trimmed
	}
	if input.Languages != nil {
		update.Languages = guide.ParseLanguages(*input.Languages)
	}

	if err := c.users.SaveProfile(ctx, uid, update); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

func (c *profileCommandsImpl) saveGuide(ctx context.Context, uid uuid.UUID, input SaveProfileInput) error {
	update := GuideUpdate{
		Name:       input.Name,
		Phone:      input.Phone,
		Experience: input.Experience,
		Bio:        input.Bio,
		Location:   input.Location,
		Image:      input.Image,
	}
	if input.Languages != nil {
		update.Languages = guide.ParseLanguages(*input.Languages)
	}

	err := c.guides.Update(ctx, uid, update)
	if err == nil {
		return nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	// First save for a guide without a directory row yet: seed one from
	// the auth record plus the submitted fields.
	return c.seedGuide(ctx, uid, input)
}

func (c *profileCommandsImpl) seedGuide(ctx context.Context, uid uuid.UUID, input SaveProfileInput) error {
	account, err := c.userRead.FindByID(ctx, uid)
	if err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	draft := guide.Draft{
		ID:         uid,
		Name:       account.DisplayName,
		Email:      account.Email,
		Phone:      patch.Coalesce(input.Phone, ""),
		Experience: patch.Coalesce(input.Experience, ""),
		Bio:        patch.Coalesce(input.Bio, ""),
		Location:   patch.Coalesce(input.Location, ""),
		Image:      patch.Coalesce(input.Image, ""),
	}
	if input.Name != nil {
		draft.Name = *input.Name
	}
	if input.Languages != nil {
		draft.Languages = guide.ParseLanguages(*input.Languages)
	}

	g, err := guide.NewGuide(draft, c.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrValidationFailed)
	}
	if err := c.guides.Create(ctx, g); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

// mirrorToUsers is best-effort: a failed mirror is logged, never surfaced,
// so profile saves don't fail on the denormalized copy.
func (c *profileCommandsImpl) mirrorToUsers(ctx context.Context, uid uuid.UUID, input SaveProfileInput) {
	if input.Name == nil && input.Image == nil {
		return
	}

	account, err := c.userRead.FindByID(ctx, uid)
	if err != nil {
		slog.Warn("profile mirror skipped: account lookup failed", "user_id", uid, "error", err)
		return
	}

	name := account.DisplayName
	if input.Name != nil {
		name = *input.Name
	}
	photo := account.PhotoURL
	if input.Image != nil {
		photo = input.Image
	}

	if err := c.users.MirrorProfile(ctx, uid, name, photo); err != nil {
		slog.Warn("profile mirror failed", "user_id", uid, "error", err)
	}
}
