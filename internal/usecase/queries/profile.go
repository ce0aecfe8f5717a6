package queries

import (
	"context"

	"tourbook/internal/domain/user"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ProfileQueries interface {
	// Load never fails on missing fields; a profile that does not exist yet
	// comes back as defaults so the edit form can still render.
	Load(ctx context.Context, uid uuid.UUID, role user.Role) (*ProfileView, error)
}

// ProfileReadStore reads the profile fields kept on the users record for
// non-guide roles.
type ProfileReadStore interface {
	FindProfileByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
}

type profileQueriesImpl struct {
	guides GuideReadStore
	users  ProfileReadStore
}

func NewProfileQueries(guides GuideReadStore, users ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{guides: guides, users: users}
}

func (q *profileQueriesImpl) Load(ctx context.Context, uid uuid.UUID, role user.Role) (*ProfileView, error) {
	if role == user.RoleGuide {
		return q.loadGuide(ctx, uid)
	}
	return q.loadUser(ctx, uid, role)
}

func (q *profileQueriesImpl) loadGuide(ctx context.Context, uid uuid.UUID) (*ProfileView, error) {
	g, err := q.guides.FindByID(ctx, uid)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ProfileView{ID: uid, Role: user.RoleGuide.String(), Languages: []string{}}, nil
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return &ProfileView{
		ID:         g.ID,
		Name:       g.Name,
		Email:      g.Email,
		Phone:      g.Phone,
		Experience: g.Experience,
		Languages:  g.Languages,
		Bio:        g.Bio,
		Location:   g.Location,
		Image:      g.Image,
		Role:       user.RoleGuide.String(),
	}, nil
}

func (q *profileQueriesImpl) loadUser(ctx context.Context, uid uuid.UUID, role user.Role) (*ProfileView, error) {
	view, err := q.users.FindProfileByID(ctx, uid)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &ProfileView{ID: uid, Role: role.String(), Languages: []string{}}, nil
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return view, nil
}
