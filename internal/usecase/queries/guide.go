package queries

import (
	"context"

	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type GuideQueries interface {
	List(ctx context.Context) ([]*GuideView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*GuideView, error)
	// ListByPlace returns guides working at a destination.
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*GuideView, error)
}

type GuideReadStore interface {
	FindAll(ctx context.Context) ([]*GuideView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*GuideView, error)
	FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*GuideView, error)
}

type guideQueriesImpl struct {
	store GuideReadStore
}

func NewGuideQueries(store GuideReadStore) GuideQueries {
	return &guideQueriesImpl{store: store}
}

func (q *guideQueriesImpl) List(ctx context.Context) ([]*GuideView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return views, nil
}

func (q *guideQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*GuideView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return view, nil
}

func (q *guideQueriesImpl) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*GuideView, error) {
	views, err := q.store.FindByPlaceID(ctx, placeID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return views, nil
}
