package queries

import (
	"context"

	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type PlaceQueries interface {
	List(ctx context.Context) ([]*PlaceView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PlaceView, error)
}

type PlaceReadStore interface {
	FindAll(ctx context.Context) ([]*PlaceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PlaceView, error)
}

type placeQueriesImpl struct {
	store PlaceReadStore
}

func NewPlaceQueries(store PlaceReadStore) PlaceQueries {
	return &placeQueriesImpl{store: store}
}

func (q *placeQueriesImpl) List(ctx context.Context) ([]*PlaceView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return views, nil
}

func (q *placeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PlaceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return view, nil
}
