//go:build unit

package commands_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"tourbook/internal/domain/booking"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes shared by the command tests in this package.

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*booking.Booking
	failAll  bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*booking.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	if f.failAll {
		return uuid.Nil, infra.WrapRepoErr("store down", assert.AnError)
	}
	f.bookings[b.ID()] = b
	return b.ID(), nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	if f.failAll {
		return nil, infra.WrapRepoErr("store down", assert.AnError)
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", assert.AnError, infra.KindNotFound)
	}
	return cloneBooking(b), nil
}

func (f *fakeBookingRepo) UpdateStatusIfPending(_ context.Context, id uuid.UUID, to booking.Status) (bool, error) {
	b, ok := f.bookings[id]
	if !ok || b.Status() != booking.StatusPending {
		return false, nil
	}
	f.bookings[id] = reconstructWithStatus(b, to)
	return true, nil
}

func (f *fakeBookingRepo) DeleteIfPending(_ context.Context, id uuid.UUID) (bool, error) {
	b, ok := f.bookings[id]
	if !ok || b.Status() != booking.StatusPending {
		return false, nil
	}
	delete(f.bookings, id)
	return true, nil
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return reconstructWithStatus(b, b.Status())
}

func reconstructWithStatus(b *booking.Booking, status booking.Status) *booking.Booking {
	return booking.ReconstructBooking(
		b.ID(), b.UserID(), b.GuideID(), b.PlaceID(),
		b.GuideName(), b.PlaceName(), b.PlaceImage(), b.TouristName(),
		b.Date(), b.Time(), b.Guests(), b.Phone1(), b.Phone2(), b.Requests(),
		status, b.CreatedAt(),
	)
}

// fakeBookingReadStore projects the repo's state into views.
type fakeBookingReadStore struct {
	repo *fakeBookingRepo
}

func (f *fakeBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	b, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return bookingToView(b), nil
}

func (f *fakeBookingReadStore) FindByUserID(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	for _, b := range f.repo.bookings {
		if b.UserID() == userID {
			views = append(views, bookingToView(b))
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CreatedAt.After(views[j].CreatedAt) })
	return views, nil
}

func (f *fakeBookingReadStore) FindByGuideID(_ context.Context, guideID uuid.UUID) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	for _, b := range f.repo.bookings {
		if b.GuideID() == guideID {
			views = append(views, bookingToView(b))
		}
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CreatedAt.After(views[j].CreatedAt) })
	return views, nil
}

func bookingToView(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID(),
		UserID:      b.UserID(),
		GuideID:     b.GuideID(),
		PlaceID:     b.PlaceID(),
		GuideName:   b.GuideName(),
		PlaceName:   b.PlaceName(),
		PlaceImage:  b.PlaceImage(),
		TouristName: b.TouristName(),
		Date:        b.Date(),
		Time:        b.Time(),
		Guests:      b.Guests(),
		Phone1:      b.Phone1(),
		Phone2:      b.Phone2(),
		Requests:    b.Requests(),
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
	}
}

type fakeGuideReadStore struct {
	guides map[uuid.UUID]*queries.GuideView
}

func (f *fakeGuideReadStore) FindAll(context.Context) ([]*queries.GuideView, error) {
	views := make([]*queries.GuideView, 0, len(f.guides))
	for _, g := range f.guides {
		views = append(views, g)
	}
	return views, nil
}

func (f *fakeGuideReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.GuideView, error) {
	g, ok := f.guides[id]
	if !ok {
		return nil, infra.WrapRepoErr("guide not found", assert.AnError, infra.KindNotFound)
	}
	return g, nil
}

func (f *fakeGuideReadStore) FindByPlaceID(_ context.Context, placeID uuid.UUID) ([]*queries.GuideView, error) {
	views := make([]*queries.GuideView, 0)
	for _, g := range f.guides {
		if g.PlaceID != nil && *g.PlaceID == placeID {
			views = append(views, g)
		}
	}
	return views, nil
}

type fakePlaceReadStore struct {
	places map[uuid.UUID]*queries.PlaceView
}

func (f *fakePlaceReadStore) FindAll(context.Context) ([]*queries.PlaceView, error) {
	views := make([]*queries.PlaceView, 0, len(f.places))
	for _, p := range f.places {
		views = append(views, p)
	}
	return views, nil
}

func (f *fakePlaceReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.PlaceView, error) {
	p, ok := f.places[id]
	if !ok {
		return nil, infra.WrapRepoErr("place not found", assert.AnError, infra.KindNotFound)
	}
	return p, nil
}

type fakeUserReadStore struct {
	users map[uuid.UUID]*queries.UserView
}

func (f *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", assert.AnError, infra.KindNotFound)
	}
	return u, nil
}

type fakeNotifier struct {
	sent   []commands.ApprovalEmail
	result bool
}

func (f *fakeNotifier) SendApprovalEmail(_ context.Context, mail commands.ApprovalEmail) bool {
	f.sent = append(f.sent, mail)
	return f.result
}

// bookingFixture wires a full command stack around the in-memory fakes.
type bookingFixture struct {
	cmd      commands.BookingCommands
	views    queries.BookingQueries
	repo     *fakeBookingRepo
	notifier *fakeNotifier
	clock    *clock.MockClock

	touristID uuid.UUID
	guideID   uuid.UUID
	placeID   uuid.UUID
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	touristID := uuid.New()
	guideID := uuid.New()
	placeID := uuid.New()

	repo := newFakeBookingRepo()
	readStore := &fakeBookingReadStore{repo: repo}
	views := queries.NewBookingQueries(readStore)

	guideStore := &fakeGuideReadStore{guides: map[uuid.UUID]*queries.GuideView{
		guideID: {ID: guideID, Name: "Ravi Kumar", Email: "ravi@wayanadtours.in"},
	}}
	placeStore := &fakePlaceReadStore{places: map[uuid.UUID]*queries.PlaceView{
		placeID: {ID: placeID, Name: "Edakkal Caves", Image: "https://img.example/edakkal.jpg"},
	}}
	userStore := &fakeUserReadStore{users: map[uuid.UUID]*queries.UserView{
		touristID: {ID: touristID, Email: "anjali@example.com", DisplayName: "Anjali Menon", Role: "user"},
	}}

	notifier := &fakeNotifier{result: true}
	mockClock := clock.NewMockClock(time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC))

	cmd := commands.NewBookingCommands(repo, guideStore, placeStore, userStore, views, notifier, mockClock)

	return &bookingFixture{
		cmd:       cmd,
		views:     views,
		repo:      repo,
		notifier:  notifier,
		clock:     mockClock,
		touristID: touristID,
		guideID:   guideID,
		placeID:   placeID,
	}
}

func (f *bookingFixture) validInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		GuideID:  f.guideID,
		PlaceID:  f.placeID,
		Date:     "2025-12-04",
		Time:     "09:30",
		Guests:   2,
		Phone1:   "+91 9400000001",
		Phone2:   "+91 9400000002",
		Requests: "vegetarian lunch",
	}
}

func TestBookingCreate(t *testing.T) {
	t.Run("creates pending booking stamped with clock time", func(t *testing.T) {
		f := newBookingFixture(t)

		view, err := f.cmd.Create(context.Background(), f.validInput(), f.touristID)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending.String(), view.Status)
		assert.Equal(t, f.clock.Now(), view.CreatedAt)
		assert.Equal(t, "Ravi Kumar", view.GuideName)
		assert.Equal(t, "Edakkal Caves", view.PlaceName)
		assert.Equal(t, "Anjali Menon", view.TouristName)
	})

	t.Run("unknown guide is NotFound", func(t *testing.T) {
		f := newBookingFixture(t)
		input := f.validInput()
		input.GuideID = uuid.New()

		_, err := f.cmd.Create(context.Background(), input, f.touristID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("missing date is ValidationFailed", func(t *testing.T) {
		f := newBookingFixture(t)
		input := f.validInput()
		input.Date = "  "

		_, err := f.cmd.Create(context.Background(), input, f.touristID)
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
	})

	t.Run("store failure is StoreUnavailable", func(t *testing.T) {
		f := newBookingFixture(t)
		f.repo.failAll = true

		_, err := f.cmd.Create(context.Background(), f.validInput(), f.touristID)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestBookingTransition(t *testing.T) {
	create := func(t *testing.T, f *bookingFixture) uuid.UUID {
		t.Helper()
		view, err := f.cmd.Create(context.Background(), f.validInput(), f.touristID)
		require.NoError(t, err)
		return view.ID
	}

	t.Run("assigned guide confirms and approval email fires", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		err := f.cmd.Transition(context.Background(), id, booking.StatusConfirmed, f.guideID)
		require.NoError(t, err)

		view, err := f.views.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed.String(), view.Status)

		require.Len(t, f.notifier.sent, 1)
		assert.Equal(t, "anjali@example.com", f.notifier.sent[0].TouristEmail)
		assert.Equal(t, "Edakkal Caves", f.notifier.sent[0].PlaceName)
	})

	t.Run("reject does not send email", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		require.NoError(t, f.cmd.Transition(context.Background(), id, booking.StatusRejected, f.guideID))
		assert.Empty(t, f.notifier.sent)
	})

	t.Run("only the assigned guide may act", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		err := f.cmd.Transition(context.Background(), id, booking.StatusConfirmed, uuid.New())
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("confirm then reject is InvalidTransition", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		require.NoError(t, f.cmd.Transition(context.Background(), id, booking.StatusConfirmed, f.guideID))
		err := f.cmd.Transition(context.Background(), id, booking.StatusRejected, f.guideID)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("pending is not a valid target", func(t *testing.T) {
		f := newBookingFixture(t)
		id := create(t, f)

		err := f.cmd.Transition(context.Background(), id, booking.StatusPending, f.guideID)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("missing booking is NotFound", func(t *testing.T) {
		f := newBookingFixture(t)
		err := f.cmd.Transition(context.Background(), uuid.New(), booking.StatusConfirmed, f.guideID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("failed email never fails the confirm", func(t *testing.T) {
		f := newBookingFixture(t)
		f.notifier.result = false
		id := create(t, f)

		require.NoError(t, f.cmd.Transition(context.Background(), id, booking.StatusConfirmed, f.guideID))
	})
}

func TestBookingCancel(t *testing.T) {
	t.Run("owner cancels pending booking", func(t *testing.T) {
		f := newBookingFixture(t)
		view, err := f.cmd.Create(context.Background(), f.validInput(), f.touristID)
		require.NoError(t, err)

		require.NoError(t, f.cmd.Cancel(context.Background(), view.ID, f.touristID))

		_, err = f.views.GetByID(context.Background(), view.ID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("non-owner cannot cancel", func(t *testing.T) {
		f := newBookingFixture(t)
		view, err := f.cmd.Create(context.Background(), f.validInput(), f.touristID)
		require.NoError(t, err)

		err = f.cmd.Cancel(context.Background(), view.ID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("confirmed booking is NotCancellable", func(t *testing.T) {
		f := newBookingFixture(t)
		view, err := f.cmd.Create(context.Background(), f.validInput(), f.touristID)
		require.NoError(t, err)
		require.NoError(t, f.cmd.Transition(context.Background(), view.ID, booking.StatusConfirmed, f.guideID))

		err = f.cmd.Cancel(context.Background(), view.ID, f.touristID)
		assert.ErrorIs(t, err, errs.ErrNotCancellable)
	})
}

// End-to-end walk through the lifecycle as the UI drives it.
func TestBookingLifecycleScenario(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	first, err := f.cmd.Create(ctx, f.validInput(), f.touristID)
	require.NoError(t, err)

	f.clock.Add(time.Hour)
	input := f.validInput()
	input.Date = "2025-12-05"
	second, err := f.cmd.Create(ctx, input, f.touristID)
	require.NoError(t, err)

	// Newest first for the tourist's list.
	mine, err := f.views.ListByUser(ctx, f.touristID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	// Guide sees both regardless of status.
	require.NoError(t, f.cmd.Transition(ctx, first.ID, booking.StatusConfirmed, f.guideID))
	assigned, err := f.views.ListByGuide(ctx, f.guideID)
	require.NoError(t, err)
	assert.Len(t, assigned, 2)

	// Confirmed booking can no longer be withdrawn.
	err = f.cmd.Cancel(ctx, first.ID, f.touristID)
	assert.ErrorIs(t, err, errs.ErrNotCancellable)

	// The still-pending one can.
	require.NoError(t, f.cmd.Cancel(ctx, second.ID, f.touristID))
	mine, err = f.views.ListByUser(ctx, f.touristID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, booking.StatusConfirmed.String(), mine[0].Status)
}
