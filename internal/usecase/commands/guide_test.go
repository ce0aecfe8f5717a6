//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/config"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guideFixture struct {
	cmd     commands.GuideCommands
	repo    *fakeGuideRepo
	placeID uuid.UUID
}

func newGuideFixture(t *testing.T) *guideFixture {
	t.Helper()

	placeID := uuid.New()
	repo := newFakeGuideRepo()
	placeStore := &fakePlaceReadStore{places: map[uuid.UUID]*queries.PlaceView{
		placeID: {ID: placeID, Name: "Edakkal Caves"},
	}}
	views := queries.NewGuideQueries(&guideRepoReadStore{repo: repo})

	mockClock := clock.NewMockClock(time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC))
	imageCfg := config.ImageConfig{GuidePhotoMaxBytes: 400 * 1024, ProfilePhotoMaxBytes: 800 * 1024}

	cmd := commands.NewGuideCommands(repo, views, placeStore, imageCfg, mockClock)
	return &guideFixture{cmd: cmd, repo: repo, placeID: placeID}
}

func TestGuideCreate(t *testing.T) {
	t.Run("creates a directory entry with the place snapshot", func(t *testing.T) {
		f := newGuideFixture(t)

		view, err := f.cmd.Create(context.Background(), commands.CreateGuideInput{
			Name:    "Ravi Kumar",
			Email:   "ravi@wayanadtours.in",
			PlaceID: &f.placeID,
		})
		require.NoError(t, err)

		assert.Equal(t, "Ravi Kumar", view.Name)
		assert.Equal(t, "Edakkal Caves", view.PlaceName)
	})

	t.Run("duplicate email maps to email taken", func(t *testing.T) {
		f := newGuideFixture(t)
		ctx := context.Background()

		_, err := f.cmd.Create(ctx, commands.CreateGuideInput{
			Name:  "Ravi Kumar",
			Email: "ravi@wayanadtours.in",
		})
		require.NoError(t, err)

		_, err = f.cmd.Create(ctx, commands.CreateGuideInput{
			Name:  "Another Ravi",
			Email: "ravi@wayanadtours.in",
		})
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
	})

	t.Run("unknown place fails validation", func(t *testing.T) {
		f := newGuideFixture(t)
		missing := uuid.New()

		_, err := f.cmd.Create(context.Background(), commands.CreateGuideInput{
			Name:    "Ravi Kumar",
			Email:   "ravi@wayanadtours.in",
			PlaceID: &missing,
		})
		assert.ErrorIs(t, err, errs.ErrValidationFailed)
	})
}
