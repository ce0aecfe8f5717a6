package components

import (
	"tourbook/internal/infra/readstore"
	"tourbook/internal/infra/repository"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewGuideReadStore,
			fx.As(new(queries.GuideReadStore)),
		),
		fx.Annotate(
			readstore.NewPlaceReadStore,
			fx.As(new(queries.PlaceReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(queries.ProfileReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewGuideRepository,
			fx.As(new(commands.GuideRepository)),
		),
		fx.Annotate(
			repository.NewPlaceRepository,
			fx.As(new(commands.PlaceRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)
