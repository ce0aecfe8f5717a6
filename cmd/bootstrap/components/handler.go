package components

import (
	"tourbook/internal/handler"
	"tourbook/internal/handler/api"
	"tourbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewGuideHandler,
		api.NewPlaceHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	guide *api.GuideHandler,
	place *api.PlaceHandler,
	profile *api.ProfileHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Booking: booking,
		Guide:   guide,
		Place:   place,
		Profile: profile,
	}
}
