package components

import (
	"paintball-booking/internal/handler"
	"paintball-booking/internal/handler/api"
	"paintball-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewQuoteHandler,
		api.NewBookingHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	quote *api.QuoteHandler,
	booking *api.BookingHandler,
	settings *api.SettingsHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Catalog:  catalog,
		Quote:    quote,
		Booking:  booking,
		Settings: settings,
	}
}
