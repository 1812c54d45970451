package components

import (
	"log/slog"

	"hotel-booking-api/internal/infra/blob"
	"hotel-booking-api/internal/infra/bookingstore"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewBookingStore,
			fx.As(new(commands.BookingStore)),
			fx.As(new(queries.BookingReader)),
		),
	),
)

func NewBookingStore(backend blob.Backend, cfg config.Config, logger *slog.Logger) *bookingstore.Store {
	return bookingstore.New(backend, cfg.Store.Namespace, logger)
}
