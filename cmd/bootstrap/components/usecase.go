package components

import (
	"hotel-booking-api/internal/catalog"
	"hotel-booking-api/internal/notify"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/idgen"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		idgen.NewTimeRand,
		fx.As(new(idgen.Generator)),
	),
	fx.Annotate(
		catalog.NewDefault,
		fx.As(new(commands.RoomCatalog)),
		fx.As(new(queries.RoomCatalog)),
	),
	func(cfg config.Config) *notify.WhatsAppNotifier {
		return notify.NewWhatsAppNotifier(cfg.Hotel.Name, cfg.Hotel.WhatsAppNumber)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewRoomQueries,
	),
)
