package bootstrap

import (
	"hotel-booking-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	components.StorageModule,
	components.UseCaseModule,
	components.HandlerModule,
)
