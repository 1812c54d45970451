package bootstrap

import (
	"log/slog"

	"hotel-booking-api/internal/infra/blob"
	"hotel-booking-api/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			NewFileBackend,
			fx.As(new(blob.Backend)),
		),
	),
)

func NewFileBackend(cfg config.Config, logger *slog.Logger) (*blob.FileBackend, error) {
	return blob.NewFileBackend(cfg.Store.Dir, logger)
}
