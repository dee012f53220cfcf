package main

import (
	"context"
	"log/slog"
	"os"

	"editais/config"
	"editais/internal/delivery"
	"editais/internal/delivery/http"
	"editais/internal/delivery/http/middleware"
	"editais/internal/delivery/http/router/handler"
	"editais/internal/delivery/worker"
	"editais/internal/domain/service"
	"editais/internal/infra/alert"
	"editais/internal/infra/auth"
	logs "editais/internal/infra/log"
	"editais/internal/infra/persistence"
	"editais/internal/infra/pncp"
	"editais/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newTenderSource,
		),
		persistence.Module,
		alert.Module,
	)
}

// newTenderSource creates the PNCP client behind the source interface
func newTenderSource(cfg *config.Config, logger *slog.Logger) service.TenderSource {
	return pncp.NewClient(cfg, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewTenderService,
			impl.NewFilterService,
			impl.NewAlertService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewTenderHandler,
			handler.NewFilterHandler,
			handler.NewAlertHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
