package main

import (
	"context"
	"log/slog"
	"os"

	"homeplate/config"
	"homeplate/internal/delivery"
	"homeplate/internal/delivery/http"
	"homeplate/internal/delivery/http/middleware"
	"homeplate/internal/delivery/http/router/handler"
	"homeplate/internal/infra/auth"
	"homeplate/internal/infra/jsonstore"
	logs "homeplate/internal/infra/log"
	"homeplate/internal/infra/qrcode"
	"homeplate/internal/usecase"
	"homeplate/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		jsonstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			jsonstore.NewAdminRepository,
			jsonstore.NewUserRepository,
			jsonstore.NewProductRepository,
			jsonstore.NewOrderRepository,
			jsonstore.NewPaymentRepository,
			jsonstore.NewBusinessRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAdminService,
			impl.NewAccountService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewReportService,
			impl.NewBusinessService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdminHandler,
			handler.NewUserHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewReportHandler,
			handler.NewBusinessHandler,
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
		),
	)
}

// seedAdmin makes sure the configured back-office account exists before the
// server starts taking logins.
func seedAdmin(ctx context.Context, admins usecase.AdminUsecase) error {
	return admins.EnsureSeeded(ctx)
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
