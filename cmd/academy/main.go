package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"academy/config"
	"academy/internal/delivery"
	"academy/internal/delivery/http"
	"academy/internal/delivery/http/middleware"
	"academy/internal/delivery/http/router/handler"
	"academy/internal/domain/service"
	"academy/internal/infra/auth"
	"academy/internal/infra/auth/google"
	"academy/internal/infra/cache"
	logs "academy/internal/infra/log"
	"academy/internal/infra/mail"
	"academy/internal/infra/payment"
	"academy/internal/infra/persistence/postgres"
	"academy/internal/infra/pubsub"
	"academy/internal/infra/qrcode"
	"academy/internal/infra/storage"
	"academy/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewConnectionRepository,
			postgres.NewSessionRepository,
			postgres.NewVerificationRepository,
			postgres.NewCourseRepository,
			postgres.NewChapterRepository,
			postgres.NewProgressRepository,
			postgres.NewPurchaseRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionTokenCodec,
			auth.NewVerificationCodeGenerator,
			auth.NewJWTService,
			google.NewOAuthService,
			cache.NewStateStore,
			mail.NewMailer,
			payment.NewGateway,
			payment.NewWebhookVerifier,
			storage.NewVideoStorage,
			newAttachmentStore,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newAttachmentStore opens the attachment bucket and closes it on shutdown
func newAttachmentStore(lc fx.Lifecycle, ctx context.Context, cfg *config.Config) (service.AttachmentStore, error) {
	store, closeStore, err := storage.NewAttachmentStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment store: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closeStore()
		},
	})

	return store, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthService,
			impl.NewCourseService,
			impl.NewChapterService,
			impl.NewProgressService,
			impl.NewPurchaseService,
			impl.NewDeviceService,
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
			handler.NewAuthHandler,
			handler.NewCourseHandler,
			handler.NewChapterHandler,
			handler.NewProgressHandler,
			handler.NewPurchaseHandler,
			handler.NewWebhookHandler,
			handler.NewDeviceHandler,
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
