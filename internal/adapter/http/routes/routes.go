package routes

import (
	"context"
	"log/slog"

	_ "supplylink/docs" // generated swagger docs
	"supplylink/internal/adapter/http/handlers"
	"supplylink/internal/adapter/http/middleware"
	"supplylink/internal/adapter/persistence/repository"
	"supplylink/internal/infrastructure/config"
	"supplylink/internal/infrastructure/database"
	"supplylink/internal/infrastructure/events"
	"supplylink/internal/infrastructure/identity"
	"supplylink/internal/infrastructure/payments"
	"supplylink/internal/usecase"
	"supplylink/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the full dependency graph and starts the server. It returns only
// on a fatal startup or serve error.
func Run(cfg config.App, logger *slog.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ddb, err := database.NewClient(context.Background())
	if err != nil {
		return err
	}
	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	escrowRepo := repository.NewEscrowPaymentDynamoRepository(ddb)

	var publisher interfaces.IEventPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.EscrowEventsTopic, logger)
		if err != nil {
			return err
		}
		defer kafka.Close()
		publisher = kafka
	} else {
		logger.Warn("no kafka brokers configured; escrow events will be dropped")
	}

	gateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken: cfg.MercadoPagoAccessToken,
		CallTimeout: cfg.GatewayTimeout,
		MockMode:    cfg.PaymentGatewayMock,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	ledger := usecase.NewEscrowLedger(escrowRepo, bookingRepo, publisher, logger)
	escrowUseCase := usecase.NewEscrowPaymentUseCase(bookingRepo, escrowRepo, gateway, ledger, publisher, logger)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, logger)

	escrowHandler := handlers.NewEscrowPaymentHandler(escrowUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	webhookHandler := handlers.NewGatewayWebhookHandler(escrowUseCase)

	verifier := identity.NewJWTVerifier(cfg.JWTSecret)
	authn := middleware.RequireAuth(verifier)

	addPingRoutes(&router.RouterGroup)
	addEscrowRoutes(&router.RouterGroup, authn, escrowHandler, webhookHandler)
	addBookingRoutes(&router.RouterGroup, authn, bookingHandler)

	logger.Info("server starting", "addr", cfg.HTTPAddr, "env", cfg.Env)
	return router.Run(cfg.HTTPAddr)
}
