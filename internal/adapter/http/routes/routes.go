package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "ongeo_api/docs" // swagger docs registration
	"ongeo_api/internal/adapter/http/handlers"
	"ongeo_api/internal/adapter/http/middleware"
	"ongeo_api/internal/adapter/persistence/repository"
	"ongeo_api/internal/config"
	"ongeo_api/internal/infrastructure/calculator"
	"ongeo_api/internal/infrastructure/database"
	"ongeo_api/internal/infrastructure/payments"
	"ongeo_api/internal/logger"
	"ongeo_api/internal/usecase"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Budgets   *handlers.BudgetHandler
	Items     *handlers.BudgetItemHandler
	Clients   *handlers.ClientHandler
	FormLinks *handlers.FormLinkHandler
	Payments  *handlers.BudgetPaymentHandler
}

// NewRouter builds the gin engine with middlewares, swagger and all routes.
func NewRouter(h Handlers, jwtSecret string) *gin.Engine {
	handlers.UseJSONFieldNames()
	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addHealthRoutes(router)

	guard := middleware.NewInFlightGuard()
	api := router.Group(PathAPI)

	// Rotas publicas
	addPublicRoutes(api, h, guard)

	private := api.Group("")
	private.Use(middleware.Auth(jwtSecret))
	addBudgetRoutes(private, h.Budgets, guard)
	addBudgetItemRoutes(private, h.Items)
	addClientRoutes(private, h.Clients)
	addFormLinkRoutes(private, h.FormLinks)
	addPaymentRoutes(private, h.Payments)

	return router
}

// Run wires the application from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.Component("server")

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return err
	}

	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.Tables.Budgets, cfg.Tables.Clients, cfg.Tables.UniqueKeys)
	itemRepo := repository.NewBudgetItemDynamoRepository(ddb, cfg.Tables.BudgetItems)
	templateRepo := repository.NewBudgetItemTemplateDynamoRepository(ddb, cfg.Tables.ItemTemplates)
	clientRepo := repository.NewClientDynamoRepository(ddb, cfg.Tables.Clients)
	formLinkRepo := repository.NewFormLinkDynamoRepository(ddb, cfg.Tables.FormLinks, cfg.Tables.UniqueKeys)
	paymentRepo := repository.NewBudgetPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	idemRepo := repository.NewIdempotencyDynamoRepository(ddb, cfg.Tables.IdempotencyKeys)

	calc := calculator.NewHTTPCalculator(cfg.CalculatorURL, cfg.CalculatorTimeout)

	var paymentGateway interfaces.IPaymentGateway
	if !cfg.PaymentGatewayMock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Warn().Err(err).Msg("mercado pago gateway not configured")
		} else {
			paymentGateway = mpGateway
		}
	}

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, itemRepo, clientRepo, calc, idemRepo, cfg.IdempotencyTTL)
	itemUseCase := usecase.NewBudgetItemUseCase(budgetRepo, itemRepo, templateRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	formLinkUseCase := usecase.NewFormLinkUseCase(formLinkRepo, budgetUseCase)
	paymentUseCase := usecase.NewBudgetPaymentUseCase(paymentRepo, budgetRepo, itemRepo, paymentGateway, usecase.PaymentSettings{
		Mock:            cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	})

	router := NewRouter(Handlers{
		Budgets:   handlers.NewBudgetHandler(budgetUseCase),
		Items:     handlers.NewBudgetItemHandler(itemUseCase),
		Clients:   handlers.NewClientHandler(clientUseCase),
		FormLinks: handlers.NewFormLinkHandler(formLinkUseCase),
		Payments:  handlers.NewBudgetPaymentHandler(paymentUseCase),
	}, cfg.AuthJWTSecret)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	formLinkUseCase.Wait()
	return nil
}
