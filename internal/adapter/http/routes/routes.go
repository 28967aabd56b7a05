package routes

import (
	"context"
	"log"

	_ "revolux/docs" // This will be auto-generated
	"revolux/internal/adapter/http/handlers"
	"revolux/internal/adapter/persistence/repository"
	"revolux/internal/domain/workflow"
	"revolux/internal/infrastructure/analyzer"
	"revolux/internal/infrastructure/config"
	"revolux/internal/infrastructure/database"
	"revolux/internal/infrastructure/messaging"
	"revolux/internal/infrastructure/payments"
	"revolux/internal/usecase"
	"revolux/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

type appHandlers struct {
	orders    *handlers.OrderHandler
	dashboard *handlers.DashboardHandler
	uploads   *handlers.UploadHandler
	insights  *handlers.InsightsHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h, closeFn := buildHandlers(context.Background(), cfg)
	defer closeFn()
	getRoutes(h)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func buildHandlers(ctx context.Context, cfg config.Config) (appHandlers, func()) {
	var (
		orderRepo   interfaces.IOrderRepository
		historyRepo interfaces.IHistoryRepository
		uploadRepo  interfaces.IUploadRepository
	)
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Printf("[app][routes] storage driver=memory; orders and history are not persisted")
		uploadRepo = repository.NewUploadMemoryRepository()
	default:
		ddb := database.ConnectDynamoDB(ctx, cfg)
		orderRepo = repository.NewOrderDynamoRepository(ddb)
		historyRepo = repository.NewHistoryDynamoRepository(ddb)
		uploadRepo = repository.NewUploadDynamoRepository(ddb)
	}

	var publisher interfaces.IEventPublisher
	closeFn := func() {}
	if brokers := messaging.ParseBrokers(cfg.KafkaBrokers); len(brokers) > 0 {
		kp := messaging.NewKafkaPublisher(brokers)
		publisher = kp
		closeFn = func() {
			if err := kp.Close(); err != nil {
				log.Printf("[app][routes] kafka close failed err=%v", err)
			}
		}
		log.Printf("[app][routes] kafka enabled brokers=%v", brokers)
	}

	onPersist := persistenceErrorReporter(publisher, cfg.KafkaPersistenceErrorsTopic)
	store := usecase.NewOrderStore(orderRepo,
		usecase.WithPersistenceTimeout(cfg.PersistenceTimeout),
		usecase.WithPersistenceErrorHandler(onPersist),
	)
	if err := store.Load(ctx); err != nil {
		log.Printf("[app][routes] initial order load failed; starting empty err=%v", err)
	}
	history := usecase.NewHistoryLog(historyRepo, cfg.PersistenceTimeout, onPersist)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("[app][routes] Mercado Pago gateway not configured: %v", err)
	} else {
		gateway = mpGateway
	}

	var csvAnalyzer interfaces.ICSVAnalyzer = analyzer.NewLocalCSVAnalyzer()
	if cfg.AnalyzerURL != "" {
		csvAnalyzer = analyzer.NewRemoteCSVAnalyzer(cfg.AnalyzerURL)
	}

	engine := workflow.NewEngine(workflow.WithDefaultReminderDays(cfg.DeferReminderDays))
	orderUseCase := usecase.NewOrderUseCase(store, history, engine, gateway, publisher, usecase.OrderUseCaseConfig{
		RevalidateRemote: cfg.WorkflowRevalidateRemote,
		HistoryTopic:     cfg.KafkaHistoryTopic,
		Payment: usecase.PaymentConfig{
			MethodID:       cfg.PaymentMethodID,
			TestPayerEmail: cfg.PaymentTestPayerEmail,
		},
	})
	dashboardUseCase := usecase.NewDashboardUseCase(store, cfg.UrgentHorizonDays, nil)
	insightsUseCase := usecase.NewInsightsUseCase(store, cfg.UrgentHorizonDays, nil)
	uploadUseCase := usecase.NewUploadUseCase(uploadRepo, csvAnalyzer)

	return appHandlers{
		orders:    handlers.NewOrderHandler(orderUseCase),
		dashboard: handlers.NewDashboardHandler(dashboardUseCase),
		uploads:   handlers.NewUploadHandler(uploadUseCase),
		insights:  handlers.NewInsightsHandler(insightsUseCase),
	}, closeFn
}

func getRoutes(h appHandlers) {
	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStreamRoutes(v1, h.orders)

	// Rotas autenticadas pelo provedor de identidade
	authed := v1.Group("")
	authed.Use(handlers.RequireIdentity())
	addOrderRoutes(authed, h.orders, h.dashboard)
	addDashboardRoutes(authed, h.dashboard)
	addUploadRoutes(authed, h.uploads)
	addInsightsRoutes(authed, h.insights)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
