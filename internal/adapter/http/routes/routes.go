package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "warsto_quotation/docs"
	"warsto_quotation/internal/adapter/http/handlers"
	"warsto_quotation/internal/adapter/persistence/overlay"
	"warsto_quotation/internal/adapter/persistence/repository"
	"warsto_quotation/internal/domain/catalog"
	"warsto_quotation/internal/infrastructure/cache"
	"warsto_quotation/internal/infrastructure/config"
	"warsto_quotation/internal/infrastructure/database"
	"warsto_quotation/internal/infrastructure/notification"
	"warsto_quotation/internal/infrastructure/sheets"
	"warsto_quotation/internal/usecase"
	"warsto_quotation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run wires every collaborator from cfg and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	router := NewRouter(
		handlers.NewCatalogHandler(deps.catalog, logger),
		handlers.NewQuotationHandler(deps.quotation, logger),
		logger,
	)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[server] listening", zap.Int("port", cfg.Port), zap.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the HTTP engine. Everything under /api shares the
// visitor key middleware.
func NewRouter(catalogHandler *handlers.CatalogHandler, quotationHandler *handlers.QuotationHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)
	api.Use(handlers.VisitorKeyMiddleware())
	addPingRoutes(api)
	addQuotationRoutes(api, catalogHandler, quotationHandler)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[server] recovered from panic",
			zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

type dependencies struct {
	catalog   usecase.ICatalogUseCase
	quotation usecase.IQuotationUseCase
}

func buildDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	cat, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return dependencies{}, cleanup, err
	}
	engine := usecase.NewPricingEngine(cat, decimal.NewFromFloat(cfg.PaintingRatePerSqft))
	logger.Info("[server] catalog loaded",
		zap.Strings("dwelling_sizes", cat.DwellingSizes()),
		zap.String("painting_rate", engine.PaintingRate().String()))

	forms, quotations, closeStore, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return dependencies{}, cleanup, err
	}
	closers = append(closers, closeStore)

	store, closeOverlay := openOverlayStore(ctx, cfg, logger)
	closers = append(closers, closeOverlay)

	quotationDeps := usecase.QuotationDeps{
		Engine:        engine,
		Forms:         forms,
		Quotations:    quotations,
		PublicBaseURL: cfg.PublicBaseURL,
		Logger:        logger,
	}
	if cfg.SMTPEnabled() {
		quotationDeps.Mailer = notification.NewSMTPSender(notification.SMTPOptions{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	} else {
		logger.Warn("[server] SMTP not configured, quotation emails disabled")
	}
	if cfg.SheetEnabled() {
		quotationDeps.Sheet = sheets.NewExcelLogger(cfg.SheetFile, cfg.SheetName)
	}
	if cfg.TelegramEnabled() {
		notifier, err := notification.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChannelID)
		if err != nil {
			logger.Warn("[server] telegram notifier not configured", zap.Error(err))
		} else {
			quotationDeps.Staff = notifier
		}
	}

	return dependencies{
		catalog:   usecase.NewCatalogUseCase(cat, store, logger),
		quotation: usecase.NewQuotationUseCase(quotationDeps),
	}, cleanup, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IFormRepository, interfaces.IQuotationRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres, config.StorageSQLite:
		db, err := database.OpenSQL(ctx, cfg.StorageBackend, cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := repository.MigrateSQL(db); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate %s: %w", cfg.StorageBackend, err)
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewFormGormRepository(db), repository.NewQuotationGormRepository(db), closeDB, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return repository.NewFormDynamoRepository(ddb, cfg.FormsTable),
			repository.NewQuotationDynamoRepository(ddb, cfg.QuotationsTable),
			func() {}, nil
	}
}

// openOverlayStore prefers Redis and falls back to process memory when Redis
// is not configured or unreachable.
func openOverlayStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.ICustomOptionStore, func()) {
	if !cfg.RedisEnabled() {
		logger.Info("[server] custom options kept in memory")
		return overlay.NewMemoryStore(), func() {}
	}
	client, err := cache.ConnectRedis(ctx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, logger)
	if err != nil {
		logger.Warn("[server] redis unavailable, custom options kept in memory", zap.Error(err))
		return overlay.NewMemoryStore(), func() {}
	}
	return overlay.NewRedisStore(client, cfg.CustomOptionsTTL), func() { _ = client.Close() }
}
