package internal

import (
	"ad-service/internal/adapters/authclient"
	logger_adapter "ad-service/internal/adapters/logger"
	postgres_adapter "ad-service/internal/adapters/postgres"
	"ad-service/internal/adapters/rediscache"
	"ad-service/internal/adapters/rest"
	"ad-service/internal/configs"
	"ad-service/internal/constants"
	"ad-service/internal/core/port"
	"ad-service/internal/core/usecase"
	"ad-service/pkg/postgres"
	"ad-service/pkg/rabbitmq/rabbitmq_common"
	"ad-service/pkg/rabbitmq/rabbitmq_producer"
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	rabbitmq_adapter "ad-service/internal/adapters/rabbitmq"

	fluentlogger "ad-service/pkg/fluent_logger"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	eventProducer *rabbitmq_producer.Publisher
	logger        port.LoggerPort
	fluentClient  *fluent.Fluent
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool", nil)

	storageAdapter, err := postgres_adapter.NewAdStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create ad storage adapter: %w", err)
	}

	producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
	pkgLoggerBridge := rabbitmq_adapter.NewPkgLoggerBridge(producerLogger)

	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger)
	connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, connManagerBridge)
	if err != nil {
		dbPool.Close()
		appLogger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerCfg := rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		ExchangeName:             constants.AdEventsExchange,
		ExchangeType:             "direct",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   pkgLoggerBridge,
	}
	eventProducer, err := rabbitmq_producer.NewPublisher(producerCfg, connManager)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	appLogger.Info("RabbitMQ Event Producer initialized.", nil)

	adEventsPublisher, err := rabbitmq_adapter.NewAdEventsPublisherAdapter(eventProducer)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create ad events publisher: %w", err)
	}

	// Кэш спецификаций опционален: без Redis сборщик ходит напрямую в БД
	var specCache port.SpecificationCachePort
	if appConfig.Redis.Enabled {
		redisCache, err := rediscache.NewSpecificationCache(appConfig.Redis.Addr)
		if err != nil {
			appLogger.Warn("Failed to connect to Redis, continuing without specification cache", port.Fields{"error": err.Error()})
		} else {
			specCache = redisCache
			appLogger.Info("Redis specification cache initialized.", nil)
		}
	}

	identityClient := authclient.NewClient(appConfig.AuthClient.AUTH_SERVICE_URL)
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 4. USE CASES ---
	createAdUseCase := usecase.NewCreateAdUseCase(storageAdapter, identityClient, adEventsPublisher, specCache)
	searchAdsUseCase := usecase.NewSearchAdsUseCase(storageAdapter, specCache)
	getAdByIDUseCase := usecase.NewGetAdByIDUseCase(storageAdapter, specCache)
	getUserAdsUseCase := usecase.NewGetUserAdsUseCase(storageAdapter, specCache)
	updateAdStatusUseCase := usecase.NewUpdateAdStatusUseCase(storageAdapter)
	deleteAdUseCase := usecase.NewDeleteAdUseCase(storageAdapter, adEventsPublisher, specCache)
	statsUseCase := usecase.NewGetMarketplaceStatsUseCase(storageAdapter)
	appLogger.Info("All use cases initialized", nil)

	// --- 5. REST API ---
	authMiddleware := rest.NewAuthMiddleware(appConfig.AuthClient.JWTSecret)
	adHandlers := rest.NewAdHandler(createAdUseCase, getAdByIDUseCase, getUserAdsUseCase,
		updateAdStatusUseCase, deleteAdUseCase, statsUseCase)
	searchHandlers := rest.NewSearchHandler(searchAdsUseCase)
	apiServer := rest.NewServer(appConfig.Rest.PORT, adHandlers, searchHandlers, authMiddleware, baseLogger)

	application := &App{
		config:        appConfig,
		dbPool:        dbPool,
		apiServer:     apiServer,
		eventProducer: eventProducer,
		logger:        appLogger,
		fluentClient:  fluentClient,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventProducer != nil {
			if err := a.eventProducer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
