package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logger_adapter "agency-service/internal/adapters/logger"
	"agency-service/internal/adapters/memory"
	mongo_adapter "agency-service/internal/adapters/mongo"
	postgres_adapter "agency-service/internal/adapters/postgres"
	rabbitmq_adapter "agency-service/internal/adapters/rabbitmq"
	"agency-service/internal/adapters/rest"
	"agency-service/internal/configs"
	"agency-service/internal/constants"
	"agency-service/internal/contextkeys"
	"agency-service/internal/core/domain"
	"agency-service/internal/core/port"
	"agency-service/internal/core/usecase"
	fluentlogger "agency-service/pkg/fluent_logger"
	"agency-service/pkg/mongodb"
	"agency-service/pkg/postgres"
	"agency-service/pkg/rabbitmq/rabbitmq_common"
	"agency-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	storage      port.StoragePort
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	eventsProducer *rabbitmq_producer.Publisher
	connManager    *rabbitmq_common.ConnectionManager
}

// NewApp - composition root: создает и связывает все зависимости.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ЛОГГЕРЫ ---
	baseLogger, fluentClient, err := buildLogger(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})

	app := &App{config: appConfig, fluentClient: fluentClient, logger: appLogger}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	ctx = contextkeys.ContextWithLogger(ctx, baseLogger)

	// --- 2. ХРАНИЛИЩЕ ---
	storage, err := openStorage(ctx, appConfig)
	if err != nil {
		appLogger.Error("Failed to open storage", err, port.Fields{"backend": appConfig.StorageBackend})
		app.closeResources()
		return nil, err
	}
	app.storage = storage
	appLogger.Info("Storage initialized", port.Fields{"backend": appConfig.StorageBackend})

	if appConfig.SeedData {
		seeded, err := usecase.NewSeedDataUseCase(storage).Execute(ctx, domain.DefaultSeed())
		if err != nil {
			appLogger.Error("Failed to seed storage", err, nil)
			app.closeResources()
			return nil, fmt.Errorf("failed to seed storage: %w", err)
		}
		appLogger.Info("Seed step finished", port.Fields{"seeded": seeded})
	}

	// --- 3. СОБЫТИЯ ---
	var publisher port.EntityEventPublisherPort = rabbitmq_adapter.NoopEventPublisher{}
	if appConfig.RabbitMQ.Enabled {
		publisher, err = app.initEvents(baseLogger)
		if err != nil {
			appLogger.Error("Failed to initialize RabbitMQ publisher", err, nil)
			app.closeResources()
			return nil, err
		}
	} else {
		appLogger.Info("RabbitMQ is disabled, entity events will not be published", nil)
	}

	// --- 4. USE CASES И REST ---
	app.apiServer = rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.Port,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
	}, buildHandlers(storage, publisher), baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return app, nil
}

func buildLogger(cfg *configs.AppConfig) (port.LoggerPort, *fluent.Fluent, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(cfg.StdoutLogger.Level),
		IsJSON:   cfg.StdoutLogger.IsJSON,
		UseColor: !cfg.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if cfg.FluentBit.Enabled {
		var err error
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(cfg.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, nil, fmt.Errorf("failed to create fluentbit adapter: %w", err)
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		if fluentClient != nil {
			fluentClient.Close()
		}
		return nil, nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": cfg.AppName})
	baseLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": cfg.FluentBit.Enabled,
	})
	return baseLogger, fluentClient, nil
}

func openStorage(ctx context.Context, cfg *configs.AppConfig) (port.StoragePort, error) {
	switch cfg.StorageBackend {
	case configs.BackendPostgres:
		pool, err := postgres.NewClient(ctx, postgres.Config{
			DatabaseURL: cfg.Database.URL,
			MaxConns:    cfg.Database.MaxConns,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		storage, err := postgres_adapter.NewPostgresStorage(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		if err := storage.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return storage, nil

	case configs.BackendMongo:
		client, err := mongodb.NewClient(ctx, mongodb.Config{URL: cfg.Mongo.URL})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		storage, err := mongo_adapter.NewMongoStorage(client, cfg.Mongo.Database)
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		if err := storage.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return storage, nil

	case configs.BackendMemory:
		return memory.NewStorage(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func (a *App) initEvents(baseLogger port.LoggerPort) (port.EntityEventPublisherPort, error) {
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{
		URL:               a.config.RabbitMQ.URL,
		ReconnectInterval: a.config.RabbitMQ.ReconnectInterval,
	}, connManagerBridge)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             constants.AgencyExchange,
		ExchangeType:             constants.AgencyExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.eventsProducer = producer

	publisher, err := rabbitmq_adapter.NewEntityEventPublisher(producer)
	if err != nil {
		return nil, err
	}
	a.logger.Info("RabbitMQ Event Producer initialized.", port.Fields{"exchange": constants.AgencyExchange})
	return publisher, nil
}

func buildHandlers(storage port.StoragePort, publisher port.EntityEventPublisherPort) rest.Handlers {
	clients, properties, requests := storage.Clients(), storage.Properties(), storage.Requests()

	return rest.Handlers{
		Clients: rest.NewClientHandler(
			usecase.NewCreateClientUseCase(clients, publisher),
			usecase.NewUpdateClientUseCase(clients, publisher),
			usecase.NewDeleteClientUseCase(clients, publisher),
			usecase.NewGetClientUseCase(clients),
			usecase.NewListClientsUseCase(clients),
			usecase.NewGetClientRequestsUseCase(clients, requests),
		),
		Properties: rest.NewPropertyHandler(
			usecase.NewCreatePropertyUseCase(properties, publisher),
			usecase.NewUpdatePropertyUseCase(properties, publisher),
			usecase.NewDeletePropertyUseCase(properties, publisher),
			usecase.NewGetPropertyUseCase(properties),
			usecase.NewListPropertiesUseCase(properties),
		),
		Requests: rest.NewRequestHandler(
			usecase.NewCreateRequestUseCase(storage, publisher),
			usecase.NewUpdateRequestUseCase(storage, publisher),
			usecase.NewDeleteRequestUseCase(requests, publisher),
			usecase.NewGetRequestUseCase(requests),
			usecase.NewListRequestsUseCase(requests),
			usecase.NewGetRequestClientUseCase(requests),
			usecase.NewGetRequestPropertyUseCase(requests),
		),
		Reports: rest.NewReportHandler(
			usecase.NewSellersByPeriodUseCase(requests),
			usecase.NewTopClientsByRequestTypeUseCase(requests),
			usecase.NewClientsWithMinAmountUseCase(requests),
			usecase.NewClientsByPropertyTypeUseCase(requests),
			usecase.NewRequestCountByPropertyTypeUseCase(requests),
		),
	}
}

// Run запускает HTTP-сервер и ждет сигнала или ошибки сервера.
func (a *App) Run() error {
	defer a.closeResources()

	errorsCh := make(chan error, 1)
	go func() {
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", port.Fields{"address": a.apiServer.Addr()})

	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("HTTP server failed, shutting down", runErr, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(ctx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	return runErr
}

// closeResources закрывает то, что успели открыть, в обратном порядке.
func (a *App) closeResources() {
	if a.eventsProducer != nil {
		if err := a.eventsProducer.Close(); err != nil {
			a.logger.Error("Error closing event producer", err, nil)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.storage != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := a.storage.Close(ctx); err != nil {
			a.logger.Error("Error closing storage", err, nil)
		}
		cancel()
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent уже может быть недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
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
