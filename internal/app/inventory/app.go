package inventory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/inventory-keeper/internal/cache"
	"github.com/magabrotheeeer/inventory-keeper/internal/config"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/jwt"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/migrations"
	authservice "github.com/magabrotheeeer/inventory-keeper/internal/services/auth"
	itemservice "github.com/magabrotheeeer/inventory-keeper/internal/services/item"
	"github.com/magabrotheeeer/inventory-keeper/internal/storage/repository"
)

// App собирает все зависимости приложения и владеет их жизненным циклом.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	cache    *cache.Cache
	amqpConn *amqp.Connection
}

// New создаёт приложение: хранилище, миграции, кеш, события и HTTP-сервер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	// Публикация событий необязательна: без адреса RabbitMQ сервис работает сам по себе.
	var amqpConn *amqp.Connection
	var events itemservice.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		amqpConn, err = rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(amqpConn)
		if err != nil {
			return nil, err
		}
		events = rabbitmq.NewPublisher(ch)
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker)
	itemService := itemservice.NewItemService(db, cacheRedis, events, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, itemService, cfg.APIKey)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		cache:    cacheRedis,
		amqpConn: amqpConn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if err := a.db.DB.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
	if err := a.cache.Db.Close(); err != nil {
		a.logger.Error("failed to close redis client", sl.Err(err))
	}
	if a.amqpConn != nil {
		if err := a.amqpConn.Close(); err != nil {
			a.logger.Error("failed to close rabbitmq connection", sl.Err(err))
		}
	}
}
