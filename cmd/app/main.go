package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	orderinghttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/redis"
	"ordering/internal/jobs"
	"ordering/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(configs.LogMode, configs.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() {
		_ = lg.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, lg); err != nil {
		lg.Error("service stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config, lg *zap.Logger) error {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DB.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     configs.Redis.Addr,
		Password: configs.Redis.Password,
		DB:       configs.Redis.DB,
	})
	defer func() {
		_ = rdb.Close()
	}()
	if pingErr := rdb.Ping(ctx).Err(); pingErr != nil {
		// The outbox keeps events until the broker is reachable.
		lg.Warn("redis is not reachable yet", zap.Error(pingErr))
	}

	publisher, err := redis.NewEventPublisher(rdb, configs.Redis.Channel, redis.DefaultBreakerSettings(), lg)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, lg)

	publisherJob, err := jobs.NewOutboxPublisherJob(
		app.CreatePublishOutboxCommandHandler(),
		configs.Outbox.Schedule,
		configs.Outbox.BatchSize,
		lg,
	)
	if err != nil {
		return err
	}
	jobManager := jobs.NewJobManager(publisherJob)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, serverErr, err := startWebServer(ctx, &app, configs.HTTPPort, lg)
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		lg.Info("shutting down")
	case err = <-serverErr:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// startWebServer serves in the background. The returned channel receives the error that
// stopped the server unless it was shut down.
func startWebServer(
	ctx context.Context,
	app *cmd.CompositionRoot,
	port string,
	lg *zap.Logger,
) (*echo.Echo, <-chan error, error) {
	server := orderinghttp.NewServer(orderinghttp.Handlers{
		CreateOrder:        app.CreateCreateOrderCommandHandler(),
		PayOrder:           app.CreatePayOrderCommandHandler(),
		ApproveOrder:       app.CreateApproveOrderCommandHandler(),
		CancelOrderPayment: app.CreateCancelOrderPaymentCommandHandler(),
		CancelOrder:        app.CreateCancelOrderCommandHandler(),
		TrackOrder:         app.CreateTrackOrderQueryHandler(),
	}, lg)

	e, err := orderinghttp.NewEcho(ctx, server)
	if err != nil {
		return nil, nil, err
	}
	e.Logger.SetLevel(log.WARN)
	e.Server.ReadHeaderTimeout = 10 * time.Second

	serverErr := make(chan error, 1)
	go func() {
		lg.Info("http server started", zap.String("port", port))
		if startErr := e.Start("0.0.0.0:" + port); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
	}()

	return e, serverErr, nil
}
