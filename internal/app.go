package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"food-delivery-api/config"
	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/application/services"
	"food-delivery-api/internal/infrastructure/db/postgres"
	"food-delivery-api/internal/infrastructure/db/postgres/menuitem"
	"food-delivery-api/internal/infrastructure/db/postgres/restaurant"
	"food-delivery-api/internal/infrastructure/db/postgres/typeuser"
	"food-delivery-api/internal/infrastructure/db/postgres/user"
	"food-delivery-api/internal/infrastructure/hasher"
	"food-delivery-api/internal/infrastructure/jwt"
	"food-delivery-api/internal/infrastructure/logger"
	"food-delivery-api/internal/infrastructure/metrics"
	"food-delivery-api/internal/infrastructure/mq"
	"food-delivery-api/internal/infrastructure/s3"
	"food-delivery-api/internal/interface/api/rest"
	"food-delivery-api/internal/interface/api/rest/middleware"
	"food-delivery-api/pkg/rmqconsumer"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	s3         ports.S3Client
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.EventPublisher
	rabbit     *mq.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// config; a missing .env is fine, the environment may already carry everything
	envErr := godotenv.Load(".env")
	cfg := config.Load()

	// logger
	logger := logger.New(cfg.Log)
	if envErr != nil {
		logger.Debug(".env not loaded", zap.Error(envErr))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// metrics
	mCounter := metrics.NewCounter()
	mDuration := metrics.NewRequestDuration()

	// router
	switch {
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	case cfg.App.Env == gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r, err := rest.NewEngine(
		cfg.App.TrustedProxies,
		middleware.CORS(cfg.App.CORSOrigins),
		middleware.RequestLogGin(logger, mCounter, mDuration),
	)
	if err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("DB config: %w", err)
	}
	if cfg.DB.MigrateOnStart {
		if err = postgres.Migrate(dbDsn, logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// s3
	s3Client, err := s3.New(ctx, logger, cfg.S3)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("s3: %w", err)
	}

	app := &App{
		logger:   logger,
		cfg:      cfg,
		db:       dbPool,
		s3:       s3Client,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		mq:       mq.NewNoop(logger),
	}

	// rabbitMQ
	if !cfg.MQEnabled() {
		logger.Warn("RABBITMQ_HOST is not set, domain events are only logged")
		return app, nil
	}
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("RabbitMQ config: %w", err)
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		app.Close()
		return nil, fmt.Errorf("connect to rabbitMQ: %w", err)
	}
	app.rabbit, app.mq = rbMQ, rbMQ
	if err = rbMQ.Init(); err != nil {
		app.Close()
		return nil, fmt.Errorf("init rabbitMQ: %w", err)
	}

	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		app.Close()
		return nil, fmt.Errorf("connect rabbitMQ consumer: %w", err)
	}
	if err = rmqConsumer.Init(); err != nil {
		app.Close()
		return nil, fmt.Errorf("init rabbitMQ consumer: %w", err)
	}
	app.mqConsumer = rmqConsumer

	return app, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.rabbit != nil && a.rabbit.GetConn() != nil {
		_ = a.rabbit.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

// InitControllers wires repositories, services and the HTTP surface, seeding reference data first when enabled.
func (a *App) InitControllers(ctx context.Context) error {
	// repos
	userRepo := user.NewRepository(a.db)
	typeUserRepo := typeuser.NewRepository(a.db)
	restaurantRepo := restaurant.NewRepository(a.db)
	menuItemRepo := menuitem.NewRepository(a.db)

	// security
	jwtService := jwt.New(a.cfg.App.JWTSecret, a.cfg.App.JWTTTL)
	bcryptHasher := hasher.New(bcrypt.DefaultCost)
	authz := services.NewAccessPolicy(a.cfg.App.AdminTypeNames, userRepo, typeUserRepo, a.logger)

	if a.cfg.Seed.Enabled {
		seeder := services.NewSeeder(a.cfg.Seed, typeUserRepo, userRepo, bcryptHasher, a.logger)
		if err := seeder.Run(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	// services
	svc := rest.Services{
		Auth:        services.NewAuthService(userRepo, bcryptHasher, jwtService, a.logger, a.mCounter),
		Users:       services.NewUserService(userRepo, typeUserRepo, bcryptHasher, authz, a.mq, a.logger, a.mCounter),
		TypeUsers:   services.NewTypeUserService(typeUserRepo, authz, a.mq, a.logger, a.mCounter),
		Restaurants: services.NewRestaurantService(restaurantRepo, menuItemRepo, userRepo, authz, a.mq, a.logger, a.mCounter),
		MenuItems:   services.NewMenuItemService(menuItemRepo, restaurantRepo, authz, a.mq, a.logger, a.mCounter),
	}

	// controllers
	limiter := middleware.NewLoginLimiter(a.cfg.App.LoginRate, a.cfg.App.LoginBurst, a.logger)
	rest.Register(a.router, a.logger, jwtService, a.s3, limiter.Handler(), svc)

	// ops
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))

	return nil
}

func (a *App) Logger() *zap.Logger { return a.logger }
