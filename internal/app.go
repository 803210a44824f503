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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"marketplace-api/config"
	"marketplace-api/internal/application/ports"
	"marketplace-api/internal/application/services"
	"marketplace-api/internal/infrastructure/db/postgres"
	"marketplace-api/internal/infrastructure/db/postgres/migrations"
	"marketplace-api/internal/infrastructure/db/postgres/rating"
	"marketplace-api/internal/infrastructure/db/postgres/user"
	"marketplace-api/internal/infrastructure/jwt"
	"marketplace-api/internal/infrastructure/metrics"
	"marketplace-api/internal/infrastructure/mq"
	"marketplace-api/internal/infrastructure/s3"
	"marketplace-api/internal/interface/api/rest"
	"marketplace-api/internal/interface/api/rest/middleware"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	logger    *zap.Logger
	cfg       config.Config
	db        *pgxpool.Pool
	s3        ports.S3Client
	httpSrv   *http.Server
	router    *gin.Engine
	mCounter  *prometheus.CounterVec
	publisher ports.Publisher
}

func NewApp(ctx context.Context) (*App, error) {
	// config
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// logger
	logger, err := newLogger(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init zap logger: %w", err)
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

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
	if cfg.DB.Migrate {
		if err = migrations.Up(dbDsn, logger); err != nil {
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
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	// rabbitMQ
	var publisher ports.Publisher = mq.Noop{}
	if cfg.MQEnabled() {
		rabbitDsn, err := cfg.AMQPDSN()
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("RabbitMQ config: %w", err)
		}
		rbMQ := mq.New(cfg.MQ, logger)
		if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("connect to rabbitMQ: %w", err)
		}
		if err = rbMQ.Init(); err != nil {
			rbMQ.Close()
			dbPool.Close()
			return nil, fmt.Errorf("init rabbitMQ: %w", err)
		}
		publisher = rbMQ
	} else {
		logger.Info("RABBITMQ_HOST is empty, domain events are not published")
	}

	return &App{
		logger:    logger,
		cfg:       cfg,
		db:        dbPool,
		s3:        s3Client,
		httpSrv:   httpSrv,
		router:    r,
		mCounter:  mCounter,
		publisher: publisher,
	}, nil
}

func newLogger(env string) (*zap.Logger, error) {
	switch env {
	case gin.ReleaseMode, "prod", "production":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}

func (a *App) Close() {
	if a.publisher != nil {
		a.publisher.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives,
// then shuts the server down gracefully.
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
		<-ctx.Done()

		a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown "+a.cfg.App.Name+" error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)
	ratingRepo := rating.NewRepository(a.db)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(jwtService, a.cfg.App.TokenTTL, bcrypt.DefaultCost)
	userService := services.NewUserService(userRepo, authService, a.s3, a.publisher, a.mCounter)
	ratingService := services.NewRatingService(ratingRepo, a.publisher, a.mCounter)

	// controllers
	rest.NewAuthController(a.router, a.logger, userService)
	rest.NewUserController(a.router, userService, a.logger, jwtService)
	rest.NewRatingController(a.router, ratingService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, a.healthHandler)
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Warn("health check: database unreachable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *App) Logger() *zap.Logger { return a.logger }
