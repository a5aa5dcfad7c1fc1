package setup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/propledger/go-fp-rollup/internal/common/cache"
	"github.com/propledger/go-fp-rollup/internal/common/flag"
	"github.com/propledger/go-fp-rollup/internal/common/graceful"
	cMetrics "github.com/propledger/go-fp-rollup/internal/common/metrics"
	"github.com/propledger/go-fp-rollup/internal/common/publisher"
	"github.com/propledger/go-fp-rollup/internal/common/retry"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/config"
	"github.com/propledger/go-fp-rollup/internal/deliveries/http/health"
	"github.com/propledger/go-fp-rollup/internal/models"
	"github.com/propledger/go-fp-rollup/internal/repositories"
	"github.com/propledger/go-fp-rollup/internal/services"

	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	_ "github.com/newrelic/go-agent/v3/integrations/nrpgx"
)

const authoritativeBalancePrefix = "fp_rollup:authoritative_balance:"

type Setup struct {
	Config    config.Config
	NewRelic  *newrelic.Application
	ReadDB    *sql.DB
	Cache     *redis.Client
	RepoCache repositories.CacheRepository
	Service   *services.Services
	Publisher *PublisherClient
	Metrics   cMetrics.Metrics
	Checks    map[string]health.Check
}

func Init(command string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := xlog.DebugLogLevel()
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}
	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = xlog.WithLevel(cfg.App.LogLevel)
	}

	xlog.Init(cfg.App.Name,
		xlog.WithEnv(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(1),
		logLevel)

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)

	mtc := cMetrics.New()

	readDB, err := initDB(cfg.Postgres.Read)
	if err != nil {
		err = fmt.Errorf("failed connect to database: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error {
		if err := readDB.Close(); err != nil {
			return fmt.Errorf("failed to close readDB: %w", err)
		}
		return nil
	})

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Db,
	})
	_, err = redisClient.Ping(ctx).Result()
	if err != nil {
		err = fmt.Errorf("failed connect to redis: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return redisClient.Close() })

	flagClient, err := flag.New(&cfg)
	if err != nil {
		err = fmt.Errorf("failed to create flag client: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return flagClient.Close() })

	err = mtc.RegisterDB(readDB, cfg.App.Name+"-"+command+"-read", cfg.Postgres.Read.DbName)
	if err != nil {
		err = fmt.Errorf("failed register DB stat prometheus: %w", err)
		return
	}
	err = mtc.RegisterRedis(redisClient, cfg.App.Name, command)
	if err != nil {
		err = fmt.Errorf("failed register redis prometheus: %w", err)
		return
	}

	producer, err := publisher.NewKafkaSyncProducer(
		cfg.MessageBroker.Brokers,
		publisher.WithClientID(cfg.MessageBroker.ClientID),
		publisher.WithKeyHashPartitioner(),
		publisher.WithMetricRegistry(mtc.SaramaRegistry(cfg.App.Name+"_"+command, cfg.MessageBroker.MetricFlushInterval)),
	)
	if err != nil {
		err = fmt.Errorf("unable to create kafka sync producer: %w", err)
		return
	}
	stopper = append(stopper, func(ctx context.Context) error { return producer.Close() })

	publisherClient := PublisherClient{
		DriftAlert: publisher.NewPublisher(producer, cfg.Recon.AlertTopic, mtc.GetPublisherPrometheus()),
	}

	sqlRepo := repositories.NewSQLRepository(readDB, cfg)
	cacheRepo := repositories.NewCacheRepository(redisClient)
	balanceCache := cache.NewRedisClient[models.AuthoritativeBalance](redisClient, authoritativeBalancePrefix)

	srv := services.New(
		cfg,
		sqlRepo,
		cacheRepo,
		balanceCache,
		publisherClient.DriftAlert,
		retry.NewExponentialBackOff(cfg.ExponentialBackoff),
		flagClient,
		mtc,
	)

	checks := map[string]health.Check{
		"postgres": readDB.PingContext,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}

	return &Setup{
		Config:    cfg,
		NewRelic:  newRelic,
		ReadDB:    readDB,
		Cache:     redisClient,
		RepoCache: cacheRepo,
		Service:   srv,
		Publisher: &publisherClient,
		Metrics:   mtc,
		Checks:    checks,
	}, stopper, nil
}

func initDB(pgConf config.Database) (*sql.DB, error) {
	const (
		DefaultMaxOpen     = 10
		DefaultMaxIdle     = 10
		DefaultMaxLifetime = 3 // minutes
	)

	dsName := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s search_path=%s sslmode=disable",
		pgConf.DbHost, pgConf.DbPort, pgConf.DbUser, pgConf.DbPass, pgConf.DbName, pgConf.DbSchema,
	)

	db, err := sql.Open("nrpgx", dsName)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(orDefault(pgConf.MaxOpenConnection, DefaultMaxOpen))
	db.SetMaxIdleConns(orDefault(pgConf.MaxIdleConnection, DefaultMaxIdle))
	db.SetConnMaxLifetime(time.Duration(orDefault(pgConf.ConnMaxLifetime, DefaultMaxLifetime)) * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return db, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// setupNR only reports from production, other environments get a nil application.
func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if config.StringToEnvironment(cfg.App.Env) != config.PROD_ENV {
		return nil
	}
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(c *newrelic.Config) {
			c.Logger = nrzap.Transform(xlog.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); err != nil {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}
