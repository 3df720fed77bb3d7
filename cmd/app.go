package main

import (
	"context"
	"fmt"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-vacancies/internal/ingestion"
	"github.com/sbilibin2017/gw-vacancies/internal/jwt"
	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"github.com/sbilibin2017/gw-vacancies/internal/middlewares"
	"github.com/sbilibin2017/gw-vacancies/internal/parsers"
	"github.com/sbilibin2017/gw-vacancies/internal/passwords"
	"github.com/sbilibin2017/gw-vacancies/internal/repositories"
	"github.com/sbilibin2017/gw-vacancies/internal/services"
)

// openPostgres connects to PostgreSQL through the pgx stdlib driver
func openPostgres(ctx context.Context, cfg appConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	return db, nil
}

// openRedis connects to Redis
func openRedis(ctx context.Context, cfg appConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis connection error: %w", err)
	}
	return rdb, nil
}

// newKafkaWriter returns nil when no brokers are configured
func newKafkaWriter(cfg appConfig) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// newRegistry loads the sources file and builds every configured parser
func newRegistry(cfg appConfig) (*parsers.Registry, error) {
	sources, err := parsers.LoadConfig(cfg.SourcesConfig)
	if err != nil {
		return nil, err
	}
	logger.Log.Infow("sources config loaded", "path", cfg.SourcesConfig, "sources", sources.Names())

	return parsers.NewRegistry(&http.Client{Timeout: cfg.HTTPTimeout}, sources)
}

// newOrchestrator wires parsers, storage and the optional Kafka publisher.
// The returned close function releases the publisher.
func newOrchestrator(cfg appConfig, db *sqlx.DB) (*ingestion.Orchestrator, func() error, error) {
	registry, err := newRegistry(cfg)
	if err != nil {
		return nil, nil, err
	}

	var (
		publisher ingestion.OutcomePublisher
		closer    = func() error { return nil }
	)
	if writer := newKafkaWriter(cfg); writer != nil {
		kp := ingestion.NewKafkaPublisher(writer)
		publisher, closer = kp, kp.Close
	}

	var upserter ingestion.VacancyUpserter
	if db != nil {
		upserter = repositories.NewVacancyWriteRepository(db, middlewares.GetTxFromContext)
	}

	return ingestion.NewOrchestrator(registry, upserter, publisher, cfg.IngestWorkers), closer, nil
}

func newVacancyService(cfg appConfig, db *sqlx.DB) *services.VacancyService {
	return services.NewVacancyService(
		repositories.NewVacancyReadRepository(db),
		repositories.NewVacancyWriteRepository(db, middlewares.GetTxFromContext),
		cfg.SelfSourceName,
		cfg.VacancyRetention,
	)
}

func newTokenManager(cfg appConfig) *jwt.JWT {
	return jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithLifetime(cfg.JWTLifetime),
		jwt.WithHeaderName(cfg.JWTHeaderName),
		jwt.WithScheme(cfg.JWTAuthScheme),
	)
}

// newAuthService wires the auth service. rdb may be nil, then the blacklist
// is read from PostgreSQL only.
func newAuthService(cfg appConfig, db *sqlx.DB, rdb *redis.Client) *services.AuthService {
	var cache services.BlacklistCache
	if rdb != nil {
		cache = repositories.NewBlacklistCacheRepository(rdb, cfg.BlacklistCacheTTL)
	}

	return services.NewAuthService(
		repositories.NewUserReadRepository(db),
		repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext),
		repositories.NewBlacklistRepository(db, middlewares.GetTxFromContext),
		cache,
		newTokenManager(cfg),
		passwords.New(cfg.BcryptCost),
	)
}
