package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// appConfig holds every setting read from the environment
type appConfig struct {
	AppHost  string
	AppPort  string
	GRPCPort string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	BlacklistCacheTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey  string
	JWTLifetime   time.Duration
	JWTHeaderName string
	JWTAuthScheme string
	BcryptCost    int

	VacancyRetention time.Duration
	SelfSourceName   string
	SourcesConfig    string
	HTTPTimeout      time.Duration
	IngestWorkers    int

	IngestSchedule  string
	CleanupSchedule string
	IngestOnStart   bool
	IngestSources   []string
}

// parseConfig loads environment variables from a file and returns
// the application configuration with defaults applied.
func parseConfig(path string) (cfg appConfig, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		v, err = strconv.Atoi(getEnv(key, defaultValue))
		return v
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")
	cfg.BlacklistCacheTTL = time.Duration(getInt("BLACKLIST_CACHE_TTL_SECOND", "3600")) * time.Second

	// Kafka config, publishing is disabled without brokers
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "vacancies.ingestion")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTLifetime = time.Duration(getInt("JWT_LIFETIME_HOURS", "720")) * time.Hour
	cfg.JWTHeaderName = getEnv("JWT_HEADER_NAME", "Authorization")
	cfg.JWTAuthScheme = getEnv("JWT_AUTH_SCHEME", "Bearer")
	cfg.BcryptCost = getInt("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost))

	// Vacancies config
	cfg.VacancyRetention = time.Duration(getInt("VACANCY_RETENTION_DAYS", "56")) * 24 * time.Hour
	cfg.SelfSourceName = getEnv("SELF_SOURCE_NAME", "khabjob")
	cfg.SourcesConfig = getEnv("SOURCES_CONFIG", "sources.yml")
	cfg.HTTPTimeout = time.Duration(getInt("PARSER_HTTP_TIMEOUT_SECOND", "30")) * time.Second
	cfg.IngestWorkers = getInt("INGEST_WORKERS", "0")

	// Scheduler config
	cfg.IngestSchedule = getEnv("INGEST_SCHEDULE", "@every 1h")
	cfg.CleanupSchedule = getEnv("CLEANUP_SCHEDULE", "@daily")
	if sources := getEnv("INGEST_SOURCES", ""); sources != "" {
		cfg.IngestSources = strings.Split(sources, ",")
	}
	if err != nil {
		return
	}
	cfg.IngestOnStart, err = strconv.ParseBool(getEnv("INGEST_ON_START", "false"))

	return
}
