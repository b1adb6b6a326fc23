package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Допустимые значения STORAGE_BACKEND
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
)

type DBconfig struct {
	URL      string
	MaxConns int32
}

type MongoConfig struct {
	URL      string
	Database string
}

type RabbitMQConfig struct {
	Enabled           bool
	URL               string
	ReconnectInterval time.Duration
}

type RESTconfig struct {
	Port           string
	AllowedOrigins []string
}

type StdoutLogConfig struct {
	Level  string
	IsJSON bool
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName        string
	StorageBackend string
	SeedData       bool

	Database     DBconfig
	Mongo        MongoConfig
	RabbitMQ     RabbitMQConfig
	Rest         RESTconfig
	StdoutLogger StdoutLogConfig
	FluentBit    FluentBitConfig
}

// LoadConfig читает .env (если есть) и переменные окружения.
// Явно переданный файл обязан существовать; файл по умолчанию - нет.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	if len(envPath) > 0 {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("could not load env file %q: %w", envPath[0], err)
		}
	} else if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not parse .env file: %w", err)
		}
		log.Println("Info: no .env file found, using environment variables")
	}

	cfg := &AppConfig{
		AppName:        getEnv("APP_NAME", "agency-service"),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		SeedData:       getEnvAsBool("SEED_DATA", false),
	}

	cfg.Database.URL = os.Getenv("DATABASE_URL")
	cfg.Database.MaxConns = getEnvAsPositiveInt32("DATABASE_MAX_CONNS", 10)

	cfg.Mongo.URL = os.Getenv("MONGO_URL")
	cfg.Mongo.Database = getEnv("MONGO_DATABASE", "agency")

	cfg.RabbitMQ.Enabled = getEnvAsBool("RABBITMQ_ENABLED", false)
	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
	cfg.RabbitMQ.ReconnectInterval = getEnvAsDuration("RABBITMQ_RECONNECT_INTERVAL", 5*time.Second)

	cfg.Rest.Port = getEnv("PORT", "8080")
	cfg.Rest.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.StdoutLogger.Level = getEnv("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.IsJSON = getEnvAsBool("STDOUT_LOG_JSON", false)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnv("FLUENTBIT_LOG_LEVEL", "info")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет, что для выбранных компонентов заданы обязательные параметры.
func (c *AppConfig) Validate() error {
	switch c.StorageBackend {
	case BackendPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for %s backend", BackendPostgres)
		}
	case BackendMongo:
		if c.Mongo.URL == "" {
			return fmt.Errorf("MONGO_URL environment variable is required for %s backend", BackendMongo)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q, expected %s, %s or %s",
			c.StorageBackend, BackendPostgres, BackendMongo, BackendMemory)
	}

	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("RABBITMQ_URL environment variable is required when RABBITMQ_ENABLED is true")
	}
	if _, err := strconv.Atoi(c.Rest.Port); err != nil {
		return fmt.Errorf("PORT must be a number, got %q", c.Rest.Port)
	}
	return nil
}

// getEnv - значение переменной окружения или значение по умолчанию.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsPositiveInt32 не допускает переполнения int32 и значений меньше 1.
func getEnvAsPositiveInt32(key string, defaultValue int32) int32 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 32)
	if err != nil || value < 1 {
		log.Printf("Warning: Environment variable %s (value: %s) is not a positive int32. Using default value: %d\n", key, valueStr, defaultValue)
		return defaultValue
	}
	return int32(value)
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(valStr)
	if err != nil || d <= 0 {
		log.Printf("Warning: Environment variable %s (value: %s) is not a positive duration. Using default value: %s\n", key, valStr, defaultValue)
		return defaultValue
	}
	return d
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются.
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(valStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
