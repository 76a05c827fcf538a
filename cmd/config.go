package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"pizza/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EventBrokerNone     = ""
	EventBrokerKafka    = "kafka"
	EventBrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort       string `yaml:"http_port"`
	DBHost         string `yaml:"db_host"`
	DBPort         string `yaml:"db_port"`
	DBUser         string `yaml:"db_user"`
	DBPassword     string `yaml:"db_password"`
	DBName         string `yaml:"db_name"`
	DBSslMode      string `yaml:"db_sslmode"`
	DBMaxOpenConns int    `yaml:"db_max_open_conns"`

	EventBroker            string `yaml:"event_broker"`
	KafkaHost              string `yaml:"kafka_host"`
	KafkaOrderChangedTopic string `yaml:"kafka_order_changed_topic"`
	RabbitMQURL            string `yaml:"rabbitmq_url"`
	RabbitMQExchange       string `yaml:"rabbitmq_exchange"`

	OTLPEndpoint   string `yaml:"otel_exporter_otlp_endpoint"`
	ServiceVersion string `yaml:"service_version"`
}

func DefaultConfig() Config {
	return Config{
		HTTPPort:               "8080",
		DBHost:                 "localhost",
		DBPort:                 "5432",
		DBUser:                 "postgres",
		DBName:                 "pizza",
		DBSslMode:              "disable",
		DBMaxOpenConns:         10,
		KafkaOrderChangedTopic: "order.changed",
		RabbitMQExchange:       "orders",
		ServiceVersion:         "dev",
	}
}

// LoadConfig layers the configuration sources: defaults, then the YAML file
// named by CONFIG_FILE, then the environment. A .env file in the working
// directory only fills variables the environment does not set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	vars := map[string]*string{
		"HTTP_PORT":                   &c.HTTPPort,
		"DB_HOST":                     &c.DBHost,
		"DB_PORT":                     &c.DBPort,
		"DB_USER":                     &c.DBUser,
		"DB_PASSWORD":                 &c.DBPassword,
		"DB_NAME":                     &c.DBName,
		"DB_SSLMODE":                  &c.DBSslMode,
		"EVENT_BROKER":                &c.EventBroker,
		"KAFKA_HOST":                  &c.KafkaHost,
		"KAFKA_ORDER_CHANGED_TOPIC":   &c.KafkaOrderChangedTopic,
		"RABBITMQ_URL":                &c.RabbitMQURL,
		"RABBITMQ_EXCHANGE":           &c.RabbitMQExchange,
		"OTEL_EXPORTER_OTLP_ENDPOINT": &c.OTLPEndpoint,
		"SERVICE_VERSION":             &c.ServiceVersion,
	}
	for key, field := range vars {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}

	if v, ok := os.LookupEnv("DB_MAX_OPEN_CONNS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DB_MAX_OPEN_CONNS: %w", err)
		}
		c.DBMaxOpenConns = n
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if c.DBHost == "" || c.DBName == "" {
		errs = append(errs, errors.New("DB_HOST and DB_NAME are required"))
	}
	if c.DBMaxOpenConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.DBMaxOpenConns))
	}

	switch c.EventBroker {
	case EventBrokerNone:
	case EventBrokerKafka:
		if c.KafkaHost == "" || c.KafkaOrderChangedTopic == "" {
			errs = append(errs, errors.New("KAFKA_HOST and KAFKA_ORDER_CHANGED_TOPIC are required for the kafka broker"))
		}
	case EventBrokerRabbitMQ:
		if c.RabbitMQURL == "" || c.RabbitMQExchange == "" {
			errs = append(errs, errors.New("RABBITMQ_URL and RABBITMQ_EXCHANGE are required for the rabbitmq broker"))
		}
	default:
		errs = append(errs, fmt.Errorf("EVENT_BROKER must be kafka, rabbitmq or empty, got %q", c.EventBroker))
	}

	return errors.Join(errs...)
}

func (c Config) DatabaseURL() string {
	return postgres.URL(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
