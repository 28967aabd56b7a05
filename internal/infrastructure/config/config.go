// Package config reads the service settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverMemory   = "memory"
)

// Config holds every environment-driven setting of the API process.
type Config struct {
	Port string

	StorageDriver      string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	PersistenceTimeout time.Duration

	DeferReminderDays        int
	UrgentHorizonDays        int
	WorkflowRevalidateRemote bool

	KafkaBrokers                string
	KafkaHistoryTopic           string
	KafkaPersistenceErrorsTopic string

	MercadoPagoAccessToken string
	PaymentMethodID        string
	PaymentTestPayerEmail  string

	AnalyzerURL string
}

// Load reads the configuration, falling back to local-friendly defaults.
func Load() Config {
	return Config{
		Port: getenvDefault("PORT", "8080"),

		StorageDriver:      strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDriverDynamoDB)),
		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		PersistenceTimeout: getenvDuration("PERSISTENCE_TIMEOUT", 5*time.Second),

		DeferReminderDays:        getenvInt("DEFER_REMINDER_DAYS", 7),
		UrgentHorizonDays:        getenvInt("URGENT_HORIZON_DAYS", 7),
		WorkflowRevalidateRemote: getenvBool("WORKFLOW_REVALIDATE_REMOTE", false),

		KafkaBrokers:                os.Getenv("KAFKA_BROKERS"),
		KafkaHistoryTopic:           getenvDefault("KAFKA_HISTORY_TOPIC", "order-history"),
		KafkaPersistenceErrorsTopic: getenvDefault("KAFKA_PERSISTENCE_ERRORS_TOPIC", "order-persistence-errors"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentMethodID:        getenvDefault("PAYMENT_METHOD_ID", "pix"),
		PaymentTestPayerEmail:  os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),

		AnalyzerURL: os.Getenv("ANALYZER_URL"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid int %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		log.Printf("[config] invalid bool %s, using %t", key, def)
		return def
	}
}

// getenvDuration accepts Go durations ("3s") or a plain number of seconds.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Printf("[config] invalid duration %s=%q, using %s", key, v, def)
	return def
}
