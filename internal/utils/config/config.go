package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dwarvesf/payout-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Blockchain  BlockchainConfig
	Worker      WorkerConfig
}

type ApiServerConfig struct {
	AllowedOrigins string
}

type BlockchainConfig struct {
	// SignerMnemonic is the seed phrase signer keys are derived from by index.
	SignerMnemonic string

	// DefaultMinNativeForApprove is the fallback native reserve (decimal
	// string) when a network has no threshold row.
	DefaultMinNativeForApprove string

	// ReceiptPollIntervalSeconds controls how often confirmation waits poll
	// the node.
	ReceiptPollIntervalSeconds int
}

type WorkerConfig struct {
	QueueSize int
	// StuckSweepSchedule is a cron spec for the periodic stuck-withdrawal scan.
	StuckSweepSchedule string
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Blockchain: BlockchainConfig{
			SignerMnemonic:             os.Getenv("BLOCKCHAIN_SIGNER_MNEMONIC"),
			DefaultMinNativeForApprove: envVarOrDefault("BLOCKCHAIN_DEFAULT_MIN_NATIVE_FOR_APPROVE", "0.003"),
			ReceiptPollIntervalSeconds: envVarAtoiOrDefault("BLOCKCHAIN_RECEIPT_POLL_INTERVAL_SECONDS", 3),
		},
		Worker: WorkerConfig{
			QueueSize:          envVarAtoiOrDefault("WORKER_QUEUE_SIZE", 64),
			StuckSweepSchedule: envVarOrDefault("WORKER_STUCK_SWEEP_SCHEDULE", "@every 10m"),
		},
	}
}

func envVarOrDefault(envName, fallback string) string {
	value := os.Getenv(envName)
	if value == "" {
		return fallback
	}
	return value
}

func envVarAtoiOrDefault(envName string, fallback int) int {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}
