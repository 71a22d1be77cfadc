package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	HTTPPort    string

	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	KafkaBrokers string
	KafkaTopic   string

	ImageHostURL string

	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "transport-scheduler"))
	cfg.HTTPPort = cast.ToString(getOrReturnDefault("HTTP_PORT", "9000"))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("DB_HOST", "localhost"))
	cfg.PostgresPort = cast.ToInt(getOrReturnDefault("DB_PORT", 5432))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "postgres"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "transport_scheduler"))

	cfg.KafkaBrokers = cast.ToString(getOrReturnDefault("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = cast.ToString(getOrReturnDefault("KAFKA_TOPIC", "shipment_events"))

	cfg.ImageHostURL = cast.ToString(getOrReturnDefault("IMAGE_HOST_URL", ""))

	cfg.AdminEmail = cast.ToString(getOrReturnDefault("ADMIN_EMAIL", ""))
	cfg.AdminPassword = cast.ToString(getOrReturnDefault("ADMIN_PASSWORD", ""))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultValue
}
