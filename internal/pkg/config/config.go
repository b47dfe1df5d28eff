package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, fees, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Auction AuctionConfig
	Economy EconomyConfig
	Redis   RedisConfig
	NATS    NATSConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// AuctionConfig holds the tunables the coordinator re-reads on reload.
type AuctionConfig struct {
	Duration         time.Duration `envconfig:"AUCTION_DURATION" default:"5m"`
	MaxQueueSize     int           `envconfig:"AUCTION_MAX_QUEUE_SIZE" default:"10"`
	StepEnabled      bool          `envconfig:"AUCTION_STEP_ENABLED" default:"true"`
	PublicationFee   float64       `envconfig:"AUCTION_PUBLICATION_FEE" default:"0"`
	BidFeePercent    float64       `envconfig:"AUCTION_BID_FEE_PERCENT" default:"0"`
	CountdownEnabled bool          `envconfig:"AUCTION_COUNTDOWN_ENABLED" default:"true"`
	SelfHealInterval time.Duration `envconfig:"AUCTION_SELF_HEAL_INTERVAL" default:"60s"`
	BannedItems      []string      `envconfig:"AUCTION_BANNED_ITEMS" default:""`
	HoldingCapacity  int           `envconfig:"AUCTION_HOLDING_CAPACITY" default:"27"`
}

type EconomyConfig struct {
	Enabled bool   `envconfig:"ECONOMY_ENABLED" default:"true"`
	Symbol  string `envconfig:"ECONOMY_CURRENCY_SYMBOL" default:"$"`
}

type RedisConfig struct {
	Enabled bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Addr    string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	DB      int    `envconfig:"REDIS_DB" default:"0"`
}

type NATSConfig struct {
	Enabled bool   `envconfig:"NATS_ENABLED" default:"false"`
	URL     string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Auction: AuctionConfig{
			Duration:         time.Minute,
			MaxQueueSize:     10,
			StepEnabled:      true,
			CountdownEnabled: true,
			SelfHealInterval: time.Minute,
		},
		Economy: EconomyConfig{
			Enabled: true,
			Symbol:  "$",
		},
	}
}
