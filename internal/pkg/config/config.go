package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, keys)
// - default: Values common across all environments (timeouts, windows, fee policy)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Solana  SolanaConfig
	Oracle  OracleConfig
	Fees    FeesConfig
	Sweeper SweeperConfig
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
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
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

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type SolanaConfig struct {
	RPCURL         string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	Commitment     string `envconfig:"SOLANA_COMMITMENT" default:"confirmed"`
	PlatformWallet string `envconfig:"SOLANA_PLATFORM_WALLET" required:"true"`
	// Base58-encoded private key of the mint authority used for asset creation.
	MintAuthorityKey string        `envconfig:"SOLANA_MINT_AUTHORITY_KEY" required:"true"`
	RPCTimeout       time.Duration `envconfig:"SOLANA_RPC_TIMEOUT" default:"20s"`
}

type OracleConfig struct {
	QuoteURL     string        `envconfig:"ORACLE_QUOTE_URL" default:"https://api.coingecko.com/api/v3/simple/price?ids=solana&vs_currencies=usd"`
	Timeout      time.Duration `envconfig:"ORACLE_TIMEOUT" default:"5s"`
	CacheTTL     time.Duration `envconfig:"ORACLE_CACHE_TTL" default:"5m"`
	MaxAttempts  int           `envconfig:"ORACLE_MAX_ATTEMPTS" default:"3"`
	RetryDelay   time.Duration `envconfig:"ORACLE_RETRY_DELAY" default:"500ms"`
	FallbackRate string        `envconfig:"ORACLE_FALLBACK_RATE" default:"150.0"`
}

type FeesConfig struct {
	// Flat platform fee charged once per mint request, in USD.
	PlatformFeeUSD string `envconfig:"FEE_PLATFORM_USD" default:"1.25"`
	// Creator share of the NFT price in basis points; the platform keeps the rest.
	CreatorShareBps int32 `envconfig:"FEE_CREATOR_SHARE_BPS" default:"9500"`
}

type SweeperConfig struct {
	Interval          time.Duration `envconfig:"SWEEP_INTERVAL" default:"3m"`
	GracePeriod       time.Duration `envconfig:"SWEEP_GRACE_PERIOD" default:"5m"`
	ReservationExpiry time.Duration `envconfig:"RESERVATION_EXPIRY" default:"10m"`
	BatchSize         int32         `envconfig:"SWEEP_BATCH_SIZE" default:"100"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// NewTestConfig returns a config with every required field filled so test
// processes never depend on the environment.
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
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key",
			Duration: 24 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Solana: SolanaConfig{
			RPCURL:           "http://localhost:8899",
			Commitment:       "confirmed",
			PlatformWallet:   "P1atform11111111111111111111111111111111111",
			MintAuthorityKey: "",
			RPCTimeout:       20 * time.Second,
		},
		Oracle: OracleConfig{
			Timeout:      time.Second,
			CacheTTL:     time.Minute,
			MaxAttempts:  1,
			RetryDelay:   time.Millisecond,
			FallbackRate: "150.0",
		},
		Fees: FeesConfig{
			PlatformFeeUSD:  "1.25",
			CreatorShareBps: 9500,
		},
		Sweeper: SweeperConfig{
			Interval:          time.Minute,
			GracePeriod:       5 * time.Minute,
			ReservationExpiry: 10 * time.Minute,
			BatchSize:         100,
		},
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}
