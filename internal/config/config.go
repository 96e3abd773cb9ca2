package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerOptions struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

type DBOptions struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	PingTimeout     time.Duration `mapstructure:"ping_timeout"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

type JWTOptions struct {
	JTILength uint32        `mapstructure:"jti_length"`
	Issuer    string        `mapstructure:"issuer"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type Argon2Options struct {
	Memory     uint32 `mapstructure:"memory"`
	Iterations uint32 `mapstructure:"iterations"`
	Threads    uint8  `mapstructure:"threads"`
	SaltLength uint32 `mapstructure:"salt_length"`
	KeyLength  uint32 `mapstructure:"key_length"`
}

type HashOptions struct {
	Algorithm  string        `mapstructure:"algorithm"`
	BcryptCost int           `mapstructure:"bcrypt_cost"`
	Argon2     Argon2Options `mapstructure:"argon2"`
}

type MediaOptions struct {
	Provider string `mapstructure:"provider"`
	LocalDir string `mapstructure:"local_dir"`
	BaseURL  string `mapstructure:"base_url"`
}

type PaymentOptions struct {
	Currency string `mapstructure:"currency"`
}

type CacheOptions struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type RateLimitOptions struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type LogOptions struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type CORSOptions struct {
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

type Config struct {
	Server    *ServerOptions    `mapstructure:"server"`
	DB        *DBOptions        `mapstructure:"db"`
	JWT       *JWTOptions       `mapstructure:"jwt"`
	Hash      *HashOptions      `mapstructure:"hash"`
	Media     *MediaOptions     `mapstructure:"media"`
	Payment   *PaymentOptions   `mapstructure:"payment"`
	Cache     *CacheOptions     `mapstructure:"cache"`
	RateLimit *RateLimitOptions `mapstructure:"rate_limit"`
	Log       *LogOptions       `mapstructure:"log"`
	CORS      *CORSOptions      `mapstructure:"cors"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("jwt", c.JWT),
		slog.String("hash", c.Hash.Algorithm),
		slog.Any("media", c.Media),
		slog.Any("payment", c.Payment),
		slog.Any("cache", c.Cache),
		slog.Any("rate_limit", c.RateLimit),
		slog.Any("log", c.Log),
		slog.Any("cors", c.CORS),
	)
}

// Load reads the JSON config file and applies environment overrides.
// Nested keys map to upper-cased env vars with dots replaced by underscores,
// so SERVER_PORT overrides server.port.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")

	v := viper.New()
	setDefaults(v)

	cfgFile = filepath.Clean(cfgFile)
	v.SetConfigFile(cfgFile)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", cfgFile, err)
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", &cfg))
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.max_upload_bytes", 10<<20)

	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 25)
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.conn_max_lifetime", "1h")
	v.SetDefault("db.ping_timeout", "5s")
	v.SetDefault("db.auto_migrate", false)

	v.SetDefault("jwt.jti_length", 16)
	v.SetDefault("jwt.issuer", "dma-api")
	v.SetDefault("jwt.ttl", "24h")

	v.SetDefault("hash.algorithm", "bcrypt")
	v.SetDefault("hash.bcrypt_cost", 12)
	v.SetDefault("hash.argon2.memory", 65536)
	v.SetDefault("hash.argon2.iterations", 3)
	v.SetDefault("hash.argon2.threads", 2)
	v.SetDefault("hash.argon2.salt_length", 16)
	v.SetDefault("hash.argon2.key_length", 32)

	v.SetDefault("media.provider", "cloudinary")
	v.SetDefault("media.local_dir", "uploads")
	v.SetDefault("media.base_url", "http://localhost:8080/uploads")

	v.SetDefault("payment.currency", "eur")
	v.SetDefault("cache.ttl", "5m")

	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 28)

	v.SetDefault("cors.allowed_origin", "*")
}
