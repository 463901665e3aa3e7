package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	Storage     StorageConfig     `yaml:"storage"`
	HTTP        HTTPConfig        `yaml:"http"`
	Auth        AuthConfig        `yaml:"auth"`
	Redis       RedisConf         `yaml:"redis"`
	FileStorage FileStorageConfig `yaml:"file_storage"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Pagination  PaginationConfig  `yaml:"pagination"`
	Admin       AdminConfig       `yaml:"admin"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
	DSN         string `yaml:"dsn" env:"DATABASE_URL"`
	MongoURI    string `yaml:"mongo_uri" env:"MONGODB_URI"`
	MongoDB     string `yaml:"mongo_db" env:"MONGODB_DB" env-default:"dinas_portal"`
	MaxPoolSize int32  `yaml:"max_pool_size" env:"DB_MAX_POOL_SIZE" env-default:"10"`
}

type HTTPConfig struct {
	Host        string        `yaml:"host" env:"HTTP_HOST"`
	Port        string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type AuthConfig struct {
	Secret        string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL      time.Duration `yaml:"token_ttl" env:"JWT_TTL" env-default:"24h"`
	SessionSecret string        `yaml:"session_secret" env:"SESSION_SECRET"`
	CookieSecure  bool          `yaml:"cookie_secure" env:"COOKIE_SECURE" env-default:"false"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env:"UPLOAD_DIR" env-default:"./uploads"`
	BaseURL string `yaml:"base_url" env:"UPLOAD_BASE_URL" env-default:"/uploads"`
	MaxSize int64  `yaml:"max_size" env:"UPLOAD_MAX_SIZE" env-default:"10485760"`
}

// RedisConf is optional. With an empty address token revocation and rate
// limiting fall back to in-memory stores.
type RedisConf struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type RateLimitConfig struct {
	RPS   float64       `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"1"`
	Burst int           `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"5"`
	TTL   time.Duration `yaml:"ttl" env:"RATE_LIMIT_TTL" env-default:"10m"`
}

type PaginationConfig struct {
	// 0 disables the cap on public list endpoints.
	PublicMaxLimit int `yaml:"public_max_limit" env:"PUBLIC_MAX_LIMIT" env-default:"0"`
}

type AdminConfig struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	Email    string `yaml:"email" env:"ADMIN_EMAIL"`
}

func (c *Config) Address() string {
	return c.HTTP.Host + ":" + c.HTTP.Port
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return errors.New("storage.dsn is required for the postgres driver")
		}
	case DriverMongo:
		if c.Storage.MongoURI == "" {
			return errors.New("storage.mongo_uri is required for the mongo driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	switch {
	case c.RateLimit.TTL <= 0:
		return errors.New("rate_limit.ttl must be positive")
	case c.RateLimit.RPS <= 0:
		return errors.New("rate_limit.rps must be positive")
	case c.RateLimit.Burst < 1:
		return errors.New("rate_limit.burst must be at least 1")
	}

	if c.Auth.SessionSecret == "" {
		c.Auth.SessionSecret = c.Auth.Secret
	}

	return nil
}

func MustLoad() *Config {
	// a missing .env is fine, real environments set variables directly
	_ = godotenv.Load()

	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

// Load reads the YAML file, applies environment overrides and validates the result.
func Load(configPath string) (*Config, error) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.New("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
