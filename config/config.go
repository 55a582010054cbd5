package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "ECOM_ADMIN_CONFIG_FILE"
	envPrefix         = "ECOM_ADMIN"
	masked            = "***"
)

const (
	TokenStoreFile  = "file"
	TokenStoreRedis = "redis"
)

var (
	ErrBackendURL      = errors.New("backend.base_url is required")
	ErrTokenStoreKind  = errors.New("token_store.kind must be file or redis")
	ErrTokenStorePath  = errors.New("token_store.file_path is required")
	ErrTokenStoreRedis = errors.New("token_store.redis_url is required")
	ErrAuditBrokers    = errors.New("audit.seed_brokers and audit.schema_registry_urls are required")
	ErrAuditTopic      = errors.New("audit.topic is required")
	ErrAuditTimeout    = errors.New("audit.publish_timeout must be positive")
)

type backend struct {
	BaseURL        string            `mapstructure:"base_url"`
	RequestTimeout time.Duration     `mapstructure:"request_timeout"`
	RetryAttempts  int               `mapstructure:"retry_attempts"`
	ExtraHeaders   map[string]string `mapstructure:"extra_headers"`
}

type tokenStore struct {
	Kind     string `mapstructure:"kind"`
	FilePath string `mapstructure:"file_path"`
	RedisURL string `mapstructure:"redis_url"`
	Key      string `mapstructure:"key"`
}

type tlsFiles struct {
	CAFile   string `mapstructure:"ca_file"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

func (t tlsFiles) Enabled() bool {
	return t.CAFile != ""
}

type audit struct {
	Enabled            bool          `mapstructure:"enabled"`
	SeedBrokers        []string      `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string      `mapstructure:"schema_registry_urls"`
	Topic              string        `mapstructure:"topic"`
	PublishTimeout     time.Duration `mapstructure:"publish_timeout"`
	Partitions         int32         `mapstructure:"partitions"`
	ReplicationFactor  int16         `mapstructure:"replication_factor"`
	TLS                tlsFiles      `mapstructure:"tls"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Backend        backend    `mapstructure:"backend"`
	TokenStore     tokenStore `mapstructure:"token_store"`
	Audit          audit      `mapstructure:"audit"`
}

var defaults = map[string]any{
	"log_level":                  "info",
	"http_server_addr":           "127.0.0.1:8088",
	"backend.base_url":           "",
	"backend.request_timeout":    "0s",
	"backend.retry_attempts":     1,
	"backend.extra_headers":      map[string]string{},
	"token_store.kind":           TokenStoreFile,
	"token_store.file_path":      "ecom-admin-tokens.json",
	"token_store.redis_url":      "",
	"token_store.key":            "ecom-admin:tokens",
	"audit.enabled":              false,
	"audit.seed_brokers":         []string{},
	"audit.schema_registry_urls": []string{},
	"audit.topic":                "ecom-admin-audit",
	"audit.publish_timeout":      "5s",
	"audit.partitions":           1,
	"audit.replication_factor":   1,
	"audit.tls.ca_file":          "",
	"audit.tls.cert_file":        "",
	"audit.tls.key_file":         "",
}

// Load reads the config file named by --config or ECOM_ADMIN_CONFIG_FILE.
// A .env file in the working directory is loaded first. It exits the
// process on any error.
func Load() Config {
	_ = godotenv.Load()

	cfg, err := Read(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// Read loads path, applies ECOM_ADMIN_* overrides and validates the
// result. An empty path means defaults and environment only.
func Read(path string) (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return ErrBackendURL
	}

	switch c.TokenStore.Kind {
	case TokenStoreFile:
		if c.TokenStore.FilePath == "" {
			return ErrTokenStorePath
		}
	case TokenStoreRedis:
		if c.TokenStore.RedisURL == "" {
			return ErrTokenStoreRedis
		}
	default:
		return fmt.Errorf("%w: %q", ErrTokenStoreKind, c.TokenStore.Kind)
	}

	if c.Audit.Enabled {
		if len(c.Audit.SeedBrokers) == 0 || len(c.Audit.SchemaRegistryURLs) == 0 {
			return ErrAuditBrokers
		}
		if c.Audit.Topic == "" {
			return ErrAuditTopic
		}
		if c.Audit.PublishTimeout <= 0 {
			return ErrAuditTimeout
		}
	}
	return nil
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

// redact hides the password of a URL with user info.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if raw == "" {
			return ""
		}
		return masked
	}
	return u.Redacted()
}

func maskedHeaders(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = masked
	}
	return out
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Backend:
	BaseURL=%q
	RequestTimeout=%q
	RetryAttempts=%d
	ExtraHeaders=%v

	TokenStore:
	Kind=%q
	FilePath=%q
	RedisURL=%q
	Key=%q

	Audit:
	Enabled=%t
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topic=%q
	PublishTimeout=%q
	TLS=%t

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Backend.BaseURL,
		c.Backend.RequestTimeout,
		c.Backend.RetryAttempts,
		maskedHeaders(c.Backend.ExtraHeaders),
		c.TokenStore.Kind,
		c.TokenStore.FilePath,
		redact(c.TokenStore.RedisURL),
		c.TokenStore.Key,
		c.Audit.Enabled,
		c.Audit.SeedBrokers,
		c.Audit.SchemaRegistryURLs,
		c.Audit.Topic,
		c.Audit.PublishTimeout,
		c.Audit.TLS.Enabled(),
	)
}
