package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. FITNESS_DB_PATH.
const envPrefix = "FITNESS"

type Config struct {
	Port     string                   `mapstructure:"port"`
	LogLevel string                   `mapstructure:"log_level"`
	DB       DBConfig                 `mapstructure:"db"`
	Redis    RedisConfig              `mapstructure:"redis"`
	Auth     AuthConfig               `mapstructure:"auth"`
	Ranking  RankingConfig            `mapstructure:"ranking"`
	Rooms    RoomsConfig              `mapstructure:"rooms"`
	OAuth    map[string]OAuthProvider `mapstructure:"oauth"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	// AdminEmails get the ADMIN role on sign-up, OAuth account creation and sign-in.
	AdminEmails []string `mapstructure:"admin_emails"`
}

type RankingConfig struct {
	Key          string `mapstructure:"key"`
	DefaultLimit int    `mapstructure:"default_limit"`
}

type RoomsConfig struct {
	IdleTTL      time.Duration `mapstructure:"idle_ttl"`
	ReapInterval time.Duration `mapstructure:"reap_interval"`
	MaxMembers   int           `mapstructure:"max_members"`
}

// OAuthProvider describes one authorization-code provider. The *_path fields are
// gjson paths into the provider's userinfo document.
type OAuthProvider struct {
	ClientID     string   `mapstructure:"client_id"`
	ClientSecret string   `mapstructure:"client_secret"`
	AuthURL      string   `mapstructure:"auth_url"`
	TokenURL     string   `mapstructure:"token_url"`
	UserInfoURL  string   `mapstructure:"user_info_url"`
	RedirectURL  string   `mapstructure:"redirect_url"`
	Scopes       []string `mapstructure:"scopes"`
	IDPath       string   `mapstructure:"id_path"`
	EmailPath    string   `mapstructure:"email_path"`
	NamePath     string   `mapstructure:"name_path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("auth.admin_emails", []string{})
	v.SetDefault("ranking.key", "ranking:total")
	v.SetDefault("ranking.default_limit", 10)
	v.SetDefault("rooms.idle_ttl", 30*time.Minute)
	v.SetDefault("rooms.reap_interval", time.Minute)
	v.SetDefault("rooms.max_members", 10)
}

// Load reads config.yml from dir (if present), applies defaults and FITNESS_* env
// overrides. A .env file in the working directory is loaded into the environment first.
func Load(dir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return errors.New("auth.signing_key is required (set FITNESS_AUTH_SIGNING_KEY)")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Ranking.DefaultLimit <= 0 {
		return fmt.Errorf("ranking.default_limit must be positive, got %d", c.Ranking.DefaultLimit)
	}
	if c.Rooms.MaxMembers < 2 {
		return fmt.Errorf("rooms.max_members must be at least 2, got %d", c.Rooms.MaxMembers)
	}
	for name, p := range c.OAuth {
		if p.AuthURL == "" || p.TokenURL == "" || p.UserInfoURL == "" {
			return fmt.Errorf("oauth.%s: auth_url, token_url and user_info_url are required", name)
		}
		if p.IDPath == "" {
			return fmt.Errorf("oauth.%s: id_path is required", name)
		}
	}
	return nil
}
