package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	DefaultBaseURL   = "https://api.eduplatform.com"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "educlient/1.0"
	DefaultAddr      = ":8090"
	DefaultTokenTTL  = 24 * time.Hour
)

// environment overrides, applied after the yaml files
const (
	EnvBaseURL   = "EDU_API_BASE_URL"
	EnvToken     = "EDU_API_TOKEN"
	EnvJwtSecret = "EDU_JWT_SECRET"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	API     API     `yaml:"api"`
	Log     Log     `yaml:"log"`
	FakeAPI FakeAPI `yaml:"fake_api"`
}

type API struct {
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	UserAgent   string        `yaml:"user_agent"`
	Compression bool          `yaml:"compression"`
	Metrics     bool          `yaml:"metrics"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// FakeAPI configures the in-memory development backend.
type FakeAPI struct {
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	TokenTTL       time.Duration `yaml:"token_ttl"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`

	// FilesDir keeps uploads on disk; empty keeps them in memory.
	FilesDir string `yaml:"files_dir"`

	// PublicRate is requests per second per client IP on anonymous form
	// posts and token requests. Zero disables the limit.
	PublicRate float64 `yaml:"public_rate"`
}

type Private struct {
	APIToken  string `yaml:"api_token"`
	JwtSecret string `yaml:"jwt_secret"`
}

func (c *Config) APIToken() string {
	return c.private.APIToken
}

func (c *Config) JwtSecret() string {
	return c.private.JwtSecret
}

// Default returns a configuration pointing at the production API.
func Default() *Config {
	return &Config{
		Public: Public{
			API: API{
				BaseURL:   DefaultBaseURL,
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			Log: Log{Level: "info"},
			FakeAPI: FakeAPI{
				Addr:           DefaultAddr,
				AllowedOrigins: []string{"*"},
				TokenTTL:       DefaultTokenTTL,
				ReadTimeout:    5 * time.Second,
				WriteTimeout:   10 * time.Second,
				PublicRate:     1,
			},
		},
	}
}

// Load reads public.yaml and private.yaml from configFolder on top of the
// defaults. Missing files are skipped; an empty folder means defaults only.
func Load(configFolder string) (*Config, error) {
	cfg := Default()
	if configFolder != "" {
		if err := loadPath(path.Join(configFolder, "public.yaml"), &cfg.Public); err != nil {
			return nil, err
		}
		if err := loadPath(path.Join(configFolder, "private.yaml"), &cfg.private); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err)
	}
	return cfg
}

func loadPath(configPath string, output interface{}) error {
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.UnmarshalStrict(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.Public.API.BaseURL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		c.private.APIToken = v
	}
	if v := os.Getenv(EnvJwtSecret); v != "" {
		c.private.JwtSecret = v
	}
}

func (c *Config) validate() error {
	c.Public.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.Public.API.BaseURL), "/")
	if c.Public.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.Public.API.Timeout < 0 {
		return errors.New("api.timeout must not be negative")
	}
	if c.Public.FakeAPI.TokenTTL <= 0 {
		return errors.New("fake_api.token_ttl must be positive")
	}
	if c.Public.FakeAPI.PublicRate < 0 {
		return errors.New("fake_api.public_rate must not be negative")
	}
	return nil
}
