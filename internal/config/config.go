package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/jellydator/validation"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

var errInvalidEnvVar error = errors.New("invalid environment variable")

const (
	apiURLEnvKey       = "EXPLORER_API_URL"
	apiTimeoutEnvKey   = "EXPLORER_API_TIMEOUT_MS"
	portEnvKey         = "EXPLORER_PORT"
	pollIntervalEnvKey = "EXPLORER_POLL_INTERVAL_MS"
	notifyTTLEnvKey    = "EXPLORER_NOTIFY_TTL_MS"
	logLevelEnvKey     = "LOG_LEVEL"
)

const DefaultAPIURL = "https://cosmos-server.tangw4591.workers.dev/api"

type App struct {
	API    APIConfig    `yaml:"api"`
	Server ServerConfig `yaml:"server"`
	Poll   PollConfig   `yaml:"poll"`
	Notify NotifyConfig `yaml:"notify"`
	Logger LoggerConfig `yaml:"logger"`
	Pages  PagesConfig  `yaml:"pages"`
}

type APIConfig struct {
	BaseURL       string `yaml:"base_url"`
	TimeoutMillis int64  `yaml:"timeout_ms"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type PollConfig struct {
	IntervalMillis int64 `yaml:"interval_ms"`
}

type NotifyConfig struct {
	TTLMillis int64 `yaml:"ttl_ms"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

// PagesConfig holds the page size used by every list view.
type PagesConfig struct {
	DashboardBlocks       int `yaml:"dashboard_blocks"`
	DashboardTransactions int `yaml:"dashboard_transactions"`
	Blocks                int `yaml:"blocks"`
	Transactions          int `yaml:"transactions"`
}

func (a App) APITimeout() time.Duration {
	return time.Duration(a.API.TimeoutMillis) * time.Millisecond
}

func (a App) PollInterval() time.Duration {
	return time.Duration(a.Poll.IntervalMillis) * time.Millisecond
}

func (a App) NotifyTTL() time.Duration {
	return time.Duration(a.Notify.TTLMillis) * time.Millisecond
}

// Default returns the configuration used when neither a file nor the environment sets a value.
func Default() App {
	return App{
		API: APIConfig{
			BaseURL:       DefaultAPIURL,
			TimeoutMillis: 10000,
		},
		Server: ServerConfig{Port: "8080"},
		Poll:   PollConfig{IntervalMillis: 10000},
		Notify: NotifyConfig{TTLMillis: 3000},
		Logger: LoggerConfig{Level: "info"},
		Pages: PagesConfig{
			DashboardBlocks:       5,
			DashboardTransactions: 10,
			Blocks:                20,
			Transactions:          50,
		},
	}
}

// NewApp loads the defaults, overlays the YAML file (if any) and then the
// environment, optionally seeded from envFile.
func NewApp(configFile, envFile string) (App, error) {
	cfg := Default()

	if configFile != "" {
		raw, err := os.ReadFile(configFile)
		if err != nil {
			return App{}, fmt.Errorf("read config file %q: %w", configFile, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return App{}, fmt.Errorf("unmarshal config file %q: %w", configFile, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return App{}, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	if err := cfg.readEnv(); err != nil {
		return App{}, err
	}

	if err := cfg.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (a *App) readEnv() error {
	if v, ok := os.LookupEnv(apiURLEnvKey); ok {
		a.API.BaseURL = v
	}
	if v, ok := os.LookupEnv(portEnvKey); ok {
		a.Server.Port = v
	}
	if v, ok := os.LookupEnv(logLevelEnvKey); ok {
		a.Logger.Level = v
	}

	millis := []struct {
		key    string
		target *int64
	}{
		{apiTimeoutEnvKey, &a.API.TimeoutMillis},
		{pollIntervalEnvKey, &a.Poll.IntervalMillis},
		{notifyTTLEnvKey, &a.Notify.TTLMillis},
	}
	for _, m := range millis {
		v, ok := os.LookupEnv(m.key)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errInvalidEnvVar, m.key, err)
		}
		*m.target = n
	}

	return nil
}

func (a App) Validate() error {
	return validation.Errors{
		"api": validation.ValidateStruct(&a.API,
			validation.Field(&a.API.BaseURL, validation.Required, validation.By(absoluteURL)),
			validation.Field(&a.API.TimeoutMillis, validation.Required, validation.Min(int64(1))),
		),
		"server": validation.ValidateStruct(&a.Server,
			validation.Field(&a.Server.Port, validation.Required, validation.By(portNumber)),
		),
		"poll": validation.ValidateStruct(&a.Poll,
			validation.Field(&a.Poll.IntervalMillis, validation.Required, validation.Min(int64(1))),
		),
		"notify": validation.ValidateStruct(&a.Notify,
			validation.Field(&a.Notify.TTLMillis, validation.Required, validation.Min(int64(1))),
		),
		"pages": validation.ValidateStruct(&a.Pages,
			validation.Field(&a.Pages.DashboardBlocks, validation.Required, validation.Min(1)),
			validation.Field(&a.Pages.DashboardTransactions, validation.Required, validation.Min(1)),
			validation.Field(&a.Pages.Blocks, validation.Required, validation.Min(1)),
			validation.Field(&a.Pages.Transactions, validation.Required, validation.Min(1)),
		),
	}.Filter()
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}

func portNumber(value any) error {
	s, _ := value.(string)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return errors.New("must be a valid port number")
	}
	return nil
}
