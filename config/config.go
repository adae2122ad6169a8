package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

// Database drivers understood by the persistence layer.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Generative providers understood by the generation layer.
const (
	GenerativeProviderGemini = "gemini"
	GenerativeProviderVertex = "vertex"
	GenerativeProviderNone   = "none"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Database configuration for the plan store
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Generative configuration for the plan generator backend
	Generative *GenerativeConfig `json:"generative" yaml:"generative"`

	// Planner tunes retry behaviour of generation and cache calls
	Planner *PlannerConfig `json:"planner" yaml:"planner"`

	// QRCode configuration for share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for plan events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines the plan store connection
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// URL is the postgres connection string
	URL string `json:"url" yaml:"url"`

	// SQLitePath is the database file for the sqlite driver
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// GenerativeConfig defines the text generation backend
type GenerativeConfig struct {
	// Provider is "gemini" (REST with API key), "vertex" or "none"
	Provider string `json:"provider" yaml:"provider"`

	APIKey  string `json:"apiKey" yaml:"apiKey"`
	Model   string `json:"model" yaml:"model"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Vertex AI project settings
	ProjectID       string `json:"projectId" yaml:"projectId"`
	Location        string `json:"location" yaml:"location"`
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// PlannerConfig defines retry policies for plan generation and cache access
type PlannerConfig struct {
	GenerationAttempts  int           `json:"generationAttempts" yaml:"generationAttempts"`
	GenerationBaseDelay time.Duration `json:"generationBaseDelay" yaml:"generationBaseDelay"`
	CacheAttempts       int           `json:"cacheAttempts" yaml:"cacheAttempts"`
	CacheBaseDelay      time.Duration `json:"cacheBaseDelay" yaml:"cacheBaseDelay"`
	Temperature         float64       `json:"temperature" yaml:"temperature"`
	PersistTimeout      time.Duration `json:"persistTimeout" yaml:"persistTimeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: GENERATIVE_APIKEY -> generative.apiKey
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills unset sections and honours the conventional
// GEMINI_API_KEY / DATABASE_URL / NEON_DATABASE_URL variables.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = firstEnv("DATABASE_URL", "NEON_DATABASE_URL")
	}

	if cfg.Generative == nil {
		cfg.Generative = &GenerativeConfig{}
	}
	if cfg.Generative.Provider == "" {
		cfg.Generative.Provider = GenerativeProviderGemini
	}
	if cfg.Generative.APIKey == "" {
		cfg.Generative.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Generative.Model == "" {
		cfg.Generative.Model = "gemini-2.0-flash"
	}
	if cfg.Generative.BaseURL == "" {
		cfg.Generative.BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	if cfg.Generative.Timeout <= 0 {
		cfg.Generative.Timeout = 60 * time.Second
	}

	if cfg.Planner == nil {
		cfg.Planner = &PlannerConfig{}
	}
	if cfg.Planner.GenerationAttempts <= 0 {
		cfg.Planner.GenerationAttempts = 3
	}
	if cfg.Planner.GenerationBaseDelay <= 0 {
		cfg.Planner.GenerationBaseDelay = time.Second
	}
	if cfg.Planner.CacheAttempts <= 0 {
		cfg.Planner.CacheAttempts = 3
	}
	if cfg.Planner.CacheBaseDelay <= 0 {
		cfg.Planner.CacheBaseDelay = 500 * time.Millisecond
	}
	if cfg.Planner.Temperature <= 0 {
		cfg.Planner.Temperature = 0.1
	}
	if cfg.Planner.PersistTimeout <= 0 {
		cfg.Planner.PersistTimeout = 15 * time.Second
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}

	return ""
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
