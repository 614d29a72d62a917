package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDialTimeout        = 10 * time.Second
	defaultBcryptCost         = 12
	defaultMongoCollection    = "users"
)

// Store backends selectable with store.backend.
const (
	BackendDocument   = "document"
	BackendRelational = "relational"
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

	// Store selects the persistence backend for the lifetime of the process.
	Store StoreConfig `json:"store" yaml:"store"`

	// Mongo configures the document backend.
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Relational configures the relational backend.
	Relational *RelationalConfig `json:"relational" yaml:"relational"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// APIKeys lists the basic-auth credentials allowed to call the service.
	APIKeys []APIKeyConfig `json:"apiKeys" yaml:"apiKeys"`

	// Alerts configures fault alert publishing
	Alerts *AlertsConfig `json:"alerts" yaml:"alerts"`
}

// StoreConfig defines backend selection and connection behaviour
type StoreConfig struct {
	Backend     string        `json:"backend" yaml:"backend"`
	DialTimeout time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
}

// MongoConfig defines the document store connection
type MongoConfig struct {
	URI        string `json:"uri" yaml:"uri"`
	Database   string `json:"database" yaml:"database"`
	Collection string `json:"collection" yaml:"collection"`
}

// RelationalConfig points at the connection descriptor of the relational store.
type RelationalConfig struct {
	DescriptorPath string `json:"descriptorPath" yaml:"descriptorPath"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// PasswordStrengthConfig defines password strength requirements.
// MinScore is a zxcvbn score from 0 to 4; 0 disables the check.
type PasswordStrengthConfig struct {
	MinScore int `json:"minScore" yaml:"minScore"`
}

// APIKeyConfig is one basic-auth user/key pair
type APIKeyConfig struct {
	User string `json:"user" yaml:"user"`
	Key  string `json:"key" yaml:"key"`
}

// AlertsConfig defines where fault alerts are published
type AlertsConfig struct {
	// Go CDK topic URL, e.g. "mem://alerts" or "gcppubsub://projects/p/topics/t"
	TopicURL string `json:"topicUrl" yaml:"topicUrl"`

	// Recipient is carried on every event for the mail relay consuming the topic
	Recipient string `json:"recipient" yaml:"recipient"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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
			// Example: STORE_DIALTIMEOUT -> store.dialTimeout
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, unmarshalConf(cfg)); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// unmarshalConf decodes case-insensitively so env overrides and YAML keys land on the same fields.
func unmarshalConf(result any) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           result,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	// API keys from environment variables (API_KEYS_0_USER, API_KEYS_0_KEY, ...)
	cfg.APIKeys = append(cfg.APIKeys, buildAPIKeysFromEnv()...)

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store.DialTimeout <= 0 {
		cfg.Store.DialTimeout = defaultDialTimeout
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}

	switch cfg.Store.Backend {
	case BackendDocument:
		if cfg.Mongo == nil || cfg.Mongo.URI == "" {
			return errors.New("mongo.uri is required for the document backend")
		}
		if cfg.Mongo.Collection == "" {
			cfg.Mongo.Collection = defaultMongoCollection
		}
	case BackendRelational:
		if cfg.Relational == nil || cfg.Relational.DescriptorPath == "" {
			return errors.New("relational.descriptorPath is required for the relational backend")
		}
	default:
		return errors.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	return nil
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

// buildAPIKeysFromEnv builds API key pairs from indexed environment variables.
// Example: API_KEYS_0_USER=notes API_KEYS_0_KEY=...
func buildAPIKeysFromEnv() []APIKeyConfig {
	var keys []APIKeyConfig

	for i := 0; ; i++ {
		prefix := "API_KEYS_" + strconv.Itoa(i) + "_"

		user := os.Getenv(prefix + "USER")
		key := os.Getenv(prefix + "KEY")
		if user == "" || key == "" {
			break
		}

		keys = append(keys, APIKeyConfig{User: user, Key: key})
	}

	return keys
}
