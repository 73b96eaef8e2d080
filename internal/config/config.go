// Package config loads client settings from ~/.rag/config.toml and RAG_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DirName    = ".rag"
	configName = "config"
	configType = "toml"
	envPrefix  = "RAG"
)

const (
	KeyBaseURL      = "api.base_url"
	KeyTimeout      = "api.timeout"
	KeyPollInterval = "poll.interval"
	KeyBackend      = "credentials.backend"
	KeySecretsDir   = "credentials.dir"
	KeyBoltPath     = "credentials.bolt_path"
	KeyPreferences  = "preferences.path"
	KeyLogLevel     = "log.level"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8000/api"
	DefaultTimeout = 30 * time.Second
	DefaultPoll    = 1500 * time.Millisecond
	minimumPoll    = 100 * time.Millisecond
)

// Credential backends.
const (
	BackendChain = "chain"
	BackendFile  = "file"
	BackendPass  = "pass"
	BackendBolt  = "bolt"
)

type Config struct {
	BaseURL         string
	RequestTimeout  time.Duration
	PollInterval    time.Duration
	Backend         string
	SecretsDir      string
	BoltPath        string
	PreferencesPath string
	LogLevel        string

	// File is the config file that was read, empty when none exists.
	File string
}

// Load reads configuration into v. An explicit file set with v.SetConfigFile
// must exist; the default ~/.rag/config.toml is optional.
func Load(v *viper.Viper, home string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	if strings.TrimSpace(home) == "" {
		return Config{}, errors.New("home directory is empty")
	}
	dir := filepath.Join(home, DirName)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyPollInterval, DefaultPoll)
	v.SetDefault(KeyBackend, BackendChain)
	v.SetDefault(KeySecretsDir, filepath.Join(dir, "secrets"))
	v.SetDefault(KeyBoltPath, filepath.Join(dir, "credentials.db"))
	v.SetDefault(KeyPreferences, filepath.Join(dir, "preferences.toml"))
	v.SetDefault(KeyLogLevel, "")

	explicit := v.ConfigFileUsed()
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", explicit, err)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		BaseURL:         strings.TrimSpace(v.GetString(KeyBaseURL)),
		RequestTimeout:  v.GetDuration(KeyTimeout),
		PollInterval:    v.GetDuration(KeyPollInterval),
		Backend:         strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		SecretsDir:      v.GetString(KeySecretsDir),
		BoltPath:        v.GetString(KeyBoltPath),
		PreferencesPath: v.GetString(KeyPreferences),
		LogLevel:        v.GetString(KeyLogLevel),
		File:            v.ConfigFileUsed(),
	}
	if err := cfg.normalize(home); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize(home string) error {
	if c.BaseURL == "" {
		return errors.New("api.base_url is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.PollInterval < minimumPoll {
		return fmt.Errorf("poll.interval must be at least %s, got %s", minimumPoll, c.PollInterval)
	}

	switch c.Backend {
	case BackendChain, BackendFile, BackendPass, BackendBolt:
	default:
		return fmt.Errorf("unknown credentials.backend %q (want chain, file, pass or bolt)", c.Backend)
	}

	var err error
	if c.SecretsDir, err = expandPath(c.SecretsDir, home); err != nil {
		return fmt.Errorf("credentials.dir: %w", err)
	}
	if c.BoltPath, err = expandPath(c.BoltPath, home); err != nil {
		return fmt.Errorf("credentials.bolt_path: %w", err)
	}
	if c.PreferencesPath, err = expandPath(c.PreferencesPath, home); err != nil {
		return fmt.Errorf("preferences.path: %w", err)
	}
	return nil
}

func expandPath(path, home string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is empty")
	}
	if path == "~" {
		path = home
	} else if rest, ok := strings.CutPrefix(path, "~/"); ok {
		path = filepath.Join(home, rest)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
