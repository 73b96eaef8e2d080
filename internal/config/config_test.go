package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home, body string) string {
	t.Helper()
	dir := filepath.Join(home, DirName)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultPoll, cfg.PollInterval)
	assert.Equal(t, BackendChain, cfg.Backend)
	assert.Equal(t, filepath.Join(home, DirName, "secrets"), cfg.SecretsDir)
	assert.Equal(t, filepath.Join(home, DirName, "credentials.db"), cfg.BoltPath)
	assert.Equal(t, filepath.Join(home, DirName, "preferences.toml"), cfg.PreferencesPath)
	assert.Empty(t, cfg.File)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, `
[api]
base_url = "https://rag.example.com/api"
timeout = "5s"

[poll]
interval = "750ms"

[credentials]
backend = "Bolt"
bolt_path = "~/state/creds.db"

[preferences]
path = "~/prefs.toml"
`)

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)

	assert.Equal(t, "https://rag.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 750*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, BackendBolt, cfg.Backend)
	assert.Equal(t, filepath.Join(home, "state", "creds.db"), cfg.BoltPath)
	assert.Equal(t, filepath.Join(home, "prefs.toml"), cfg.PreferencesPath)
	assert.Equal(t, path, cfg.File)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[api]\nbase_url = \"https://file.example.com/api\"\n")
	t.Setenv("RAG_API_BASE_URL", "https://env.example.com/api")
	t.Setenv("RAG_CREDENTIALS_BACKEND", "pass")

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", cfg.BaseURL)
	assert.Equal(t, BackendPass, cfg.Backend)
}

func TestLoadExplicitConfigFileMustExist(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load(v, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadExplicitConfigFileIsRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[poll]\ninterval = \"2s\"\n"), 0o600))
	v := viper.New()
	v.SetConfigFile(path)

	cfg, err := Load(v, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, path, cfg.File)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown backend", body: "[credentials]\nbackend = \"keyring\"\n"},
		{name: "poll too fast", body: "[poll]\ninterval = \"10ms\"\n"},
		{name: "non-positive timeout", body: "[api]\ntimeout = \"0s\"\n"},
		{name: "empty base url", body: "[api]\nbase_url = \" \"\n"},
		{name: "broken toml", body: "[api\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, tt.body)

			_, err := Load(viper.New(), home)
			require.Error(t, err)
		})
	}
}

func TestLoadRequiresHome(t *testing.T) {
	_, err := Load(nil, " ")
	require.Error(t, err)
}
