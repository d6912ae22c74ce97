package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, "app:\n  name: complaints\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "complaints", cfg.App.Name)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "TGRERA/COMP", cfg.Complaint.IDPrefix)
	assert.Equal(t, "Asia/Kolkata", cfg.Complaint.Timezone)
	assert.Equal(t, 5, cfg.Complaint.IDMaxAttempts)
	assert.False(t, cfg.Complaint.StrictDocumentCheck)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "complaints", cfg.Metrics.ServiceName)
	assert.Equal(t, "tgrera_session", cfg.Server.SessionCookie)
}

func TestLoadFromFile_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "localhost:6380")
	path := writeConfig(t, "redis:\n  enabled: true\n  address: ${TEST_REDIS_ADDR}\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6380", cfg.Redis.Address)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad timezone", "complaint:\n  timezone: Mars/Olympus\n"},
		{"redis without address", "redis:\n  enabled: true\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"negative attempts", "complaint:\n  id_max_attempts: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}

func TestLoadFromFile_UnsetEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("TEST_UNSET_ENVIRONMENT", "")
	path := writeConfig(t, "app:\n  environment: ${TEST_UNSET_ENVIRONMENT}\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Environment)
}

func writeConfigDir(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", name), []byte(body), 0o600))
	}
	t.Chdir(dir)
}

func TestLoad_EnvironmentOverlay(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr bool
		want    string
	}{
		{
			name:  "overlay absent",
			files: map[string]string{"config.yaml": "app:\n  name: base\n"},
			want:  "base",
		},
		{
			name: "overlay merged",
			files: map[string]string{
				"config.yaml":         "app:\n  name: base\n",
				"config.staging.yaml": "app:\n  name: staged\n",
			},
			want: "staged",
		},
		{
			name: "overlay malformed",
			files: map[string]string{
				"config.yaml":         "app:\n  name: base\n",
				"config.staging.yaml": "app: [unclosed\n",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENVIRONMENT", "staging")
			writeConfigDir(t, tt.files)

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.App.Name)
		})
	}
}
