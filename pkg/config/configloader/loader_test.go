package configloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Client struct {
		Addr    string        `koanf:"addr" validate:"required"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"client"`
	Log struct {
		Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	} `koanf:"log"`
}

var errTimeout = errors.New("timeout must be positive")

func (c *testConfig) Validate() error {
	if c.Client.Timeout <= 0 {
		return errTimeout
	}
	return nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func Test_Load_Precedence(t *testing.T) {
	testCases := []struct {
		name            string
		yaml            string
		dotenv          string
		env             map[string]string
		expectedAddr    string
		expectedTimeout time.Duration
		expectedLevel   string
	}{
		{
			name:            "Defaults only",
			expectedAddr:    "localhost:50051",
			expectedTimeout: 5 * time.Second,
			expectedLevel:   "info",
		},
		{
			name:            "Yaml overrides defaults",
			yaml:            "client:\n  addr: yaml:1\nlog:\n  level: debug\n",
			expectedAddr:    "yaml:1",
			expectedTimeout: 5 * time.Second,
			expectedLevel:   "debug",
		},
		{
			name:            "Dotenv overrides yaml",
			yaml:            "client:\n  addr: yaml:1\n",
			dotenv:          "TESTSVC_CLIENT_ADDR=dotenv:2\n",
			expectedAddr:    "dotenv:2",
			expectedTimeout: 5 * time.Second,
			expectedLevel:   "info",
		},
		{
			name:            "Environment overrides everything",
			yaml:            "client:\n  addr: yaml:1\n",
			dotenv:          "TESTSVC_CLIENT_ADDR=dotenv:2\n",
			env:             map[string]string{"TESTSVC_CLIENT_ADDR": "env:3", "TESTSVC_CLIENT_TIMEOUT": "2s"},
			expectedAddr:    "env:3",
			expectedTimeout: 2 * time.Second,
			expectedLevel:   "info",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			dir := t.TempDir()
			t.Chdir(dir)
			if tc.yaml != "" {
				writeFile(t, dir, "config.yaml", tc.yaml)
			}
			if tc.dotenv != "" {
				writeFile(t, dir, ".env", tc.dotenv)
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			defaults := map[string]any{
				"client.addr":    "localhost:50051",
				"client.timeout": "5s",
				"log.level":      "info",
			}
			// when
			cfg, err := Load[*testConfig]("testsvc", WithDefaults(defaults))
			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expectedAddr, cfg.Client.Addr)
			assert.Equal(t, tc.expectedTimeout, cfg.Client.Timeout)
			assert.Equal(t, tc.expectedLevel, cfg.Log.Level)
		})
	}
}

func Test_Load_ValidationErrors(t *testing.T) {
	t.Run("Struct tag violation", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		t.Setenv("TESTSVC_CLIENT_TIMEOUT", "1s")
		t.Setenv("TESTSVC_LOG_LEVEL", "verbose")
		// when
		_, err := Load[*testConfig]("testsvc")
		// then
		require.Error(t, err)
		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fieldErr.Field())
		}
		assert.ElementsMatch(t, []string{"Addr", "Level"}, fields)
	})

	t.Run("Validate method violation", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		t.Setenv("TESTSVC_CLIENT_ADDR", "localhost:1")
		// when
		_, err := Load[*testConfig]("testsvc")
		// then
		assert.ErrorIs(t, err, errTimeout)
	})
}

func Test_Load_CustomFileNames(t *testing.T) {
	// given
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "custom.yaml", "client:\n  addr: custom:1\n  timeout: 3s\n")
	writeFile(t, dir, "custom.env", "TESTSVC_LOG_LEVEL=warn\n")
	// when
	cfg, err := Load[*testConfig]("testsvc", WithConfigFile("custom.yaml"), WithEnvFile("custom.env"))
	// then
	require.NoError(t, err)
	assert.Equal(t, "custom:1", cfg.Client.Addr)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}
