package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/bisko/internal/logging"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("BISKO_HOME", home)
	t.Setenv("BISKO_LOG_LEVEL", "")
	t.Setenv("BISKO_LOG_FORMAT", "")
	t.Setenv("BISKO_OUTPUT_FORMAT", "")
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	return home
}

func TestGlobalConfig(t *testing.T) {
	isolateHome(t)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())

	custom := Default()
	custom.Output.Precision = 5
	SetGlobalConfig(custom)
	assert.Equal(t, 5, GetOutputPrecision())
}

func TestConfigGetters(t *testing.T) {
	isolateHome(t)
	cfg := GetGlobalConfig()
	cfg.Output.DefaultFormat = "json"
	cfg.Output.Precision = 4
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/test.log"

	assert.Equal(t, "json", GetDefaultOutputFormat())
	assert.Equal(t, 4, GetOutputPrecision())
	assert.Equal(t, "debug", GetLogLevel())
	assert.Equal(t, "/tmp/test.log", GetLogFile())
	assert.Equal(t, cfg.Logging, GetLoggingConfig())
}

func TestDirs(t *testing.T) {
	home := isolateHome(t)

	require.NoError(t, EnsureConfigDir())
	stat, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())

	dir, err := GetCacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cache"), dir)

	GetGlobalConfig().Cache.Directory = "/elsewhere"
	dir, err = GetCacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", dir)

	logFile := filepath.Join(t.TempDir(), "nested", "logs", "bisko.log")
	GetGlobalConfig().Logging.File = logFile
	require.NoError(t, EnsureLogDir())
	_, err = os.Stat(filepath.Dir(logFile))
	assert.NoError(t, err)
}

func TestNew_LoadsFileAndEnv(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
output:
  default_format: json
  precision: 3
logging:
  level: warn
  format: json
`), 0o600))
	t.Setenv("BISKO_LOG_LEVEL", "debug")

	cfg := New()
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Calc.Parallel, "sections absent from the file keep defaults")
}

func TestSaveAndNewFromFile(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Data.Facts = "facts.csv"
	cfg.Calc.Concurrency = 8
	cfg.SetConfigPath(path)
	require.NoError(t, cfg.Save())

	loaded, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "facts.csv", loaded.Data.Facts)
	assert.Equal(t, 8, loaded.Calc.Concurrency)

	_, err = NewFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	factsPath := filepath.Join(t.TempDir(), "facts.csv")
	require.NoError(t, os.WriteFile(factsPath, []byte("label,value\n"), 0o600))

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "existing data file", mutate: func(c *Config) { c.Data.Facts = factsPath }},
		{name: "bad format", mutate: func(c *Config) { c.Output.DefaultFormat = "csv" }, wantErr: "output.default_format"},
		{name: "bad precision", mutate: func(c *Config) { c.Output.Precision = 11 }, wantErr: "output.precision"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "no workers", mutate: func(c *Config) { c.Calc.Concurrency = 0 }, wantErr: "calc.concurrency"},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.TTLSeconds = -1 }, wantErr: "cache.ttl_seconds"},
		{name: "missing data file", mutate: func(c *Config) { c.Data.Assumptions = "/nope.csv" }, wantErr: "data.assumptions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "text"}
	assert.Equal(t, logging.Config{Level: "debug", Format: logging.FormatConsole, Output: "stderr"}, lc.ToLoggingConfig())

	lc = LoggingConfig{Level: "info", Format: "json", File: "/tmp/bisko.log"}
	assert.Equal(t,
		logging.Config{Level: "info", Format: "json", Output: logging.OutputFile, File: "/tmp/bisko.log"},
		lc.ToLoggingConfig())
}
