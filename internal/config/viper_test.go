package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pain-gen/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"PAIN_LOG_LEVEL",
	"PAIN_LOG_FORMAT",
	"PAIN_DEBTOR_FILE",
	"PAIN_DEBTOR_STRIP_ID_SEPARATORS",
	"PAIN_HOLIDAYS_FILE",
	"PAIN_HOLIDAYS_NATIONAL",
	"PAIN_OUTPUT_DIRECTORY",
	"PAIN_OUTPUT_FILE_PREFIX",
	"PAIN_OUTPUT_INDENT",
	"PAIN_VALIDATION_STRICT",
	"LOG_LEVEL",
}

// clearTestEnvVars blanks every variable the loader reads; t.Setenv restores
// them after the test.
func clearTestEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(original) })
}

func TestLoad_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	config, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "debtor.toml", config.Debtor.File)
	assert.False(t, config.Debtor.StripIDSeparators)
	assert.Equal(t, "holidays.yaml", config.Holidays.File)
	assert.True(t, config.Holidays.National)
	assert.Equal(t, ".", config.Output.Directory)
	assert.Equal(t, "pain001_", config.Output.FilePrefix)
	assert.Equal(t, 2, config.Output.Indent)
	assert.False(t, config.Validation.Strict)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	t.Setenv("PAIN_LOG_LEVEL", "debug")
	t.Setenv("PAIN_LOG_FORMAT", "json")
	t.Setenv("PAIN_DEBTOR_STRIP_ID_SEPARATORS", "true")
	t.Setenv("PAIN_HOLIDAYS_NATIONAL", "false")
	t.Setenv("PAIN_OUTPUT_INDENT", "4")
	t.Setenv("PAIN_VALIDATION_STRICT", "true")

	config, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.True(t, config.Debtor.StripIDSeparators)
	assert.False(t, config.Holidays.National)
	assert.Equal(t, 4, config.Output.Indent)
	assert.True(t, config.Validation.Strict)
}

func TestLoad_ConfigFileAndPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	content := `
log:
  level: warn
debtor:
  file: company.toml
output:
  directory: out
  file_prefix: bankgiro_
  indent: 0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	t.Setenv("PAIN_LOG_LEVEL", "error")

	config, err := Load(NewViper(""))
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level, "environment wins over file")
	assert.Equal(t, "company.toml", config.Debtor.File)
	assert.Equal(t, "out", config.Output.Directory)
	assert.Equal(t, "bankgiro_", config.Output.FilePrefix)
	assert.Equal(t, 0, config.Output.Indent)
	assert.True(t, config.Holidays.National, "unset keys keep defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	clearTestEnvVars(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("validation:\n  strict: true\n"), 0o644))

	config, err := Load(NewViper(path))
	require.NoError(t, err)
	assert.True(t, config.Validation.Strict)

	_, err = Load(NewViper(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Log.Level = "info"
		c.Log.Format = "text"
		c.Output.Directory = "."
		c.Output.FilePrefix = "pain001_"
		c.Output.Indent = 2
		return c
	}

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"negative indent", func(c *Config) { c.Output.Indent = -1 }, "output.indent"},
		{"huge indent", func(c *Config) { c.Output.Indent = 20 }, "output.indent"},
		{"prefix with separator", func(c *Config) { c.Output.FilePrefix = "../x" }, "file_prefix"},
		{"empty directory", func(c *Config) { c.Output.Directory = " " }, "output.directory"},
	}

	require.NoError(t, validateConfig(valid()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(c)
			err := validateConfig(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := &Config{}
	c.Log.Level = "DEBUG"
	c.Log.Format = "JSON"

	logger := ConfigureLoggingFromConfig(c)
	_, ok := logger.(*logging.LogrusAdapter)
	assert.True(t, ok)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("PAIN_TEST_FROM_DOTENV", "")
	require.NoError(t, os.Unsetenv("PAIN_TEST_FROM_DOTENV"))
	t.Setenv("PAIN_TEST_KEEP", "process")

	assert.Equal(t, "", LoadEnv(logging.NewMockLogger()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("PAIN_TEST_FROM_DOTENV=file\nPAIN_TEST_KEEP=file\n"), 0o600))

	mock := logging.NewMockLogger()
	assert.Equal(t, ".env", LoadEnv(mock))
	assert.Equal(t, "file", os.Getenv("PAIN_TEST_FROM_DOTENV"))
	assert.Equal(t, "process", os.Getenv("PAIN_TEST_KEEP"), "existing variables are not overridden")
	assert.True(t, mock.HasEntry("DEBUG", "Loaded environment variables"))
	require.NoError(t, os.Unsetenv("PAIN_TEST_FROM_DOTENV"))
}

func TestEarlyLogLevel(t *testing.T) {
	clearTestEnvVars(t)
	assert.Equal(t, "info", EarlyLogLevel())

	t.Setenv("PAIN_LOG_LEVEL", "warn")
	assert.Equal(t, "warn", EarlyLogLevel())

	t.Setenv("LOG_LEVEL", "DEBUG")
	assert.Equal(t, "debug", EarlyLogLevel())
}
