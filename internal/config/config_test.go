package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DelimiterAuto, cfg.Delimiter)
	assert.Equal(t, CharsetUTF8, cfg.Charset)
	assert.Equal(t, "-9999", cfg.MissingSentinel)
	assert.Equal(t, "es", cfg.Lang)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("METEO_DELIMITER", ";")
	t.Setenv("METEO_CHARSET", "latin1")
	t.Setenv("METEO_MISSING_SENTINEL", "NA")
	t.Setenv("METEO_LANG", "en")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DelimiterSemicolon, cfg.Delimiter)
	assert.Equal(t, CharsetLatin1, cfg.Charset)
	assert.Equal(t, "NA", cfg.MissingSentinel)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	t.Setenv("METEO_DELIMITER", "|")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METEO_DELIMITER")
}

func TestLoad_InvalidCharset(t *testing.T) {
	t.Setenv("METEO_CHARSET", "utf-16")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METEO_CHARSET")
}

func TestLoad_InvalidLang(t *testing.T) {
	t.Setenv("METEO_LANG", "gl")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METEO_LANG")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}
