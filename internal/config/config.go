package config

import (
	"errors"
	"fmt"
	"os"
)

// Delimiter selection for the CSV loader. "auto" sniffs the header row.
const (
	DelimiterAuto      = "auto"
	DelimiterSemicolon = ";"
	DelimiterComma     = ","
)

// Supported input charsets. Older agency exports are Latin-1.
const (
	CharsetUTF8   = "utf-8"
	CharsetLatin1 = "latin1"
)

// Config holds all tool settings, populated from environment variables.
type Config struct {
	Delimiter       string // METEO_DELIMITER: auto, ";" or ","
	Charset         string // METEO_CHARSET: utf-8 or latin1
	MissingSentinel string // METEO_MISSING_SENTINEL: reading value meaning "no data"
	Lang            string // METEO_LANG: es or en, controls output labels
	LogLevel        string // LOG_LEVEL: debug, info, warn, error
	LogFormat       string // LOG_FORMAT: text or json
}

// Load reads configuration from environment variables, applying defaults
// where unset. Validation errors name the offending variable.
func Load() (*Config, error) {
	cfg := &Config{
		Delimiter:       envOrDefault("METEO_DELIMITER", DelimiterAuto),
		Charset:         envOrDefault("METEO_CHARSET", CharsetUTF8),
		MissingSentinel: envOrDefault("METEO_MISSING_SENTINEL", "-9999"),
		Lang:            envOrDefault("METEO_LANG", "es"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
	}

	switch cfg.Delimiter {
	case DelimiterAuto, DelimiterSemicolon, DelimiterComma:
	default:
		return nil, fmt.Errorf("invalid METEO_DELIMITER %q (use auto, %q or %q)",
			cfg.Delimiter, DelimiterSemicolon, DelimiterComma)
	}

	switch cfg.Charset {
	case CharsetUTF8, CharsetLatin1:
	default:
		return nil, fmt.Errorf("invalid METEO_CHARSET %q (use utf-8 or latin1)", cfg.Charset)
	}

	if cfg.MissingSentinel == "" {
		return nil, errors.New("METEO_MISSING_SENTINEL must not be empty")
	}

	switch cfg.Lang {
	case "es", "en":
	default:
		return nil, fmt.Errorf("invalid METEO_LANG %q (use es or en)", cfg.Lang)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (use text or json)", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
