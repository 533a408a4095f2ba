// Package config reads bypass settings from BYPASS_* environment variables.
// There are no configuration files.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces every setting, e.g. BYPASS_DEBUG.
const EnvPrefix = "BYPASS"

const (
	keyDebug     = "debug"
	keyLogFormat = "log_format"
)

// Log formats accepted by BYPASS_LOG_FORMAT.
const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

// Settings are the diagnostics knobs. None of them affect how the next
// command is located or run.
type Settings struct {
	Debug     bool
	LogFormat string
}

var (
	// ErrInvalidLogFormat indicates BYPASS_LOG_FORMAT is not recognized.
	ErrInvalidLogFormat = errors.New("BYPASS_LOG_FORMAT must be text, logfmt, or json")
)

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{LogFormat: FormatText}
}

// Validate reports whether the settings are usable.
func (s Settings) Validate() error {
	switch s.LogFormat {
	case FormatText, FormatLogfmt, FormatJSON:
		return nil
	default:
		return ErrInvalidLogFormat
	}
}

// Load reads settings from the environment. Invalid settings yield the
// defaults alongside the validation error so callers may carry on.
func Load() (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := Default()
	v.SetDefault(keyDebug, def.Debug)
	v.SetDefault(keyLogFormat, def.LogFormat)

	s := Settings{
		Debug:     v.GetBool(keyDebug),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString(keyLogFormat))),
	}
	if s.LogFormat == "" {
		s.LogFormat = def.LogFormat
	}
	if err := s.Validate(); err != nil {
		return def, err
	}
	return s, nil
}
