// Package config loads the process settings.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/teammap/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// FileEnv names the environment variable holding the optional settings file path.
	FileEnv = "TEAMMAP_CONFIG"

	envPrefix      = "TEAMMAP_"
	geoNamesPrefix = "GEONAMES_"
	usernameEnv    = "GEONAMES_USERNAME"
)

// listKeys are split on commas when they come from the environment.
var listKeys = map[string]bool{
	"excluded_countries": true,
}

// Load builds the settings by layering, from low to high precedence:
//  1. defaults (domain.DefaultSettings)
//  2. YAML file if TEAMMAP_CONFIG is set
//  3. GEONAMES_USERNAME
//  4. env (prefix TEAMMAP_)
func Load() (*domain.Settings, error) {
	k := koanf.New(".")

	if path := os.Getenv(FileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error()), "path", path)
		}
	}

	// Only GEONAMES_USERNAME is taken from the GEONAMES_ namespace.
	legacy := env.Provider(geoNamesPrefix, ".", func(s string) string {
		if s != usernameEnv {
			return ""
		}
		return "geonames_username"
	})
	if err := k.Load(legacy, nil); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	// TEAMMAP_DATASET_PATH -> dataset_path. Underscores are kept to match the koanf tags.
	scoped := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, any) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(envPrefix))
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(scoped, nil); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	cfg := domain.DefaultSettings()
	// Decoding into a populated slice would keep trailing defaults.
	if k.Exists("excluded_countries") {
		cfg.ExcludedCountries = nil
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}

	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return cfg, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
