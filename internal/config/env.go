package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RESUMECUA_"

// LoadEnvFiles loads KEY=value pairs from the given dotenv files into the process
// environment without overriding variables that are already set. Missing files are
// skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with RESUMECUA_* environment variables. Malformed numeric or
// boolean values are reported and leave the field unchanged.
func ApplyEnv(cfg *Config) error {
	var errs []string
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, EnvPrefix+key)
				return
			}
			*dst = b
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, EnvPrefix+key)
				return
			}
			*dst = n
		}
	}

	boolean("DEBUG", &cfg.Debug)
	str("HOST", &cfg.Server.Host)
	integer("PORT", &cfg.Server.Port)
	str("DATABASE_PATH", &cfg.Storage.DatabasePath)
	str("INDEX_PATH", &cfg.Storage.IndexPath)
	boolean("NER_ENABLED", &cfg.NER.Enabled)
	str("NER_MODEL_PATH", &cfg.NER.ModelPath)
	str("NER_VOCAB_PATH", &cfg.NER.VocabPath)
	integer("WORKERS", &cfg.Parse.Workers)
	if v := os.Getenv(EnvPrefix + "KEYWORDS"); v != "" {
		cfg.Parse.Keywords = strings.Split(v, ",")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment values: %s", strings.Join(errs, ", "))
	}
	return nil
}
