package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type lookupFunc func(key string) string

var osLookup lookupFunc = os.Getenv

// loadDotEnv exports the variables in path into the process environment.
// Variables that are already set win. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays the environment variables understood by the server:
//
//	PORT, GRPC_ADDR, DB_URL, PLATFORM, SECRET, POLKA_KEY,
//	ACCESS_TOKEN_TTL, REFRESH_TOKEN_TTL, FILESERVER_ROOT, LOG_LEVEL
func parseEnv(config *Config, get lookupFunc) {
	if port := envString(get, "PORT", ""); port != "" {
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		config.HTTPAddr = port
	}
	config.GRPCAddr = envString(get, "GRPC_ADDR", config.GRPCAddr)
	config.DatabaseDSN = envString(get, "DB_URL", config.DatabaseDSN)
	config.Platform = envString(get, "PLATFORM", config.Platform)
	config.SecretKey = envString(get, "SECRET", config.SecretKey)
	config.PolkaKey = envString(get, "POLKA_KEY", config.PolkaKey)
	config.AccessTokenTTL = envDuration(get, "ACCESS_TOKEN_TTL", config.AccessTokenTTL, time.Second)
	config.RefreshTokenTTL = envDuration(get, "REFRESH_TOKEN_TTL", config.RefreshTokenTTL, 24*time.Hour)
	config.FileserverRoot = envString(get, "FILESERVER_ROOT", config.FileserverRoot)
	config.LogLevel = envString(get, "LOG_LEVEL", config.LogLevel)
}

func envString(get lookupFunc, key, def string) string {
	v := strings.TrimSpace(get(key))
	if v == "" {
		return def
	}
	return v
}

// envDuration accepts a Go duration ("90m") or a bare positive integer
// counted in unit. Anything else keeps def.
func envDuration(get lookupFunc, key string, def, unit time.Duration) time.Duration {
	v := strings.TrimSpace(get(key))
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n <= 0 {
			return def
		}
		return time.Duration(n) * unit
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
