package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/chirpy/internal/flagx"
	"github.com/dmitrijs2005/chirpy/internal/timex"
)

// FileConfig is the on-disk shape of the configuration. Duration fields use
// timex.Duration so both "3600s" and integer nanoseconds are accepted.
//
// Only fields present in the file override the current values.
type FileConfig struct {
	HTTPAddr        string         `json:"http_addr" yaml:"http_addr"`
	GRPCAddr        string         `json:"grpc_addr" yaml:"grpc_addr"`
	DatabaseDSN     string         `json:"database_dsn" yaml:"database_dsn"`
	Platform        string         `json:"platform" yaml:"platform"`
	SecretKey       string         `json:"secret_key" yaml:"secret_key"`
	PolkaKey        string         `json:"polka_key" yaml:"polka_key"`
	AccessTokenTTL  timex.Duration `json:"access_token_ttl" yaml:"access_token_ttl"`
	RefreshTokenTTL timex.Duration `json:"refresh_token_ttl" yaml:"refresh_token_ttl"`
	FileserverRoot  string         `json:"fileserver_root" yaml:"fileserver_root"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays the file named by -c/-config. The decoder is chosen by
// extension: .yaml and .yml use YAML, everything else JSON.
func parseFile(config *Config, args []string) error {
	path := flagx.ConfigFileFlags(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(config)
	return nil
}

func (fc *FileConfig) apply(config *Config) {
	setString(&config.HTTPAddr, fc.HTTPAddr)
	setString(&config.GRPCAddr, fc.GRPCAddr)
	setString(&config.DatabaseDSN, fc.DatabaseDSN)
	setString(&config.Platform, fc.Platform)
	setString(&config.SecretKey, fc.SecretKey)
	setString(&config.PolkaKey, fc.PolkaKey)
	setString(&config.FileserverRoot, fc.FileserverRoot)
	setString(&config.LogLevel, fc.LogLevel)
	if fc.AccessTokenTTL.Duration != 0 {
		config.AccessTokenTTL = fc.AccessTokenTTL.Duration
	}
	if fc.RefreshTokenTTL.Duration != 0 {
		config.RefreshTokenTTL = fc.RefreshTokenTTL.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
