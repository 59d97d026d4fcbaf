package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/chirpy/internal/flagx"
)

// parseFlags overlays command-line flags.
//
//	-a string   HTTP bind address (":8080")
//	-g string   gRPC ops bind address (":50051")
//	-d string   PostgreSQL DSN
//	-p string   platform ("dev" or "prod")
//	-s string   access token HMAC secret
//	-k string   payment webhook API key
//	-t int      access token lifetime, seconds
//	-r int      refresh token lifetime, days
//	-f string   static file root
//	-l string   log level
//
// args is filtered first so that -c/-config and unknown flags are ignored.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-d", "-p", "-s", "-k", "-t", "-r", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to serve HTTP on")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "address and port to serve gRPC on")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Platform, "p", config.Platform, "platform (dev|prod)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.PolkaKey, "k", config.PolkaKey, "polka webhook api key")

	accessTTL := fs.Int("t", int(config.AccessTokenTTL/time.Second), "access token lifetime (in seconds)")
	refreshTTL := fs.Int("r", int(config.RefreshTokenTTL/(24*time.Hour)), "refresh token lifetime (in days)")

	fs.StringVar(&config.FileserverRoot, "f", config.FileserverRoot, "static file root")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Only touch durations when the flag was given, so sub-unit values from
	// files or the environment survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenTTL = time.Duration(*accessTTL) * time.Second
		case "r":
			config.RefreshTokenTTL = time.Duration(*refreshTTL) * 24 * time.Hour
		}
	})
	return nil
}
