package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/preciouskorir/voting-system/auth"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	RedisURL          string
	CandidateCacheTTL time.Duration
	StaticDir         string
	Seed              bool
	IPHashSalt        string
	IPHashSaltRandom  bool // IPHashSalt was generated for this process
	LogLevel          string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("voting-system", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL for the candidate cache (optional)")
	cacheTTL := fs.String("cache-ttl", "", "Candidate list cache TTL, 0 disables")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory served as the front-end")
	seed := fs.String("seed", "", "Seed voters and candidates into empty tables (true/false)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "Salt for hashing client IPs in logs (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:voting_system.db"
	}

	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}

	if *cacheTTL == "" {
		*cacheTTL = os.Getenv("CANDIDATE_CACHE_TTL")
	}
	cfg.CandidateCacheTTL = 5 * time.Minute
	if *cacheTTL != "" {
		ttl, err := time.ParseDuration(*cacheTTL)
		if err != nil || ttl < 0 {
			return Config{}, errors.New("invalid candidate cache TTL")
		}
		cfg.CandidateCacheTTL = ttl
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
		if cfg.StaticDir == "" {
			cfg.StaticDir = "public"
		}
	}

	if *seed == "" {
		*seed = os.Getenv("SEED")
	}
	cfg.Seed = true
	if *seed != "" {
		v, err := strconv.ParseBool(*seed)
		if err != nil {
			return Config{}, errors.New("invalid SEED value")
		}
		cfg.Seed = v
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		// Hashes stay unguessable but are not comparable across restarts
		salt, err := auth.GenerateSalt(32)
		if err != nil {
			return Config{}, err
		}
		cfg.IPHashSalt = salt
		cfg.IPHashSaltRandom = true
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, errors.New("log level must be debug, info, warn or error")
	}

	return cfg, nil
}

// SlogLevel converts LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}
