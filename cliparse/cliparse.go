package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port               int
	DatabaseURL        string
	DatabaseType       string
	CORSOrigin         string
	IdentitySalt       string
	Deadline           time.Time
	SimulationEnabled  bool
	SimulationInterval time.Duration
}

// ParseFlags validates flags with environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var deadlineStr string

	fs := flag.NewFlagSet("live-tally", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", "", "Allowed CORS origin")

	// Election config
	fs.StringVar(&deadlineStr, "deadline", "", "Election deadline (RFC3339; default next 17:00 Dhaka)")
	fs.BoolVar(&cfg.SimulationEnabled, "simulate", false, "Enable the demo simulation driver")
	fs.DurationVar(&cfg.SimulationInterval, "sim-interval", 0, "Simulation tick interval")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IdentitySalt, "identity-salt", "", "Salt for IP-derived identities (prefer env)")

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
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = os.Getenv("CORS_ORIGIN")
		if cfg.CORSOrigin == "" {
			cfg.CORSOrigin = "http://localhost:5173"
		}
	}

	if deadlineStr == "" {
		deadlineStr = os.Getenv("ELECTION_DEADLINE")
	}
	if deadlineStr != "" {
		deadline, err := time.Parse(time.RFC3339, deadlineStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid election deadline %q: %w", deadlineStr, err)
		}
		cfg.Deadline = deadline
	}

	if !cfg.SimulationEnabled {
		cfg.SimulationEnabled = os.Getenv("ENABLE_SIMULATION") == "true"
	}
	if cfg.SimulationInterval == 0 {
		if intervalStr := os.Getenv("SIMULATION_INTERVAL"); intervalStr != "" {
			interval, err := time.ParseDuration(intervalStr)
			if err != nil {
				return Config{}, errors.New("invalid SIMULATION_INTERVAL env variable")
			}
			cfg.SimulationInterval = interval
		} else {
			cfg.SimulationInterval = 5 * time.Second
		}
	}

	// Secrets - MUST be provided
	if cfg.IdentitySalt == "" {
		cfg.IdentitySalt = os.Getenv("IDENTITY_SALT")
	}
	if cfg.IdentitySalt == "" {
		return Config{}, errors.New("IDENTITY_SALT required")
	}

	return cfg, nil
}
