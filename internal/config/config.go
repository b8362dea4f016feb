package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	GRPCAddr      string
	RKNAPIBaseURL string
	// BlocklistFile, when set, replaces the registry API as the source.
	BlocklistFile  string
	UpdateInterval time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the configuration from the environment. Values from a .env file
// in the working directory are applied first without overriding variables
// that are already set.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files; missing files are ignored.
func LoadFiles(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":80"),
		GRPCAddr:      getenv("GRPC_ADDR", ":9090"),
		RKNAPIBaseURL: getenv("RKN_API_BASE_URL", "https://reestr.rublacklist.net/api/v3"),
		BlocklistFile: os.Getenv("BLOCKLIST_FILE"),
	}

	intervalStr := getenv("UPDATE_INTERVAL", "6h")
	d, err := time.ParseDuration(intervalStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid UPDATE_INTERVAL=%q: %w", intervalStr, err)
	}
	if d < time.Hour {
		return Config{}, fmt.Errorf("UPDATE_INTERVAL too small (%s), must be >=1h", d)
	}
	if d > 48*time.Hour {
		return Config{}, fmt.Errorf("UPDATE_INTERVAL too large (%s), must be <=48h", d)
	}
	cfg.UpdateInterval = d

	if cfg.BlocklistFile == "" && cfg.RKNAPIBaseURL == "" {
		return Config{}, fmt.Errorf("RKN_API_BASE_URL must not be empty")
	}

	return cfg, nil
}
