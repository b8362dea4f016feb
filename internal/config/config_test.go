package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFiles_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("GRPC_ADDR", "")
	t.Setenv("RKN_API_BASE_URL", "")
	t.Setenv("BLOCKLIST_FILE", "")
	t.Setenv("UPDATE_INTERVAL", "")

	cfg, err := LoadFiles()
	if err != nil {
		t.Fatalf("LoadFiles error: %v", err)
	}
	if cfg.HTTPAddr != ":80" || cfg.GRPCAddr != ":9090" {
		t.Errorf("addrs = %q %q", cfg.HTTPAddr, cfg.GRPCAddr)
	}
	if cfg.UpdateInterval != 6*time.Hour {
		t.Errorf("UpdateInterval = %s, want 6h", cfg.UpdateInterval)
	}
	if cfg.RKNAPIBaseURL == "" {
		t.Errorf("expected default RKN_API_BASE_URL")
	}
}

func TestLoadFiles_UpdateInterval(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "1h", wantErr: false},
		{value: "48h", wantErr: false},
		{value: "59m", wantErr: true},
		{value: "49h", wantErr: true},
		{value: "often", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("UPDATE_INTERVAL", tt.value)
			_, err := LoadFiles()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFiles() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFiles_DotEnv(t *testing.T) {
	// godotenv never overrides a variable that is present, even when empty.
	t.Setenv("BLOCKLIST_FILE", "")
	os.Unsetenv("BLOCKLIST_FILE")
	t.Setenv("GRPC_ADDR", "127.0.0.1:7000")

	path := filepath.Join(t.TempDir(), ".env")
	data := "BLOCKLIST_FILE=/etc/blocklist.txt\nGRPC_ADDR=:1\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := LoadFiles(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFiles error: %v", err)
	}
	if cfg.BlocklistFile != "/etc/blocklist.txt" {
		t.Errorf("BlocklistFile = %q, want value from .env", cfg.BlocklistFile)
	}
	if cfg.GRPCAddr != "127.0.0.1:7000" {
		t.Errorf("GRPCAddr = %q, environment must win over .env", cfg.GRPCAddr)
	}
}
