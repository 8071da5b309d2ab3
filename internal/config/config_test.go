package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected default http addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.Discovery.MaxDistanceKM != 20 {
		t.Fatalf("expected default max distance 20, got %v", cfg.Discovery.MaxDistanceKM)
	}
	if len(cfg.Geo.Cities) == 0 {
		t.Fatal("expected default cities to be populated")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := `
env: prod
http:
  addr: ":9090"
  read_timeout: 2s
discovery:
  max_distance_km: 35
geo:
  cities:
    - name: "Paris"
      lat: 48.8566
      lon: 2.3522
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "prod" {
		t.Fatalf("expected env prod, got %q", cfg.Env)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("expected addr :9090, got %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ReadTimeout != 2*time.Second {
		t.Fatalf("expected read timeout 2s, got %v", cfg.HTTP.ReadTimeout)
	}
	if cfg.Discovery.MaxDistanceKM != 35 {
		t.Fatalf("expected max distance 35, got %v", cfg.Discovery.MaxDistanceKM)
	}
	if len(cfg.Geo.Cities) != 1 || cfg.Geo.Cities[0].Name != "Paris" {
		t.Fatalf("expected single Paris city, got %+v", cfg.Geo.Cities)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected defaults on missing file, got addr %q", cfg.HTTP.Addr)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("DISCOVERY_MAX_DISTANCE_KM", "12.5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("expected addr :7070, got %q", cfg.HTTP.Addr)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected log level warn, got %q", cfg.Log.Level)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("expected redis db 3, got %d", cfg.Redis.DB)
	}
	if cfg.Auth.JWTAccessTTL != 30*time.Minute {
		t.Fatalf("expected access ttl 30m, got %v", cfg.Auth.JWTAccessTTL)
	}
	if cfg.Discovery.MaxDistanceKM != 12.5 {
		t.Fatalf("expected max distance 12.5, got %v", cfg.Discovery.MaxDistanceKM)
	}
}

func TestEnvOverrideInvalidValue(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for invalid REDIS_DB")
	}
}
