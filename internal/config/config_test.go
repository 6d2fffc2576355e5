package config

import (
	"os"
	"testing"
)

func unsetConfigEnv() {
	_ = os.Unsetenv("BETTER_BITES_DB_DRIVER")
	_ = os.Unsetenv("BETTER_BITES_POSTGRES_DSN")
	_ = os.Unsetenv("BETTER_BITES_HTTP_PORT")
	_ = os.Unsetenv("BETTER_BITES_AUTH_MODE")
	_ = os.Unsetenv("BETTER_BITES_JWT_SECRET")
	_ = os.Unsetenv("BETTER_BITES_FOOD_CACHE_TTL_HOURS")
}

func TestConfigLoad_Defaults(t *testing.T) {
	unsetConfigEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 || cfg.AuthMode != "dev" || cfg.FoodCacheTTLHours != 24 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("expected auto driver to resolve to sqlite without DSN, got %s", cfg.DBDriver)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	unsetConfigEnv()
	_ = os.Setenv("BETTER_BITES_HTTP_PORT", "9191")
	defer unsetConfigEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9191 {
		t.Fatalf("port env override failed, got %d", cfg.HTTPPort)
	}
}

func TestResolveDefaults_PostgresFromDSN(t *testing.T) {
	unsetConfigEnv()
	_ = os.Setenv("BETTER_BITES_POSTGRES_DSN", "postgres://localhost:5432/bites")
	defer unsetConfigEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("expected auto driver to resolve to postgres with DSN, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaults_PostgresRequiresDSN(t *testing.T) {
	cfg := &Config{DBDriver: "postgres", AuthMode: "dev", FoodCacheTTLHours: 1}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error for postgres driver without DSN")
	}
}

func TestResolveDefaults_JWTRequiresSecret(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", AuthMode: "jwt", FoodCacheTTLHours: 1}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error for jwt auth without secret")
	}
}

func TestResolveDefaults_UnknownDriver(t *testing.T) {
	cfg := &Config{DBDriver: "oracle", AuthMode: "dev", FoodCacheTTLHours: 1}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
