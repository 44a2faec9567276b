package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Unsetenv("STAYHUB_HTTP_PORT")
	_ = os.Unsetenv("STAYHUB_ENVIRONMENT")
	_ = os.Unsetenv("STAYHUB_LOG_LEVEL")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 || cfg.Environment != EnvDevelopment || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.GetHTTPAddr() != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.GetHTTPAddr())
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("STAYHUB_HTTP_PORT", "9999")
	defer func() { _ = os.Unsetenv("STAYHUB_HTTP_PORT") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9999 {
		t.Fatalf("port env override failed, got %d", cfg.HTTPPort)
	}
}

func TestConfigLoad_RejectsUnknownEnvironment(t *testing.T) {
	_ = os.Setenv("STAYHUB_ENVIRONMENT", "staging")
	defer func() { _ = os.Unsetenv("STAYHUB_ENVIRONMENT") }()

	if _, err := New(); err == nil {
		t.Fatalf("expected error for unsupported environment")
	}
}

func TestConfigValidate_RejectsBadPort(t *testing.T) {
	cfg := NewForTesting()
	cfg.HTTPPort = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for invalid port")
	}
}

func TestNewForTesting(t *testing.T) {
	cfg := NewForTesting()
	if !cfg.IsTesting() || cfg.IsProduction() {
		t.Fatalf("testing config misreports environment: %+v", cfg)
	}
}
