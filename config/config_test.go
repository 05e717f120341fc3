package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gardenbook.yaml")
	yml := "db_path: /data/garden.db\nexport_batch_size: 50\nlog_level: debug\nenable_liff: true\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		t.Fatalf("mergeFile: %v", err)
	}
	env := map[string]string{"EXPORT_BATCH_SIZE": "75", "PORT": "9090"}
	if err := cfg.mergeEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("mergeEnv: %v", err)
	}

	if cfg.DBPath != "/data/garden.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ExportBatchSize != 75 {
		t.Errorf("ExportBatchSize = %d, env should win over file", cfg.ExportBatchSize)
	}
	if cfg.Port != "9090" || cfg.LogLevel != "debug" || !cfg.EnableLIFF {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.ImportMaxBody != "50M" {
		t.Errorf("default lost: ImportMaxBody = %q", cfg.ImportMaxBody)
	}
}

func TestMergeEnvRejectsBadValues(t *testing.T) {
	cfg := Default()
	env := map[string]string{"EXPORT_BATCH_SIZE": "lots", "LOG_PRETTY": "maybe"}
	if err := cfg.mergeEnv(func(k string) string { return env[k] }); err == nil {
		t.Fatal("expected error for malformed values")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"defaults", func(*AppConfig) {}, false},
		{"empty db path", func(c *AppConfig) { c.DBPath = " " }, true},
		{"zero batch", func(c *AppConfig) { c.ExportBatchSize = 0 }, true},
		{"no auth", func(c *AppConfig) { c.EnableDevLogin = false }, true},
		{"jwt only", func(c *AppConfig) { c.EnableDevLogin = false; c.JWTSecret = "s" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRedacted(t *testing.T) {
	cfg := Default()
	cfg.JWTSecret = "hunter2"
	if got := cfg.Redacted().JWTSecret; got != "***" {
		t.Fatalf("Redacted().JWTSecret = %q", got)
	}
	if cfg.JWTSecret != "hunter2" {
		t.Fatal("Redacted modified the receiver")
	}
}
