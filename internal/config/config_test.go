package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/vango-dev/reactkit/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.Inspect.Addr != DefaultInspectAddr {
		t.Errorf("Inspect.Addr = %q, want %q", cfg.Inspect.Addr, DefaultInspectAddr)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q, want %q", cfg.Metrics.Namespace, DefaultNamespace)
	}
	if cfg.Snapshot.Driver != DriverFile || cfg.Snapshot.Path != DefaultSnapshotDir {
		t.Errorf("Snapshot = %+v, want file driver at %q", cfg.Snapshot, DefaultSnapshotDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	assertCode(t, err, "C001")

	configJSON := `{
  "logLevel": "DEBUG",
  "debug": {"logTriggers": true},
  "inspect": {"addr": "0.0.0.0:9000", "allowOrigins": ["http://a.test"]},
  "snapshot": {"driver": "bolt"}
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvInspectAddr, "")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &Config{
		LogLevel: "debug",
		Debug:    DebugConfig{LogTriggers: true},
		Inspect:  InspectConfig{Addr: "0.0.0.0:9000", AllowOrigins: []string{"http://a.test"}},
		Metrics:  MetricsConfig{Namespace: DefaultNamespace},
		Snapshot: SnapshotConfig{Driver: DriverBolt, Path: DefaultBoltPath, Codec: "json"},
	}
	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), tmpDir)
	}
	if got := cfg.SnapshotPath(); got != filepath.Join(tmpDir, DefaultBoltPath) {
		t.Errorf("SnapshotPath() = %q", got)
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configYAML := `logLevel: warn
legacyWrapMarker: true
snapshot:
  driver: s3
  bucket: states
  region: eu-west-1
  codec: yaml
`
	if err := os.WriteFile(filepath.Join(tmpDir, YAMLConfigFileName), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvInspectAddr, "")

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.LegacyWrapMarker || cfg.LogLevel != "warn" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Snapshot.Prefix != DefaultS3Prefix {
		t.Errorf("Snapshot.Prefix = %q, want %q", cfg.Snapshot.Prefix, DefaultS3Prefix)
	}
	if cfg.Snapshot.Path != "" {
		t.Errorf("Snapshot.Path = %q, want empty for s3", cfg.Snapshot.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("SlogLevel() = %v", cfg.SlogLevel())
	}
}

func TestLoadInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	assertCode(t, err, "C002")
}

func TestEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(path, []byte(`{"logLevel":"info"}`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogLevel, "Error")
	t.Setenv(EnvInspectAddr, ":8081")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
	if cfg.Inspect.Addr != ":8081" {
		t.Errorf("Inspect.Addr = %q, want :8081", cfg.Inspect.Addr)
	}
}

func TestApplyEnvIgnoresEmpty(t *testing.T) {
	cfg := New()
	cfg.ApplyEnv(func(string) (string, bool) { return "", true })
	if cfg.LogLevel != DefaultLogLevel || cfg.Inspect.Addr != DefaultInspectAddr {
		t.Errorf("empty overrides changed config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "C003"},
		{"bad addr", func(c *Config) { c.Inspect.Addr = "nocolon" }, "C005"},
		{"bad driver", func(c *Config) { c.Snapshot.Driver = "redis" }, "C004"},
		{"bad codec", func(c *Config) { c.Snapshot.Codec = "toml" }, "C004"},
		{"s3 without bucket", func(c *Config) { c.Snapshot.Driver = DriverS3 }, "C004"},
		{"file without path", func(c *Config) { c.Snapshot.Path = "" }, "C004"},
		{"memory without path", func(c *Config) { c.Snapshot.Driver, c.Snapshot.Path = DriverMemory, "" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			assertCode(t, err, tt.code)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvInspectAddr, "")

	for _, name := range []string{ConfigFileName, YAMLConfigFileName} {
		t.Run(name, func(t *testing.T) {
			cfg := New()
			cfg.Debug.LogTriggers = true
			cfg.Inspect.AllowOrigins = []string{"http://x.test"}

			path := filepath.Join(tmpDir, name)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo: %v", err)
			}
			if cfg.Path() != path {
				t.Errorf("Path() = %q, want %q", cfg.Path(), path)
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if diff := cmp.Diff(cfg, loaded, cmpopts.IgnoreUnexported(Config{})); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveWithoutPath(t *testing.T) {
	err := New().Save()
	if err == nil || !strings.Contains(err.Error(), "no config path") {
		t.Errorf("Save() = %v, want no config path error", err)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for level, want := range tests {
		cfg := &Config{LogLevel: level}
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error = %v, want *errors.Error with code %s", err, code)
	}
	if e.Code != code {
		t.Errorf("code = %s, want %s", e.Code, code)
	}
}
