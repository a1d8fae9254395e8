package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/reactkit/internal/errors"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "reactkit.json"

	// YAMLConfigFileName is the name of the YAML configuration file.
	YAMLConfigFileName = "reactkit.yaml"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultInspectAddr is the default inspector listen address.
	DefaultInspectAddr = "localhost:7070"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "reactkit"

	// DefaultSnapshotDir is the default directory of the file snapshot store.
	DefaultSnapshotDir = ".reactkit/snapshots"

	// DefaultBoltPath is the default database of the bolt snapshot store.
	DefaultBoltPath = ".reactkit/snapshots.db"

	// DefaultS3Prefix is the default key prefix of the S3 snapshot store.
	DefaultS3Prefix = "reactkit/"
)

// Environment variables that override file settings.
const (
	EnvLogLevel    = "REACTKIT_LOG_LEVEL"
	EnvInspectAddr = "REACTKIT_INSPECT_ADDR"
)

// Snapshot drivers.
const (
	DriverFile = "file"
	DriverBolt = "bolt"
	DriverS3   = "s3"

	// DriverMemory keeps snapshots for the lifetime of the process.
	DriverMemory = "memory"
)

var (
	logLevels = []string{"debug", "info", "warn", "error"}
	drivers   = []string{DriverFile, DriverBolt, DriverS3, DriverMemory}
	codecs    = []string{"json", "yaml", "yml"}
)

// Config represents the complete reactkit configuration.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// LegacyWrapMarker limits every container to one nested wrapper.
	LegacyWrapMarker bool `json:"legacyWrapMarker,omitempty" yaml:"legacyWrapMarker,omitempty"`

	// Debug contains engine tracing switches.
	Debug DebugConfig `json:"debug,omitempty" yaml:"debug,omitempty"`

	// Inspect contains inspector server settings.
	Inspect InspectConfig `json:"inspect,omitempty" yaml:"inspect,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// Snapshot contains persistence settings.
	Snapshot SnapshotConfig `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DebugConfig contains engine tracing switches.
type DebugConfig struct {
	// LogTriggers logs every define, trigger and recompute at debug level.
	LogTriggers bool `json:"logTriggers,omitempty" yaml:"logTriggers,omitempty"`
}

// InspectConfig contains inspector server settings.
type InspectConfig struct {
	// Addr is the host:port the inspector listens on.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`

	// AllowOrigins lists the origins allowed to open the change stream.
	// An empty list allows same-origin requests only.
	AllowOrigins []string `json:"allowOrigins,omitempty" yaml:"allowOrigins,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// SnapshotConfig selects and configures the snapshot store.
type SnapshotConfig struct {
	// Driver is file, bolt, s3 or memory.
	Driver string `json:"driver,omitempty" yaml:"driver,omitempty"`

	// Path is the snapshot directory (file) or database file (bolt).
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	Bucket   string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Codec is json or yaml.
	Codec string `json:"codec,omitempty" yaml:"codec,omitempty"`
}

// New creates a config holding the defaults.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads reactkit.json or, failing that, reactkit.yaml from dir.
func Load(dir string) (*Config, error) {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName, "reactkit.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("C001").
		WithDetail("No reactkit.json or reactkit.yaml found in " + dir).
		WithSuggestion("Create reactkit.json or pass --config")
}

// LoadFile reads a configuration file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON. Defaults are applied after
// decoding and environment overrides last.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C001").
				WithDetail("No config file at " + path)
		}
		return nil, errors.New("C002").Wrap(err)
	}

	cfg := &Config{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("C002").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	cfg.ApplyEnv(os.LookupEnv)

	return cfg, nil
}

// Save writes the config back to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the config to path in the format its extension selects.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("C002").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("C002").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// ApplyEnv overrides settings from the environment through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvInspectAddr); ok && v != "" {
		c.Inspect.Addr = v
	}
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if c.Inspect.Addr == "" {
		c.Inspect.Addr = DefaultInspectAddr
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}

	if c.Snapshot.Driver == "" {
		c.Snapshot.Driver = DriverFile
	}
	if c.Snapshot.Codec == "" {
		c.Snapshot.Codec = "json"
	}
	if c.Snapshot.Path == "" {
		switch c.Snapshot.Driver {
		case DriverFile:
			c.Snapshot.Path = DefaultSnapshotDir
		case DriverBolt:
			c.Snapshot.Path = DefaultBoltPath
		}
	}
	if c.Snapshot.Driver == DriverS3 && c.Snapshot.Prefix == "" {
		c.Snapshot.Prefix = DefaultS3Prefix
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return errors.New("C003").
			WithDetail("Got log level " + c.LogLevel)
	}

	if _, _, err := net.SplitHostPort(c.Inspect.Addr); err != nil {
		return errors.New("C005").
			WithDetail("Got " + c.Inspect.Addr).
			Wrap(err)
	}

	s := c.Snapshot
	switch {
	case !slices.Contains(drivers, s.Driver):
		return errors.New("C004").
			WithDetail("Unknown snapshot driver " + s.Driver).
			WithSuggestion("Use one of file, bolt, s3 or memory")
	case !slices.Contains(codecs, s.Codec):
		return errors.New("C004").
			WithDetail("Unknown snapshot codec " + s.Codec).
			WithSuggestion("Use json or yaml")
	case s.Driver == DriverS3 && s.Bucket == "":
		return errors.New("C004").
			WithDetail("The s3 driver needs snapshot.bucket")
	case (s.Driver == DriverFile || s.Driver == DriverBolt) && s.Path == "":
		return errors.New("C004").
			WithDetail("The " + s.Driver + " driver needs snapshot.path")
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level. Unknown levels map to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// SnapshotPath returns the snapshot path resolved against the config
// directory.
func (c *Config) SnapshotPath() string {
	path := c.Snapshot.Path
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
