package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vango-dev/starter/internal/errors"
)

const (
	// ConfigName is the base name of the configuration file.
	ConfigName = "starter"

	// EnvPrefix prefixes environment variable overrides (STARTER_SERVER_PORT).
	EnvPrefix = "STARTER"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultStaticDir is the default static file directory.
	DefaultStaticDir = "static"

	// DefaultExportDir is the default export output directory.
	DefaultExportDir = "dist"

	// DefaultClientScript is where the built-in fragment client is served.
	DefaultClientScript = "/client.js"
)

// Config is the complete starter configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Render  RenderConfig  `mapstructure:"render"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Dev     DevConfig     `mapstructure:"dev"`
	Export  ExportConfig  `mapstructure:"export"`

	// configFile is the file the config was read from, if any.
	configFile string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	StaticDir       string        `mapstructure:"static_dir"`
	LiveReload      bool          `mapstructure:"live_reload"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RenderConfig contains document rendering settings.
type RenderConfig struct {
	// Lang is the default html lang attribute.
	Lang string `mapstructure:"lang"`

	// ClientScript is the script path appended to every page.
	ClientScript string `mapstructure:"client_script"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Format is text or json.
	Format string `mapstructure:"format"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DevConfig contains development watcher settings.
type DevConfig struct {
	// Watch lists directories watched for live reload.
	// Defaults to the static directory.
	Watch []string `mapstructure:"watch"`

	// Ignore lists glob patterns matched against file base names.
	Ignore []string `mapstructure:"ignore"`

	// Debounce coalesces bursts of file events.
	Debounce time.Duration `mapstructure:"debounce"`
}

// ExportConfig contains static export settings.
type ExportConfig struct {
	Dir string   `mapstructure:"dir"`
	S3  S3Config `mapstructure:"s3"`
}

// S3Config configures publishing exported pages to S3.
// Publishing is enabled when Bucket is set.
type S3Config struct {
	Bucket   string `mapstructure:"bucket"`
	Prefix   string `mapstructure:"prefix"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

// Option customizes the viper instance before the config is read.
type Option func(v *viper.Viper) error

// WithFlag binds a command-line flag to a config key. The flag wins over
// the file and environment only when it was set explicitly.
func WithFlag(key string, flag *pflag.Flag) Option {
	return func(v *viper.Viper) error {
		if flag == nil {
			return nil
		}
		return v.BindPFlag(key, flag)
	}
}

// WithValue sets a config key, overriding every other source.
func WithValue(key string, value any) Option {
	return func(v *viper.Viper) error {
		v.Set(key, value)
		return nil
	}
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.static_dir", DefaultStaticDir)
	v.SetDefault("server.live_reload", false)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("render.lang", "en")
	v.SetDefault("render.client_script", DefaultClientScript)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "starter")

	v.SetDefault("tracing.enabled", false)

	v.SetDefault("dev.watch", []string{})
	v.SetDefault("dev.ignore", []string{".*", "*~", "*.swp"})
	v.SetDefault("dev.debounce", 100*time.Millisecond)

	v.SetDefault("export.dir", DefaultExportDir)
	v.SetDefault("export.s3.bucket", "")
	v.SetDefault("export.s3.prefix", "")
	v.SetDefault("export.s3.region", "")
	v.SetDefault("export.s3.endpoint", "")
}

// Default returns the built-in configuration, ignoring files and the
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		// Defaults are static and valid.
		panic(err)
	}
	return cfg
}

// Load reads the configuration.
//
// If path is empty, starter.{yaml,json,toml} is looked up in the working
// directory and its absence is not an error. Environment variables with the
// STARTER_ prefix override the file, and options override both.
func Load(path string, opts ...Option) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !stderrors.As(err, &notFound) {
			return nil, errors.New("E202").WithDetail(path).Wrap(err)
		}
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, errors.New("E201").Wrap(err)
		}
	}
	return decode(v)
}

// decode unmarshals and validates the merged settings.
func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("E201").Wrap(err)
	}
	cfg.configFile = v.ConfigFileUsed()

	if len(cfg.Dev.Watch) == 0 {
		cfg.Dev.Watch = []string{cfg.Server.StaticDir}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFile returns the file the configuration was read from, or "".
func (c *Config) ConfigFile() string {
	return c.configFile
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

var (
	metricNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	langPattern       = regexp.MustCompile(`^[a-zA-Z]{2,8}(-[a-zA-Z0-9]{1,8})*$`)
)

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	// Port 0 asks the OS for a free port, which tests rely on.
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		add("server.port %d is not in range 0-65535", c.Server.Port)
	}
	if strings.ContainsAny(c.Server.Host, ";&|$`()<>\"'\\ ") {
		add("server.host %q contains invalid characters", c.Server.Host)
	}
	if c.Server.StaticDir == "" {
		add("server.static_dir must be set")
	} else if err := relativePath(c.Server.StaticDir); err != nil {
		add("server.static_dir: %v", err)
	}
	if c.Server.ShutdownTimeout < 0 {
		add("server.shutdown_timeout must not be negative")
	}

	if !langPattern.MatchString(c.Render.Lang) {
		add("render.lang %q is not a language tag", c.Render.Lang)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		add("log.level: %v", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		add("log.format %q must be text or json", c.Log.Format)
	}

	if c.Metrics.Enabled && !metricNamePattern.MatchString(c.Metrics.Namespace) {
		add("metrics.namespace %q is not a valid metric name", c.Metrics.Namespace)
	}

	if c.Dev.Debounce < 0 {
		add("dev.debounce must not be negative")
	}
	for _, pattern := range c.Dev.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			add("dev.ignore pattern %q: %v", pattern, err)
		}
	}

	if c.Export.Dir == "" {
		add("export.dir must be set")
	}
	if s3 := c.Export.S3; s3.Bucket != "" {
		if s3.Region == "" {
			add("export.s3.region is required when export.s3.bucket is set")
		}
		if strings.HasPrefix(s3.Prefix, "/") {
			add("export.s3.prefix %q must not start with /", s3.Prefix)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("E201").WithDetail(strings.Join(problems, "; "))
}

// relativePath rejects absolute paths and paths escaping the project.
func relativePath(p string) error {
	clean := filepath.Clean(p)
	if filepath.IsAbs(clean) {
		return fmt.Errorf("%q should be a relative path", p)
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%q escapes the project directory", p)
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, err
	}
	return level, nil
}

// NewLogger builds the slog logger described by the config, writing to w.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
