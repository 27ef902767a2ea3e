// Package config handles resolving configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/stolasapp/elemental/pkg/attr"
)

// Config is the elemental configuration.
type Config struct {
	LogLevel string   `mapstructure:"log_level"`
	DevMode  bool     `mapstructure:"dev_mode"`
	Document Document `mapstructure:"document"`
	Preview  Preview  `mapstructure:"preview"`
	Render   Render   `mapstructure:"render"`
}

// Document holds the settings applied to every rendered page.
type Document struct {
	Lang        string   `mapstructure:"lang"`
	Dir         string   `mapstructure:"dir"`
	Charset     string   `mapstructure:"charset"`
	Viewport    string   `mapstructure:"viewport"`
	TitleSuffix string   `mapstructure:"title_suffix"`
	Description string   `mapstructure:"description"`
	Stylesheets []string `mapstructure:"stylesheets"`
	BaseHref    string   `mapstructure:"base_href"`
	BaseTarget  string   `mapstructure:"base_target"`
	// ThemeColor is a #rrggbb color for the browser UI. ThemeColorDark
	// overrides its dark scheme variant, which is otherwise derived.
	ThemeColor     string `mapstructure:"theme_color"`
	ThemeColorDark string `mapstructure:"theme_color_dark"`
}

// Preview configures the preview server.
type Preview struct {
	Address string `mapstructure:"address"`
	// ReadTimeout bounds reading a request, headers included.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout bounds rendering and writing one response.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// ShutdownTimeout is how long in-flight requests may finish once the
	// server is stopped.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Render configures batch rendering.
type Render struct {
	// Concurrency bounds the number of files rendered at once.
	Concurrency int `mapstructure:"concurrency"`
}

// DefaultPath is the configuration file location used when none is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "elemental.yaml")
}

// Default returns the configuration with all default values populated.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Document: Document{
			Lang:     "en",
			Charset:  "utf-8",
			Viewport: "width=device-width, initial-scale=1",
		},
		Preview: Preview{
			Address:         "localhost:9999",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Render: Render{
			Concurrency: runtime.GOMAXPROCS(0),
		},
	}
}

// Load loads a YAML configuration file from a path, merges it with defaults,
// and validates it.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := viper.New()
	setDefaults(v, Default())
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("dev_mode", cfg.DevMode)
	v.SetDefault("document.lang", cfg.Document.Lang)
	v.SetDefault("document.dir", cfg.Document.Dir)
	v.SetDefault("document.charset", cfg.Document.Charset)
	v.SetDefault("document.viewport", cfg.Document.Viewport)
	v.SetDefault("document.title_suffix", cfg.Document.TitleSuffix)
	v.SetDefault("document.description", cfg.Document.Description)
	v.SetDefault("document.stylesheets", cfg.Document.Stylesheets)
	v.SetDefault("document.base_href", cfg.Document.BaseHref)
	v.SetDefault("document.base_target", cfg.Document.BaseTarget)
	v.SetDefault("document.theme_color", cfg.Document.ThemeColor)
	v.SetDefault("document.theme_color_dark", cfg.Document.ThemeColorDark)
	v.SetDefault("preview.address", cfg.Preview.Address)
	v.SetDefault("preview.read_timeout", cfg.Preview.ReadTimeout)
	v.SetDefault("preview.write_timeout", cfg.Preview.WriteTimeout)
	v.SetDefault("preview.shutdown_timeout", cfg.Preview.ShutdownTimeout)
	v.SetDefault("render.concurrency", cfg.Render.Concurrency)
}

// Validate checks the configuration for completeness and well-formed values.
func (c *Config) Validate() error {
	var errs []error
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Document.Parse(); err != nil {
		errs = append(errs, err)
	}
	for name, d := range map[string]time.Duration{
		"preview.read_timeout":     c.Preview.ReadTimeout,
		"preview.write_timeout":    c.Preview.WriteTimeout,
		"preview.shutdown_timeout": c.Preview.ShutdownTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	if c.Render.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("render.concurrency must be positive, got %d", c.Render.Concurrency))
	}
	return errors.Join(errs...)
}

// ParseLogLevel parses one of debug, info, warn, or error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log_level %q", s)
	}
}

// DocumentAttrs are the document settings as attribute values.
type DocumentAttrs struct {
	Lang        attr.Lang
	Dir         attr.Dir
	Charset     attr.Charset
	Stylesheets []attr.URL
	BaseHref    attr.URL
	BaseTarget  attr.Target
	ThemeColor  attr.Color
}

// Parse converts the document settings into attribute values. Empty settings
// stay absent.
func (d Document) Parse() (DocumentAttrs, error) {
	var (
		out  DocumentAttrs
		errs []error
		err  error
	)
	if d.Lang != "" {
		out.Lang, err = attr.ParseLang("document.lang", d.Lang)
		errs = append(errs, err)
	}
	if d.Dir != "" {
		out.Dir, err = attr.ParseDir(d.Dir)
		errs = append(errs, err)
	}
	if d.Charset != "" {
		out.Charset, err = attr.ParseCharset(d.Charset)
		errs = append(errs, err)
	}
	for _, href := range d.Stylesheets {
		var u attr.URL
		u, err = attr.ParseURL("document.stylesheets", href)
		errs = append(errs, err)
		out.Stylesheets = append(out.Stylesheets, u)
	}
	if d.BaseHref != "" {
		out.BaseHref, err = attr.ParseURL("document.base_href", d.BaseHref)
		errs = append(errs, err)
	}
	if d.BaseTarget != "" {
		out.BaseTarget, err = attr.ParseTarget(d.BaseTarget)
		errs = append(errs, err)
	}
	if d.ThemeColor != "" {
		out.ThemeColor, err = attr.ParseColor("document.theme_color", d.ThemeColor)
		errs = append(errs, err)
	}
	var dark attr.Color
	if d.ThemeColorDark != "" {
		if d.ThemeColor == "" {
			errs = append(errs, errors.New("document.theme_color_dark requires document.theme_color"))
		}
		dark, err = attr.ParseColor("document.theme_color_dark", d.ThemeColorDark)
		errs = append(errs, err)
	}
	out.ThemeColor = attr.LightDark(out.ThemeColor, dark)
	if err := errors.Join(errs...); err != nil {
		return DocumentAttrs{}, err
	}
	return out, nil
}
