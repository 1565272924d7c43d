// Package config provides configuration types and defaults for signup.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/tracing"
)

// Config holds all configuration options for signup.
type Config struct {
	// Locale is the BCP 47 tag used to collate last names in the records table.
	Locale  string         `mapstructure:"locale"`
	Debug   bool           `mapstructure:"debug"`
	LogFile string         `mapstructure:"log_file"`
	UI      UIConfig       `mapstructure:"ui"`
	Theme   ThemeConfig    `mapstructure:"theme"`
	Tracing tracing.Config `mapstructure:"tracing"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowTable         bool `mapstructure:"show_table"`          // Show the records table under the form
	CommentsMaxLength int  `mapstructure:"comments_max_length"` // Character limit of the comments input
}

// ThemeConfig holds colour overrides as hex strings. Empty keeps the built-in colour.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight" validate:"omitempty,hexcolor"`
	Subtle    string `mapstructure:"subtle" validate:"omitempty,hexcolor"`
	Error     string `mapstructure:"error" validate:"omitempty,hexcolor"`
	Success   string `mapstructure:"success" validate:"omitempty,hexcolor"`
}

// DefaultCommentsMaxLength is the character limit of the comments input.
const DefaultCommentsMaxLength = 100

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tr := tracing.DefaultConfig()
	tr.FilePath = DefaultTracesFilePath()

	return Config{
		Locale:  "en",
		Debug:   false,
		LogFile: "debug.log",
		UI: UIConfig{
			ShowTable:         true,
			CommentsMaxLength: DefaultCommentsMaxLength,
		},
		Theme: ThemeConfig{
			Highlight: "#54A0FF",
			Subtle:    "#696969",
			Error:     "#FF8787",
			Success:   "#73F59F",
		},
		Tracing: tr,
	}
}

// SetDefaults registers Defaults() with a viper instance.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("locale", d.Locale)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("ui.show_table", d.UI.ShowTable)
	v.SetDefault("ui.comments_max_length", d.UI.CommentsMaxLength)
	v.SetDefault("theme.highlight", d.Theme.Highlight)
	v.SetDefault("theme.subtle", d.Theme.Subtle)
	v.SetDefault("theme.error", d.Theme.Error)
	v.SetDefault("theme.success", d.Theme.Success)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Load reads a single config file on top of the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// LocaleTag parses Locale. An empty locale collates with the root locale.
func (c Config) LocaleTag() (language.Tag, error) {
	if c.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

var (
	validate = validator.New()
	trans    ut.Translator
)

func init() {
	// Report config keys, not Go field names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})

	english := en.New()
	trans, _ = ut.New(english, english).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Sprintf("registering validator translations: %v", err))
	}
}

// Validate checks the whole configuration.
func Validate(c Config) error {
	if _, err := c.LocaleTag(); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	if ui.CommentsMaxLength < 0 {
		return fmt.Errorf("ui.comments_max_length must not be negative, got %d", ui.CommentsMaxLength)
	}
	return nil
}

// ValidateTheme checks that every colour override is a hex colour.
func ValidateTheme(theme ThemeConfig) error {
	err := validate.Struct(theme)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("theme.%s, got %q", fe.Translate(trans), fe.Value())
	}
	return fmt.Errorf("validating theme: %w", err)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tr tracing.Config) error {
	if tr.SampleRate < 0.0 || tr.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tr.SampleRate)
	}

	if !tracing.ValidExporter(tr.Exporter) {
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tr.Exporter)
	}

	if tr.Enabled {
		if tr.Exporter == tracing.ExporterStdout {
			return fmt.Errorf("tracing.exporter \"stdout\" would draw over the terminal UI, use \"file\" or \"otlp\"")
		}
		if tr.Exporter == tracing.ExporterFile && tr.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tr.Exporter == tracing.ExporterOTLP && tr.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultTracesFilePath returns ~/.config/signup/traces/traces.jsonl,
// or an empty string if the home directory is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "signup", "traces", "traces.jsonl")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Signup Configuration

# Locale used to sort the records table by last name (BCP 47 tag)
locale: en

# Write debug logs to log_file (same as --debug or SIGNUP_DEBUG=1)
debug: false
log_file: debug.log

# UI settings
ui:
  show_table: true          # Show accepted registrations under the form
  comments_max_length: 100  # Character limit for the comments field

# Theme colours (hex). Edits are picked up while the app is running.
theme:
  highlight: "#54A0FF"
  subtle: "#696969"
  error: "#FF8787"
  success: "#73F59F"

# Tracing: one span per next/save/back action
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, otlp (default: file)
#   file_path: ~/.config/signup/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
