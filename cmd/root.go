package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/signup/internal/app"
	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/tracing"
	"github.com/zjrosen/signup/internal/ui/styles"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, otherwise
	// the OSC 11 reply can leak into the first focused input.
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".signup/config.yaml"

var (
	version  = "dev"
	cfgFile  string
	cfg      config.Config
	cfgPath  string
	cfgError error
)

var rootCmd = &cobra.Command{
	Use:     "signup",
	Short:   "A two-step registration form for the terminal",
	Long:    `signup collects a user's name and academic email, then a password, date of birth, gender and comments, and lists every accepted registration sorted by last name.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .signup/config.yaml, then ~/.config/signup/config.yaml)")
	rootCmd.Flags().Bool("debug", false, "write debug logs to the configured log file")
	rootCmd.Flags().String("locale", "", "locale used to sort last names, e.g. en or he-IL")

	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("locale", rootCmd.Flags().Lookup("locale"))
	_ = viper.BindEnv("debug", "SIGNUP_DEBUG")
}

func initConfig() {
	cfg, cfgPath, cfgError = loadConfig(viper.GetViper(), cfgFile)
}

// loadConfig resolves the config file and decodes it over the defaults.
// Lookup order without an explicit file:
//  1. .signup/config.yaml (current directory)
//  2. ~/.config/signup/config.yaml (user config)
//
// When neither exists a commented default is written to the first location.
func loadConfig(v *viper.Viper, explicit string) (config.Config, string, error) {
	config.SetDefaults(v)

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(localConfigPath):
		v.SetConfigFile(localConfigPath)
	default:
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "signup"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
			v.SetConfigFile(localConfigPath)
			_ = v.ReadInConfig()
		}
		// Without a file we still run on the defaults.
	}

	var out config.Config
	if err := v.Unmarshal(&out); err != nil {
		return config.Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	return out, v.ConfigFileUsed(), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func runApp(_ *cobra.Command, _ []string) error {
	if cfgError != nil {
		return cfgError
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		cleanup, err := log.Init(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("enabling debug log: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "starting", "version", version, "config", cfgPath, "locale", cfg.Locale)
	}

	if err := styles.ApplyTheme(styles.Theme{
		Highlight: cfg.Theme.Highlight,
		Subtle:    cfg.Theme.Subtle,
		Error:     cfg.Theme.Error,
		Success:   cfg.Theme.Success,
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown", err)
		}
	}()

	wizard, err := newWizard(cfg, provider)
	if err != nil {
		return err
	}

	zone.NewGlobal()
	model := app.New(wizard, cfg, cfgPath)
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newWizard builds the store and wizard for one session.
func newWizard(c config.Config, provider *tracing.Provider) (*registration.Wizard, error) {
	tag, err := c.LocaleTag()
	if err != nil {
		return nil, err
	}
	store := registration.NewStore(tag)
	return registration.NewWizard(store, registration.WithTracer(provider.Tracer())), nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
