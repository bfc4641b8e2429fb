package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agentx-labs/create-my-app/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyPackageManager    = "package_manager"
	KeyScaffoldTool      = "scaffold_tool"
	KeyRouter            = "router"
	KeyStepTimeout       = "step_timeout"
	KeyMinManagerVersion = "min_package_manager_version"
)

// Defaults applied when nothing else sets a key.
const (
	DefaultPackageManager    = "npm"
	DefaultScaffoldTool      = "vite@latest"
	DefaultRouter            = "config-object"
	DefaultStepTimeout       = 10 * time.Minute
	DefaultMinManagerVersion = "" // empty: the package manager's built-in constraint
)

// Settings is the resolved view of every key the pipeline consumes.
type Settings struct {
	PackageManager    string
	ScaffoldTool      string
	Router            string
	StepTimeout       time.Duration
	MinManagerVersion string
}

// Dir returns the path to the config directory (~/.create-my-app/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetDefault(KeyPackageManager, DefaultPackageManager)
	viper.SetDefault(KeyScaffoldTool, DefaultScaffoldTool)
	viper.SetDefault(KeyRouter, DefaultRouter)
	viper.SetDefault(KeyStepTimeout, DefaultStepTimeout.String())
	viper.SetDefault(KeyMinManagerVersion, DefaultMinManagerVersion)

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the resolved settings. Load must have been called.
func Current() (*Settings, error) {
	timeout, err := parseTimeout(viper.GetString(KeyStepTimeout))
	if err != nil {
		return nil, err
	}
	s := &Settings{
		PackageManager:    viper.GetString(KeyPackageManager),
		ScaffoldTool:      viper.GetString(KeyScaffoldTool),
		Router:            viper.GetString(KeyRouter),
		StepTimeout:       timeout,
		MinManagerVersion: viper.GetString(KeyMinManagerVersion),
	}
	if s.PackageManager == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyPackageManager)
	}
	if s.ScaffoldTool == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyScaffoldTool)
	}
	return s, nil
}

// parseTimeout accepts a Go duration string; "0" or "" disables the timeout.
func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" || raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", KeyStepTimeout, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", KeyStepTimeout, raw)
	}
	return d, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file. Only keys
// already in the file plus key are written, so defaults stay defaults.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
