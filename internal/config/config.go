package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mvc-kit/create-mvc-structure/internal/branding"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyPort           = "port"
	KeyPackageManager = "package_manager"
	KeySkipInstall    = "skip_install"
	KeyMinimal        = "minimal"
)

// Built-in defaults.
const (
	DefaultPort           = 3000
	DefaultPackageManager = "npm"
)

// Keys lists every setting understood by config get/set.
var Keys = []string{KeyPort, KeyPackageManager, KeySkipInstall, KeyMinimal}

// Dir returns the path to the config directory (~/.create-mvc/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.create-mvc/config.yaml).
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
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyPort, DefaultPort)
	viper.SetDefault(KeyPackageManager, DefaultPackageManager)
	viper.SetDefault(KeySkipInstall, false)
	viper.SetDefault(KeyMinimal, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// BindFlags binds command flags whose names match a setting key (with
// dashes in place of underscores) so an explicitly set flag wins.
func BindFlags(flags *pflag.FlagSet) error {
	for _, key := range Keys {
		f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", f.Name, err)
		}
	}
	return nil
}

// IsKnownKey reports whether key is a recognised setting.
func IsKnownKey(key string) bool {
	return slices.Contains(Keys, key)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Port returns the default port for generated projects. A value that is not
// an integer is an error naming that value.
func Port() (int, error) {
	raw := viper.Get(KeyPort)
	port, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", KeyPort, fmt.Sprint(raw), err)
	}
	return port, nil
}

// PackageManager returns the package manager used for the install step.
func PackageManager() string { return viper.GetString(KeyPackageManager) }

// SkipInstall reports whether the install step is disabled.
func SkipInstall() bool { return viper.GetBool(KeySkipInstall) }

// Minimal reports whether the dev auto-restart dependency is omitted.
func Minimal() bool { return viper.GetBool(KeyMinimal) }

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if key == KeyPort {
		if _, err := cast.ToIntE(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", KeyPort, value, err)
		}
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
