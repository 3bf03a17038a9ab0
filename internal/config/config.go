package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conflink-labs/conflink/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys understood by the link provider.
const (
	// KeyLinksEnabled toggles link resolution entirely. When false the
	// provider returns zero links for every document.
	KeyLinksEnabled = "links.enabled"

	// KeyPackageDirs names the directories searched during package-style
	// resolution (e.g., "node_modules"). Searched in slice order inside
	// each ancestor directory.
	KeyPackageDirs = "resolve.packageDirs"

	// KeyEntryFile is the config file looked up inside a package directory
	// when its manifest does not name an entry point.
	KeyEntryFile = "resolve.entryFile"
)

// Defaults returns the built-in value for every setting key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyLinksEnabled: true,
		KeyPackageDirs:  []string{"node_modules"},
		KeyEntryFile:    "conflink.json",
	}
}

// Dir returns the path to the Conflink config directory (~/.conflink/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.conflink/config.yaml).
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

	for key, value := range Defaults() {
		viper.SetDefault(key, value)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetStringSlice returns a string-slice config value by key.
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
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
