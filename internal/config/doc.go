// Package config manages persistent user settings stored at
// ~/.conflink/config.yaml, layered under CONFLINK_* environment variables
// via Viper. It also defines the setting keys and defaults consumed by the
// link provider.
package config
