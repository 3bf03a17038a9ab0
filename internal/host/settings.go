package host

import (
	"github.com/spf13/viper"

	"github.com/conflink-labs/conflink/internal/config"
)

// Settings is an isolated settings surface seeded with the tool defaults.
// Each Host carries its own instance so tests and embedders never share
// state through the global Viper.
type Settings struct {
	v *viper.Viper
}

// NewSettings returns a settings surface with every key at its default.
func NewSettings() *Settings {
	v := viper.New()
	for key, value := range config.Defaults() {
		v.SetDefault(key, value)
	}
	return &Settings{v: v}
}

// Get returns the current value for a key.
func (s *Settings) Get(key string) interface{} {
	return s.v.Get(key)
}

// GetBool returns the current boolean value for a key.
func (s *Settings) GetBool(key string) bool {
	return s.v.GetBool(key)
}

// GetString returns the current string value for a key.
func (s *Settings) GetString(key string) string {
	return s.v.GetString(key)
}

// GetStringSlice returns the current string-slice value for a key.
func (s *Settings) GetStringSlice(key string) []string {
	return s.v.GetStringSlice(key)
}

// Update sets a single key.
func (s *Settings) Update(key string, value interface{}) {
	s.v.Set(key, value)
}

// Apply sets several keys at once and returns a snapshot of the values each
// key held beforehand. Restoring the snapshot puts back exactly what was
// read, including defaults that had never been overridden.
func (s *Settings) Apply(values map[string]interface{}) *Snapshot {
	snap := &Snapshot{settings: s, previous: make(map[string]interface{}, len(values))}
	for key, value := range values {
		snap.previous[key] = s.v.Get(key)
		s.v.Set(key, value)
	}
	return snap
}

// Snapshot remembers the prior value of every key an Apply touched.
type Snapshot struct {
	settings *Settings
	previous map[string]interface{}
}

// Restore writes the remembered values back.
func (sn *Snapshot) Restore() {
	for key, value := range sn.previous {
		sn.settings.v.Set(key, value)
	}
}

// Dispose restores the snapshot, letting it sit on a Disposer.
func (sn *Snapshot) Dispose() {
	sn.Restore()
}
