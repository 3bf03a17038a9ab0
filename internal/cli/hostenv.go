package cli

import (
	"github.com/conflink-labs/conflink/internal/config"
	"github.com/conflink-labs/conflink/internal/host"
	"github.com/conflink-labs/conflink/internal/resolver"
)

// newHost builds a host whose settings mirror the user's persistent config.
func newHost() *host.Host {
	h := host.New(buildVersion)
	h.Settings.Update(config.KeyLinksEnabled, config.GetBool(config.KeyLinksEnabled))
	h.Settings.Update(config.KeyPackageDirs, config.GetStringSlice(config.KeyPackageDirs))
	h.Settings.Update(config.KeyEntryFile, config.Get(config.KeyEntryFile))
	return h
}

// newResolver builds a resolver from the user's persistent config.
func newResolver() *resolver.Resolver {
	return resolver.New(resolver.Options{
		PackageDirs: config.GetStringSlice(config.KeyPackageDirs),
		EntryFile:   config.Get(config.KeyEntryFile),
		ToolVersion: buildVersion,
	})
}
