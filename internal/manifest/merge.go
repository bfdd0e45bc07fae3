package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MergeOverride applies a region-specific partial manifest on top of the
// base. The merge surface is a deliberate allow-list of fields that make
// sense to vary per environment:
//
//   - env: union, override entries win
//   - kong: replaced wholesale when set
//   - version: replaced when set
//   - resources: replaced wholesale when set
//   - initContainers: replaced wholesale when non-empty
//   - hostAliases: replaced wholesale when non-empty, each alias validated
//
// Everything else in the override file is silently ignored, which keeps
// identity-bearing and safety-critical fields out of reach of
// per-environment files.
func (m *Manifest) MergeOverride(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissingOverride, path)
		}
		return fmt.Errorf("read override: %w", err)
	}

	var ov Manifest
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedSource, path, err)
	}

	if m.Env == nil && len(ov.Env) > 0 {
		m.Env = make(map[string]string, len(ov.Env))
	}
	for k, v := range ov.Env {
		m.Env[k] = v
	}

	if ov.Kong != nil {
		m.Kong = ov.Kong
	}
	if ov.Version != "" {
		m.Version = ov.Version
	}
	if ov.Resources != nil {
		m.Resources = ov.Resources
	}
	if len(ov.InitContainers) > 0 {
		m.InitContainers = ov.InitContainers
	}
	if len(ov.HostAliases) > 0 {
		for _, alias := range ov.HostAliases {
			if alias.IP == "" || len(alias.Hostnames) == 0 {
				return fmt.Errorf("%w: needs an ip and at least one hostname", ErrInvalidHostAlias)
			}
		}
		m.HostAliases = ov.HostAliases
	}

	return nil
}
