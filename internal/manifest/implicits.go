package manifest

import (
	"fmt"

	"github.com/purser-dev/purser/internal/config"
)

// Implicits fills unset manifest fields from the global config and, when a
// region is given, binds the manifest to that region and applies its
// defaults. Defaulting never overwrites a value that is already set, so
// applying implicits twice is a no-op on the second pass.
//
// An unknown region is the only hard failure.
func (m *Manifest) Implicits(conf *config.Config, region string) error {
	if m.Image == "" {
		m.Image = fmt.Sprintf("%s/%s", conf.Defaults.ImagePrefix, m.Name)
	}

	if region != "" {
		reg, ok := conf.Regions[region]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownRegion, region)
		}
		m.Region = region

		// Region defaults fill gaps only; env declared in the base
		// manifest always wins.
		if m.Env == nil && len(reg.Env) > 0 {
			m.Env = make(map[string]string, len(reg.Env))
		}
		for k, v := range reg.Env {
			if _, exists := m.Env[k]; !exists {
				m.Env[k] = v
			}
		}

		if m.Kong != nil {
			m.Kong.Implicits(m.Name, reg)
		}
	}

	if m.Chart == "" {
		m.Chart = conf.Defaults.Chart
	}
	if m.ReplicaCount == nil {
		replicas := conf.Defaults.ReplicaCount
		m.ReplicaCount = &replicas
	}

	m.DataHandling.Implicits()

	if m.Configs != nil && m.Configs.Name == "" {
		m.Configs.Name = fmt.Sprintf("%s-config", m.Name)
	}

	for i := range m.Dependencies {
		if m.Dependencies[i].API == "" {
			m.Dependencies[i].API = "v1"
		}
	}

	return nil
}
