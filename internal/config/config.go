// Package config loads the global platform configuration: the catalog of
// known regions and the defaults applied to every service manifest.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the global configuration file at the repo root.
const ConfigFile = "purser.yml"

// Config errors.
var (
	// ErrMissingConfig indicates the global config file was not found.
	ErrMissingConfig = errors.New("global config not found")

	// ErrMalformedConfig indicates the global config failed to parse or
	// is structurally incomplete.
	ErrMalformedConfig = errors.New("malformed global config")
)

// KongDefaults holds the region-scoped Kong gateway settings used to fill
// in implicit Kong fields on manifests deployed to that region.
type KongDefaults struct {
	// AdminURL is the Kong admin API endpoint for the region.
	AdminURL string `yaml:"adminUrl,omitempty"`

	// Domain is the base DNS domain services are exposed under.
	Domain string `yaml:"domain,omitempty"`
}

// Region describes one deployment environment.
type Region struct {
	// Name is the region identifier (e.g., "dev-uk"). Filled from the
	// map key on load.
	Name string `yaml:"-"`

	// Env holds default environment variables injected into every
	// service deployed to this region.
	Env map[string]string `yaml:"env,omitempty"`

	// Kong holds region defaults for the Kong integration.
	Kong KongDefaults `yaml:"kong,omitempty"`

	// Namespace is the kubernetes namespace services land in.
	Namespace string `yaml:"namespace,omitempty"`

	// Environment is the logical environment name exposed to templates
	// (e.g. "dev" for dev-uk).
	Environment string `yaml:"environment,omitempty"`
}

// Defaults holds fallback values applied to manifests during implicits.
type Defaults struct {
	// ImagePrefix is prepended to the service name when no image is set.
	ImagePrefix string `yaml:"imagePrefix"`

	// Chart is the helm chart used when a manifest does not name one.
	Chart string `yaml:"chart"`

	// ReplicaCount is the replica count used when a manifest leaves it unset.
	ReplicaCount uint32 `yaml:"replicaCount"`
}

// Config is the process-wide global configuration. It is loaded once and
// must be treated as read-only afterwards.
type Config struct {
	// Regions maps region names to their settings.
	Regions map[string]Region `yaml:"regions"`

	// Defaults are the implicit values for manifests.
	Defaults Defaults `yaml:"defaults"`
}

// HasRegion reports whether a region is known to the global config.
func (c *Config) HasRegion(name string) bool {
	_, ok := c.Regions[name]
	return ok
}

// RegionNames returns the known region names.
func (c *Config) RegionNames() []string {
	names := make([]string, 0, len(c.Regions))
	for name := range c.Regions {
		names = append(names, name)
	}
	return names
}

// Load reads and validates the global config from the given file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return nil, fmt.Errorf("read global config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	if len(cfg.Regions) == 0 {
		return nil, fmt.Errorf("%w: no regions defined", ErrMalformedConfig)
	}
	if cfg.Defaults.Chart == "" {
		return nil, fmt.Errorf("%w: defaults.chart is required", ErrMalformedConfig)
	}
	if cfg.Defaults.ReplicaCount == 0 {
		return nil, fmt.Errorf("%w: defaults.replicaCount must be at least 1", ErrMalformedConfig)
	}

	// Propagate map keys so a Region value knows its own name.
	for name, region := range cfg.Regions {
		region.Name = name
		cfg.Regions[name] = region
	}

	return &cfg, nil
}

// FindRoot searches upward from the current directory for the project root,
// identified by the presence of the global config file and a services
// directory.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		cfgFile := filepath.Join(dir, ConfigFile)
		svcDir := filepath.Join(dir, "services")
		if _, err := os.Stat(cfgFile); err == nil {
			if info, err := os.Stat(svcDir); err == nil && info.IsDir() {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: no %s with services/ directory in any parent", ErrMissingConfig, ConfigFile)
}
