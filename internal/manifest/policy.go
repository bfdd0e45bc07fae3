package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/purser-dev/purser/internal/config"
)

// Metadata holds canonical data sources for a service: where the code
// lives, who owns it, and where the docs are.
type Metadata struct {
	// Repo is the source repository url.
	Repo string `yaml:"repo,omitempty"`

	// Team owning the service.
	Team string `yaml:"team,omitempty"`

	// Docs is a link to the service documentation.
	Docs string `yaml:"docs,omitempty"`

	// Contacts lists people to reach about the service.
	Contacts []string `yaml:"contacts,omitempty"`
}

// Verify checks the ownership fields are filled in.
func (m *Metadata) Verify(conf *config.Config) error {
	if m.Team == "" {
		return fmt.Errorf("%w: metadata.team is required", ErrValidation)
	}
	if m.Repo == "" {
		return fmt.Errorf("%w: metadata.repo is required", ErrValidation)
	}
	return nil
}

// DataField describes one field stored in a data store, with handling
// policy cascaded down from the store when unset.
type DataField struct {
	Name string `yaml:"name"`

	// Encrypted reports whether the field is encrypted at rest. Unset
	// values inherit the store-level setting during implicits.
	Encrypted *bool `yaml:"encrypted,omitempty"`

	// KeyRotator is the rotation interval (e.g. "2w"). Unset values
	// inherit the store-level setting during implicits.
	KeyRotator string `yaml:"keyRotator,omitempty"`
}

// DataStore is a backing store holding service data.
type DataStore struct {
	// Backend names the store technology (e.g. "S3", "DynamoDB").
	Backend string `yaml:"backend"`

	// Encrypted is the store-level encryption default.
	Encrypted *bool `yaml:"encrypted,omitempty"`

	// KeyRotator is the store-level rotation default.
	KeyRotator string `yaml:"keyRotator,omitempty"`

	// Fields held in this store.
	Fields []DataField `yaml:"fields,omitempty"`
}

// DataHandling describes every data store a service writes to and the
// handling policy for each field.
type DataHandling struct {
	Stores []DataStore `yaml:"stores,omitempty"`
}

// Implicits cascades store-level encryption and rotation settings down
// to fields that leave them unset. Explicit field values always win.
func (d *DataHandling) Implicits() {
	for i := range d.Stores {
		store := &d.Stores[i]
		for j := range store.Fields {
			field := &store.Fields[j]
			if field.Encrypted == nil && store.Encrypted != nil {
				enc := *store.Encrypted
				field.Encrypted = &enc
			}
			if field.KeyRotator == "" && store.KeyRotator != "" {
				field.KeyRotator = store.KeyRotator
			}
		}
	}
}

// Verify checks every store names a backend and every field a name.
func (d *DataHandling) Verify(conf *config.Config) error {
	for _, store := range d.Stores {
		if store.Backend == "" {
			return fmt.Errorf("%w: data store needs a backend", ErrValidation)
		}
		for _, field := range store.Fields {
			if field.Name == "" {
				return fmt.Errorf("%w: data field in %s store needs a name", ErrValidation, store.Backend)
			}
		}
	}
	return nil
}

// apiVersionPattern matches dependency api versions like "v1".
var apiVersionPattern = regexp.MustCompile(`^v\d+$`)

// Dependency on another service.
type Dependency struct {
	// Name of the depended-upon service.
	Name string `yaml:"name"`

	// API version of the dependency's interface. Defaulted to "v1" by
	// implicits when unset.
	API string `yaml:"api,omitempty"`
}

// Verify checks the dependency name and api version shape.
func (d *Dependency) Verify(conf *config.Config) error {
	if d.Name == "" {
		return fmt.Errorf("%w: dependency needs a name", ErrValidation)
	}
	if !apiVersionPattern.MatchString(d.API) {
		return fmt.Errorf("%w: dependency %s has invalid api version %q", ErrValidation, d.Name, d.API)
	}
	return nil
}

// VaultOpts overrides the secret store scope for services that read
// keys written under another service's path.
type VaultOpts struct {
	// Name of the service whose secrets to read.
	Name string `yaml:"name"`

	// Region override for the secret path. Empty means the deploy region.
	Region string `yaml:"region,omitempty"`
}

// Kong gateway configuration for a service.
type Kong struct {
	// Name of the upstream service registered in Kong. Defaulted to the
	// manifest name by implicits.
	Name string `yaml:"name,omitempty"`

	// Host the route is exposed under. Defaulted to
	// {name}.{region domain} by implicits.
	Host string `yaml:"host,omitempty"`

	// URIs routed to the service.
	URIs []string `yaml:"uris,omitempty"`

	// StripURI removes the matched uri prefix before proxying.
	StripURI bool `yaml:"stripUri,omitempty"`

	// AdminURL is the region's Kong admin endpoint. Filled by implicits.
	AdminURL string `yaml:"-"`
}

// Implicits fills in region-scoped kong fields for a service.
func (k *Kong) Implicits(service string, region config.Region) {
	if k.Name == "" {
		k.Name = service
	}
	if k.Host == "" && region.Kong.Domain != "" {
		k.Host = fmt.Sprintf("%s.%s", k.Name, region.Kong.Domain)
	}
	k.AdminURL = region.Kong.AdminURL
}

// Prometheus scrape options for a service.
type Prometheus struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// Verify checks the scrape path when scraping is enabled.
func (p *Prometheus) Verify(conf *config.Config) error {
	if p.Enabled && !strings.HasPrefix(p.Path, "/") {
		return fmt.Errorf("%w: prometheus.path must start with /", ErrValidation)
	}
	return nil
}

// Dashboard to generate for the service.
type Dashboard struct {
	// URL of an existing dashboard to link rather than generate.
	URL string `yaml:"url,omitempty"`

	// Rows lists metric row presets to include.
	Rows []string `yaml:"rows,omitempty"`
}

// Jaeger tracing options.
type Jaeger struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Agent   string `yaml:"agent,omitempty"`
}
