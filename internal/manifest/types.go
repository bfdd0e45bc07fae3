package manifest

// ManifestFile is the file name of a service's base manifest inside its
// services/<name>/ directory.
const ManifestFile = "manifest.yml"

// Manifest is the full declarative description of one service's desired
// deployment state, serializable from services/<name>/manifest.yml.
type Manifest struct {
	// Name of the service. Must equal the service directory name.
	Name string `yaml:"name"`

	// Disabled services are skipped during generation; a placeholder
	// document is emitted instead.
	Disabled bool `yaml:"disabled,omitempty"`

	// External marks a service managed outside the cluster. Most
	// verification is skipped for external services.
	External bool `yaml:"external,omitempty"`

	// Image is the docker image repository. Defaulted to
	// {imagePrefix}/{name} by implicits when unset.
	Image string `yaml:"image,omitempty"`

	// Version is the docker image tag.
	Version string `yaml:"version,omitempty"`

	// Command overrides the default docker command.
	Command []string `yaml:"command,omitempty"`

	// Metadata holds canonical data sources like repo, docs and team.
	Metadata Metadata `yaml:"metadata,omitempty"`

	// DataHandling describes data stores and their handling policies.
	DataHandling DataHandling `yaml:"dataHandling,omitempty"`

	// Jaeger tracing options.
	Jaeger Jaeger `yaml:"jaeger,omitempty"`

	// Language the service is written in.
	Language string `yaml:"language,omitempty"`

	// Chart is the helm chart used for the service. Defaulted by
	// implicits when empty.
	Chart string `yaml:"chart,omitempty"`

	// Resources holds kubernetes resource requests and limits.
	Resources *Resources `yaml:"resources,omitempty"`

	// ReplicaCount is the desired replica count. Defaulted by implicits
	// when unset.
	ReplicaCount *uint32 `yaml:"replicaCount,omitempty"`

	// HostAliases are injected into /etc/hosts of the pod.
	HostAliases []HostAlias `yaml:"hostAliases,omitempty"`

	// Env holds environment variables to inject. Values may be the
	// sentinel InVault, resolved later by secret injection.
	Env map[string]string `yaml:"env,omitempty"`

	// Configs lists config files inlined into a ConfigMap.
	Configs *ConfigMap `yaml:"configs,omitempty"`

	// VolumeMounts for the main container.
	VolumeMounts []VolumeMount `yaml:"volumeMounts,omitempty"`

	// InitContainers run before the main container starts.
	InitContainers []InitContainer `yaml:"initContainers,omitempty"`

	// HTTPPort is the http port to expose.
	HTTPPort *uint32 `yaml:"httpPort,omitempty"`

	// Vault overrides the secret store scope for this service.
	Vault *VaultOpts `yaml:"vault,omitempty"`

	// Health check parameters. Mandatory when HTTPPort is set.
	Health *HealthCheck `yaml:"health,omitempty"`

	// Dependencies on other services.
	Dependencies []Dependency `yaml:"dependencies,omitempty"`

	// Regions the service is allowed to deploy to.
	Regions []string `yaml:"regions,omitempty"`

	// Volumes available to the pod.
	Volumes []Volume `yaml:"volumes,omitempty"`

	// CronJobs scheduled alongside the service.
	CronJobs []CronJob `yaml:"cronJobs,omitempty"`

	// Sidecars run next to the main container.
	Sidecars []Sidecar `yaml:"sidecars,omitempty"`

	// ServiceAnnotations are applied to the kubernetes service object.
	// Experimental; triggers a verification warning.
	ServiceAnnotations map[string]string `yaml:"serviceAnnotations,omitempty"`

	// Prometheus scrape options.
	Prometheus *Prometheus `yaml:"prometheus,omitempty"`

	// Dashboards to generate, keyed by dashboard name.
	Dashboards map[string]Dashboard `yaml:"dashboards,omitempty"`

	// Kong gateway config.
	Kong *Kong `yaml:"kong,omitempty"`

	// Region is the region this resolved instance is bound to.
	// Set by implicits, never serialized.
	Region string `yaml:"-"`

	// DecodedSecrets maps resolved vault key paths to their secret
	// values, kept for audit only. Never serialized.
	DecodedSecrets map[string]string `yaml:"-"`
}

// New returns an empty manifest carrying only a name.
func New(name string) *Manifest {
	return &Manifest{Name: name}
}
