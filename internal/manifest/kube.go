package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/purser-dev/purser/internal/config"
)

// ResourceRequest holds kubernetes resource requests.
type ResourceRequest struct {
	CPU    string `yaml:"cpu"`
	Memory string `yaml:"memory"`
}

// ResourceLimit holds kubernetes resource limits.
type ResourceLimit struct {
	CPU    string `yaml:"cpu"`
	Memory string `yaml:"memory"`
}

// Resources holds request/limit pairs for the main container.
type Resources struct {
	Requests *ResourceRequest `yaml:"requests,omitempty"`
	Limits   *ResourceLimit   `yaml:"limits,omitempty"`
}

// Verify checks that all quantity strings parse as kubernetes quantities.
func (r *Resources) Verify(conf *config.Config) error {
	if r.Requests == nil {
		return fmt.Errorf("%w: resources.requests is required", ErrValidation)
	}
	if r.Limits == nil {
		return fmt.Errorf("%w: resources.limits is required", ErrValidation)
	}
	quantities := map[string]string{
		"requests.cpu":    r.Requests.CPU,
		"requests.memory": r.Requests.Memory,
		"limits.cpu":      r.Limits.CPU,
		"limits.memory":   r.Limits.Memory,
	}
	for field, q := range quantities {
		if q == "" {
			return fmt.Errorf("%w: resources.%s is required", ErrValidation, field)
		}
		if _, err := resource.ParseQuantity(q); err != nil {
			return fmt.Errorf("%w: resources.%s %q: %v", ErrValidation, field, q, err)
		}
	}
	return nil
}

// HostAlias adds /etc/hosts entries to all pods regardless of network
// configuration.
type HostAlias struct {
	IP        string   `yaml:"ip"`
	Hostnames []string `yaml:"hostnames"`
}

// Verify checks the alias has an ip and at least one hostname.
func (h *HostAlias) Verify(conf *config.Config) error {
	if h.IP == "" {
		return fmt.Errorf("%w: host alias needs an ip", ErrValidation)
	}
	if len(h.Hostnames) == 0 {
		return fmt.Errorf("%w: host alias for %s needs at least one hostname", ErrValidation, h.IP)
	}
	return nil
}

// ConfigMappedFile is one templated config file mounted into the container.
type ConfigMappedFile struct {
	// Name of the template file in the service repo.
	Name string `yaml:"name"`

	// Dest is the file name inside the container.
	Dest string `yaml:"dest"`

	// Value is the pre-rendered content, filled in before emitting helm
	// values.
	Value string `yaml:"value,omitempty"`
}

// ConfigMap is a named mount of templated config files.
type ConfigMap struct {
	// Name of the kubernetes config map. Autogenerated as
	// {service}-config by implicits when left out.
	Name string `yaml:"name,omitempty"`

	// Mount is the container-local directory the files appear under.
	Mount string `yaml:"mount"`

	// Files mounted at the mount path.
	Files []ConfigMappedFile `yaml:"files"`
}

// Verify checks the mount path and every file entry.
func (c *ConfigMap) Verify(conf *config.Config) error {
	if c.Mount == "" || !strings.HasSuffix(c.Mount, "/") {
		return fmt.Errorf("%w: configs.mount must be a directory path ending in /", ErrValidation)
	}
	if len(c.Files) == 0 {
		return fmt.Errorf("%w: configs needs at least one file", ErrValidation)
	}
	for _, f := range c.Files {
		if f.Name == "" || f.Dest == "" {
			return fmt.Errorf("%w: config file entries need a name and a dest", ErrValidation)
		}
	}
	return nil
}

// HealthCheck describes the service http health endpoint.
type HealthCheck struct {
	// URI of the health endpoint.
	URI string `yaml:"uri"`

	// Wait is how long to wait after boot, in seconds.
	Wait uint32 `yaml:"wait"`
}

// Health check defaults applied at parse time.
const (
	defaultHealthURI  = "/health"
	defaultHealthWait = 30
)

// UnmarshalYAML fills in the default uri and wait time.
func (h *HealthCheck) UnmarshalYAML(value *yaml.Node) error {
	type raw HealthCheck
	out := raw{URI: defaultHealthURI, Wait: defaultHealthWait}
	if err := value.Decode(&out); err != nil {
		return err
	}
	*h = HealthCheck(out)
	return nil
}

// VolumeMount attaches a named volume to the main container.
type VolumeMount struct {
	Name      string `yaml:"name"`
	MountPath string `yaml:"mountPath"`
	SubPath   string `yaml:"subPath,omitempty"`
	ReadOnly  bool   `yaml:"readOnly,omitempty"`
}

// InitContainer runs to completion before the main container starts.
type InitContainer struct {
	Name    string   `yaml:"name"`
	Image   string   `yaml:"image"`
	Command []string `yaml:"command,omitempty"`
}

// Verify checks the container has a name and image.
func (i *InitContainer) Verify(conf *config.Config) error {
	if i.Name == "" {
		return fmt.Errorf("%w: init container needs a name", ErrValidation)
	}
	if i.Image == "" {
		return fmt.Errorf("%w: init container %s needs an image", ErrValidation, i.Name)
	}
	return nil
}

// VolumeSecretItem maps one secret key to a path within a volume.
type VolumeSecretItem struct {
	Key  string `yaml:"key"`
	Path string `yaml:"path"`
	Mode uint32 `yaml:"mode,omitempty"`
}

// VolumeSecretDetail names a kubernetes secret and the items mounted
// from it.
type VolumeSecretDetail struct {
	Name  string             `yaml:"name"`
	Items []VolumeSecretItem `yaml:"items,omitempty"`
}

// VolumeSecret wraps a secret source inside a projected volume.
type VolumeSecret struct {
	Secret *VolumeSecretDetail `yaml:"secret,omitempty"`
}

// ProjectedVolumeSecret combines multiple volume items into one mount.
type ProjectedVolumeSecret struct {
	Sources []VolumeSecret `yaml:"sources"`
}

// Volume is a pod volume backed by secrets.
type Volume struct {
	Name      string                 `yaml:"name"`
	Projected *ProjectedVolumeSecret `yaml:"projected,omitempty"`
	Secret    *VolumeSecretDetail    `yaml:"secret,omitempty"`
}

// CronJob is a scheduled job deployed alongside the service.
type CronJob struct {
	Name     string   `yaml:"name"`
	Schedule string   `yaml:"schedule"`
	Image    string   `yaml:"image,omitempty"`
	Command  []string `yaml:"command,omitempty"`
}

// Verify checks the job name and that the schedule looks like a five
// field cron expression.
func (c *CronJob) Verify(conf *config.Config) error {
	if c.Name == "" {
		return fmt.Errorf("%w: cron job needs a name", ErrValidation)
	}
	if fields := strings.Fields(c.Schedule); len(fields) != 5 {
		return fmt.Errorf("%w: cron job %s schedule %q must have five fields", ErrValidation, c.Name, c.Schedule)
	}
	return nil
}

// Sidecar runs next to the main container in the same pod.
type Sidecar struct {
	Name      string     `yaml:"name"`
	Image     string     `yaml:"image"`
	Version   string     `yaml:"version,omitempty"`
	Resources *Resources `yaml:"resources,omitempty"`
}

// Verify checks the sidecar has a name and image, and that any declared
// resources parse.
func (s *Sidecar) Verify(conf *config.Config) error {
	if s.Name == "" {
		return fmt.Errorf("%w: sidecar needs a name", ErrValidation)
	}
	if s.Image == "" {
		return fmt.Errorf("%w: sidecar %s needs an image", ErrValidation, s.Name)
	}
	if s.Resources != nil {
		if err := s.Resources.Verify(conf); err != nil {
			return fmt.Errorf("sidecar %s: %w", s.Name, err)
		}
	}
	return nil
}
