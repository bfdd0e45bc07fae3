package render

import (
	"fmt"

	"github.com/purser-dev/purser/internal/manifest"
)

// ConfigMapRendered is a config map with its file contents rendered.
type ConfigMapRendered struct {
	Name  string
	Path  string
	Files []RenderedConfig
}

// RenderedConfig is one pre-rendered config file.
type RenderedConfig struct {
	Name     string
	Rendered string
}

// Deployment binds a resolved manifest to the region and renderer used
// to produce its artifacts.
type Deployment struct {
	// Service name; must match the manifest name.
	Service string

	// Region the artifacts are generated for.
	Region string

	// Manifest is the fully resolved manifest.
	Manifest *manifest.Manifest

	// Version overrides the manifest version when set.
	Version string

	// Renderer renders named templates.
	Renderer Renderer

	// Namespace the service deploys into.
	Namespace string

	// EnvName is the logical environment name exposed to templates.
	EnvName string
}

// Check sanity-checks the deployment parameters against the manifest.
func (d *Deployment) Check() error {
	if d.Service != d.Manifest.Name {
		return fmt.Errorf("%w: deployment is for %q, manifest says %q",
			manifest.ErrIdentityMismatch, d.Service, d.Manifest.Name)
	}
	for _, r := range d.Manifest.Regions {
		if r == d.Region {
			return nil
		}
	}
	return fmt.Errorf("%w: %s not in %v", manifest.ErrUnsupportedRegion, d.Region, d.Manifest.Regions)
}

// BaseContext is the minimal, safe context handed to embedded config
// file templates. Keeping it small stops config files from depending on
// the full manifest.
func (d *Deployment) BaseContext() Context {
	return Context{
		"namespace": d.Namespace,
		"env":       d.EnvName,
		"service":   d.Service,
		"region":    d.Region,
	}
}

// renderConfigFile pre-renders one config file template with the base
// context only, never the full one.
func (d *Deployment) renderConfigFile(f manifest.ConfigMappedFile) (string, error) {
	return d.Renderer.Render(f.Name, d.BaseContext())
}

// FullContext extends the base context with everything deployment
// templates may use. It fails when image or version are unset, since a
// deployment cannot be rendered without a concrete image reference.
func (d *Deployment) FullContext() (Context, error) {
	ctx := d.BaseContext()

	if cfg := d.Manifest.Configs; cfg != nil {
		rendered := ConfigMapRendered{Name: cfg.Name, Path: cfg.Mount}
		for _, f := range cfg.Files {
			res, err := d.renderConfigFile(f)
			if err != nil {
				return nil, err
			}
			rendered.Files = append(rendered.Files, RenderedConfig{Name: f.Dest, Rendered: res})
		}
		ctx["config"] = rendered
	}

	version := d.Version
	if version == "" {
		version = d.Manifest.Version
	}
	if d.Manifest.Image == "" || version == "" {
		return nil, fmt.Errorf("%w: image and version are required", ErrIncomplete)
	}
	ctx["image"] = fmt.Sprintf("%s:%s", d.Manifest.Image, version)

	ctx["hostAliases"] = d.Manifest.HostAliases
	ctx["httpPort"] = d.Manifest.HTTPPort
	ctx["replicaCount"] = d.Manifest.ReplicaCount
	if d.Manifest.Health != nil {
		ctx["health"] = d.Manifest.Health
	}
	ctx["volumeMounts"] = d.Manifest.VolumeMounts
	ctx["initContainers"] = d.Manifest.InitContainers
	ctx["volumes"] = d.Manifest.Volumes

	// Full manifest escape hatch. Legacy: new template fields belong as
	// explicit entries above, not reached through this.
	ctx["mf"] = d.Manifest

	return ctx, nil
}
