package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a base manifest from an arbitrary directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var mf Manifest
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSource, path, err)
	}
	return &mf, nil
}

// LoadService reads the base manifest for a named service under root and
// checks its identity against the directory it was loaded from.
func LoadService(root, service string) (*Manifest, error) {
	dir := filepath.Join(root, "services", service)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: service folder %s", ErrMissingSource, dir)
	}
	mf, err := Load(dir)
	if err != nil {
		return nil, err
	}
	if mf.Name != service {
		return nil, fmt.Errorf("%w: manifest says %q, folder says %q", ErrIdentityMismatch, mf.Name, service)
	}
	return mf, nil
}

// OverridePath returns the location of a service's region override file.
func OverridePath(root, service, region string) string {
	return filepath.Join(root, "services", service, region+".yml")
}
