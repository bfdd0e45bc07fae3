package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/purser-dev/purser/internal/manifest"
	"github.com/purser-dev/purser/internal/ui"
)

// HelmValues serializes a resolved manifest to helm values yaml, with
// every config map file pre-rendered inline via the base context. The
// output goes to the given file path, or to stdout when the path is
// empty, always ending in a newline.
func HelmValues(d *Deployment, output string) (string, error) {
	if err := d.Check(); err != nil {
		return "", err
	}

	// Work on a copy so pre-rendering does not leak into the caller's
	// manifest.
	mf := *d.Manifest
	if d.Manifest.Configs != nil {
		cfg := *d.Manifest.Configs
		cfg.Files = append([]manifest.ConfigMappedFile(nil), d.Manifest.Configs.Files...)
		for i := range cfg.Files {
			res, err := d.renderConfigFile(cfg.Files[i])
			if err != nil {
				return "", err
			}
			cfg.Files[i].Value = res
		}
		mf.Configs = &cfg
	}
	if d.Version != "" {
		mf.Version = d.Version
	}

	data, err := yaml.Marshal(&mf)
	if err != nil {
		return "", fmt.Errorf("marshal helm values: %w", err)
	}
	encoded := string(data)
	if len(encoded) == 0 || encoded[len(encoded)-1] != '\n' {
		encoded += "\n"
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(encoded), 0644); err != nil {
			return "", fmt.Errorf("write helm values: %w", err)
		}
		ui.Info("wrote helm values for %s to %s", d.Service, output)
	} else {
		fmt.Print(encoded)
	}
	return encoded, nil
}
