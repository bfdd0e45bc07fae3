package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/purser-dev/purser/internal/ui"
)

// OutputDir is the directory deployment artifacts are written into.
const OutputDir = "OUTPUT"

// DeploymentTemplate is the template name rendered for a deployment.
const DeploymentTemplate = "deployment.yaml"

// disabledPlaceholder is emitted for disabled services instead of a
// rendered deployment.
const disabledPlaceholder = "---"

// CreateOutput recreates the OUTPUT directory under root.
func CreateOutput(root string) error {
	loc := filepath.Join(root, OutputDir)
	if info, err := os.Stat(loc); err == nil && info.IsDir() {
		if err := os.RemoveAll(loc); err != nil {
			return fmt.Errorf("clear output directory: %w", err)
		}
	}
	if err := os.Mkdir(loc, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// GenerateDeployment renders the deployment template with the full
// context. Disabled manifests short-circuit to a placeholder document.
// Output goes to stdout, to OUTPUT/deployment.yaml under root, or both,
// per the caller's flags.
func GenerateDeployment(d *Deployment, root string, toStdout, toFile bool) (string, error) {
	var res string
	if d.Manifest.Disabled {
		ui.Warning("not generating yaml for disabled service %s", d.Service)
		res = disabledPlaceholder
	} else {
		ctx, err := d.FullContext()
		if err != nil {
			return "", err
		}
		res, err = d.Renderer.Render(DeploymentTemplate, ctx)
		if err != nil {
			return "", err
		}
	}

	if toStdout {
		fmt.Print(res)
	}
	if toFile {
		if err := CreateOutput(root); err != nil {
			return "", err
		}
		path := filepath.Join(root, OutputDir, DeploymentTemplate)
		if err := os.WriteFile(path, []byte(res+"\n"), 0644); err != nil {
			return "", fmt.Errorf("write deployment: %w", err)
		}
		ui.Info("wrote deployment for %s to %s", d.Service, path)
	}
	return res, nil
}
