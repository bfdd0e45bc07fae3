package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purser-dev/purser/internal/config"
)

// testConfig returns a small global config with two regions.
func testConfig() *config.Config {
	return &config.Config{
		Regions: map[string]config.Region{
			"dev-uk": {
				Name:        "dev-uk",
				Namespace:   "dev",
				Environment: "dev",
				Env: map[string]string{
					"CORE_URL":  "https://core.dev.example.com",
					"LOG_LEVEL": "debug",
				},
				Kong: config.KongDefaults{
					AdminURL: "https://kong-admin.dev.example.com",
					Domain:   "dev.example.com",
				},
			},
			"prod-eu": {
				Name:        "prod-eu",
				Namespace:   "prod",
				Environment: "prod",
				Env: map[string]string{
					"CORE_URL": "https://core.example.com",
				},
			},
		},
		Defaults: config.Defaults{
			ImagePrefix:  "registry.example.com/services",
			Chart:        "base",
			ReplicaCount: 2,
		},
	}
}

// validManifest returns a manifest that passes verification once
// implicits have bound it to dev-uk.
func validManifest(name string) *Manifest {
	return &Manifest{
		Name: name,
		Metadata: Metadata{
			Team: "platform",
			Repo: "https://git.example.com/" + name,
		},
		Resources: &Resources{
			Requests: &ResourceRequest{CPU: "100m", Memory: "128Mi"},
			Limits:   &ResourceLimit{CPU: "500m", Memory: "512Mi"},
		},
		Regions: []string{"dev-uk", "prod-eu"},
	}
}

// writeService creates services/<name>/manifest.yml under root.
func writeService(t *testing.T, root, name, content string) {
	t.Helper()
	dir := filepath.Join(root, "services", name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(content), 0644))
}

// writeOverride creates services/<name>/<region>.yml under root.
func writeOverride(t *testing.T, root, name, region, content string) {
	t.Helper()
	dir := filepath.Join(root, "services", name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, region+".yml"), []byte(content), 0644))
}

func uint32ptr(v uint32) *uint32 { return &v }

func boolptr(v bool) *bool { return &v }
