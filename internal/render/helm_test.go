package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/purser-dev/purser/internal/manifest"
)

func TestHelmValues(t *testing.T) {
	mf := testManifest()
	mf.Configs = &manifest.ConfigMap{
		Name:  "fake-ask-config",
		Mount: "/config/",
		Files: []manifest.ConfigMappedFile{{Name: "app.ini.j2", Dest: "app.ini"}},
	}
	r := RenderFunc(func(name string, ctx Context) (string, error) {
		return "mode=" + ctx["env"].(string), nil
	})
	dep := testDeployment(mf, r)

	encoded, err := HelmValues(dep, "")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(encoded, "\n"), "values must end with a newline")

	var out map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(encoded), &out))
	assert.Equal(t, "fake-ask", out["name"])

	cfg := out["configs"].(map[string]any)
	files := cfg["files"].([]any)
	file := files[0].(map[string]any)
	assert.Equal(t, "mode=dev", file["value"], "config files are pre-rendered inline")

	// Derived state never reaches the serialized form.
	assert.NotContains(t, out, "_region")
	assert.NotContains(t, encoded, "DecodedSecrets")

	// The caller's manifest is untouched.
	assert.Empty(t, mf.Configs.Files[0].Value)
}

func TestHelmValuesVersionOverride(t *testing.T) {
	dep := testDeployment(testManifest(), nil)
	dep.Version = "2.0.0"

	encoded, err := HelmValues(dep, "")
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(encoded), &out))
	assert.Equal(t, "2.0.0", out["version"])
}

func TestHelmValuesToFile(t *testing.T) {
	dep := testDeployment(testManifest(), nil)
	path := filepath.Join(t.TempDir(), "values.yaml")

	encoded, err := HelmValues(dep, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, encoded, string(data))
}

func TestHelmValuesChecksDeployment(t *testing.T) {
	dep := testDeployment(testManifest(), nil)
	dep.Region = "prod-eu"

	_, err := HelmValues(dep, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, manifest.ErrUnsupportedRegion)
}
