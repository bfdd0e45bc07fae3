package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeploymentDisabled(t *testing.T) {
	mf := testManifest()
	mf.Disabled = true
	mf.Image = "" // even an unrenderable manifest short-circuits
	r := RenderFunc(func(name string, ctx Context) (string, error) {
		t.Fatal("renderer must not be called for disabled services")
		return "", nil
	})
	dep := testDeployment(mf, r)

	res, err := GenerateDeployment(dep, t.TempDir(), false, false)
	require.NoError(t, err)
	assert.Equal(t, "---", res)
}

func TestGenerateDeployment(t *testing.T) {
	var gotName string
	r := RenderFunc(func(name string, ctx Context) (string, error) {
		gotName = name
		return "kind: Deployment", nil
	})
	dep := testDeployment(testManifest(), r)

	res, err := GenerateDeployment(dep, t.TempDir(), false, false)
	require.NoError(t, err)
	assert.Equal(t, DeploymentTemplate, gotName)
	assert.Equal(t, "kind: Deployment", res)
}

func TestGenerateDeploymentToFile(t *testing.T) {
	root := t.TempDir()
	r := RenderFunc(func(name string, ctx Context) (string, error) {
		return "kind: Deployment", nil
	})
	dep := testDeployment(testManifest(), r)

	_, err := GenerateDeployment(dep, root, false, true)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, OutputDir, DeploymentTemplate))
	require.NoError(t, err)
	assert.Equal(t, "kind: Deployment\n", string(data))
}

func TestCreateOutputRecreates(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, OutputDir, "stale.yaml")
	require.NoError(t, os.MkdirAll(filepath.Join(root, OutputDir), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	require.NoError(t, CreateOutput(root))

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale output must be cleared")
}
