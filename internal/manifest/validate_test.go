package manifest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeStorageYAML = `
name: fake-storage
external: true
metadata:
  team: platform
  repo: https://git.example.com/fake-storage
regions:
  - dev-uk
`

func TestFillAppliesOverrideAndSecrets(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", fakeAskYAML)
	writeOverride(t, root, "fake-ask", "dev-uk", `
env:
  MODE: dev
version: 2.0.0
`)
	store := &fakeStore{values: map[string]string{
		"dev-uk/fake-ask/API_KEY": "secret123",
	}}

	mf, err := Completed(context.Background(), testConfig(), root, "fake-ask", "dev-uk", store)
	require.NoError(t, err)

	assert.Equal(t, "dev-uk", mf.Region)
	assert.Equal(t, "2.0.0", mf.Version)
	assert.Equal(t, "dev", mf.Env["MODE"])
	assert.Equal(t, "secret123", mf.Env["API_KEY"])
	// Region default env filled the gap left by the base manifest.
	assert.Equal(t, "https://core.dev.example.com", mf.Env["CORE_URL"])
	require.NoError(t, mf.Verify(testConfig()))
}

func TestFillWithoutStoreKeepsPlaceholders(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", fakeAskYAML)

	mf, err := Completed(context.Background(), testConfig(), root, "fake-ask", "dev-uk", nil)
	require.NoError(t, err)

	// Schema-only mode: placeholders survive and verification still runs.
	assert.Equal(t, InVault, mf.Env["API_KEY"])
	require.NoError(t, mf.Verify(testConfig()))
}

func TestValidateSequential(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", fakeAskYAML)
	writeService(t, root, "fake-storage", fakeStorageYAML)

	err := Validate(context.Background(), testConfig(), root, []string{"fake-storage", "fake-ask"}, "dev-uk", nil)
	assert.NoError(t, err)
}

func TestValidateStopsAtFirstFailure(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", fakeAskYAML)
	writeService(t, root, "broken", "name: broken\nregions: [dev-uk]\n")

	err := Validate(context.Background(), testConfig(), root, []string{"broken", "fake-ask"}, "dev-uk", nil)
	require.Error(t, err)
	// The failing service is named in the error.
	assert.Contains(t, err.Error(), "broken")
}

func TestValidateUnsupportedRegion(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", fakeAskYAML)

	// fake-ask only lists dev-uk and prod-eu; prod-eu is fine, but a
	// service not configured for the region is a hard failure.
	writeService(t, root, "dev-only", `
name: dev-only
metadata:
  team: platform
  repo: https://git.example.com/dev-only
resources:
  requests:
    cpu: 100m
    memory: 128Mi
  limits:
    cpu: 500m
    memory: 512Mi
regions:
  - dev-uk
`)

	err := Validate(context.Background(), testConfig(), root, []string{"dev-only"}, "prod-eu", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedRegion)
}

func TestValidateExternalOutsideItsRegions(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-storage", fakeStorageYAML)

	// External services still get the reduced verification even when
	// the requested region is not in their list.
	err := Validate(context.Background(), testConfig(), root, []string{"fake-storage"}, "prod-eu", nil)
	assert.NoError(t, err)
}

func TestValidateParallel(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", fakeAskYAML)
	writeService(t, root, "fake-storage", fakeStorageYAML)
	store := &fakeStore{values: map[string]string{
		"dev-uk/fake-ask/API_KEY": "secret123",
	}}

	err := ValidateParallel(context.Background(), testConfig(), root, []string{"fake-ask", "fake-storage"}, "dev-uk", store, 4)
	assert.NoError(t, err)
}

func TestValidateParallelSurfacesFailure(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", fakeAskYAML)
	writeService(t, root, "broken", "name: broken\nregions: [dev-uk]\n")

	err := ValidateParallel(context.Background(), testConfig(), root, []string{"fake-ask", "broken"}, "dev-uk", nil, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
