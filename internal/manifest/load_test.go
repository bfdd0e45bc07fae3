package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeAskYAML = `
name: fake-ask
version: 1.0.0
metadata:
  team: platform
  repo: https://git.example.com/fake-ask
resources:
  requests:
    cpu: 100m
    memory: 128Mi
  limits:
    cpu: 500m
    memory: 512Mi
regions:
  - dev-uk
  - prod-eu
httpPort: 8080
health:
  uri: /status
env:
  API_KEY: IN_VAULT
  MODE: standard
`

func TestLoadService(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", fakeAskYAML)

	mf, err := LoadService(root, "fake-ask")
	require.NoError(t, err)

	assert.Equal(t, "fake-ask", mf.Name)
	assert.Equal(t, "1.0.0", mf.Version)
	require.NotNil(t, mf.HTTPPort)
	assert.Equal(t, uint32(8080), *mf.HTTPPort)
	assert.Equal(t, InVault, mf.Env["API_KEY"])
}

func TestLoadServiceHealthDefaults(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", `
name: fake-ask
health:
  uri: /status
`)

	mf, err := LoadService(root, "fake-ask")
	require.NoError(t, err)
	// Unset wait takes the documented default.
	assert.Equal(t, "/status", mf.Health.URI)
	assert.Equal(t, uint32(30), mf.Health.Wait)
}

func TestLoadServiceMissing(t *testing.T) {
	_, err := LoadService(t.TempDir(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingSource)
}

func TestLoadServiceMalformed(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", "{{{not yaml")

	_, err := LoadService(root, "fake-ask")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedSource)
}

func TestLoadServiceIdentityMismatch(t *testing.T) {
	root := t.TempDir()
	writeService(t, root, "fake-ask", "name: other-service\n")

	_, err := LoadService(root, "fake-ask")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIdentityMismatch)
}
