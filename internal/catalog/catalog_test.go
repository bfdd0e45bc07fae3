package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListServices(t *testing.T) {
	root := t.TempDir()
	for _, svc := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "services", svc), 0755))
	}
	// Stray files next to service directories are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(root, "services", "README.md"), []byte("x"), 0644))

	names, err := ListServices(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestListServicesMissingDir(t *testing.T) {
	_, err := ListServices(t.TempDir())
	assert.Error(t, err)
}

func TestServiceDir(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "services", "fake-ask"), ServiceDir("root", "fake-ask"))
}
