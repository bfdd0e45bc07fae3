// Package catalog discovers the services available under a project root.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ListServices returns the sorted names of every service directory under
// root/services.
func ListServices(root string) ([]string, error) {
	svcDir := filepath.Join(root, "services")
	entries, err := os.ReadDir(svcDir)
	if err != nil {
		return nil, fmt.Errorf("read services directory %s: %w", svcDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ServiceDir returns the directory holding a service's manifest files.
func ServiceDir(root, service string) string {
	return filepath.Join(root, "services", service)
}
