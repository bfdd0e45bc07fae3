package secrets

import (
	"context"
	"fmt"
	"strings"

	"github.com/getsops/sops/v3/decrypt"
	"gopkg.in/yaml.v3"
)

// SopsStore serves secrets from a SOPS-encrypted yaml file, decrypted
// once at construction. It allows resolving manifests on machines that
// have sops keys but no vault credentials.
//
// The file mirrors the vault layout as nested maps:
//
//	dev-uk:
//	  fake-ask:
//	    API_KEY: secret123
type SopsStore struct {
	data map[string]any
}

// NewSopsStore decrypts and parses the given file.
func NewSopsStore(path string) (*SopsStore, error) {
	plain, err := decrypt.File(path, "yaml")
	if err != nil {
		return nil, fmt.Errorf("sops decrypt %s: %w", path, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(plain, &data); err != nil {
		return nil, fmt.Errorf("parse decrypted %s: %w", path, err)
	}
	return &SopsStore{data: data}, nil
}

// Read walks the nested maps along the key's path segments.
func (s *SopsStore) Read(ctx context.Context, key string) (string, error) {
	node := any(s.data)
	for _, part := range strings.Split(key, "/") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
		}
		node, ok = m[part]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
		}
	}
	value, ok := node.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrSecretNotFound, key)
	}
	return value, nil
}
