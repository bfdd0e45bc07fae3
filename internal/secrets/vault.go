package secrets

import (
	"context"
	"fmt"
	"time"

	vapi "github.com/hashicorp/vault/api"
)

// DefaultReadTimeout bounds a single vault read when the caller does not
// configure one. Reads are the only network boundary in the pipeline.
const DefaultReadTimeout = 10 * time.Second

// VaultConfig configures the vault secret store.
type VaultConfig struct {
	// Address of the vault server. Empty falls back to VAULT_ADDR.
	Address string

	// Token used to authenticate. Empty falls back to VAULT_TOKEN.
	Token string

	// Mount is the KV mount point secrets live under.
	Mount string

	// ReadTimeout bounds each read call. Zero means DefaultReadTimeout.
	ReadTimeout time.Duration
}

// VaultStore reads secrets from a HashiCorp Vault KV mount. Safe for
// shared read-only use across goroutines.
type VaultStore struct {
	client  *vapi.Client
	mount   string
	timeout time.Duration
}

// NewVaultStore builds a vault-backed secret store.
func NewVaultStore(cfg VaultConfig) (*VaultStore, error) {
	apiCfg := vapi.DefaultConfig()
	if cfg.Address != "" {
		apiCfg.Address = cfg.Address
	}
	client, err := vapi.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("vault client: %w", err)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	mount := cfg.Mount
	if mount == "" {
		mount = "secret"
	}
	timeout := cfg.ReadTimeout
	if timeout == 0 {
		timeout = DefaultReadTimeout
	}
	return &VaultStore{client: client, mount: mount, timeout: timeout}, nil
}

// Read resolves one logical key under the configured mount. KV v2
// mounts are tried first, then the plain KV v1 path.
func (s *VaultStore) Read(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// KV v2 nests the payload under data.data at mount/data/key.
	sec, err := s.client.Logical().ReadWithContext(ctx, s.mount+"/data/"+key)
	if err == nil && sec != nil && sec.Data != nil {
		if inner, ok := sec.Data["data"].(map[string]any); ok {
			return pickValue(inner, key)
		}
	}

	sec, err = s.client.Logical().ReadWithContext(ctx, s.mount+"/"+key)
	if err != nil {
		return "", fmt.Errorf("vault read %s: %w", key, err)
	}
	if sec == nil || sec.Data == nil {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}
	return pickValue(sec.Data, key)
}

// pickValue extracts the conventional "value" field, falling back to a
// sole field when only one exists.
func pickValue(data map[string]any, key string) (string, error) {
	if v, ok := data["value"]; ok {
		return fmt.Sprintf("%v", v), nil
	}
	if len(data) == 1 {
		for _, v := range data {
			return fmt.Sprintf("%v", v), nil
		}
	}
	return "", fmt.Errorf("%w: %s has no value field", ErrSecretNotFound, key)
}
