package manifest

import (
	"context"
	"fmt"
)

// InVault is the sentinel env value marking an entry whose real value
// lives in the secret store. It must round-trip through the same yaml
// schema as ordinary env values, so it stays a plain string rather than
// a dedicated type. Only an exact match is treated as a placeholder.
const InVault = "IN_VAULT"

// SecretStore resolves secret keys of the form {region}/{service}/{env}.
type SecretStore interface {
	Read(ctx context.Context, key string) (string, error)
}

// InjectSecrets replaces every InVault env placeholder with the value
// read from the secret store. The store scope is the manifest's vault
// options when declared, otherwise the service name and the given region.
//
// The first failed lookup aborts the stage; a partially substituted
// manifest is never safe to use downstream. Resolved keys are recorded
// in DecodedSecrets for audit.
func (m *Manifest) InjectSecrets(ctx context.Context, store SecretStore, region string) error {
	svc, reg := m.Name, region
	if m.Vault != nil {
		svc = m.Vault.Name
		if m.Vault.Region != "" {
			reg = m.Vault.Region
		}
	}

	for k, v := range m.Env {
		if v != InVault {
			continue
		}
		key := fmt.Sprintf("%s/%s/%s", reg, svc, k)
		secret, err := store.Read(ctx, key)
		if err != nil {
			return fmt.Errorf("inject secret %s: %w", key, err)
		}
		m.Env[k] = secret
		if m.DecodedSecrets == nil {
			m.DecodedSecrets = make(map[string]string)
		}
		m.DecodedSecrets[key] = secret
	}
	return nil
}
