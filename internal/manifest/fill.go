package manifest

import (
	"context"
	"os"

	"github.com/purser-dev/purser/internal/config"
)

// Fill resolves a loaded base manifest for a region: implicits first,
// then the region override file when one exists, then secret injection
// when a store is configured.
//
// A nil store skips secret injection entirely, leaving InVault
// placeholders in place. That mode supports schema-only validation
// without secret store credentials.
func (m *Manifest) Fill(ctx context.Context, conf *config.Config, root, region string, store SecretStore) error {
	if err := m.Implicits(conf, region); err != nil {
		return err
	}

	override := OverridePath(root, m.Name, region)
	if _, err := os.Stat(override); err == nil {
		if err := m.MergeOverride(override); err != nil {
			return err
		}
	}

	if store != nil {
		if err := m.InjectSecrets(ctx, store, region); err != nil {
			return err
		}
	}
	return nil
}

// Completed loads and fully resolves a service manifest for a region.
func Completed(ctx context.Context, conf *config.Config, root, service, region string, store SecretStore) (*Manifest, error) {
	mf, err := LoadService(root, service)
	if err != nil {
		return nil, err
	}
	if err := mf.Fill(ctx, conf, root, region, store); err != nil {
		return nil, err
	}
	return mf, nil
}

// Basic loads a service manifest and applies implicits only. The region
// may be empty, in which case the manifest stays unbound.
func Basic(conf *config.Config, root, service, region string) (*Manifest, error) {
	mf, err := LoadService(root, service)
	if err != nil {
		return nil, err
	}
	if err := mf.Implicits(conf, region); err != nil {
		return nil, err
	}
	return mf, nil
}
