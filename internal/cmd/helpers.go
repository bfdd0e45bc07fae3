package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/purser-dev/purser/internal/catalog"
	"github.com/purser-dev/purser/internal/config"
	"github.com/purser-dev/purser/internal/manifest"
	"github.com/purser-dev/purser/internal/render"
	"github.com/purser-dev/purser/internal/secrets"
)

// Secret store selection flags, shared by the resolving commands.
var (
	flagSecretsFile string
	flagVault       bool
	flagVaultMount  string
)

// buildStore picks the secret store backend from flags: a sops file when
// given, vault when requested, otherwise none (placeholders stay as-is).
func buildStore() (manifest.SecretStore, error) {
	if flagSecretsFile != "" {
		return secrets.NewSopsStore(flagSecretsFile)
	}
	if flagVault {
		return secrets.NewVaultStore(secrets.VaultConfig{
			Address: os.Getenv("VAULT_ADDR"),
			Token:   os.Getenv("VAULT_TOKEN"),
			Mount:   flagVaultMount,
		})
	}
	return nil, nil
}

// newDeployment resolves a service for a region and binds it to a sprig
// template engine. Shared templates live under root/templates; a
// service's own templates under services/<name>/templates shadow them.
func newDeployment(ctx context.Context, conf *config.Config, root, service, region, version string, store manifest.SecretStore) (*render.Deployment, error) {
	mf, err := manifest.Completed(ctx, conf, root, service, region, store)
	if err != nil {
		return nil, err
	}

	engine, err := render.NewEngine(
		filepath.Join(root, "templates"),
		filepath.Join(catalog.ServiceDir(root, service), "templates"),
	)
	if err != nil {
		return nil, err
	}

	reg := conf.Regions[region]
	return &render.Deployment{
		Service:   service,
		Region:    region,
		Manifest:  mf,
		Version:   version,
		Renderer:  engine,
		Namespace: reg.Namespace,
		EnvName:   reg.Environment,
	}, nil
}
