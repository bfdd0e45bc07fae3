package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/purser-dev/purser/internal/catalog"
	"github.com/purser-dev/purser/internal/manifest"
	"github.com/purser-dev/purser/internal/ui"
)

var (
	validateRegion   string
	validateParallel int
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate [services...]",
	Short: "Resolve and verify service manifests for a region",
	Long: `Resolve each named service manifest for a region and verify it.

Resolution applies implicit defaults, merges the region override file
when one exists, and injects secrets when a secret store is configured.
Without a store, secret placeholders stay in place and only the schema
is validated.

With no services given, every service in the catalog is validated.
Validation is sequential and stops at the first broken service; --jobs
validates services concurrently instead, still reporting one failure.

Examples:
  purser validate -r dev-uk fake-ask
  purser validate -r dev-uk --secrets secrets.sops.yaml
  purser validate -r prod-eu --vault --jobs 8`,
	Run: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateRegion, "region", "r", "", "Region to validate for (required)")
	validateCmd.Flags().IntVarP(&validateParallel, "jobs", "j", 0, "Validate up to N services concurrently (0 = sequential)")
	validateCmd.Flags().StringVar(&flagSecretsFile, "secrets", "", "SOPS-encrypted secrets file to resolve placeholders from")
	validateCmd.Flags().BoolVar(&flagVault, "vault", false, "Resolve placeholders from vault (VAULT_ADDR/VAULT_TOKEN)")
	validateCmd.Flags().StringVar(&flagVaultMount, "vault-mount", "secret", "Vault KV mount holding the secrets")
	validateCmd.MarkFlagRequired("region")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	conf, root, err := loadProject()
	if err != nil {
		ui.Fatal("%v", err)
	}

	services := args
	if len(services) == 0 {
		services, err = catalog.ListServices(root)
		if err != nil {
			ui.Fatal("%v", err)
		}
	}

	store, err := buildStore()
	if err != nil {
		ui.Fatal("%v", err)
	}

	ctx := context.Background()
	if validateParallel > 0 {
		err = manifest.ValidateParallel(ctx, conf, root, services, validateRegion, store, validateParallel)
	} else {
		err = manifest.Validate(ctx, conf, root, services, validateRegion, store)
	}
	if err != nil {
		ui.Fatal("%v", err)
	}
	ui.Success("%d service(s) valid for %s", len(services), validateRegion)
}
