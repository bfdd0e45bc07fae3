package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/purser-dev/purser/internal/render"
	"github.com/purser-dev/purser/internal/ui"
)

var (
	valuesRegion  string
	valuesOutput  string
	valuesVersion string
)

// valuesCmd represents the values command.
var valuesCmd = &cobra.Command{
	Use:   "values <service>",
	Short: "Emit resolved helm values for a service",
	Long: `Resolve a service manifest for a region and serialize it as helm
values yaml, with config map files pre-rendered inline.

Output goes to stdout unless -o names a file.

Examples:
  purser values -r dev-uk fake-ask
  purser values -r dev-uk -o values.yaml --tag 1.2.3 fake-ask`,
	Args: cobra.ExactArgs(1),
	Run:  runValues,
}

func init() {
	valuesCmd.Flags().StringVarP(&valuesRegion, "region", "r", "", "Region to resolve for (required)")
	valuesCmd.Flags().StringVarP(&valuesOutput, "output", "o", "", "Write values to this file instead of stdout")
	valuesCmd.Flags().StringVar(&valuesVersion, "tag", "", "Override the image version")
	valuesCmd.Flags().StringVar(&flagSecretsFile, "secrets", "", "SOPS-encrypted secrets file to resolve placeholders from")
	valuesCmd.Flags().BoolVar(&flagVault, "vault", false, "Resolve placeholders from vault (VAULT_ADDR/VAULT_TOKEN)")
	valuesCmd.Flags().StringVar(&flagVaultMount, "vault-mount", "secret", "Vault KV mount holding the secrets")
	valuesCmd.MarkFlagRequired("region")

	rootCmd.AddCommand(valuesCmd)
}

func runValues(cmd *cobra.Command, args []string) {
	conf, root, err := loadProject()
	if err != nil {
		ui.Fatal("%v", err)
	}
	store, err := buildStore()
	if err != nil {
		ui.Fatal("%v", err)
	}

	dep, err := newDeployment(context.Background(), conf, root, args[0], valuesRegion, valuesVersion, store)
	if err != nil {
		ui.Fatal("%v", err)
	}
	if err := dep.Manifest.Verify(conf); err != nil {
		ui.Fatal("%v", err)
	}
	if _, err := render.HelmValues(dep, valuesOutput); err != nil {
		ui.Fatal("%v", err)
	}
}
