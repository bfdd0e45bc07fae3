package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/purser-dev/purser/internal/render"
	"github.com/purser-dev/purser/internal/ui"
)

var (
	generateRegion  string
	generateVersion string
	generateStdout  bool
	generateFile    bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate <service>",
	Short: "Render the deployment template for a service",
	Long: `Resolve a service manifest for a region and render the deployment
template with the full context.

Disabled services emit a minimal placeholder document instead of a
rendered deployment. Output goes to stdout, to OUTPUT/deployment.yaml,
or both.

Examples:
  purser generate -r dev-uk fake-ask
  purser generate -r dev-uk --file --tag 1.2.3 fake-ask`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateRegion, "region", "r", "", "Region to resolve for (required)")
	generateCmd.Flags().StringVar(&generateVersion, "tag", "", "Override the image version")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", true, "Print the rendered artifact to stdout")
	generateCmd.Flags().BoolVar(&generateFile, "file", false, "Write the rendered artifact to the output directory")
	generateCmd.Flags().StringVar(&flagSecretsFile, "secrets", "", "SOPS-encrypted secrets file to resolve placeholders from")
	generateCmd.Flags().BoolVar(&flagVault, "vault", false, "Resolve placeholders from vault (VAULT_ADDR/VAULT_TOKEN)")
	generateCmd.Flags().StringVar(&flagVaultMount, "vault-mount", "secret", "Vault KV mount holding the secrets")
	generateCmd.MarkFlagRequired("region")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	conf, root, err := loadProject()
	if err != nil {
		ui.Fatal("%v", err)
	}
	store, err := buildStore()
	if err != nil {
		ui.Fatal("%v", err)
	}

	dep, err := newDeployment(context.Background(), conf, root, args[0], generateRegion, generateVersion, store)
	if err != nil {
		ui.Fatal("%v", err)
	}
	if err := dep.Check(); err != nil {
		ui.Fatal("%v", err)
	}
	if err := dep.Manifest.Verify(conf); err != nil {
		ui.Fatal("%v", err)
	}
	if _, err := render.GenerateDeployment(dep, root, generateStdout, generateFile); err != nil {
		ui.Fatal("%v", err)
	}
}
