package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/purser-dev/purser/internal/manifest"
	"github.com/purser-dev/purser/internal/ui"
)

var gdprRegion string

// gdprCmd represents the gdpr command.
var gdprCmd = &cobra.Command{
	Use:   "gdpr <service>",
	Short: "Show the cascaded data handling policy for a service",
	Long: `Resolve a service manifest and print its data handling section with
store-level encryption and rotation defaults cascaded into the fields.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conf, root, err := loadProject()
		if err != nil {
			ui.Fatal("%v", err)
		}
		mf, err := manifest.Completed(context.Background(), conf, root, args[0], gdprRegion, nil)
		if err != nil {
			ui.Fatal("%v", err)
		}
		out, err := yaml.Marshal(mf.DataHandling)
		if err != nil {
			ui.Fatal("%v", err)
		}
		fmt.Printf("%s", out)
	},
}

func init() {
	gdprCmd.Flags().StringVarP(&gdprRegion, "region", "r", "", "Region to resolve for (required)")
	gdprCmd.MarkFlagRequired("region")

	rootCmd.AddCommand(gdprCmd)
}
