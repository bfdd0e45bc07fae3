// Package cmd provides the CLI commands for purser.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/purser-dev/purser/internal/config"
)

const version = "0.3.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "purser",
	Short: "Resolve, validate and render service deployment manifests",
	Long: `purser - deployment manifest toolkit

Resolves per-service deployment manifests through implicit defaulting,
region override merging and secret injection, validates the result, and
renders it into helm values or kubernetes deployment artifacts.

MANIFEST COMMANDS
  validate [services...]  Resolve and verify manifests for a region
  values <service>        Emit resolved helm values
  generate <service>      Render the deployment template
  gdpr <service>          Show cascaded data handling policy
  services                List services in the catalog`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("purser version {{.Version}}\n")
}

// loadProject locates the project root and loads the global config.
func loadProject() (*config.Config, string, error) {
	root, err := config.FindRoot()
	if err != nil {
		return nil, "", err
	}
	conf, err := config.Load(filepath.Join(root, config.ConfigFile))
	if err != nil {
		return nil, "", err
	}
	return conf, root, nil
}
