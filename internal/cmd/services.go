package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/purser-dev/purser/internal/catalog"
	"github.com/purser-dev/purser/internal/ui"
)

// servicesCmd represents the services command.
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List services in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		_, root, err := loadProject()
		if err != nil {
			ui.Fatal("%v", err)
		}
		names, err := catalog.ListServices(root)
		if err != nil {
			ui.Fatal("%v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}
