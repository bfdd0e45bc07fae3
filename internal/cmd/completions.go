package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/purser-dev/purser/internal/catalog"
)

// completeServiceNames completes service name arguments from the catalog.
func completeServiceNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	_, root, err := loadProject()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	services, err := catalog.ListServices(root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, s := range services {
		if strings.HasPrefix(s, toComplete) {
			names = append(names, s)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeRegionNames completes the --region flag from the global config.
func completeRegionNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	conf, _, err := loadProject()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, r := range conf.RegionNames() {
		if strings.HasPrefix(r, toComplete) {
			names = append(names, r)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	for _, c := range []*cobra.Command{valuesCmd, generateCmd, gdprCmd, validateCmd} {
		c.ValidArgsFunction = completeServiceNames
		c.RegisterFlagCompletionFunc("region", completeRegionNames)
	}
}
