package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lime816/whatsappsuitetest-sub002"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of flowsuite",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "flowsuite version %s (flow %s, data api %s)\n",
			flowsuite.Version, domain.FlowVersion, domain.DataAPIVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
