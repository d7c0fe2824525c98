package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/catalog"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/wire"
)

var newCmd = &cobra.Command{
	Use:   "new <kind>",
	Short: "Print a default element of the given kind",
	Long:  `Creates an element with the catalog defaults and prints its wire form.`,
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, k := range domain.Kinds() {
			names = append(names, k.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}

		var opts []catalog.Option
		if next, _ := cmd.Flags().GetString("next-screen"); next != "" {
			opts = append(opts, catalog.WithNextScreen(next))
		}
		el, err := e.suite.CreateDefault(domain.Kind(args[0]), opts...)
		if err != nil {
			return err
		}
		m, err := wire.ElementMap(el)
		if err != nil {
			return fmt.Errorf("failed to encode element: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().String("next-screen", "", "Navigation target for footers")
}
