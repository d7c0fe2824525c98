package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lime816/whatsappsuitetest-sub002"
)

var graphCmd = &cobra.Command{
	Use:   "graph [file|-]",
	Short: "Export the screen graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the navigation between screens.
Screens with validation errors are highlighted unless --plain is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		data, err := e.loadFlow(cmd, args)
		if err != nil {
			return err
		}
		screens, err := e.suite.Parse(data)
		if err != nil {
			return err
		}

		var overlay *flowsuite.GraphOverlay
		if plain, _ := cmd.Flags().GetBool("plain"); !plain {
			overlay = &flowsuite.GraphOverlay{}
			res := e.suite.ValidateFlow(cmd.Context(), screens)
			for _, is := range res.Errors {
				if is.ScreenID != "" {
					overlay.InvalidScreens = append(overlay.InvalidScreens, is.ScreenID)
				}
			}
			overlay.ActiveScreen, _ = cmd.Flags().GetString("active")
		}

		fmt.Fprint(cmd.OutOrStdout(), e.suite.Graph(screens, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("plain", false, "Skip the validation overlay")
	graphCmd.Flags().String("active", "", "Highlight the given screen")
}
