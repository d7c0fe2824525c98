package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [file|-]",
	Short: "Print the OpenAPI document of the data exchange endpoint",
	Long: `Derives the data model from the screens and describes the endpoint
that serves it as an OpenAPI 3 document.`,
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

		title, _ := cmd.Flags().GetString("title")
		spec, err := e.suite.Schema(cmd.Context(), title, screens)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(spec)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().String("title", "Flow data exchange", "Title of the generated document")
}
