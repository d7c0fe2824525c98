package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lime816/whatsappsuitetest-sub002/internal/cli"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file|-]",
	Short: "Compile screens into a flow document",
	Long: `Parses the screen definitions, validates them and prints the platform
flow JSON. Reads stdin when no file is given or the file is "-".`,
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

		ctx := cmd.Context()
		if skip, _ := cmd.Flags().GetBool("skip-validation"); !skip {
			res := e.suite.ValidateFlow(ctx, screens)
			if !res.IsValid {
				if err := cli.PrintReport(os.Stderr, sourceName(args), res); err != nil {
					return err
				}
				return fmt.Errorf("flow has %d validation errors", len(res.Errors))
			}
		}

		out, err := e.suite.Export(ctx, screens)
		if err != nil {
			return err
		}
		if indent, _ := cmd.Flags().GetBool("indent"); indent {
			var buf bytes.Buffer
			if err := json.Indent(&buf, out, "", "  "); err != nil {
				return err
			}
			out = buf.Bytes()
		}
		out = append(out, '\n')

		if path, _ := cmd.Flags().GetString("output"); path != "" {
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			cli.PrintSystemMessage(cmd.ErrOrStderr(), "compiled %d screens into %s", len(screens), path)
			return nil
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	compileCmd.Flags().Bool("indent", false, "Pretty-print the document")
	compileCmd.Flags().Bool("skip-validation", false, "Compile without checking content limits")
}

func sourceName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "stdin"
	}
	return args[0]
}
