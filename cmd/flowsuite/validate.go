package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lime816/whatsappsuitetest-sub002/internal/cli"
)

var errInvalid = errors.New("flow is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Check screens against content and count limits",
	Long: `Validates every element and screen and prints a report. Errors make
the flow invalid; warnings are informational. With --watch the file is
re-validated whenever it changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		name := sourceName(args)

		check := func(data []byte) error {
			screens, err := e.suite.Parse(data)
			if err != nil {
				return err
			}
			res := e.suite.ValidateFlow(cmd.Context(), screens)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else if err := cli.PrintReport(cmd.OutOrStdout(), name, res); err != nil {
				return err
			}
			if !res.IsValid {
				return errInvalid
			}
			return nil
		}

		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			if name == "stdin" {
				return errors.New("--watch needs a file")
			}
			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()

			cli.PrintSystemMessage(cmd.ErrOrStderr(), "watching %s", name)
			err := cli.Watch(ctx, name, func(data []byte, err error) {
				if err == nil {
					err = check(data)
				}
				if err != nil && !errors.Is(err, errInvalid) {
					cli.PrintSystemMessage(cmd.ErrOrStderr(), "error: %v", err)
				}
			})
			if err != nil {
				return err
			}
			if sig := ctx.Signal(); sig != nil {
				cli.PrintSystemMessage(cmd.ErrOrStderr(), "stopped (%v)", sig)
			}
			return nil
		}

		data, err := e.loadFlow(cmd, args)
		if err != nil {
			return err
		}
		if err := check(data); err != nil {
			if errors.Is(err, errInvalid) {
				// The report already says why; the error only sets the exit code.
				cmd.SilenceErrors = true
				return err
			}
			return fmt.Errorf("validation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("json", false, "Print the result as JSON")
	validateCmd.Flags().BoolP("watch", "w", false, "Re-validate when the file changes")
}
