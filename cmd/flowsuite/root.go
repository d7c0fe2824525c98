package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/lime816/whatsappsuitetest-sub002"
	"github.com/lime816/whatsappsuitetest-sub002/internal/cli"
	"github.com/lime816/whatsappsuitetest-sub002/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "flowsuite",
	Short: "Flowsuite compiles and validates multi-screen interactive forms",
	Long: `Flowsuite turns screen definitions written in YAML or JSON into the
platform flow document, enforcing content and count limits along the way.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

type env struct {
	cfg    config.Config
	logger *slog.Logger
	suite  *flowsuite.Suite
}

// setup loads config and builds the logger and suite every command shares.
func setup(cmd *cobra.Command, reg prometheus.Registerer) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := cli.LoadConfig(cli.Options{ConfigPath: path, Debug: debug})
	if err != nil {
		return nil, err
	}
	logger, err := cli.CreateLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	suite, err := cli.CreateSuite(cfg, logger, reg)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, suite: suite}, nil
}

// loadFlow reads and parses the flow named by args[0], or stdin.
func (e *env) loadFlow(cmd *cobra.Command, args []string) ([]byte, error) {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	return cli.ReadSource(path, cmd.InOrStdin())
}
