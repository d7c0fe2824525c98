package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/lime816/whatsappsuitetest-sub002"
	"github.com/lime816/whatsappsuitetest-sub002/internal/cli"
	"github.com/lime816/whatsappsuitetest-sub002/internal/presentation/tui"
	httpAdapter "github.com/lime816/whatsappsuitetest-sub002/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Exposes compilation, validation and the element catalog as a JSON API over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		e, err := setup(cmd, reg)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			e.cfg.Server.Addr = addr
		}

		handler := httpAdapter.NewHandler(e.suite,
			httpAdapter.WithLogger(e.logger),
			httpAdapter.WithMetrics(reg),
		)

		tui.PrintBanner(cmd.ErrOrStderr(), flowsuite.Version)

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		if err := cli.Serve(ctx, e.cfg.Server, handler, nil, e.logger); err != nil {
			return err
		}
		if sig := ctx.Signal(); sig != nil {
			e.logger.Info("Server stopped", "signal", sig.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (overrides server.addr)")
}
