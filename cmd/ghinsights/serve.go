package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/m-zajac/ghinsights/internal/api/grpc"
	"github.com/m-zajac/ghinsights/internal/api/http"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run http and grpc servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			service := c.newService()

			mux := http.NewMux(service, c.conf.HTTPHandlerTimeout, c.l.WithField("component", "mux"))
			server := http.NewServer(
				c.conf.HTTPServerAddress,
				c.conf.HTTPProfileServerAddress,
				mux,
				c.l.WithField("component", "httpServer"),
			)

			grpcServer := grpc.NewServer(
				grpc.NewService(service),
				c.conf.GRPCServerAddress,
				c.l.WithField("component", "grpcServer"),
			)

			// Failure of one server stops the other one.
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return server.Run(gctx)
			})
			g.Go(func() error {
				return grpcServer.Run(gctx)
			})

			return g.Wait()
		},
	}
}
