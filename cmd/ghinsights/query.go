package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghinsights/internal/api/grpc"
	"github.com/m-zajac/ghinsights/internal/chart"
	"github.com/m-zajac/ghinsights/internal/render"
	"github.com/spf13/cobra"
)

func newQueryCmd(c *cli) *cobra.Command {
	var (
		remote string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "query <github link>",
		Short: "Print dashboard for github profile or repository",
		Example: `  ghinsights query https://github.com/spf13/cobra
  ghinsights query octocat --json
  ghinsights query octocat/Hello-World --remote localhost:9090`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			var (
				d   chart.Dashboard
				err error
			)
			if remote != "" {
				d, err = queryRemote(cmd.Context(), remote, input)
			} else {
				d, err = c.queryLocal(cmd.Context(), input)
			}
			if err != nil {
				return err
			}

			return printDashboard(cmd.OutOrStdout(), d, asJSON)
		},
	}
	cmd.Flags().StringVar(&remote, "remote", "", "grpc server address (host:port), query runs in process if empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print dashboard as json")

	return cmd
}

func (c *cli) queryLocal(ctx context.Context, input string) (chart.Dashboard, error) {
	report, err := c.newService().Insights(ctx, input)
	if err != nil {
		return chart.Dashboard{}, err
	}

	return chart.Build(report), nil
}

func queryRemote(ctx context.Context, address string, input string) (chart.Dashboard, error) {
	client, err := grpc.NewClient(address)
	if err != nil {
		return chart.Dashboard{}, err
	}
	defer client.Close()

	return client.Query(ctx, input)
}

func printDashboard(w io.Writer, d chart.Dashboard, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprint(w, render.Dashboard(d))
		return err
	}

	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dashboard: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))

	return err
}
