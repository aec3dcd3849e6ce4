package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghinsights/internal/adapter/github"
	"github.com/m-zajac/ghinsights/internal/api/http/limiter"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

// cli holds state shared by all commands. It's filled before any command runs.
type cli struct {
	conf Config
	l    *logrus.Logger

	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "ghinsights",
		Short: "Dashboards for github profiles and repositories",
		Long: `ghinsights turns a github profile or repository link into a dashboard:
KPI tiles, language proportions, commit activity and issue/PR mix.
Configuration is read from environment and optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "", "log format (text or json), overrides LOG_FORMAT")

	cmd.AddCommand(
		newServeCmd(c),
		newQueryCmd(c),
		newShellCmd(c),
	)

	return cmd
}

func (c *cli) init(logOut io.Writer) error {
	if err := envconfig.Process("", &c.conf); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if c.logLevel != "" {
		c.conf.LogLevel = c.logLevel
	}
	if c.logFormat != "" {
		c.conf.LogFormat = c.logFormat
	}

	l, err := newLogger(c.conf.LogLevel, c.conf.LogFormat, logOut)
	if err != nil {
		return err
	}
	c.l = l

	return nil
}

// newService wires github client and app service.
func (c *cli) newService() *app.Service {
	httpClient := &http.Client{
		Timeout: c.conf.GithubTimeout,
	}
	if c.conf.GithubAPIToken != "" {
		httpClient.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.conf.GithubAPIToken}),
		}
	} else {
		c.l.Warn("github token not set, api rate limit is low")
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		c.conf.GithubAPIRateLimit,
	)

	githubClient := github.NewClient(
		limitedHTTPClient,
		c.conf.GithubAPIAddress,
	)

	return app.NewService(
		githubClient,
		c.conf.ServiceResponseTimeout,
	)
}

func newLogger(level string, format string, out io.Writer) (*logrus.Logger, error) {
	l := logrus.New()
	l.Out = out

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	l.Level = lvl

	switch format {
	case "", "text":
		l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	case "json":
		l.Formatter = &logrus.JSONFormatter{}
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return l, nil
}
