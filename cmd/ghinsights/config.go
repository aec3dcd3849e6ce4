package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HTTPHandlerTimeout - timeout for single http request handling
	HTTPHandlerTimeout time.Duration `default:"60s"`

	// GRPCServerAddress - listen address for grpc server
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for single insights query
	ServiceResponseTimeout time.Duration `default:"30s"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `envconfig:"GITHUB_TOKEN" default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls, zero disables limiting
	GithubAPIRateLimit float64 `default:"10"`

	// GithubTimeout - timeout for single github api call
	GithubTimeout time.Duration `default:"30s"`

	// LogLevel - logrus level name
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat - "text" or "json"
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}
