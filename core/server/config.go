package server

import (
	"net"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind. Empty binds every interface.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// RequestTimeoutSeconds bounds how long a single request may run.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"120"`
}

// Address returns the listen address.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// RequestTimeout returns the request timeout, defaulting to two minutes.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 2 * time.Minute
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
