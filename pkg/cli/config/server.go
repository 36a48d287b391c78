package config

import (
	"net"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "host",
			Usage:       "Host to listen on",
			Value:       "localhost",
			Destination: &c.Host,
			Sources:     cli.EnvVars("HOST"),
		},
		&cli.IntFlag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "Port to listen on",
			Value:       3000,
			Destination: &c.Port,
			Sources:     cli.EnvVars("PORT"),
			Validator:   validatePort,
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "Max time to wait for in-flight requests on shutdown (0 waits until they finish)",
			Value:       0,
			Destination: &c.ShutdownTimeout,
			Sources:     cli.EnvVars("GT_HELLOWORLD_SHUTDOWN_TIMEOUT"),
		},
	}
}

// Addr returns the listen address in host:port form
func (c *Server) Addr() (string, error) {
	if err := validatePort(c.Port); err != nil {
		return "", err
	}
	if c.ShutdownTimeout < 0 {
		return "", goerr.New("shutdown timeout must not be negative", goerr.V("timeout", c.ShutdownTimeout))
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port)), nil
}

func validatePort(port int) error {
	if port < 0 || port > 65535 {
		return goerr.New("port out of range", goerr.V("port", port))
	}
	return nil
}
