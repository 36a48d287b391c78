package config

import (
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt-helloworld/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string `masq:"secret"`
	Env string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN. Error reporting is disabled when empty",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("GT_HELLOWORLD_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Destination: &c.Env,
			Sources:     cli.EnvVars("GT_HELLOWORLD_SENTRY_ENV"),
		},
	}
}

// Enabled reports whether a DSN is configured
func (c *Sentry) Enabled() bool {
	return c.DSN != ""
}

// Configure initializes the Sentry client. It is a no-op when no DSN is set.
func (c *Sentry) Configure() error {
	if !c.Enabled() {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Env,
		Release:     types.Version,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry", goerr.V("env", c.Env))
	}

	return nil
}
