package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt-helloworld/pkg/cli/config"
	controller "github.com/m-mizutani/gt-helloworld/pkg/controller/http"
	"github.com/m-mizutani/gt-helloworld/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		sentryCfg config.Sentry
	)

	flags := append(serverCfg.Flags(), sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			addr, err := serverCfg.Addr()
			if err != nil {
				return err
			}

			logger.Info("Starting gt-helloworld server",
				slog.String("addr", addr),
				slog.Any("sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}
			if sentryCfg.Enabled() {
				defer sentry.Flush(2 * time.Second)
			}

			server, err := controller.NewServer(
				ctx,
				usecase.NewGreeting(),
				controller.WithAddr(addr),
				controller.WithSentry(sentryCfg.Enabled()),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return goerr.Wrap(err, "failed to listen", goerr.V("addr", addr))
			}

			ready := func(bound net.Addr) {
				url := "http://" + publicAddr(serverCfg.Host, bound) + "/"
				logger.Info("HTTP server ready", slog.String("url", url))
				printBanner(c.Root().Writer, url)
			}

			return serveUntilDone(ctx, server, ln, serverCfg.ShutdownTimeout, ready)
		},
	}
}

// serveUntilDone serves on ln until ctx is cancelled or SIGINT/SIGTERM arrives,
// then stops accepting and waits for in-flight requests. timeout 0 waits without limit.
func serveUntilDone(
	ctx context.Context,
	server *controller.Server,
	ln net.Listener,
	timeout time.Duration,
	ready func(net.Addr),
) error {
	logger := ctxlog.From(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	if ready != nil {
		ready(ln.Addr())
	}

	select {
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		logger.Info("Received signal, shutting down gracefully...", slog.Any("signal", sig))
	case err := <-errChan:
		return goerr.Wrap(err, "HTTP server stopped unexpectedly")
	}

	// ctx may already be cancelled here; draining must not inherit that
	shutdownCtx := context.WithoutCancel(ctx)
	if timeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, timeout)
		defer cancel()
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully", goerr.V("timeout", timeout))
	}

	if err, ok := <-errChan; ok && err != nil {
		return goerr.Wrap(err, "HTTP server stopped unexpectedly")
	}

	logger.Info("Server closed")
	return nil
}

// publicAddr joins the configured host with the port actually bound
func publicAddr(host string, addr net.Addr) string {
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	if host == "" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
