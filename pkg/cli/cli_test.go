package cli_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/gt-helloworld/pkg/cli"
)

func TestRun_Serve(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := cli.Run(ctx, []string{"gt-helloworld", "serve", "--host", "127.0.0.1", "--port", "0"})
	gt.NoError(t, err)
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "port out of range",
			args: []string{"gt-helloworld", "serve", "--port", "70000"},
		},
		{
			name: "invalid log level",
			args: []string{"gt-helloworld", "--log-level", "verbose", "serve", "--port", "0"},
		},
		{
			name: "negative shutdown timeout",
			args: []string{"gt-helloworld", "serve", "--port", "0", "--shutdown-timeout", "-1s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Error(t, cli.Run(context.Background(), tt.args))
		})
	}
}

func TestRun_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "70000")
	gt.Error(t, cli.Run(context.Background(), []string{"gt-helloworld", "serve"}))
}
