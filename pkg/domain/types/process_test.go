package types_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/gt-helloworld/pkg/domain/types"
)

func TestUptime(t *testing.T) {
	started := types.ProcessStartedAt()

	t.Run("grows with elapsed time", func(t *testing.T) {
		uptime := types.Uptime(started.Add(1500 * time.Millisecond))
		gt.Value(t, uptime).Equal(1.5)
	})

	t.Run("never negative", func(t *testing.T) {
		uptime := types.Uptime(started.Add(-time.Hour))
		gt.Value(t, uptime).Equal(0.0)
	})

	t.Run("start time is stable", func(t *testing.T) {
		gt.Value(t, types.ProcessStartedAt()).Equal(started)
	})
}
