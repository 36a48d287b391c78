package types

import "time"

// processStartedAt is captured once when the binary starts and never written again.
var processStartedAt = time.Now()

// ProcessStartedAt returns the time the process started
func ProcessStartedAt() time.Time {
	return processStartedAt
}

// Uptime returns the process uptime in seconds as of now.
// A now earlier than the start time yields 0.
func Uptime(now time.Time) float64 {
	d := now.Sub(processStartedAt)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}
