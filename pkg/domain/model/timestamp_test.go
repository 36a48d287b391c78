package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/gt-helloworld/pkg/domain/model"
)

func TestFormatTimestamp(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	ts := time.Date(2024, 5, 1, 21, 34, 56, 789_000_000, jst)

	got := model.FormatTimestamp(ts)
	gt.Value(t, got).Equal("2024-05-01T12:34:56.789Z")

	parsed, err := time.Parse(time.RFC3339Nano, got)
	gt.NoError(t, err)
	gt.True(t, parsed.Equal(ts))
}
