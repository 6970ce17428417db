package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func TestParseDaily(t *testing.T) {
	d, err := ParseDaily("30 6 * * *")
	gt.NoError(t, err).Required()
	gt.Equal(t, d, Daily{Minute: 30, Hour: 6})

	for _, bad := range []string{"", "0 6 * *", "0 6 1 * *", "60 6 * * *", "0 24 * * *", "x 6 * * *"} {
		_, err := ParseDaily(bad)
		gt.Error(t, err)
	}
}

func TestDailyNext(t *testing.T) {
	d := Daily{Minute: 0, Hour: 6}

	before := time.Date(2025, time.January, 15, 5, 59, 0, 0, time.UTC)
	gt.Equal(t, d.Next(before), time.Date(2025, time.January, 15, 6, 0, 0, 0, time.UTC))

	exact := time.Date(2025, time.January, 15, 6, 0, 0, 0, time.UTC)
	gt.Equal(t, d.Next(exact), time.Date(2025, time.January, 16, 6, 0, 0, 0, time.UTC))

	endOfMonth := time.Date(2025, time.January, 31, 22, 0, 0, 0, time.UTC)
	gt.Equal(t, d.Next(endOfMonth), time.Date(2025, time.February, 1, 6, 0, 0, 0, time.UTC))
}

func TestCronSchedulerNextRunUsesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	c, err := NewCronScheduler("0 6 * * *", loc)
	gt.NoError(t, err).Required()
	c.now = func() time.Time { return time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC) }

	next := c.NextRun()
	gt.Equal(t, next.Location(), loc)
	gt.Equal(t, next.Hour(), 6)
	gt.Equal(t, next.Day(), 15)
}

func TestCronSchedulerStartStop(t *testing.T) {
	c, err := NewCronScheduler("0 6 * * *", nil)
	gt.NoError(t, err).Required()

	ctx := context.Background()
	gt.NoError(t, c.Stop(ctx))
	gt.NoError(t, c.Start(ctx, nil))
	gt.NoError(t, c.Start(ctx, func(time.Time) {}))
	gt.NoError(t, c.Start(ctx, func(time.Time) {}))
	gt.NoError(t, c.Stop(ctx))
	gt.NoError(t, c.Stop(ctx))
}
