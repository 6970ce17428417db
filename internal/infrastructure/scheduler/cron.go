package scheduler

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/ports"
)

// Daily is a "minute hour * * *" trigger.
type Daily struct {
	Minute int
	Hour   int
}

// ParseDaily accepts five-field cron expressions whose day, month and
// weekday fields are all wildcards.
func ParseDaily(expr string) (Daily, error) {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return Daily{}, goerr.New("cron expression must have five fields", goerr.V("expr", expr))
	}
	for _, f := range fields[2:] {
		if f != "*" {
			return Daily{}, goerr.New("only daily cron expressions are supported", goerr.V("expr", expr))
		}
	}

	minute, err := strconv.Atoi(fields[0])
	if err != nil || minute < 0 || minute > 59 {
		return Daily{}, goerr.New("invalid cron minute", goerr.V("expr", expr))
	}
	hour, err := strconv.Atoi(fields[1])
	if err != nil || hour < 0 || hour > 23 {
		return Daily{}, goerr.New("invalid cron hour", goerr.V("expr", expr))
	}
	return Daily{Minute: minute, Hour: hour}, nil
}

// Next returns the first trigger strictly after t, in t's location.
func (d Daily) Next(t time.Time) time.Time {
	next := time.Date(t.Year(), t.Month(), t.Day(), d.Hour, d.Minute, 0, 0, t.Location())
	if !next.After(t) {
		next = time.Date(t.Year(), t.Month(), t.Day()+1, d.Hour, d.Minute, 0, 0, t.Location())
	}
	return next
}

// CronScheduler fires a job once a day at the configured wall-clock time.
type CronScheduler struct {
	daily Daily
	loc   *time.Location
	now   func() time.Time

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

var _ ports.Scheduler = (*CronScheduler)(nil)

// NewCronScheduler builds a scheduler from a daily cron expression.
func NewCronScheduler(expr string, loc *time.Location) (*CronScheduler, error) {
	daily, err := ParseDaily(expr)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}
	return &CronScheduler{daily: daily, loc: loc, now: time.Now}, nil
}

// NextRun is the next trigger time after now.
func (c *CronScheduler) NextRun() time.Time {
	return c.daily.Next(c.now().In(c.loc))
}

// Start begins waiting for triggers; a second Start is a no-op.
func (c *CronScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return nil
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop, c.done = stop, done

	go func() {
		defer close(done)
		for {
			timer := time.NewTimer(time.Until(c.NextRun()))
			select {
			case t := <-timer.C:
				job(t.In(c.loc))
			case <-ctx.Done():
				timer.Stop()
				return
			case <-stop:
				timer.Stop()
				return
			}
		}
	}()

	return nil
}

// Stop halts the trigger goroutine and waits for it to exit.
func (c *CronScheduler) Stop(ctx context.Context) error {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return nil
	}
	close(stop)

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "stop scheduler")
	}
}
