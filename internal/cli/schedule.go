package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"PoliceDigest/internal/app"
)

func cmdSchedule(rt *runtime) *cli.Command {
	var runNow bool

	return &cli.Command{
		Name:  "schedule",
		Usage: "Export the daily report on the configured schedule",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "run-now",
				Usage:       "Export today's report once before waiting",
				Destination: &runNow,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			cfg := rt.cfg
			cfg.Processing.StageDelay = 0
			a, err := app.New(ctx, cfg, rt.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			s, err := a.Scheduler()
			if err != nil {
				return err
			}

			if runNow {
				result, err := s.RunOnce(ctx, time.Now().In(cfg.Scheduler.Location()))
				if err != nil {
					return goerr.Wrap(err, "initial export failed")
				}
				logger.Info("report saved", "path", result.Path)
			}

			if err := s.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start scheduler")
			}
			logger.Info("scheduler running",
				"cron", cfg.Scheduler.CronExpression,
				"timezone", cfg.Scheduler.Location().String())

			waitForShutdown(ctx, logger)
			return s.Stop(context.Background())
		},
	}
}
