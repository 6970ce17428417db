package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"PoliceDigest/internal/app"
	"PoliceDigest/internal/dashboard"
)

func dateFlag(dst *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "date",
		Aliases:     []string{"d"},
		Usage:       "Digest date (YYYY-MM-DD), defaults to today",
		Destination: dst,
	}
}

// resolveDay parses --date and keeps it inside the navigable window.
func resolveDay(s string) (time.Time, error) {
	now := time.Now()
	day, err := dashboard.ParseDay(s, now)
	if err != nil {
		return time.Time{}, err
	}
	if err := dashboard.CheckDay(day, now); err != nil {
		return time.Time{}, err
	}
	return day, nil
}

func cmdExport(rt *runtime) *cli.Command {
	var date, out string

	return &cli.Command{
		Name:  "export",
		Usage: "Process a day and save its PDF report",
		Flags: []cli.Flag{
			dateFlag(&date),
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Output directory, defaults to report.outputDir",
				Destination: &out,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			day, err := resolveDay(date)
			if err != nil {
				return err
			}

			cfg := rt.cfg
			cfg.Processing.StageDelay = 0
			if out != "" {
				cfg.Report.OutputDir = out
			}

			a, err := app.New(ctx, cfg, rt.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.ExportDay(ctx, day)
			if err != nil {
				return err
			}

			ctxlog.From(ctx).Info("report saved", "path", result.Path, "pages", result.Pages, "notified", result.Notified)
			_, err = fmt.Fprintln(c.Root().Writer, result.Path)
			return err
		},
	}
}
