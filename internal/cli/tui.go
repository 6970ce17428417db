package cli

import (
	"context"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"PoliceDigest/internal/app"
	"PoliceDigest/internal/logging"
	"PoliceDigest/internal/ui"
)

func cmdTUI(rt *runtime) *cli.Command {
	var logFile string

	return &cli.Command{
		Name:  "tui",
		Usage: "Open the terminal dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "Write logs to this file while the dashboard owns the terminal",
				Destination: &logFile,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Discard()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return goerr.Wrap(err, "open log file", goerr.V("path", logFile))
				}
				defer f.Close()
				logger = logging.New(rt.cfg.Logging.Level, logging.FormatJSON, f)
			}

			a, err := app.New(ctx, rt.cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			return ui.Run(ctx, a.Session, time.Now)
		},
	}
}
