package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"PoliceDigest/internal/config"
	"PoliceDigest/internal/logging"
)

// runtime is shared by the subcommands once the root Before hook ran.
type runtime struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
}

// Run runs the CLI application.
func Run(ctx context.Context, args []string) error {
	if err := newCommand(os.Stdout).Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}
	return nil
}

func newCommand(w io.Writer) *cli.Command {
	rt := &runtime{}

	return &cli.Command{
		Name:   "policedigest",
		Usage:  "Daily police news digest: processing, dashboard and PDF reports",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the YAML configuration file",
				Sources:     cli.EnvVars("POLICE_DIGEST_CONFIG"),
				Destination: &rt.configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level (debug, info, warn, error)",
				Category:    "Logging",
				Destination: &rt.logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format (console, json, auto)",
				Category:    "Logging",
				Destination: &rt.logFormat,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			rt.cfg = config.Load(rt.configPath)
			if rt.logLevel != "" {
				rt.cfg.Logging.Level = rt.logLevel
			}
			if rt.logFormat != "" {
				rt.cfg.Logging.Format = rt.logFormat
			}

			rt.logger = logging.New(rt.cfg.Logging.Level, rt.cfg.Logging.Format, nil)
			slog.SetDefault(rt.logger)
			return ctxlog.With(ctx, rt.logger), nil
		},
		Commands: []*cli.Command{
			cmdExport(rt),
			cmdDigest(rt),
			cmdServe(rt),
			cmdTUI(rt),
			cmdSchedule(rt),
		},
	}
}
