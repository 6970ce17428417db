package cli

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"PoliceDigest/internal/app"
	"PoliceDigest/internal/dashboard"
	"PoliceDigest/internal/domain"
)

type digestOutput struct {
	Digest    domain.DailyDigest     `json:"digest"`
	Overview  dashboard.Overview     `json:"overview"`
	Districts []domain.DistrictStats `json:"districts"`
}

func cmdDigest(rt *runtime) *cli.Command {
	var (
		date   string
		pretty bool
	)

	return &cli.Command{
		Name:  "digest",
		Usage: "Process a day and print the digest as JSON",
		Flags: []cli.Flag{
			dateFlag(&date),
			&cli.BoolFlag{
				Name:        "pretty",
				Usage:       "Indent the JSON output",
				Destination: &pretty,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			day, err := resolveDay(date)
			if err != nil {
				return err
			}

			cfg := rt.cfg
			cfg.Processing.StageDelay = 0
			a, err := app.New(ctx, cfg, rt.logger)
			if err != nil {
				return err
			}
			defer a.Close()

			snap, err := a.Processor.Run(ctx, day, nil)
			if err != nil {
				return err
			}
			if err := snap.Digest.Validate(); err != nil {
				return err
			}

			state := dashboard.New(snap)
			enc := json.NewEncoder(c.Root().Writer)
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(digestOutput{
				Digest:    snap.Digest,
				Overview:  state.Overview(),
				Districts: dashboard.DistrictAnalytics(snap.Digest),
			})
		},
	}
}
