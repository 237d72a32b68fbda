package main

import (
	"context"

	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/ui"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration to the --config path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	if err := r.writePlain("%s\n", ui.DefaultPalette.OK("✓ Configuration written to "+path)); err != nil {
		return err
	}
	return r.writePlain("%s\n", ui.DefaultPalette.Help("Set "+shared.EnvAccessToken+" or catalog.access_token before running lyrx serve"))
}
