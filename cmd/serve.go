package main

import (
	"context"

	"github.com/desertthunder/lyrx/internal/server"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the relay until the process receives SIGINT or SIGTERM.
//
// The configuration is validated first so a missing access token stops startup instead of failing every request.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := *r.config
	if cmd.IsSet("host") {
		config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		config.Server.Port = cmd.Int("port")
	}

	if err := config.Validate(); err != nil {
		return err
	}

	srv := server.New(config.Server, r.engine, r.logger)

	r.logger.Info("starting relay",
		"addr", srv.Addr(),
		"catalog", config.Catalog.BaseURL,
		"lyrics", config.Lyrics.BaseURL,
		"token", shared.MaskSecret(config.Catalog.AccessToken),
	)

	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}

	r.logger.Info("relay stopped")
	return nil
}
