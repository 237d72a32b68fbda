package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/lyrx/internal/formatter"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
	"github.com/desertthunder/lyrx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Lookup resolves one track ID to lyrics candidates and prints them.
func (r *Runner) Lookup(ctx context.Context, cmd *cli.Command) error {
	trackID := strings.TrimSpace(cmd.StringArg("id"))
	if trackID == "" {
		return fmt.Errorf("%w: track ID", shared.ErrMissingArgument)
	}

	useJSON := cmd.Bool("json")
	format, err := formatter.Normalize(cmd.String("format"))
	if err != nil {
		return err
	}

	if err := r.config.Validate(); err != nil {
		return err
	}

	progress := make(chan tasks.ProgressUpdate, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Debug(update.Message, "phase", update.Phase, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := r.engine.Lookup(ctx, trackID, progress)
	close(progress)
	<-done

	if err != nil {
		if !useJSON {
			if werr := r.writePlain("%s\n", ui.DefaultPalette.Err("✗ Lookup failed for "+trackID)); werr != nil {
				r.logger.Warn("failed to write output", "error", werr)
			}
		}
		return err
	}

	if useJSON {
		return r.writeJSON(result.Records, cmd.Bool("pretty"))
	}

	data, err := formatter.Render(format, result)
	if err != nil {
		return err
	}

	if format == formatter.FormatText {
		if len(result.Records) == 0 {
			return r.writePlain("%s\n%s", ui.DefaultPalette.Warn("No lyrics found"), data)
		}
		if err := r.writePlain("%s\n", ui.DefaultPalette.OK(fmt.Sprintf("✓ %d lyrics candidates", len(result.Records)))); err != nil {
			return err
		}
	}

	return r.writePlain("%s", data)
}
