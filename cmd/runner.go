package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
	"github.com/urfave/cli/v3"
)

const version = "0.1.0"

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	engine     tasks.Engine
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Config and Engine are resolved from the config file and environment when left nil.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Engine     tasks.Engine
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		engine:     opts.Engine,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) app() *cli.Command {
	return &cli.Command{
		Name:     "lyrx",
		Usage:    "Relay Spotify track IDs to LRCLIB lyrics",
		Version:  version,
		Flags:    []cli.Flag{configFlag()},
		Before:   r.Before,
		Action:   r.Serve,
		Commands: r.register(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){serveCommand, lookupCommand, configCommand} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before resolves the configuration, applies the log level and builds the lookup engine.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if r.configPath == "" {
		r.configPath = cmd.String("config")
	}

	if r.config == nil {
		config, err := shared.ResolveConfig(r.configPath)
		if err != nil {
			return ctx, err
		}
		r.config = config
	}

	shared.SetLogLevel(r.logger, shared.ParseLogLevel(r.config.Log.Level))

	if r.engine == nil {
		r.engine = newEngine(r.config, r.httpClient)
	}

	return ctx, nil
}

// newEngine wires the Spotify and LRCLIB clients described by config into a [tasks.RelayEngine].
func newEngine(config *shared.Config, client *http.Client) *tasks.RelayEngine {
	timeout := config.HTTP.Timeout()

	catalog := services.NewSpotifyService(services.SpotifyOpts{
		BaseURL:     config.Catalog.BaseURL,
		AccessToken: config.Catalog.AccessToken,
		Timeout:     timeout,
		HTTPClient:  client,
	})
	lyrics := services.NewLRCLibService(services.LRCLibOpts{
		BaseURL:    config.Lyrics.BaseURL,
		UserAgent:  config.Lyrics.UserAgent,
		Limit:      config.Lyrics.Limit,
		Timeout:    timeout,
		HTTPClient: client,
	})

	return tasks.NewRelayEngine(catalog, lyrics)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(append(output, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
