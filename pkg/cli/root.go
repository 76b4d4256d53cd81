package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// version is injected at build time via ldflags.
var version = "dev"

// New builds the endpointctl root command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "endpointctl",
		Usage:   "Report load-balancer IP endpoints across the registry's cluster fleet",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			reportCmd(),
		},
	}
}

// setupLogging configures the process-wide slog default. Every run gets a
// run_id so interleaved operator logs can be told apart.
func setupLogging(debug, logJSON bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler).With(slog.String("run_id", uuid.NewString())))
}
