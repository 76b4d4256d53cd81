package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/registry-ops/endpointctl/pkg/reporter"
	"github.com/registry-ops/endpointctl/pkg/runner"
	"github.com/registry-ops/endpointctl/pkg/serializer"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:      "report",
		ArgsUsage: "<project>",
		Usage:     "Collect load-balancer endpoints for a project and print the report",
		Description: `Enumerates the project's clusters, switches the kubectl context to each
one in turn, queries the per-service load-balancer ingress addresses, and
prints a sorted endpoint listing followed by a Terraform-friendly aggregate
block.

The active kubectl context is saved before the first switch and restored
when the run ends, including on failure.

# Examples

Print the report for a project:
  endpointctl report my-registry-project

Write the aggregate block to a file in JSON:
  endpointctl report my-registry-project --format json --output endpoints.json

Override the inspected services with a config file:
  endpointctl report my-registry-project --config fleet.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   "terraform",
				Usage:   "Aggregate output format (terraform, json, yaml)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the aggregate block to a file instead of stdout",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file overriding the inspected services, cluster prefix and gateway",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("usage: endpointctl report <project>")
			}
			project := cmd.Args().First()

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg := reporter.DefaultConfig()
			if path := cmd.String("config"); path != "" {
				cfg, err = reporter.LoadConfig(path)
				if err != nil {
					return err
				}
			}

			writer, closeFn, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeFn(); cerr != nil {
					slog.Warn("failed to close output file", "error", cerr)
				}
			}()

			slog.Info("collecting endpoint report",
				slog.String("project", project),
				slog.String("format", string(outFormat)),
			)

			rep := &reporter.Reporter{
				Runner: &runner.Shell{},
				Config: cfg,
				Out:    os.Stdout,
				Writer: writer,
			}
			if err := rep.Run(ctx, project); err != nil {
				slog.Error("report failed", "error", err, "project", project)
				return err
			}
			return nil
		},
	}
}
