// Package cli implements the command-line interface for endpointctl.
//
// # Overview
//
// endpointctl reports the load-balancer IP endpoints of the registry's
// cluster fleet after a deployment. It enumerates the project's clusters,
// queries each one for per-service ingress addresses, and prints a sorted
// listing plus a Terraform-friendly aggregate block for pasting into
// infrastructure variable definitions.
//
// # Commands
//
// report - Collect and print the endpoint report:
//
//	endpointctl report <project>
//	endpointctl report <project> --format json --output endpoints.json
//	endpointctl report <project> --config fleet.yaml
//
// # Global Flags
//
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// terraform (default):
//   - Block-structured text for manual copy into Terraform variables
//
// json / yaml:
//   - Machine-parseable renderings of the same aggregate structure
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/reporter - Report orchestration across the fleet
//   - pkg/gke - Cluster inventory enumeration
//   - pkg/kube - kubectl context guard and endpoint queries
//   - pkg/runner - External command execution
//   - pkg/serializer - Aggregate output formatting
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/registry-ops/endpointctl/pkg/cli.version=1.0.0'"
package cli
