// Package gke enumerates the registry's GKE clusters through the gcloud
// inventory command.
package gke

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/registry-ops/endpointctl/pkg/runner"
)

// Cluster is one inventory entry: a cluster name and the region it runs in.
type Cluster struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ListClusters queries the cluster inventory for a project and returns the
// clusters whose name starts with prefix, in the order the inventory
// reports them. Malformed inventory output is a fatal parse error.
func ListClusters(ctx context.Context, r runner.Runner, project, prefix string) ([]Cluster, error) {
	cmd := fmt.Sprintf("gcloud container clusters list --project %s --format=json", project)
	out, err := r.Run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("listing clusters for project %q: %w", project, err)
	}

	var items []Cluster
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &items); err != nil {
		return nil, fmt.Errorf("parsing cluster inventory for project %q: %w", project, err)
	}

	var clusters []Cluster
	for _, item := range items {
		if !strings.HasPrefix(item.Name, prefix) {
			continue
		}
		clusters = append(clusters, item)
	}
	slog.Debug("enumerated clusters", slog.String("project", project), slog.Int("matched", len(clusters)), slog.Int("total", len(items)))
	return clusters, nil
}
