// Package kube wraps the kubectl interactions the report depends on: the
// process-wide active context and per-service endpoint queries.
//
// The active kubectl context is shared mutable state owned by the
// kubeconfig, so all cluster work goes through ContextGuard: capture the
// active context, switch credentials to the target cluster, and restore the
// captured context on every exit path.
package kube

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"k8s.io/client-go/tools/clientcmd"

	"github.com/registry-ops/endpointctl/pkg/runner"
)

// ContextGuard holds the kubectl context that was active before a cluster
// switch, and restores it on Restore. Callers must defer Restore
// immediately after acquiring a guard.
type ContextGuard struct {
	runner   runner.Runner
	previous string
	restored bool
}

// UseCluster captures the active kubectl context and binds credentials for
// the named cluster through the fleet membership command. The returned
// guard restores the captured context.
func UseCluster(ctx context.Context, r runner.Runner, cluster, project string) (*ContextGuard, error) {
	previous, err := currentContext(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("capturing active context: %w", err)
	}

	slog.Debug("switching cluster context", slog.String("cluster", cluster), slog.String("previous", previous))
	cmd := fmt.Sprintf("gcloud container fleet memberships get-credentials %s --project %s", cluster, project)
	if _, err := r.Run(ctx, cmd); err != nil {
		return nil, fmt.Errorf("binding credentials for cluster %q: %w", cluster, err)
	}

	return &ContextGuard{runner: r, previous: previous}, nil
}

// Restore switches kubectl back to the context captured at acquisition.
// Only the first call has an effect.
func (g *ContextGuard) Restore(ctx context.Context) error {
	if g.restored {
		return nil
	}
	g.restored = true

	slog.Debug("restoring cluster context", slog.String("context", g.previous))
	if _, err := g.runner.Run(ctx, "kubectl config use-context "+g.previous); err != nil {
		return fmt.Errorf("restoring context %q: %w", g.previous, err)
	}
	return nil
}

// currentContext asks kubectl for the active context name. When the command
// produces nothing, the kubeconfig is read directly through the client-go
// loading rules, which honor KUBECONFIG the same way kubectl does.
func currentContext(ctx context.Context, r runner.Runner) (string, error) {
	out, err := r.Run(ctx, "kubectl config current-context")
	if err != nil {
		return "", err
	}
	if name := strings.TrimSpace(out); name != "" {
		return name, nil
	}

	cfg, err := clientcmd.NewDefaultClientConfigLoadingRules().Load()
	if err != nil {
		return "", fmt.Errorf("reading kubeconfig: %w", err)
	}
	if cfg.CurrentContext == "" {
		return "", fmt.Errorf("no active kubectl context")
	}
	return cfg.CurrentContext, nil
}
