package kube

import (
	"context"
	"fmt"
	"strings"

	"github.com/registry-ops/endpointctl/pkg/runner"
)

// Endpoints queries a resource/name pair in the active cluster context and
// extracts address values with a jsonpath expression. The result may be
// empty when the load balancer has not yet been assigned an address; that
// is not an error.
func Endpoints(ctx context.Context, r runner.Runner, resource, name, jsonpath string) ([]string, error) {
	cmd := fmt.Sprintf("kubectl get %s/%s -o jsonpath=%s", resource, name, jsonpath)
	out, err := r.Run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("querying %s/%s: %w", resource, name, err)
	}
	return strings.Fields(out), nil
}
