// Package reporter drives the endpoint report: it enumerates the fleet's
// clusters, visits each one under a context guard, collects per-service
// load-balancer addresses, and emits the sorted listing plus the
// Terraform-friendly aggregate block.
package reporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/registry-ops/endpointctl/pkg/endpoint"
	"github.com/registry-ops/endpointctl/pkg/gke"
	"github.com/registry-ops/endpointctl/pkg/kube"
	"github.com/registry-ops/endpointctl/pkg/runner"
	"github.com/registry-ops/endpointctl/pkg/serializer"
)

// httpsKey is the aggregate key holding the HTTPS gateway address.
const httpsKey = "https_ip"

// Reporter collects load-balancer endpoints across the fleet and writes the
// report.
type Reporter struct {
	// Runner executes the gcloud and kubectl commands. If nil, a Shell
	// runner is used.
	Runner runner.Runner

	// Config selects services, cluster prefix and gateway. The zero value
	// means DefaultConfig.
	Config Config

	// Out receives the progress lines and the sorted listing. Defaults to
	// stdout.
	Out io.Writer

	// Writer receives the serialized aggregate. If nil, a Terraform-format
	// stdout writer is used.
	Writer *serializer.Writer
}

// Run produces the endpoint report for a project. Clusters are visited
// strictly one at a time: the active kubectl context is process-wide state,
// and sequential visiting under the context guard is what keeps it
// consistent. Any enumeration, switching, or parse failure aborts the run.
func (rep *Reporter) Run(ctx context.Context, project string) error {
	start := time.Now()
	status := "error"
	defer func() {
		reportDuration.Observe(time.Since(start).Seconds())
		reportTotal.WithLabelValues(status).Inc()
	}()

	if rep.Runner == nil {
		rep.Runner = &runner.Shell{}
	}
	if rep.Config.ClusterPrefix == "" {
		rep.Config = DefaultConfig()
	}
	if rep.Out == nil {
		rep.Out = os.Stdout
	}
	if rep.Writer == nil {
		rep.Writer = serializer.NewWriter(serializer.FormatTerraform, os.Stdout)
	}

	fmt.Fprintf(rep.Out, "Project: %s\n", project)

	clusters, err := gke.ListClusters(ctx, rep.Runner, project, rep.Config.ClusterPrefix)
	if err != nil {
		return err
	}

	var records []endpoint.Record
	aggregate := serializer.NewMapping()
	for _, cluster := range clusters {
		if err := rep.collectCluster(ctx, project, cluster, aggregate, &records); err != nil {
			return err
		}
	}

	endpoint.SortRecords(records)
	for _, rec := range records {
		fmt.Fprintln(rep.Out, rec)
	}
	endpointsDiscovered.Set(float64(len(records)))

	fmt.Fprintln(rep.Out, "Terraform friendly output:")
	if err := rep.Writer.Serialize(aggregate); err != nil {
		return fmt.Errorf("serializing aggregate: %w", err)
	}

	status = "ok"
	return nil
}

// collectCluster gathers one cluster's endpoints under a context guard. The
// previously active context is restored on every exit path; a restore
// failure is logged, never allowed to mask the collection error.
func (rep *Reporter) collectCluster(ctx context.Context, project string, cluster gke.Cluster, aggregate *serializer.Mapping, records *[]endpoint.Record) error {
	clusterStart := time.Now()
	defer func() {
		clusterDuration.WithLabelValues(cluster.Name).Observe(time.Since(clusterStart).Seconds())
	}()

	slog.Info("collecting cluster", slog.String("cluster", cluster.Name), slog.String("region", cluster.Location))

	guard, err := kube.UseCluster(ctx, rep.Runner, cluster.Name, project)
	if err != nil {
		return fmt.Errorf("switching to cluster %q: %w", cluster.Name, err)
	}
	defer func() {
		if rerr := guard.Restore(ctx); rerr != nil {
			slog.Warn("failed to restore kubectl context", slog.String("error", rerr.Error()))
		}
	}()

	region := cluster.Location
	geo := endpoint.RegionSymbol(region)

	for _, service := range rep.Config.Services {
		addrs, err := kube.Endpoints(ctx, rep.Runner, "services", service, rep.Config.ServiceAddressPath)
		if err != nil {
			return err
		}
		for _, raw := range addrs {
			addr, err := endpoint.ParseAddress(raw)
			if err != nil {
				return fmt.Errorf("service %q in cluster %q: %w", service, cluster.Name, err)
			}

			key := endpoint.CompositeKey(service, addr)
			bucket, ok := aggregate.Get(key)
			if !ok {
				bucket = serializer.NewMapping()
				aggregate.Set(key, bucket)
			}
			// Singleton slot per region and service; a later address for
			// the same slot overwrites the earlier one.
			bucket.(*serializer.Mapping).Set(string(geo), serializer.Sequence{serializer.Scalar(addr.String())})

			*records = append(*records, endpoint.Record{Service: service, Region: geo, Address: addr})
		}
	}

	if !strings.HasPrefix(region, "us") {
		return nil
	}
	return rep.collectGateway(ctx, cluster, aggregate)
}

// collectGateway records the HTTPS gateway address for a US-region cluster.
// Every qualifying region writes the same aggregate key, so the last one
// processed wins.
func (rep *Reporter) collectGateway(ctx context.Context, cluster gke.Cluster, aggregate *serializer.Mapping) error {
	addrs, err := kube.Endpoints(ctx, rep.Runner, rep.Config.GatewayResource, rep.Config.GatewayName, rep.Config.GatewayAddressPath)
	if err != nil {
		return err
	}
	if len(addrs) == 0 {
		return fmt.Errorf("gateway %s/%s in cluster %q reported no addresses", rep.Config.GatewayResource, rep.Config.GatewayName, cluster.Name)
	}

	addr, err := endpoint.ParseAddress(addrs[0])
	if err != nil {
		return fmt.Errorf("gateway %q in cluster %q: %w", rep.Config.GatewayName, cluster.Name, err)
	}

	fmt.Fprintf(rep.Out, "%s: %s\n", rep.Config.GatewayName, addr)
	aggregate.Set(httpsKey, serializer.Scalar(addr.String()))
	return nil
}
