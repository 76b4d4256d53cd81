package gke

import (
	"context"
	"strings"
	"testing"
)

// fakeRunner returns scripted output for commands matched by substring.
type fakeRunner struct {
	outputs  map[string]string
	commands []string
}

func (f *fakeRunner) Run(_ context.Context, command string) (string, error) {
	f.commands = append(f.commands, command)
	for substr, out := range f.outputs {
		if strings.Contains(command, substr) {
			return out, nil
		}
	}
	return "", nil
}

func TestListClusters(t *testing.T) {
	inventory := `[
		{"name": "nomulus-cluster-us", "location": "us-central1"},
		{"name": "nomulus-cluster-eu", "location": "europe-west1"},
		{"name": "prober-cluster", "location": "us-east1"}
	]`
	r := &fakeRunner{outputs: map[string]string{"clusters list": inventory}}

	clusters, err := ListClusters(context.Background(), r, "my-project", "nomulus-cluster")
	if err != nil {
		t.Fatalf("ListClusters failed: %v", err)
	}

	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}
	if clusters[0].Name != "nomulus-cluster-us" || clusters[0].Location != "us-central1" {
		t.Errorf("clusters[0] = %+v", clusters[0])
	}
	if clusters[1].Name != "nomulus-cluster-eu" || clusters[1].Location != "europe-west1" {
		t.Errorf("clusters[1] = %+v", clusters[1])
	}

	if len(r.commands) != 1 || !strings.Contains(r.commands[0], "--project my-project") {
		t.Errorf("commands = %v", r.commands)
	}
}

func TestListClusters_Empty(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"clusters list": "[]"}}

	clusters, err := ListClusters(context.Background(), r, "my-project", "nomulus-cluster")
	if err != nil {
		t.Fatalf("ListClusters failed: %v", err)
	}
	if len(clusters) != 0 {
		t.Errorf("got %d clusters, want 0", len(clusters))
	}
}

func TestListClusters_MalformedOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{name: "error text", output: "ERROR: (gcloud) not authenticated"},
		{name: "empty output", output: ""},
		{name: "truncated json", output: `[{"name": "nomulus-`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{outputs: map[string]string{"clusters list": tt.output}}
			if _, err := ListClusters(context.Background(), r, "p", "nomulus-cluster"); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}
