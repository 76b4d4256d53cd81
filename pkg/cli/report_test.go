package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

func TestReportCmd_Structure(t *testing.T) {
	cmd := reportCmd()

	if cmd.Name != "report" {
		t.Errorf("Name = %v, want report", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}

	requiredFlags := []string{"format", "output", "config"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestReportCmd_ArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no project", args: []string{"endpointctl", "report"}},
		{name: "extra args", args: []string{"endpointctl", "report", "p1", "p2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New()
			err := root.Run(context.Background(), tt.args)
			if err == nil {
				t.Fatal("expected usage error")
			}
			if !strings.Contains(err.Error(), "usage: endpointctl report <project>") {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestReportCmd_UnknownFormat(t *testing.T) {
	root := New()
	err := root.Run(context.Background(), []string{"endpointctl", "report", "--format", "xml", "my-project"})
	if err == nil {
		t.Fatal("expected format error")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("err = %v", err)
	}
}

func TestRoot_Structure(t *testing.T) {
	root := New()

	if root.Name != "endpointctl" {
		t.Errorf("Name = %v", root.Name)
	}
	if len(root.Commands) == 0 {
		t.Error("expected at least one subcommand")
	}

	for _, flagName := range []string{"debug", "log-json"} {
		found := false
		for _, flag := range root.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("global flag %q not found", flagName)
		}
	}
}

func hasName(flag cli.Flag, name string) bool {
	if flag == nil {
		return false
	}
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}
