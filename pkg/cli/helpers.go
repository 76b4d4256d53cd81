package cli

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/registry-ops/endpointctl/pkg/serializer"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Unknown formats error with a closest-match suggestion when one is near
// enough to be a likely typo.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		if suggestion := closestFormat(string(outFormat)); suggestion != "" {
			return "", fmt.Errorf("unknown output format: %q, did you mean %q?", outFormat, suggestion)
		}
		return "", fmt.Errorf("unknown output format: %q, valid formats are: terraform, json, yaml", outFormat)
	}
	return outFormat, nil
}

// closestFormat returns the supported format nearest to the given input, or
// empty when nothing is within edit distance 3.
func closestFormat(input string) string {
	best := ""
	bestDistance := 4
	for _, f := range serializer.Formats {
		if d := levenshtein.ComputeDistance(input, string(f)); d < bestDistance {
			best = string(f)
			bestDistance = d
		}
	}
	return best
}
