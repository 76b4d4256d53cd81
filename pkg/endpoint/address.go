// Package endpoint models the load-balancer addresses discovered across the
// registry's cluster fleet: typed IP addresses, coarse geographic buckets,
// and the sorted per-service records the report is built from.
package endpoint

import (
	"fmt"
	"net/netip"
	"strings"
)

// Symbol is one of the four coarse geographic buckets a cluster region
// maps into.
type Symbol string

const (
	Amer  Symbol = "amer"
	Emea  Symbol = "emea"
	Apac  Symbol = "apac"
	Other Symbol = "other"
)

// RegionSymbol buckets a region string by case-sensitive prefix match,
// first match wins. The "us" prefix is checked first, so a hypothetical
// "useurope" region still buckets as amer.
func RegionSymbol(region string) Symbol {
	switch {
	case strings.HasPrefix(region, "us"):
		return Amer
	case strings.HasPrefix(region, "europe"):
		return Emea
	case strings.HasPrefix(region, "asia"):
		return Apac
	default:
		return Other
	}
}

// ParseAddress parses an IPv4 or IPv6 literal.
func ParseAddress(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("parsing address %q: %w", s, err)
	}
	return addr, nil
}

// CompositeKey derives the aggregate bucket key for a service and a parsed
// address: hyphens in the service name become underscores, suffixed with
// the address family.
func CompositeKey(service string, addr netip.Addr) string {
	key := strings.ReplaceAll(service, "-", "_")
	if addr.Is4() {
		return key + "_ipv4"
	}
	return key + "_ipv6"
}
