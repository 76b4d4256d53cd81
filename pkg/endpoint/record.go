package endpoint

import (
	"fmt"
	"net/netip"
	"sort"
)

// Record is one discovered load-balancer address for a service in a
// geographic bucket. Records are immutable once created.
type Record struct {
	Service string
	Region  Symbol
	Address netip.Addr
}

// IsIPv6 reports whether the record's address is an IPv6 address.
func (r Record) IsIPv6() bool {
	return !r.Address.Is4()
}

// String renders the record in the report's listing form.
func (r Record) String() string {
	return fmt.Sprintf("%s %s: %s", r.Service, r.Region, r.Address)
}

// SortRecords orders records by service name, then IPv4 before IPv6, then
// region symbol. Three stable passes in reverse priority order keep the
// result deterministic for equal keys at every level.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Region < records[j].Region
	})
	sort.SliceStable(records, func(i, j int) bool {
		return !records[i].IsIPv6() && records[j].IsIPv6()
	})
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Service < records[j].Service
	})
}
