package core

import (
	"net/netip"

	"github.com/gaissmai/bart"
	"github.com/hashiba-k-jp/C-LOTUS/state"
)

// ForwardEntry is what a forwarding lookup resolves to.
type ForwardEntry struct {
	Prefix  netip.Prefix
	Network state.Network
	Route   state.Route
	// NextHop is the most recent propagator, zero for the self route
	NextHop state.ASN
}

// buildForwardTable indexes the best routes of as whose network parses as a
// CIDR. Other networks cannot be matched by address and are skipped.
func buildForwardTable(as *state.AS) *bart.Table[ForwardEntry] {
	tbl := new(bart.Table[ForwardEntry])
	for network, r := range as.Table.BestRoutes() {
		pfx, ok := network.Prefix()
		if !ok {
			continue
		}
		nh, _ := r.Path.Last()
		tbl.Insert(pfx, ForwardEntry{
			Prefix:  pfx,
			Network: network,
			Route:   r,
			NextHop: nh,
		})
	}
	return tbl
}

// Lookup resolves addr against the best routes held by at, longest prefix
// first.
func (s *Simulation) Lookup(at state.ASN, addr netip.Addr) (ForwardEntry, bool, error) {
	as, err := s.getAS(at)
	if err != nil {
		return ForwardEntry{}, false, err
	}
	entry, ok := buildForwardTable(as).Lookup(addr)
	return entry, ok, nil
}
