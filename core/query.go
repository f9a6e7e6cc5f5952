package core

import (
	"net/netip"

	"github.com/hashiba-k-jp/C-LOTUS/state"
)

// BestRoutes returns the best route per network held by at.
func (s *Simulation) BestRoutes(at state.ASN) (map[state.Network]state.Route, error) {
	as, err := s.getAS(at)
	if err != nil {
		return nil, err
	}
	return as.Table.BestRoutes(), nil
}

// ListRoutes returns every route at holds for network, in arrival order.
func (s *Simulation) ListRoutes(at state.ASN, network state.Network) ([]state.RouteEntry, error) {
	as, err := s.getAS(at)
	if err != nil {
		return nil, err
	}
	rs, ok := as.Table.Lookup(network)
	if !ok {
		return []state.RouteEntry{}, nil
	}
	return rs.Entries(), nil
}

// BestPath returns the path at uses toward the network originated by origin.
// An AS holds no transmitted path to its own network.
func (s *Simulation) BestPath(origin, at state.ASN) (state.Path, bool) {
	if origin == at {
		return state.Path{}, false
	}
	o, ok := s.topo.Get(origin)
	if !ok {
		return state.Path{}, false
	}
	as, ok := s.topo.Get(at)
	if !ok {
		return state.Path{}, false
	}
	rs, ok := as.Table.Lookup(o.Network)
	if !ok {
		return state.Path{}, false
	}
	best, ok := rs.Best()
	if !ok {
		return state.Path{}, false
	}
	return best.Path, true
}

// Reachable returns the coalesced CIDR networks at has a best route to.
func (s *Simulation) Reachable(at state.ASN) ([]netip.Prefix, error) {
	as, err := s.getAS(at)
	if err != nil {
		return nil, err
	}
	networks := make([]state.Network, 0)
	for network := range as.Table.BestRoutes() {
		networks = append(networks, network)
	}
	return state.ReachablePrefixes(networks), nil
}
