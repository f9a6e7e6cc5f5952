package state

import (
	"net"
	"net/netip"

	"github.com/cilium/cilium/pkg/ip"
)

// Prefix parses n as a CIDR. Networks are opaque, so failure is not an error.
func (n Network) Prefix() (netip.Prefix, bool) {
	p, err := netip.ParsePrefix(string(n))
	if err != nil {
		return netip.Prefix{}, false
	}
	return p.Masked(), true
}

func toIPNets(prefixes []netip.Prefix) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(prefixes))
	for _, p := range prefixes {
		if p.IsValid() {
			nets = append(nets, &net.IPNet{
				IP:   p.Addr().AsSlice(),
				Mask: net.CIDRMask(p.Bits(), p.Addr().BitLen()),
			})
		}
	}
	return nets
}

func fromIPNets(nets []*net.IPNet) []netip.Prefix {
	output := make([]netip.Prefix, 0, len(nets))
	for _, n := range nets {
		if addr, ok := netip.AddrFromSlice(n.IP); ok {
			ones, _ := n.Mask.Size()
			output = append(output, netip.PrefixFrom(addr.Unmap(), ones))
		}
	}
	return output
}

// CoalescePrefix merges adjacent and overlapping prefixes.
func CoalescePrefix(prefixes []netip.Prefix) []netip.Prefix {
	ipv4, ipv6 := ip.CoalesceCIDRs(toIPNets(prefixes))
	return fromIPNets(append(ipv4, ipv6...))
}

// ReachablePrefixes returns the coalesced CIDR networks among networks,
// skipping those that do not parse as a prefix.
func ReachablePrefixes(networks []Network) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(networks))
	for _, n := range networks {
		if p, ok := n.Prefix(); ok {
			prefixes = append(prefixes, p)
		}
	}
	return CoalescePrefix(prefixes)
}
