package state

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkPrefix(t *testing.T) {
	p, ok := Network("10.0.3.7/24").Prefix()
	assert.True(t, ok)
	assert.Equal(t, netip.MustParsePrefix("10.0.3.0/24"), p)

	_, ok = Network("backbone").Prefix()
	assert.False(t, ok)
}

func TestCoalescePrefixAdjacent(t *testing.T) {
	result := CoalescePrefix([]netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/24"),
		netip.MustParsePrefix("10.0.1.0/24"),
		netip.MustParsePrefix("10.0.2.0/24"),
	})
	assert.ElementsMatch(t, result, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/23"),
		netip.MustParsePrefix("10.0.2.0/24"),
	})
}

func TestCoalescePrefixOverlapping(t *testing.T) {
	result := CoalescePrefix([]netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/16"),
		netip.MustParsePrefix("10.0.4.0/24"),
		netip.MustParsePrefix("fd00::/64"),
	})
	assert.ElementsMatch(t, result, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/16"),
		netip.MustParsePrefix("fd00::/64"),
	})
}

func TestReachablePrefixesSkipsOpaque(t *testing.T) {
	result := ReachablePrefixes([]Network{"10.0.1.0/24", "backbone", "10.0.0.0/24"})
	assert.ElementsMatch(t, result, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/23"),
	})
	assert.Empty(t, ReachablePrefixes(nil))
}
