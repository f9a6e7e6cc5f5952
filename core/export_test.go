package core

import (
	"testing"

	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportInitFreshTopology(t *testing.T) {
	s := SampleSimulation(nil)
	// 4 provides 2 and 6 and peers with 3. Every neighbour only holds its
	// self route, which may go anywhere.
	msgs := ExportInit(s.Topology(), 4)
	require.Len(t, msgs, 3)
	assert.Equal(t, state.UpdateMessage(2, 4, "10.0.2.0/24", state.NewPath(2)), msgs[0])
	assert.Equal(t, state.UpdateMessage(6, 4, "10.0.6.0/24", state.NewPath(6)), msgs[1])
	assert.Equal(t, state.UpdateMessage(3, 4, "10.0.3.0/24", state.NewPath(3)), msgs[2])
}

func TestExportInitValleyFree(t *testing.T) {
	s := SampleSimulation(nil)
	topo := s.Topology()
	as3, _ := topo.Get(3)
	// 3 learned 9's network from its provider side
	rs := as3.Table.Set("10.9.9.0/24")
	rs.Select(rs.Append(state.Route{Path: state.NewPath(9), ComeFrom: state.Provider, LocalPref: 50}))

	// peer 4 only hears about 3's own network
	for _, m := range ExportInit(topo, 4) {
		assert.NotEqual(t, state.Network("10.9.9.0/24"), m.Network, "leaked %v", m)
	}
	// customer 5 hears everything
	got := ExportInit(topo, 5)
	require.Len(t, got, 2)
	assert.Equal(t, state.Network("10.0.3.0/24"), got[0].Network)
	assert.Equal(t, state.Network("10.9.9.0/24"), got[1].Network)
	assert.True(t, got[1].Path.Equal(state.NewPath(9, 3)))
}

func TestReannounce(t *testing.T) {
	s := SampleSimulation(nil)
	topo := s.Topology()

	// customer learned: every link, except where the path already passes
	all := Reannounce(topo, 4, state.Announcement{ComeFrom: state.Customer, Path: state.NewPath(6), Network: "10.0.6.0/24"})
	require.Len(t, all, 2)
	assert.Equal(t, state.UpdateMessage(4, 2, "10.0.6.0/24", state.NewPath(6, 4)), all[0])
	assert.Equal(t, state.UpdateMessage(4, 3, "10.0.6.0/24", state.NewPath(6, 4)), all[1])

	// peer learned: customers only
	down := Reannounce(topo, 4, state.Announcement{ComeFrom: state.Peer, Path: state.NewPath(5, 3), Network: "10.0.5.0/24"})
	require.Len(t, down, 2)
	for _, m := range down {
		l, ok := topo.SharedLink(m.Src, m.Dst)
		require.True(t, ok)
		assert.Equal(t, state.Provider, l.Role(4))
	}

	// provider learned at 6 goes nowhere: 6 has no customers
	assert.Empty(t, Reannounce(topo, 6, state.Announcement{ComeFrom: state.Provider, Path: state.NewPath(4), Network: "10.0.4.0/24"}))
}
