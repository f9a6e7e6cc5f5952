package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func converged(t *testing.T, h *Harness) *Simulation {
	s := SampleSimulation(h)
	s.EnqueueAllInit()
	require.NoError(t, s.Run())
	return s
}

func TestRunSampleConverges(t *testing.T) {
	s := converged(t, &Harness{})
	assert.Empty(t, s.Pending())
	assert.Equal(t, Stats{Processed: 43, Dropped: 0, Announcements: 30}, s.Stats())

	expect := map[state.ASN]state.Path{
		2: state.NewPath(2),
		3: state.NewPath(3, 4, 2),
		4: state.NewPath(4, 2),
		5: state.NewPath(5, 3, 4, 2),
		6: state.NewPath(6, 4, 2),
	}
	for origin, want := range expect {
		got, ok := s.BestPath(origin, 1)
		require.True(t, ok, "AS 1 has no route to AS %s", origin)
		assert.True(t, want.Equal(got), "to AS %s: want %s, got %s", origin, want, got)
	}
	_, ok := s.BestPath(1, 1)
	assert.False(t, ok)

	// every AS reaches every network
	for _, id := range s.Topology().ASNs() {
		best, err := s.BestRoutes(id)
		require.NoError(t, err)
		assert.Len(t, best, 6)
	}
}

func TestRunAlternativesAreKept(t *testing.T) {
	s := converged(t, &Harness{})
	entries, err := s.ListRoutes(6, "10.0.1.0/24")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Best)
	assert.True(t, entries[0].Path.Equal(state.NewPath(1, 2, 4)))
	assert.False(t, entries[1].Best)
	assert.True(t, entries[1].Path.Equal(state.NewPath(1, 2, 4, 3)))
}

func TestRunLoopFree(t *testing.T) {
	s := converged(t, &Harness{})
	for _, id := range s.Topology().ASNs() {
		as, _ := s.Topology().Get(id)
		for _, network := range as.Table.Networks() {
			rs, _ := as.Table.Lookup(network)
			for _, e := range rs.Entries() {
				assert.False(t, e.Path.Contains(id), "AS %s holds %s", id, e.Path)
			}
		}
	}
}

func TestRunValleyFree(t *testing.T) {
	s := converged(t, &Harness{})
	topo := s.Topology()
	for _, id := range topo.ASNs() {
		as, _ := topo.Get(id)
		for _, network := range as.Table.Networks() {
			rs, _ := as.Table.Lookup(network)
			for _, e := range rs.Entries() {
				if e.Path.SelfOrigin || e.Path.Len() < 2 {
					continue
				}
				// find the route the sender announced
				sender, _ := e.Path.Last()
				senderAS, _ := topo.Get(sender)
				srs, ok := senderAS.Table.Lookup(network)
				require.True(t, ok)
				upstream := state.NewPath(e.Path.Hops[:e.Path.Len()-1]...)
				found := false
				for _, u := range srs.Entries() {
					if !u.Path.Equal(upstream) {
						continue
					}
					found = true
					if u.ComeFrom != state.Customer {
						l, _ := topo.SharedLink(sender, id)
						assert.Equal(t, state.Provider, l.Role(sender), "AS %s leaked %s to AS %s", sender, u.Path, id)
					}
				}
				assert.True(t, found, "AS %s never held %s", sender, upstream)
			}
		}
	}
}

func TestRunLoopDropBeforeLinkCheck(t *testing.T) {
	h := &Harness{}
	s := converged(t, h)
	h.GetEvents()
	before, _ := s.ListRoutes(1, "10.0.1.0/24")

	// 6 and 1 share no link, the loop is detected first
	require.NoError(t, s.EnqueueUpdate(6, 1, "10.0.1.0/24", state.NewPath(1, 2, 6)))
	require.NoError(t, s.Run())
	assert.Equal(t, Stats{Processed: 1, Dropped: 1}, s.Stats())
	after, _ := s.ListRoutes(1, "10.0.1.0/24")
	assert.Equal(t, before, after)
	h.GetEvents().AssertContains(t, LoopDropped)
}

func TestRunNoSharedLinkIsFatal(t *testing.T) {
	h := &Harness{}
	s := SampleSimulation(h)
	require.NoError(t, s.EnqueueUpdate(5, 1, "10.0.5.0/24", state.NewPath(5)))
	require.NoError(t, s.EnqueueInit(2))

	err := s.Run()
	var fatal *FatalError
	require.ErrorAs(t, err, &fatal)
	assert.True(t, errors.Is(err, ErrNoSharedLink))
	assert.Equal(t, state.ASN(5), fatal.Msg.Src)
	// the offending message is consumed, the rest stays queued
	assert.Equal(t, []state.Message{state.InitMessage(2)}, s.Pending())
	h.GetEvents().AssertContains(t, InconsistentState)
}

func TestRunIdempotent(t *testing.T) {
	s := converged(t, &Harness{})
	doc := s.Document()
	require.NoError(t, s.Run())
	assert.Equal(t, Stats{}, s.Stats())
	assert.Equal(t, doc, s.Document())
}

func TestRunDrainedQueueMatchesLoaded(t *testing.T) {
	s := converged(t, &Harness{})
	assert.Nil(t, s.Pending())
	assert.Nil(t, s.Document().Message)

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))
	r, err := Import(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, s.Document(), r.Document())
}

func TestRunTieKeepsFirstArrival(t *testing.T) {
	s := NewSimulation(nil)
	for _, id := range []state.ASN{1, 2, 3, 4} {
		_, err := s.AddAS(id)
		require.NoError(t, err)
	}
	// 1 is a customer of both 2 and 3, which are customers of 4
	require.NoError(t, s.AddLink(state.LinkDown, 2, 1))
	require.NoError(t, s.AddLink(state.LinkDown, 3, 1))
	require.NoError(t, s.AddLink(state.LinkDown, 4, 2))
	require.NoError(t, s.AddLink(state.LinkDown, 4, 3))
	s.EnqueueAllInit()
	require.NoError(t, s.Run())

	got, ok := s.BestPath(1, 4)
	require.True(t, ok)
	assert.True(t, got.Equal(state.NewPath(1, 2)), "got %s", got)
	entries, _ := s.ListRoutes(4, "10.0.1.0/24")
	assert.Len(t, entries, 2)
}

func TestScenarioASPARejectsForgedPath(t *testing.T) {
	h := &Harness{}
	s := converged(t, h)
	for _, id := range []state.ASN{1, 3, 4} {
		require.NoError(t, s.AdoptASPA(id, nil))
	}
	as3, _ := s.Topology().Get(3)
	assert.Equal(t, []state.Policy{state.PolicyAspa, state.PolicyLocPrf, state.PolicyPathLength}, as3.Policy)

	require.NoError(t, s.EnqueueUpdate(6, 3, "10.0.1.0/24", state.NewPath(1, 2, 6)))
	require.NoError(t, s.Run())

	entries, err := s.ListRoutes(3, "10.0.1.0/24")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	forged := entries[1]
	assert.True(t, forged.Path.Equal(state.NewPath(1, 2, 6)))
	assert.Equal(t, state.Customer, forged.ComeFrom)
	assert.Equal(t, state.Invalid, forged.ASPA)
	assert.False(t, forged.Best)
	assert.True(t, entries[0].Best)
	assert.Equal(t, 0, s.Stats().Announcements)
}

func TestScenarioHijackWithoutDefence(t *testing.T) {
	s := converged(t, &Harness{})
	// 5 claims to be adjacent to 1
	require.NoError(t, s.Hijack(5, 1))
	require.Len(t, s.Pending(), 1)
	require.NoError(t, s.Run())

	// 3 prefers its customer 5 over the peer route
	got, ok := s.BestPath(1, 3)
	require.True(t, ok)
	assert.True(t, got.Equal(state.NewPath(1, 5)), "got %s", got)
}
