//go:build integration

package integration

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/hashiba-k-jp/C-LOTUS/core"
	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/stretchr/testify/require"
)

// ScenarioHarness wraps a simulation and counts the events it reports.
type ScenarioHarness struct {
	Sim    *core.Simulation
	mu     sync.Mutex
	counts map[core.Event]int
}

func (h *ScenarioHarness) Log(event core.Event, desc string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.counts == nil {
		h.counts = make(map[core.Event]int)
	}
	h.counts[event]++
}

func (h *ScenarioHarness) Count(event core.Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counts[event]
}

func NewSample() *ScenarioHarness {
	h := &ScenarioHarness{}
	h.Sim = core.SampleSimulation(h)
	return h
}

// LoadFixture imports a scenario from the fixtures directory.
func LoadFixture(t *testing.T, name string) *ScenarioHarness {
	t.Helper()
	h := &ScenarioHarness{}
	s, err := core.LoadFile(filepath.Join("fixtures", name), h)
	require.NoError(t, err)
	h.Sim = s
	return h
}

func (h *ScenarioHarness) Run(t *testing.T) core.Stats {
	t.Helper()
	require.NoError(t, h.Sim.Run())
	require.Empty(t, h.Sim.Pending())
	return h.Sim.Stats()
}

// Resume saves the simulation to disk and continues from the saved copy.
func (h *ScenarioHarness) Resume(t *testing.T) *ScenarioHarness {
	t.Helper()
	file := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, h.Sim.SaveFile(file))
	r := &ScenarioHarness{}
	s, err := core.LoadFile(file, r)
	require.NoError(t, err)
	r.Sim = s
	return r
}

func (h *ScenarioHarness) RequireBest(t *testing.T, origin, at state.ASN, hops ...state.ASN) {
	t.Helper()
	got, ok := h.Sim.BestPath(origin, at)
	require.True(t, ok, "AS %s has no route to AS %s", at, origin)
	want := state.NewPath(hops...)
	require.True(t, want.Equal(got), "AS %s toward AS %s: want %s, got %s", at, origin, want, got)
}

// Routes calls fn for every stored route of every AS.
func (h *ScenarioHarness) Routes(fn func(at state.ASN, network state.Network, e state.RouteEntry)) {
	topo := h.Sim.Topology()
	for _, id := range topo.ASNs() {
		as, _ := topo.Get(id)
		for _, network := range as.Table.Networks() {
			rs, _ := as.Table.Lookup(network)
			for _, e := range rs.Entries() {
				fn(id, network, e)
			}
		}
	}
}
