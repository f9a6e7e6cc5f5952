package core

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashiba-k-jp/C-LOTUS/state"
)

type HarnessEvent struct {
	Event Event
	Desc  string
	Args  []any
}

// Harness records every event the engine reports.
type Harness struct {
	events []HarnessEvent
}

func (h *Harness) Log(event Event, desc string, args ...any) {
	h.events = append(h.events, HarnessEvent{Event: event, Desc: desc, Args: args})
}

type HarnessEvents []HarnessEvent

func (h HarnessEvents) String() string {
	out := make([]string, 0)
	for _, e := range h {
		cur := e.Event.String()
		for _, arg := range e.Args {
			cur += " " + fmt.Sprint(arg)
		}
		out = append(out, cur)
	}
	slices.Sort(out)
	return strings.Join(out, "\n")
}

// GetEvents returns and clears the recorded events.
func (h *Harness) GetEvents() HarnessEvents {
	x := h.events
	h.events = make([]HarnessEvent, 0)
	return x
}

// contains matches events by kind and by a set of key/value pairs among
// their arguments.
func (e HarnessEvents) contains(event Event, kv ...any) bool {
	for _, ev := range e {
		if ev.Event != event {
			continue
		}
		match := true
		for i := 0; i+1 < len(kv); i += 2 {
			idx := slices.Index(ev.Args, kv[i])
			if idx == -1 || idx+1 >= len(ev.Args) || !cmp.Equal(ev.Args[idx+1], kv[i+1]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func (e HarnessEvents) AssertContains(t *testing.T, event Event, kv ...any) {
	t.Helper()
	if e.contains(event, kv...) {
		return
	}
	t.Fatal("Expected event not found: ", event, " with args: ", kv, " in ", e)
}

func (e HarnessEvents) AssertNotContains(t *testing.T, event Event, kv ...any) {
	t.Helper()
	if e.contains(event, kv...) {
		t.Fatal("Unexpected event found: ", event, " with args: ", kv, " in ", e)
	}
}

// MakeAS builds a registered-looking AS for selector tests.
func MakeAS(id state.ASN, policy ...state.Policy) *state.AS {
	if len(policy) == 0 {
		policy = state.DefaultPolicy()
	}
	network := state.PoolNetwork(int(id))
	return &state.AS{
		ID:      id,
		Network: network,
		Policy:  policy,
		Table:   state.NewRoutingTable(network),
	}
}

// Offer runs an update through the selector of as, with the role already
// resolved.
func (h *Harness) Offer(as *state.AS, att Attestations, src state.ASN, from state.Role, network state.Network, hops ...state.ASN) (state.Announcement, bool) {
	msg := state.UpdateMessage(src, as.ID, network, state.NewPath(hops...))
	msg.ComeFrom = from
	return UpdateTable(as, att, h, msg)
}
