package core

import (
	"cmp"

	"github.com/hashiba-k-jp/C-LOTUS/state"
)

type decision int

const (
	// next defers to the following criterion of the chain
	next decision = iota
	promote
	reject
)

// criterion compares a candidate against the current best. Gates ignore best.
type criterion func(cand, best state.Route) decision

func ranked(c int) decision {
	switch {
	case c > 0:
		return promote
	case c < 0:
		return reject
	}
	return next
}

func gate(verdict func(r state.Route) state.Verdict) criterion {
	return func(cand, _ state.Route) decision {
		if verdict(cand) == state.Invalid {
			return reject
		}
		return next
	}
}

// criteria holds one entry per policy. A policy without an entry fails
// TestEveryPolicyHasCriterion.
var criteria = [state.NumPolicies]criterion{
	state.PolicyLocPrf: func(cand, best state.Route) decision {
		return ranked(cmp.Compare(cand.LocalPref, best.LocalPref))
	},
	state.PolicyPathLength: func(cand, best state.Route) decision {
		return ranked(cmp.Compare(best.Path.Len(), cand.Path.Len()))
	},
	state.PolicyAspa: gate(func(r state.Route) state.Verdict { return r.ASPA }),
	state.PolicyIsec: gate(func(r state.Route) state.Verdict { return r.ISec }),
}

// passesGates reports whether cand survives every gate of chain.
func passesGates(chain []state.Policy, cand state.Route) (bool, state.Policy) {
	for _, p := range chain {
		if p.IsGate() && criteria[p](cand, state.Route{}) == reject {
			return false, p
		}
	}
	return true, 0
}

// NewCandidate builds the route an update offers, with its verdicts attached.
// msg.ComeFrom must already be resolved.
func NewCandidate(att Attestations, msg state.Message) state.Route {
	r := state.Route{
		Path:      msg.Path,
		ComeFrom:  msg.ComeFrom,
		LocalPref: state.LocalPrefFor(msg.ComeFrom),
	}
	r.ASPA = VerifyASPA(att, r, msg.Src)
	r.ISec = VerifyISec(att, msg)
	return r
}

// UpdateTable offers the route carried by msg to the table of as. The
// candidate is always stored. When it becomes the best route, the returned
// announcement carries it unchanged; the caller appends its own hop.
func UpdateTable(as *state.AS, att Attestations, obs Observer, msg state.Message) (state.Announcement, bool) {
	cand := NewCandidate(att, msg)
	rs := as.Table.Set(msg.Network)
	prev, hasBest := rs.Best()
	idx := rs.Append(cand)
	ann := state.Announcement{ComeFrom: cand.ComeFrom, Path: cand.Path, Network: msg.Network}

	if !hasBest {
		if ok, p := passesGates(as.Policy, cand); !ok {
			obs.Log(RouteRejected, "candidate rejected by gate", "as", as.ID, "network", msg.Network, "policy", p, "route", cand)
			return state.Announcement{}, false
		}
		rs.Select(idx)
		obs.Log(RouteAdded, "first route selected", "as", as.ID, "network", msg.Network, "route", cand)
		return ann, true
	}

	for _, p := range as.Policy {
		switch criteria[p](cand, prev) {
		case promote:
			rs.Select(idx)
			obs.Log(RouteImproved, "route improved", "as", as.ID, "network", msg.Network, "policy", p, "route", cand, "prev", prev)
			return ann, true
		case reject:
			obs.Log(RouteRejected, "candidate kept as alternative", "as", as.ID, "network", msg.Network, "policy", p, "route", cand)
			return state.Announcement{}, false
		}
	}
	// complete tie, the earlier arrival keeps its place
	return state.Announcement{}, false
}
