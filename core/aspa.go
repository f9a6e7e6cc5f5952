package core

// ASPA path verification follows the up-ramp / down-ramp procedure of
// draft-ietf-sidrops-aspa-verification:
// https://datatracker.ietf.org/doc/draft-ietf-sidrops-aspa-verification/

import "github.com/hashiba-k-jp/C-LOTUS/state"

// ASPAStore answers provider authorization lookups.
type ASPAStore interface {
	ProviderAuthorized(customer, provider state.ASN) state.Verdict
}

// VerifyASPA validates the path of route, received from neighbor, against the
// published ASPA records. Invalid takes precedence over Unknown, which takes
// precedence over Valid.
func VerifyASPA(store ASPAStore, route state.Route, neighbor state.ASN) state.Verdict {
	hops := route.Path.Hops
	if last, ok := route.Path.Last(); !ok || last != neighbor {
		// the neighbor must be the most recent hop
		return state.Invalid
	}

	result := state.Valid
	switch route.ComeFrom {
	case state.Customer, state.Peer:
		// the whole path must climb
		for i := 0; i < len(hops)-1; i++ {
			switch store.ProviderAuthorized(hops[i], hops[i+1]) {
			case state.Invalid:
				return state.Invalid
			case state.Unknown:
				result = state.Unknown
			}
		}
		return result
	case state.Provider:
		// climb until the first unauthorized pair marks the apex
		peak := -1
		for i := 0; i < len(hops)-1; i++ {
			v := store.ProviderAuthorized(hops[i], hops[i+1])
			if v == state.Invalid {
				peak = i
				break
			}
			if v == state.Unknown {
				result = state.Unknown
			}
		}
		if peak == -1 {
			return result
		}
		// every hop past the apex must descend
		for j := peak + 1; j < len(hops); j++ {
			switch store.ProviderAuthorized(hops[j], hops[j-1]) {
			case state.Invalid:
				return state.Invalid
			case state.Unknown:
				result = state.Unknown
			}
		}
		return result
	}
	panic("ASPA verification of a route without come_from")
}
