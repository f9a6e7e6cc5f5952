package core

// BGP-iSec ProConID verification, after C. Morris et al.,
// "BGP-iSec: Improved Security of Internet Routing Against Post-ROV Attacks",
// NDSS 2024.

import "github.com/hashiba-k-jp/C-LOTUS/state"

// ISecStore answers adoption and customer authorization lookups.
type ISecStore interface {
	ISecAdopted(as state.ASN) bool
	CustomerAuthorized(provider, customer state.ASN) bool
}

// Attestations is everything the validators consult.
type Attestations interface {
	ASPAStore
	ISecStore
}

// VerifyISec validates an update among the iSec adopters on its path. It
// returns VerdictNone when the check does not apply.
func VerifyISec(store ISecStore, msg state.Message) state.Verdict {
	if msg.Kind != state.MsgUpdate {
		return state.VerdictNone
	}
	origin, ok := msg.Path.Origin()
	if !ok || !store.ISecAdopted(msg.Dst) || !store.ISecAdopted(origin) {
		return state.VerdictNone
	}
	if msg.ComeFrom == state.Provider {
		return state.Valid
	}

	adopters := make([]state.ASN, 0, msg.Path.Len())
	for _, as := range msg.Path.Hops {
		if store.ISecAdopted(as) {
			adopters = append(adopters, as)
		}
	}
	for i := 0; i < len(adopters)-1; i++ {
		if !store.CustomerAuthorized(adopters[i], adopters[i+1]) {
			return state.Invalid
		}
	}

	switch msg.ComeFrom {
	case state.Peer:
		return state.Valid
	case state.Customer:
		// the closest adopter must vouch for the receiver too
		if store.CustomerAuthorized(adopters[len(adopters)-1], msg.Dst) {
			return state.Valid
		}
		return state.Invalid
	}
	panic("iSec verification of a message without come_from")
}
