package core

import (
	"github.com/hashiba-k-jp/C-LOTUS/state"
)

// exportable applies the valley-free rule: routes learned from a customer go
// to every neighbour, anything else only to customers.
func exportable(r state.Route, to state.Role) bool {
	return to == state.Customer || r.ComeFrom == state.Customer
}

// ExportInit synthesizes the updates neighbours of src send in answer to an
// Init from src. Links are visited in registration order, networks in lexical
// order.
func ExportInit(topo *state.Topology, src state.ASN) []state.Message {
	out := make([]state.Message, 0)
	for _, l := range topo.LinksOf(src) {
		role := l.Role(src)
		neigh, ok := topo.Get(l.Other(src))
		if !ok {
			continue
		}
		for _, network := range neigh.Table.Networks() {
			rs, _ := neigh.Table.Lookup(network)
			best, ok := rs.Best()
			if !ok || !exportable(best, role) {
				continue
			}
			path := best.Path.Append(neigh.ID)
			if path.Contains(src) {
				// src would drop it on arrival; keeps in-flight paths loop-free
				continue
			}
			out = append(out, state.UpdateMessage(neigh.ID, src, network, path))
		}
	}
	return out
}

// Reannounce builds the updates as sends after selecting ann as a new best
// route. as's own hop is appended to the announced path.
func Reannounce(topo *state.Topology, as state.ASN, ann state.Announcement) []state.Message {
	path := ann.Path.Append(as)
	out := make([]state.Message, 0)
	for _, l := range topo.LinksOf(as) {
		to := l.Other(as)
		if !exportable(state.Route{ComeFrom: ann.ComeFrom}, l.Role(to)) {
			continue
		}
		if path.Contains(to) {
			// in-flight paths never contain their receiver
			continue
		}
		out = append(out, state.UpdateMessage(as, to, ann.Network, path))
	}
	return out
}
