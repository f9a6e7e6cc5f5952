package core

import "github.com/hashiba-k-jp/C-LOTUS/state"

// SampleSimulation builds the six AS reference topology:
//
//	  4 ---- 3      (peers)
//	 / \    / \
//	2   \  /   5
//	|    6
//	1
//
// Every line without a label points from a provider down to its customer.
// Nothing is enqueued.
func SampleSimulation(obs Observer) *Simulation {
	s := NewSimulation(obs)
	s.Name = "sample"
	for _, id := range []state.ASN{1, 2, 3, 4, 5, 6} {
		if _, err := s.AddAS(id); err != nil {
			panic(err)
		}
	}
	links := []state.Link{
		{Type: state.LinkDown, Src: 4, Dst: 2},
		{Type: state.LinkDown, Src: 4, Dst: 6},
		{Type: state.LinkDown, Src: 3, Dst: 5},
		{Type: state.LinkDown, Src: 3, Dst: 6},
		{Type: state.LinkDown, Src: 2, Dst: 1},
		{Type: state.LinkPeer, Src: 3, Dst: 4},
	}
	for _, l := range links {
		if err := s.AddLink(l.Type, l.Src, l.Dst); err != nil {
			panic(err)
		}
	}
	return s
}
