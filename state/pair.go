package state

import "cmp"

type Pair[Ty1, Ty2 any] struct {
	V1 Ty1
	V2 Ty2
}

func MakeSortedPair[T cmp.Ordered](a, b T) Pair[T, T] {
	if a < b {
		return Pair[T, T]{a, b}
	} else {
		return Pair[T, T]{b, a}
	}
}

// linkKey identifies a link for duplicate detection. Peer links are keyed by
// their sorted endpoints.
func linkKey(l Link) Pair[LinkType, Pair[ASN, ASN]] {
	if l.Type == LinkPeer {
		return Pair[LinkType, Pair[ASN, ASN]]{l.Type, MakeSortedPair(l.Src, l.Dst)}
	}
	return Pair[LinkType, Pair[ASN, ASN]]{l.Type, Pair[ASN, ASN]{l.Src, l.Dst}}
}
