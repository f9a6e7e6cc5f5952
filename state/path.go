package state

import (
	"fmt"
	"slices"
	"strings"
)

// Path is the AS path of a route, origin first and most recent hop last.
// A Path with SelfOrigin set marks an AS's own network, carries no hops and
// is never transmitted.
type Path struct {
	Hops       []ASN
	SelfOrigin bool
}

func NewPath(hops ...ASN) Path {
	return Path{Hops: slices.Clone(hops)}
}

func SelfPath() Path {
	return Path{SelfOrigin: true}
}

func (p Path) Len() int {
	return len(p.Hops)
}

func (p Path) Contains(as ASN) bool {
	return slices.Contains(p.Hops, as)
}

// Origin returns the AS that originated the route.
func (p Path) Origin() (ASN, bool) {
	if len(p.Hops) == 0 {
		return 0, false
	}
	return p.Hops[0], true
}

// Last returns the most recent propagator.
func (p Path) Last() (ASN, bool) {
	if len(p.Hops) == 0 {
		return 0, false
	}
	return p.Hops[len(p.Hops)-1], true
}

// Append returns a copy of p with as added as the most recent hop. Appending
// to a self-origin path starts a fresh single-hop path.
func (p Path) Append(as ASN) Path {
	if p.SelfOrigin {
		return Path{Hops: []ASN{as}}
	}
	hops := make([]ASN, 0, len(p.Hops)+1)
	hops = append(hops, p.Hops...)
	return Path{Hops: append(hops, as)}
}

func (p Path) Equal(o Path) bool {
	return p.SelfOrigin == o.SelfOrigin && slices.Equal(p.Hops, o.Hops)
}

// String renders the path most recent hop first, as BGP AS_PATH notation
// does: the path 1 -> 2 -> 6 is written "6-2-1". The self-origin path is "I".
func (p Path) String() string {
	if p.SelfOrigin {
		return "I"
	}
	parts := make([]string, len(p.Hops))
	for i, as := range p.Hops {
		parts[len(p.Hops)-1-i] = as.String()
	}
	return strings.Join(parts, "-")
}

// ParsePath is the inverse of Path.String.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "I") {
		return SelfPath(), nil
	}
	if s == "" {
		return Path{}, nil
	}
	spl := strings.Split(s, "-")
	hops := make([]ASN, len(spl))
	for i, tok := range spl {
		if strings.EqualFold(strings.TrimSpace(tok), "I") {
			return Path{}, fmt.Errorf("invalid path %q: self-origin marker must stand alone", s)
		}
		as, err := ParseASN(tok)
		if err != nil {
			return Path{}, fmt.Errorf("invalid path %q: %w", s, err)
		}
		hops[len(spl)-1-i] = as
	}
	return Path{Hops: hops}, nil
}
