package state

import (
	"fmt"
	"maps"
	"slices"
)

// AS is one simulated autonomous system.
type AS struct {
	ID      ASN
	Network Network
	Policy  []Policy
	Table   *RoutingTable
}

// Link is an inter-AS link. For LinkDown, Src is the provider and Dst the
// customer. For LinkPeer the endpoint order carries no meaning.
type Link struct {
	Type LinkType `yaml:"type"`
	Src  ASN      `yaml:"src"`
	Dst  ASN      `yaml:"dst"`
}

func (l Link) String() string {
	return fmt.Sprintf("%s %s-%s", l.Type, l.Src, l.Dst)
}

// Has reports whether as is an endpoint of l.
func (l Link) Has(as ASN) bool {
	return l.Src == as || l.Dst == as
}

// Other returns the endpoint of l that is not as.
func (l Link) Other(as ASN) ASN {
	switch as {
	case l.Src:
		return l.Dst
	case l.Dst:
		return l.Src
	}
	panic(fmt.Sprintf("AS %s is not an endpoint of link %s", as, l))
}

// Role resolves which role as plays on l. Resolving for an AS that is not an
// endpoint of l is a programming error and panics.
func (l Link) Role(as ASN) Role {
	if !l.Has(as) {
		panic(fmt.Sprintf("AS %s is not an endpoint of link %s", as, l))
	}
	switch l.Type {
	case LinkPeer:
		return Peer
	case LinkDown:
		if as == l.Src {
			return Provider
		}
		return Customer
	}
	panic(fmt.Sprintf("link %s has invalid type", l))
}

// Equivalent reports whether l and o describe the same link.
func (l Link) Equivalent(o Link) bool {
	if l.Type != o.Type {
		return false
	}
	if l.Src == o.Src && l.Dst == o.Dst {
		return true
	}
	return l.Type == LinkPeer && l.Src == o.Dst && l.Dst == o.Src
}

// Topology holds the registered ASes and their links. Links keep their
// registration order, which decides the order announcements are sent in.
type Topology struct {
	ases  map[ASN]*AS
	links []Link
	// number of ASes registered through the address pool
	allocated int
}

func NewTopology() *Topology {
	return &Topology{ases: make(map[ASN]*AS)}
}

// PoolNetwork returns the network the address pool assigns to the n-th AS.
func PoolNetwork(n int) Network {
	return Network(fmt.Sprintf("%d.%d.%d.0/%d", AddressPoolBase, n/256, n%256, AddressPoolBits))
}

// AddAS registers id with the next network of the address pool.
func (t *Topology) AddAS(id ASN) (*AS, error) {
	if err := t.checkNew(id); err != nil {
		return nil, err
	}
	for {
		t.allocated++
		network := PoolNetwork(t.allocated)
		if _, taken := t.OwnerOf(network); !taken {
			return t.insert(id, network), nil
		}
	}
}

// AddASWithNetwork registers id owning an explicit network.
func (t *Topology) AddASWithNetwork(id ASN, network Network) (*AS, error) {
	if err := t.checkNew(id); err != nil {
		return nil, err
	}
	if network == "" {
		return nil, fmt.Errorf("AS %s: network must not be empty", id)
	}
	if owner, taken := t.OwnerOf(network); taken {
		return nil, fmt.Errorf("AS %s: network %s is already owned by AS %s", id, network, owner)
	}
	return t.insert(id, network), nil
}

func (t *Topology) checkNew(id ASN) error {
	if id == 0 {
		return ErrReservedASN
	}
	if _, ok := t.ases[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAS, id)
	}
	return nil
}

func (t *Topology) insert(id ASN, network Network) *AS {
	as := &AS{
		ID:      id,
		Network: network,
		Policy:  DefaultPolicy(),
		Table:   NewRoutingTable(network),
	}
	t.ases[id] = as
	return as
}

func (t *Topology) Get(id ASN) (*AS, bool) {
	as, ok := t.ases[id]
	return as, ok
}

func (t *Topology) Has(id ASN) bool {
	_, ok := t.ases[id]
	return ok
}

// ASNs returns every registered AS number in ascending order.
func (t *Topology) ASNs() []ASN {
	return slices.Sorted(maps.Keys(t.ases))
}

func (t *Topology) Len() int {
	return len(t.ases)
}

// OwnerOf returns the AS owning network.
func (t *Topology) OwnerOf(network Network) (ASN, bool) {
	for id, as := range t.ases {
		if as.Network == network {
			return id, true
		}
	}
	return 0, false
}

// AddLink registers a link between two registered ASes.
func (t *Topology) AddLink(typ LinkType, src, dst ASN) error {
	if typ != LinkPeer && typ != LinkDown {
		return fmt.Errorf("invalid link type %d", typ)
	}
	for _, as := range []ASN{src, dst} {
		if !t.Has(as) {
			return fmt.Errorf("%w: %s", ErrUnknownAS, as)
		}
	}
	if src == dst {
		return fmt.Errorf("%w: %s", ErrSelfLink, src)
	}
	l := Link{Type: typ, Src: src, Dst: dst}
	if slices.ContainsFunc(t.links, l.Equivalent) {
		return fmt.Errorf("%w: %s", ErrDuplicateLink, l)
	}
	t.links = append(t.links, l)
	return nil
}

// Links returns a copy of every link in registration order.
func (t *Topology) Links() []Link {
	return slices.Clone(t.links)
}

// LinksOf returns the links incident to as in registration order.
func (t *Topology) LinksOf(as ASN) []Link {
	out := make([]Link, 0)
	for _, l := range t.links {
		if l.Has(as) {
			out = append(out, l)
		}
	}
	return out
}

// SharedLink returns the first registered link joining a and b.
func (t *Topology) SharedLink(a, b ASN) (Link, bool) {
	for _, l := range t.links {
		if l.Has(a) && l.Has(b) && a != b {
			return l, true
		}
	}
	return Link{}, false
}
