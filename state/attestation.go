package state

import (
	"maps"
	"slices"
)

// Attestations holds the published security records of a simulation.
// Records are trusted as-is; nothing here verifies signatures.
type Attestations struct {
	// ASPA maps a customer to the providers it authorizes.
	ASPA map[ASN][]ASN
	// ProConID maps an iSec provider to the customers it authorizes.
	ProConID map[ASN][]ASN
	// Adopters is the set of ASes that validate with iSec.
	Adopters map[ASN]struct{}
}

func NewAttestations() *Attestations {
	return &Attestations{
		ASPA:     make(map[ASN][]ASN),
		ProConID: make(map[ASN][]ASN),
		Adopters: make(map[ASN]struct{}),
	}
}

// PublishASPA replaces the ASPA record of customer. An empty provider list is
// a valid record that authorizes nobody.
func (a *Attestations) PublishASPA(customer ASN, providers []ASN) {
	a.ASPA[customer] = sortedSet(providers)
}

// PublishProConID replaces the ProConID record of provider.
func (a *Attestations) PublishProConID(provider ASN, customers []ASN) {
	a.ProConID[provider] = sortedSet(customers)
}

func (a *Attestations) SetISecAdoption(as ASN, adopted bool) {
	if adopted {
		a.Adopters[as] = struct{}{}
	} else {
		delete(a.Adopters, as)
	}
}

func (a *Attestations) ISecAdopted(as ASN) bool {
	_, ok := a.Adopters[as]
	return ok
}

// ProviderAuthorized looks up whether customer attests provider as one of its
// providers. Unknown means customer published no ASPA record.
func (a *Attestations) ProviderAuthorized(customer, provider ASN) Verdict {
	providers, ok := a.ASPA[customer]
	if !ok {
		return Unknown
	}
	if _, found := slices.BinarySearch(providers, provider); !found {
		return Invalid
	}
	return Valid
}

// CustomerAuthorized reports whether provider attests customer as one of its
// direct customers.
func (a *Attestations) CustomerAuthorized(provider, customer ASN) bool {
	customers, ok := a.ProConID[provider]
	if !ok {
		return false
	}
	_, found := slices.BinarySearch(customers, customer)
	return found
}

// AdopterList returns the iSec adopters in ascending order.
func (a *Attestations) AdopterList() []ASN {
	return slices.Sorted(maps.Keys(a.Adopters))
}

func sortedSet(in []ASN) []ASN {
	out := slices.Clone(in)
	if out == nil {
		out = []ASN{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
