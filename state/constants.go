package state

import (
	"fmt"
	"slices"
)

// Local preference is derived from the relationship a route was learned
// over and is not configurable.
const (
	CustomerLocalPref = 200
	PeerLocalPref     = 100
	ProviderLocalPref = 50
	// SelfLocalPref is only carried by the self-origin route.
	SelfLocalPref = 1000
)

var (
	// AddressPoolBase is the first octet of automatically assigned networks.
	AddressPoolBase = 10
	// AddressPoolBits is the prefix length of automatically assigned networks.
	AddressPoolBits = 24
)

// debug toggles, gate the noisier trace events of the slog observer

var (
	DBG_log_messages      = false
	DBG_log_route_changes = false
	DBG_log_rejections    = false
)

// DefaultPolicy returns the chain installed on newly registered ASes.
func DefaultPolicy() []Policy {
	return []Policy{PolicyLocPrf, PolicyPathLength}
}

// LocalPrefFor maps a come_from role to its local preference.
func LocalPrefFor(r Role) int {
	switch r {
	case Customer:
		return CustomerLocalPref
	case Peer:
		return PeerLocalPref
	case Provider:
		return ProviderLocalPref
	}
	panic("local preference requested for unset role")
}

// ValidatePolicy checks a policy chain for unknown or repeated criteria.
func ValidatePolicy(chain []Policy) error {
	if len(chain) == 0 {
		return ErrEmptyPolicy
	}
	for i, p := range chain {
		if p >= NumPolicies {
			return fmt.Errorf("%w: %d", ErrUnknownPolicy, p)
		}
		if slices.Contains(chain[:i], p) {
			return fmt.Errorf("%w: %s", ErrDuplicatePolicy, p)
		}
	}
	return nil
}
