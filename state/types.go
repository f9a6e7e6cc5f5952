package state

import (
	"fmt"
	"strconv"
	"strings"
)

// ASN identifies an autonomous system. 0 is reserved and never registered.
type ASN uint32

func (a ASN) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// ParseASN parses a decimal AS number, rejecting the reserved value 0.
func ParseASN(s string) (ASN, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid AS number %q: %w", s, err)
	}
	if v == 0 {
		return 0, ErrReservedASN
	}
	return ASN(v), nil
}

// Network is the destination network owned by an AS. It is opaque to the
// routing logic; it is usually a CIDR such as 10.0.1.0/24.
type Network string

// Role is the relationship an AS plays on a link, seen from the other end.
// A route's come_from is the role of the neighbour it was learned from.
type Role uint8

const (
	RoleUnset Role = iota
	Customer
	Peer
	Provider
)

var roleNames = map[Role]string{
	Customer: "Customer",
	Peer:     "Peer",
	Provider: "Provider",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "Unset"
}

// LinkType is the type of an inter-AS link.
type LinkType uint8

const (
	// LinkPeer is symmetric, both endpoints are peers.
	LinkPeer LinkType = iota + 1
	// LinkDown points from a provider (Src) down to its customer (Dst).
	LinkDown
)

var linkTypeNames = map[LinkType]string{
	LinkPeer: "Peer",
	LinkDown: "Down",
}

func (t LinkType) String() string {
	if s, ok := linkTypeNames[t]; ok {
		return s
	}
	return "Invalid"
}

// Verdict is the outcome of a route security check. VerdictNone means the
// check was not applicable and is omitted when persisted.
type Verdict uint8

const (
	VerdictNone Verdict = iota
	Valid
	Invalid
	Unknown
)

var verdictNames = map[Verdict]string{
	VerdictNone: "None",
	Valid:       "Valid",
	Invalid:     "Invalid",
	Unknown:     "Unknown",
}

func (v Verdict) String() string {
	if s, ok := verdictNames[v]; ok {
		return s
	}
	return "Invalid(" + strconv.Itoa(int(v)) + ")"
}

// Policy is one criterion of a best-path policy chain.
type Policy uint16

const (
	// PolicyLocPrf ranks by local preference, higher wins.
	PolicyLocPrf Policy = iota
	// PolicyPathLength ranks by path length, shorter wins.
	PolicyPathLength
	// PolicyAspa rejects candidates whose ASPA verdict is Invalid.
	PolicyAspa
	// PolicyIsec rejects candidates whose iSec verdict is Invalid.
	PolicyIsec

	// NumPolicies is the number of defined policies. Keep it last.
	NumPolicies
)

var policyNames = [NumPolicies]string{
	PolicyLocPrf:     "LocPrf",
	PolicyPathLength: "PathLength",
	PolicyAspa:       "Aspa",
	PolicyIsec:       "Isec",
}

func (p Policy) String() string {
	if p < NumPolicies {
		return policyNames[p]
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// IsGate reports whether the policy only filters candidates instead of
// ranking them.
func (p Policy) IsGate() bool {
	return p == PolicyAspa || p == PolicyIsec
}

// ParsePolicy matches a policy name case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	for p := range NumPolicies {
		if strings.EqualFold(policyNames[p], strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// MessageKind distinguishes broadcast-intent Init messages from Updates.
type MessageKind uint8

const (
	MsgInit MessageKind = iota + 1
	MsgUpdate
)

func (k MessageKind) String() string {
	switch k {
	case MsgInit:
		return "Init"
	case MsgUpdate:
		return "Update"
	}
	return "Invalid"
}

func parseEnum[T comparable](names map[T]string, kind, s string) (T, error) {
	for v, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}
