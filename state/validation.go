package state

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
)

var namePattern, _ = regexp.Compile("^[0-9a-z._-]+$")

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid name, must match pattern %s", s, namePattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("len(\"%s\") = %d > 100 is too long", s, len(s))
	}
	return nil
}

func ASConfigValidator(cfg *ASCfg) error {
	if cfg.AS == 0 {
		return ErrReservedASN
	}
	if cfg.Network == "" {
		return fmt.Errorf("AS %s has no network_address", cfg.AS)
	}
	if err := ValidatePolicy(cfg.Policy); err != nil {
		return fmt.Errorf("AS %s: %w", cfg.AS, err)
	}
	for network, routes := range cfg.RoutingTable {
		best := 0
		for _, r := range routes {
			if r.Best {
				best++
			}
			if !r.Path.SelfOrigin && r.Path.Contains(cfg.AS) {
				return fmt.Errorf("AS %s: route %s to %s contains a loop", cfg.AS, r.Path, network)
			}
			if r.Path.SelfOrigin && network != cfg.Network {
				return fmt.Errorf("AS %s: self-origin route to foreign network %s", cfg.AS, network)
			}
		}
		if best > 1 {
			return fmt.Errorf("AS %s: network %s has %d best routes", cfg.AS, network, best)
		}
	}
	return nil
}

func DocumentValidator(doc *Document) error {
	if doc.Name != "" {
		if err := NameValidator(doc.Name); err != nil {
			return err
		}
	}
	ases := make(map[ASN]struct{})
	networks := make(map[Network]ASN)
	for i := range doc.ASList {
		cfg := &doc.ASList[i]
		if err := ASConfigValidator(cfg); err != nil {
			return err
		}
		if _, ok := ases[cfg.AS]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateAS, cfg.AS)
		}
		if owner, ok := networks[cfg.Network]; ok {
			return fmt.Errorf("network %s is owned by both AS %s and AS %s", cfg.Network, owner, cfg.AS)
		}
		ases[cfg.AS] = struct{}{}
		networks[cfg.Network] = cfg.AS
	}
	known := func(as ASN) error {
		if _, ok := ases[as]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAS, as)
		}
		return nil
	}

	links := make(map[Pair[LinkType, Pair[ASN, ASN]]]struct{})
	for _, l := range doc.Connection {
		if l.Type != LinkPeer && l.Type != LinkDown {
			return fmt.Errorf("connection %s-%s has invalid type", l.Src, l.Dst)
		}
		if err := known(l.Src); err != nil {
			return fmt.Errorf("connection %s: %w", l, err)
		}
		if err := known(l.Dst); err != nil {
			return fmt.Errorf("connection %s: %w", l, err)
		}
		if l.Src == l.Dst {
			return fmt.Errorf("%w: %s", ErrSelfLink, l.Src)
		}
		key := linkKey(l)
		if _, ok := links[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateLink, l)
		}
		links[key] = struct{}{}
	}

	for i, m := range doc.Message {
		if err := known(m.Src); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		switch m.Kind {
		case MsgInit:
		case MsgUpdate:
			if err := known(m.Dst); err != nil {
				return fmt.Errorf("message %d: %w", i, err)
			}
			if m.Path.Len() == 0 {
				return fmt.Errorf("message %d: %w", i, ErrEmptyPath)
			}
			if m.Network == "" {
				return fmt.Errorf("message %d: update has no network", i)
			}
		default:
			return fmt.Errorf("message %d: invalid type", i)
		}
	}

	for customer := range doc.ASPA {
		if err := known(customer); err != nil {
			return fmt.Errorf("ASPA record: %w", err)
		}
	}
	for provider := range doc.ProConID {
		if err := known(provider); err != nil {
			return fmt.Errorf("ProConID record: %w", err)
		}
	}
	for _, as := range doc.ISecAdopted {
		if err := known(as); err != nil {
			return fmt.Errorf("isec_adopted: %w", err)
		}
	}
	return nil
}
