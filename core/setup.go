package core

import (
	"fmt"
	"slices"

	"github.com/hashiba-k-jp/C-LOTUS/state"
)

// AddAS registers id with a network from the address pool.
func (s *Simulation) AddAS(id state.ASN) (state.Network, error) {
	as, err := s.topo.AddAS(id)
	if err != nil {
		return "", s.rejected(err)
	}
	return as.Network, nil
}

// AddASWithNetwork registers id owning network.
func (s *Simulation) AddASWithNetwork(id state.ASN, network state.Network) error {
	if _, err := s.topo.AddASWithNetwork(id, network); err != nil {
		return s.rejected(err)
	}
	return nil
}

func (s *Simulation) AddLink(typ state.LinkType, src, dst state.ASN) error {
	if err := s.topo.AddLink(typ, src, dst); err != nil {
		return s.rejected(err)
	}
	return nil
}

func (s *Simulation) SetPolicy(id state.ASN, chain []state.Policy) error {
	as, err := s.getAS(id)
	if err != nil {
		return err
	}
	if err = state.ValidatePolicy(chain); err != nil {
		return s.rejected(fmt.Errorf("AS %s: %w", id, err))
	}
	as.Policy = slices.Clone(chain)
	return nil
}

// InsertPolicy inserts p at index priority of the chain of id, clamped to the
// chain bounds. Inserting a policy already in the chain does nothing.
func (s *Simulation) InsertPolicy(id state.ASN, p state.Policy, priority int) error {
	as, err := s.getAS(id)
	if err != nil {
		return err
	}
	if p >= state.NumPolicies {
		return s.rejected(fmt.Errorf("%w: %d", state.ErrUnknownPolicy, p))
	}
	if slices.Contains(as.Policy, p) {
		return nil
	}
	priority = max(0, min(priority, len(as.Policy)))
	as.Policy = slices.Insert(as.Policy, priority, p)
	return nil
}

// RemovePolicy drops p from the chain of id. The chain may not become empty.
func (s *Simulation) RemovePolicy(id state.ASN, p state.Policy) error {
	as, err := s.getAS(id)
	if err != nil {
		return err
	}
	idx := slices.Index(as.Policy, p)
	if idx == -1 {
		return nil
	}
	if len(as.Policy) == 1 {
		return s.rejected(fmt.Errorf("AS %s: %w", id, state.ErrEmptyPolicy))
	}
	as.Policy = slices.Delete(as.Policy, idx, idx+1)
	return nil
}

func (s *Simulation) PublishASPA(customer state.ASN, providers []state.ASN) error {
	if _, err := s.getAS(customer); err != nil {
		return err
	}
	s.att.PublishASPA(customer, providers)
	return nil
}

func (s *Simulation) SetISecAdoption(id state.ASN, adopted bool) error {
	if _, err := s.getAS(id); err != nil {
		return err
	}
	s.att.SetISecAdoption(id, adopted)
	return nil
}

func (s *Simulation) PublishProConID(provider state.ASN, customers []state.ASN) error {
	if _, err := s.getAS(provider); err != nil {
		return err
	}
	s.att.PublishProConID(provider, customers)
	return nil
}

// AdoptASPA publishes the ASPA record of id and makes its selector reject
// ASPA-invalid routes before any ranking.
func (s *Simulation) AdoptASPA(id state.ASN, providers []state.ASN) error {
	if err := s.PublishASPA(id, providers); err != nil {
		return err
	}
	return s.InsertPolicy(id, state.PolicyAspa, 0)
}

// AdoptISec marks id as an iSec adopter, publishes its ProConID record and
// makes its selector reject iSec-invalid routes before any ranking.
func (s *Simulation) AdoptISec(id state.ASN, customers []state.ASN) error {
	if err := s.SetISecAdoption(id, true); err != nil {
		return err
	}
	if err := s.PublishProConID(id, customers); err != nil {
		return err
	}
	return s.InsertPolicy(id, state.PolicyIsec, 0)
}

// seeding

func (s *Simulation) EnqueueInit(src state.ASN) error {
	if _, err := s.getAS(src); err != nil {
		return err
	}
	s.push(state.InitMessage(src))
	return nil
}

// EnqueueAllInit enqueues an Init for every AS in ascending AS number order.
func (s *Simulation) EnqueueAllInit() {
	for _, id := range s.topo.ASNs() {
		s.push(state.InitMessage(id))
	}
}

// EnqueueUpdate injects an update. Whether src and dst share a link is only
// checked when the update is processed.
func (s *Simulation) EnqueueUpdate(src, dst state.ASN, network state.Network, path state.Path) error {
	if _, err := s.getAS(src); err != nil {
		return err
	}
	if _, err := s.getAS(dst); err != nil {
		return err
	}
	if path.Len() == 0 {
		return s.rejected(state.ErrEmptyPath)
	}
	if network == "" {
		return s.rejected(fmt.Errorf("update from %s to %s has no network", src, dst))
	}
	s.push(state.UpdateMessage(src, dst, network, path))
	return nil
}

// Hijack makes attacker announce the network of victim to every neighbour,
// forging the path victim -> attacker.
func (s *Simulation) Hijack(attacker, victim state.ASN) error {
	if _, err := s.getAS(attacker); err != nil {
		return err
	}
	v, err := s.getAS(victim)
	if err != nil {
		return err
	}
	if attacker == victim {
		return s.rejected(fmt.Errorf("AS %s cannot hijack itself", attacker))
	}
	path := state.NewPath(victim, attacker)
	for _, l := range s.topo.LinksOf(attacker) {
		s.push(state.UpdateMessage(attacker, l.Other(attacker), v.Network, path))
	}
	return nil
}
