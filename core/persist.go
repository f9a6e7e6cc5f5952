package core

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/hashiba-k-jp/C-LOTUS/state"
)

// Document captures the whole simulation, including the pending queue, so a
// run can be resumed from it.
func (s *Simulation) Document() *state.Document {
	doc := &state.Document{
		Name:        s.Name,
		ASList:      make([]state.ASCfg, 0, s.topo.Len()),
		Connection:  s.topo.Links(),
		Message:     s.Pending(),
		ISecAdopted: s.att.AdopterList(),
	}
	for _, id := range s.topo.ASNs() {
		as, _ := s.topo.Get(id)
		cfg := state.ASCfg{
			AS:           as.ID,
			Network:      as.Network,
			Policy:       slices.Clone(as.Policy),
			RoutingTable: make(map[state.Network][]state.RouteEntry),
		}
		for _, network := range as.Table.Networks() {
			rs, _ := as.Table.Lookup(network)
			cfg.RoutingTable[network] = rs.Entries()
		}
		doc.ASList = append(doc.ASList, cfg)
	}
	if len(s.att.ASPA) > 0 {
		doc.ASPA = cloneRecords(s.att.ASPA)
	}
	if len(s.att.ProConID) > 0 {
		doc.ProConID = cloneRecords(s.att.ProConID)
	}
	return doc
}

func cloneRecords(in map[state.ASN][]state.ASN) map[state.ASN][]state.ASN {
	out := make(map[state.ASN][]state.ASN, len(in))
	for k, v := range in {
		out[k] = slices.Clone(v)
	}
	return out
}

// FromDocument rebuilds a simulation from doc. Ases without a routing table
// start with only their self route.
func FromDocument(doc *state.Document, obs Observer) (*Simulation, error) {
	if err := state.DocumentValidator(doc); err != nil {
		return nil, err
	}
	s := NewSimulation(obs)
	s.Name = doc.Name

	for _, cfg := range doc.ASList {
		as, err := s.topo.AddASWithNetwork(cfg.AS, cfg.Network)
		if err != nil {
			return nil, err
		}
		as.Policy = slices.Clone(cfg.Policy)
		if cfg.RoutingTable != nil {
			restoreTable(as, cfg.RoutingTable)
		}
	}
	for _, l := range doc.Connection {
		if err := s.topo.AddLink(l.Type, l.Src, l.Dst); err != nil {
			return nil, err
		}
	}
	for _, m := range doc.Message {
		s.push(m)
	}
	for customer, providers := range doc.ASPA {
		s.att.PublishASPA(customer, providers)
	}
	for _, as := range doc.ISecAdopted {
		s.att.SetISecAdoption(as, true)
	}
	for provider, customers := range doc.ProConID {
		s.att.PublishProConID(provider, customers)
	}
	return s, nil
}

func restoreTable(as *state.AS, table map[state.Network][]state.RouteEntry) {
	as.Table.Reset()
	for _, network := range slices.Sorted(maps.Keys(table)) {
		rs := as.Table.Set(network)
		for _, e := range table[network] {
			idx := rs.Append(e.Route)
			if e.Best {
				rs.Select(idx)
			}
		}
	}
	if _, ok := as.Table.Lookup(as.Network); !ok {
		rs := as.Table.Set(as.Network)
		rs.Select(rs.Append(state.SelfRoute()))
	}
}

// Export writes the simulation as YAML.
func (s *Simulation) Export(w io.Writer) error {
	bytes, err := yaml.Marshal(s.Document())
	if err != nil {
		return err
	}
	_, err = w.Write(bytes)
	return err
}

// Import reads a YAML document. Unknown keys are rejected.
func Import(r io.Reader, obs Observer) (*Simulation, error) {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc state.Document
	if err = yaml.UnmarshalWithOptions(bytes, &doc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("invalid simulation document: %w", err)
	}
	return FromDocument(&doc, obs)
}

func LoadFile(file string, obs Observer) (*Simulation, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Import(f, obs)
}

func (s *Simulation) SaveFile(file string) error {
	err := os.MkdirAll(path.Dir(file), 0700)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Export(f)
}
