package core

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hashiba-k-jp/C-LOTUS/perf"
	"github.com/hashiba-k-jp/C-LOTUS/state"
)

var ErrNoSharedLink = errors.New("message endpoints share no link")

// FatalError aborts a run. The topology and the message stream disagree, so
// the run cannot continue without guessing.
type FatalError struct {
	Msg state.Message
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %v while processing %s from %s to %s", e.Err, e.Msg.Kind, e.Msg.Src, e.Msg.Dst)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Stats counts what the last call to Run did.
type Stats struct {
	Processed     int
	Dropped       int
	Announcements int
}

// Simulation owns a topology, its attestations and the message queue. It is
// not safe for concurrent use; independent simulations share nothing.
type Simulation struct {
	Name  string
	topo  *state.Topology
	att   *state.Attestations
	queue []state.Message
	obs   Observer
	stats Stats
}

func NewSimulation(obs Observer) *Simulation {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Simulation{
		topo: state.NewTopology(),
		att:  state.NewAttestations(),
		obs:  obs,
	}
}

func (s *Simulation) Topology() *state.Topology {
	return s.topo
}

func (s *Simulation) Attestations() *state.Attestations {
	return s.att
}

func (s *Simulation) rejected(err error) error {
	s.obs.Log(SetupRejected, err.Error())
	return err
}

func (s *Simulation) getAS(id state.ASN) (*state.AS, error) {
	as, ok := s.topo.Get(id)
	if !ok {
		return nil, s.rejected(fmt.Errorf("%w: %s", state.ErrUnknownAS, id))
	}
	return as, nil
}

// Run drains the queue. Processing is strictly FIFO and every message is
// handled completely before the next one is popped.
func (s *Simulation) Run() error {
	start := time.Now()
	s.stats = Stats{}
	defer func() {
		perf.RunLatency.Add(float64(time.Since(start).Microseconds()))
	}()

	for len(s.queue) > 0 {
		msg := s.queue[0]
		s.queue[0] = state.Message{}
		s.queue = s.queue[1:]
		s.stats.Processed++
		perf.MessagesProcessed.Add(1)

		var err error
		switch msg.Kind {
		case state.MsgInit:
			err = s.handleInit(msg)
		case state.MsgUpdate:
			err = s.handleUpdate(msg)
		default:
			err = fmt.Errorf("invalid message type %d", msg.Kind)
		}
		if len(s.queue) == 0 {
			s.queue = nil
		}
		if err != nil {
			s.obs.Log(InconsistentState, "run aborted", "msg", msg, "err", err)
			return &FatalError{Msg: msg, Err: err}
		}
	}
	return nil
}

func (s *Simulation) handleInit(msg state.Message) error {
	if !s.topo.Has(msg.Src) {
		return fmt.Errorf("%w: %s", state.ErrUnknownAS, msg.Src)
	}
	updates := ExportInit(s.topo, msg.Src)
	s.obs.Log(InitExpanded, "init expanded", "src", msg.Src, "updates", len(updates))
	s.push(updates...)
	return nil
}

func (s *Simulation) handleUpdate(msg state.Message) error {
	dst, ok := s.topo.Get(msg.Dst)
	if !ok {
		return fmt.Errorf("%w: %s", state.ErrUnknownAS, msg.Dst)
	}
	if msg.Path.Contains(dst.ID) {
		s.stats.Dropped++
		perf.UpdatesDropped.Add(1)
		s.obs.Log(LoopDropped, "update dropped, path contains receiver", "msg", msg)
		return nil
	}
	link, ok := s.topo.SharedLink(msg.Src, msg.Dst)
	if !ok {
		return ErrNoSharedLink
	}
	msg.ComeFrom = link.Role(msg.Src)

	ann, ok := UpdateTable(dst, s.att, s.obs, msg)
	if !ok {
		return nil
	}
	s.stats.Announcements++
	perf.Announcements.Add(1)
	updates := Reannounce(s.topo, dst.ID, ann)
	s.obs.Log(AnnouncementSent, "announcing new best route", "as", dst.ID, "network", ann.Network, "updates", len(updates))
	s.push(updates...)
	return nil
}

func (s *Simulation) push(msgs ...state.Message) {
	s.queue = append(s.queue, msgs...)
}

// Pending returns a copy of the queued messages, head first, or nil when
// the queue is empty.
func (s *Simulation) Pending() []state.Message {
	if len(s.queue) == 0 {
		return nil
	}
	return slices.Clone(s.queue)
}

// Stats returns the counters of the last call to Run.
func (s *Simulation) Stats() Stats {
	return s.stats
}
