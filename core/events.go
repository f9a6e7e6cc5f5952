package core

import (
	"context"
	"log/slog"

	"github.com/hashiba-k-jp/C-LOTUS/state"
)

type Event int

// trace events

const (
	RouteAdded Event = iota
	RouteImproved
	RouteRejected
	LoopDropped
	AnnouncementSent
	InitExpanded
)

// warn events

const (
	SetupRejected Event = iota + 1000
	InconsistentState
)

var eventNames = map[Event]string{
	RouteAdded:        "RouteAdded",
	RouteImproved:     "RouteImproved",
	RouteRejected:     "RouteRejected",
	LoopDropped:       "LoopDropped",
	AnnouncementSent:  "AnnouncementSent",
	InitExpanded:      "InitExpanded",
	SetupRejected:     "SetupRejected",
	InconsistentState: "InconsistentState",
}

func (e Event) String() string {
	if s, ok := eventNames[e]; ok {
		return s
	}
	return "Event(?)"
}

func (e Event) IsWarn() bool {
	return e >= 1000
}

// Observer receives everything the engine wants to report. The engine never
// formats output itself.
type Observer interface {
	Log(event Event, desc string, args ...any)
}

type NopObserver struct{}

func (NopObserver) Log(Event, string, ...any) {}

// SlogObserver writes trace events at debug level and warn events at warn
// level. The noisier trace events are gated by the state.DBG_ toggles.
type SlogObserver struct {
	Logger *slog.Logger
}

func (o SlogObserver) Log(event Event, desc string, args ...any) {
	if !logEnabled(event) {
		return
	}
	level := slog.LevelDebug
	if event.IsWarn() {
		level = slog.LevelWarn
	}
	attrs := make([]any, 0, len(args)+1)
	attrs = append(attrs, slog.String("event", event.String()))
	attrs = append(attrs, args...)
	o.Logger.Log(context.Background(), level, desc, attrs...)
}

func logEnabled(event Event) bool {
	switch event {
	case InitExpanded, AnnouncementSent:
		return state.DBG_log_messages
	case RouteAdded, RouteImproved:
		return state.DBG_log_route_changes
	case RouteRejected, LoopDropped:
		return state.DBG_log_rejections
	}
	return true
}
