package core

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/stretchr/testify/assert"
)

func withToggle(t *testing.T, toggle *bool, v bool) {
	old := *toggle
	*toggle = v
	t.Cleanup(func() { *toggle = old })
}

func TestSlogObserverLevels(t *testing.T) {
	var buf bytes.Buffer
	obs := SlogObserver{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	obs.Log(SetupRejected, "unknown AS", "as", state.ASN(9))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "event=SetupRejected")
	assert.Contains(t, buf.String(), "as=9")

	// gated off by default
	buf.Reset()
	obs.Log(RouteAdded, "route added")
	obs.Log(LoopDropped, "dropped")
	obs.Log(InitExpanded, "init expanded")
	assert.Empty(t, buf.String())

	withToggle(t, &state.DBG_log_route_changes, true)
	obs.Log(RouteAdded, "route added")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "event=RouteAdded")
}

func TestSlogObserverThroughRun(t *testing.T) {
	withToggle(t, &state.DBG_log_rejections, true)
	var buf bytes.Buffer
	obs := SlogObserver{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	s := SampleSimulation(obs)
	s.EnqueueAllInit()
	assert.NoError(t, s.Run())
	assert.Contains(t, buf.String(), "event=RouteRejected")
	assert.NotContains(t, buf.String(), "event=RouteAdded")
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "LoopDropped", LoopDropped.String())
	assert.Equal(t, "Event(?)", Event(77).String())
	assert.True(t, InconsistentState.IsWarn())
	assert.False(t, AnnouncementSent.IsWarn())
}
