package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashiba-k-jp/C-LOTUS/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAS(t *testing.T) {
	s := converged(t, &Harness{})
	as, _ := s.Topology().Get(6)

	var buf bytes.Buffer
	RenderAS(&buf, as, false)
	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "colors were disabled")
	assert.Contains(t, out, "AS 6  network 10.0.6.0/24  policy [LocPrf, PathLength]")

	var best, alt string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "10.0.1.0/24") {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			best = line
		} else {
			alt = line
		}
	}
	require.NotEmpty(t, best)
	require.NotEmpty(t, alt)
	assert.Contains(t, best, "4-2-1")
	assert.Contains(t, alt, "3-4-2-1")
	assert.Contains(t, out, " I ")
}

func TestRenderASColored(t *testing.T) {
	as := MakeAS(1)
	var buf bytes.Buffer
	RenderAS(&buf, as, true)
	assert.Contains(t, buf.String(), "\x1b[32m")
}

func TestRenderQueue(t *testing.T) {
	var buf bytes.Buffer
	RenderQueue(&buf, nil)
	assert.Equal(t, "no pending messages\n", buf.String())

	buf.Reset()
	RenderQueue(&buf, []state.Message{
		state.InitMessage(3),
		state.UpdateMessage(6, 3, "10.0.1.0/24", state.NewPath(1, 2, 6)),
	})
	out := buf.String()
	assert.Contains(t, out, "Init")
	assert.Contains(t, out, "Update")
	assert.Contains(t, out, "6-2-1")
}

func TestRenderLinks(t *testing.T) {
	s := SampleSimulation(nil)
	var buf bytes.Buffer
	RenderLinks(&buf, s.Topology().Links())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header plus one row per link
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[6], "Peer")
}
