package jsonl

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/mpapenbr/f1-telemetry-go/pkg/dispatch"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
	"github.com/mpapenbr/f1-telemetry-go/testsupport/f1data"
)

var received = time.Date(2021, 7, 18, 14, 0, 0, 0, time.UTC)

func result(t *testing.T, format uint16, pt model.PacketType) *stream.Result {
	t.Helper()
	buf := f1data.Packet(format, pt)
	p, err := dispatch.Default().Decode(buf, len(buf))
	assert.NilError(t, err)
	return &stream.Result{Packet: p, Size: len(buf), Received: received}
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var ret []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		m := map[string]any{}
		assert.NilError(t, json.Unmarshal([]byte(l), &m))
		ret = append(ret, m)
	}
	return ret
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(&buf)
	assert.NilError(t, err)
	assert.NilError(t, s.Write(result(t, f1data.F12021, model.PacketTypeParticipants)))
	assert.NilError(t, s.Write(result(t, f1data.F12019, model.PacketTypeLap)))
	assert.NilError(t, s.Close())

	got := lines(t, &buf)
	assert.Assert(t, is.Len(got, 2))
	assert.Equal(t, got[0]["type"], "Participants")
	assert.Equal(t, got[0]["format"], float64(2021))
	assert.Equal(t, got[0]["session"], "1122334455667788")
	assert.Equal(t, got[0]["frame"], float64(4711))
	assert.Equal(t, got[0]["received"], "2021-07-18T14:00:00Z")
	data, ok := got[0]["data"].(map[string]any)
	assert.Assert(t, ok)
	assert.Assert(t, is.Contains(data, "participants"))
	assert.Equal(t, got[1]["type"], "Lap")
}

func TestSelect(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(&buf, WithSelect("$.participants[1].name"))
	assert.NilError(t, err)
	assert.NilError(t, s.Write(result(t, f1data.F12020, model.PacketTypeParticipants)))
	// no match
	assert.NilError(t, s.Write(result(t, f1data.F12020, model.PacketTypeMotion)))
	assert.NilError(t, s.Close())

	got := lines(t, &buf)
	assert.Assert(t, is.Len(got, 1))
	assert.Equal(t, got[0]["data"], f1data.DriverName(1))
	assert.Equal(t, s.Skipped(), 1)
}

func TestSelectMultiple(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(&buf, WithSelect("$.cars[*].carPosition"))
	assert.NilError(t, err)
	assert.NilError(t, s.Write(result(t, f1data.F12019, model.PacketTypeLap)))
	assert.NilError(t, s.Flush())

	got := lines(t, &buf)
	assert.Assert(t, is.Len(got, 1))
	positions, ok := got[0]["data"].([]any)
	assert.Assert(t, ok)
	assert.Equal(t, len(positions), f1data.NumCars(f1data.F12019))
	assert.Equal(t, positions[0], float64(1))
}

func TestInvalidSelect(t *testing.T) {
	_, err := New(&bytes.Buffer{}, WithSelect("$.[[["))
	assert.ErrorContains(t, err, "invalid select expression")
}

func TestTypes(t *testing.T) {
	var buf bytes.Buffer
	s, err := New(&buf, WithTypes(model.PacketTypeEvent, model.PacketTypeSession))
	assert.NilError(t, err)
	for _, pt := range []model.PacketType{
		model.PacketTypeMotion, model.PacketTypeEvent,
		model.PacketTypeLap, model.PacketTypeSession,
	} {
		assert.NilError(t, s.Write(result(t, f1data.F12021, pt)))
	}
	assert.NilError(t, s.Close())

	got := lines(t, &buf)
	assert.Assert(t, is.Len(got, 2))
	assert.Equal(t, got[0]["type"], "Event")
	assert.Equal(t, got[1]["type"], "Session")
}

type closeRecorder struct{ closed bool }

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestCloser(t *testing.T) {
	c := &closeRecorder{}
	s, err := New(&bytes.Buffer{}, WithCloser(c))
	assert.NilError(t, err)
	assert.NilError(t, s.Close())
	assert.Assert(t, c.closed)
}
