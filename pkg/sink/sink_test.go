package sink

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

type memSink struct {
	got    []model.PacketType
	fail   model.PacketType
	closed bool
}

func (m *memSink) Write(res *stream.Result) error {
	if res.Packet.Type() == m.fail {
		return errors.New("rejected")
	}
	m.got = append(m.got, res.Packet.Type())
	return nil
}

func (m *memSink) Close() error {
	m.closed = true
	return nil
}

func TestDrain(t *testing.T) {
	ch := make(chan *stream.Result, 4)
	ch <- &stream.Result{Packet: &model.Lap{}}
	ch <- &stream.Result{Err: model.ErrTruncated}
	ch <- &stream.Result{Packet: &model.Event{}}
	ch <- &stream.Result{Packet: &model.Session{}}
	close(ch)

	s := &memSink{fail: model.PacketTypeEvent}
	failed := Drain(context.Background(), "mem", ch, s)
	assert.Equal(t, 1, failed)
	assert.Equal(t, []model.PacketType{model.PacketTypeLap, model.PacketTypeSession}, s.got)
	assert.True(t, s.closed)
}

func TestDrainStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &memSink{}
	assert.Equal(t, 0, Drain(ctx, "mem", make(chan *stream.Result), s))
	assert.True(t, s.closed)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "1122334455667788", SessionKey(0x1122334455667788))
	assert.Equal(t, "0", SessionKey(0))
}
