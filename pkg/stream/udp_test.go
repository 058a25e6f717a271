package stream

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/testsupport/f1data"
)

func TestUDPTransportIdle(t *testing.T) {
	tr, err := ListenUDP("127.0.0.1:0")
	require.NoError(t, err)
	defer tr.Close()

	buf := make([]byte, MaxDatagramSize)
	_, _, err = tr.Receive(buf)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestUDPTransportReceive(t *testing.T) {
	tr, err := ListenUDP("127.0.0.1:0", WithPollTimeout(5*time.Millisecond), WithReadBuffer(1<<16))
	require.NoError(t, err)
	defer tr.Close()

	conn, err := net.DialUDP("udp", nil, tr.LocalAddr().(*net.UDPAddr))
	require.NoError(t, err)
	defer conn.Close()
	data := f1data.Packet(f1data.F12021, model.PacketTypeParticipants)
	_, err = conn.Write(data)
	require.NoError(t, err)

	s := New(tr)
	var res *Result
	deadline := time.Now().Add(2 * time.Second)
	for res == nil && time.Now().Before(deadline) {
		res, err = s.Next()
		require.NoError(t, err)
	}
	require.NotNil(t, res, "no datagram received")
	assert.NoError(t, res.Err)
	assert.Equal(t, len(data), res.Size)
	assert.Equal(t, conn.LocalAddr().String(), res.From.String())
	assert.Equal(t, model.PacketTypeParticipants, res.Packet.Type())
}

func TestUDPTransportClosed(t *testing.T) {
	tr, err := ListenUDP("127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, tr.Close())

	_, err = New(tr).Next()
	assert.ErrorIs(t, err, model.ErrTransport)
}

func TestListenUDPInvalidAddr(t *testing.T) {
	_, err := ListenUDP("not-an-address")
	assert.Error(t, err)
}
