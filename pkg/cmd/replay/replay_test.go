//nolint:thelper // ok for tests
package replay

import (
	"bufio"
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1-telemetry-go/pkg/capture"
	"github.com/mpapenbr/f1-telemetry-go/pkg/dispatch"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
	"github.com/mpapenbr/f1-telemetry-go/testsupport/f1data"
)

func datagrams() [][]byte {
	return [][]byte{
		f1data.Participants(f1data.F12021),
		f1data.Lap(f1data.F12021),
		f1data.Unsupported(f1data.F12021, uint8(model.PacketTypeCarDamage)),
		f1data.Session(f1data.F12020),
		{0x01, 0x02},
	}
}

func result(t *testing.T, buf []byte) *stream.Result {
	p, err := dispatch.Default().Decode(buf, len(buf))
	return &stream.Result{Packet: p, Err: err, Size: len(buf)}
}

func TestSummary(t *testing.T) {
	s := NewSummary()
	for _, buf := range datagrams() {
		s.Add(result(t, buf))
	}
	assert.Equal(t, 5, s.Datagrams)
	assert.Equal(t, 3, s.Decoded())
	assert.Equal(t, map[uint16]int{2020: 1, 2021: 2}, s.Formats)
	assert.Equal(t, 1, s.Types[model.PacketTypeLap])
	assert.Equal(t, map[string]int{"unsupported_type": 1, "too_small": 1}, s.Errors)

	var out bytes.Buffer
	s.Print(&out)
	text := out.String()
	assert.Contains(t, text, "decoded")
	assert.Contains(t, text, "format 2021")
	assert.Contains(t, text, "Participants")
	assert.Contains(t, text, "unsupported_type")
}

func writeCapture(t *testing.T, name string) {
	rec, err := capture.CreateFile(name, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: capture.DefaultPort})
	require.NoError(t, err)
	from := &net.UDPAddr{IP: net.IPv4(192, 168, 1, 20), Port: 50000}
	ts := time.Date(2021, 8, 29, 15, 0, 0, 0, time.UTC)
	for i, buf := range datagrams() {
		require.NoError(t, rec.Record(buf, from, ts.Add(time.Duration(i)*time.Millisecond)))
	}
	require.NoError(t, rec.Close())
}

func TestReplayCmd(t *testing.T) {
	dir := t.TempDir()
	pcapFile := filepath.Join(dir, "session.pcap")
	jsonlFile := filepath.Join(dir, "out.jsonl")
	writeCapture(t, pcapFile)

	cmd := NewReplayCmd()
	cmd.SetArgs([]string{pcapFile, "--jsonl", jsonlFile, "--types", "Lap,Session"})
	require.NoError(t, cmd.Execute())

	f, err := os.Open(jsonlFile)
	require.NoError(t, err)
	defer f.Close()
	lines := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, 2, lines)
}

func TestReplayCmdMissingFile(t *testing.T) {
	cmd := NewReplayCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.pcap")})
	cmd.SilenceUsage = true
	assert.Error(t, cmd.Execute())
}
