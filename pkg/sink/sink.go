// Package sink contains the consumers of decoded packets.
package sink

import (
	"context"
	"strconv"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

// Sink receives results carrying a decoded packet
type Sink interface {
	Write(res *stream.Result) error
	Close() error
}

// Drain writes every result of ch to s until ch is closed or ctx is done.
// Write errors are logged and do not stop the sink.
// Returns the number of failed writes.
func Drain(ctx context.Context, name string, ch <-chan *stream.Result, s Sink) int {
	l := log.GetFromContext(ctx).Named("sink").With(log.String("sink", name))
	failed := 0
	defer func() {
		if err := s.Close(); err != nil {
			l.Warn("close sink", log.ErrorField(err))
		}
		l.Debug("sink drained", log.Int("failed", failed))
	}()
	for {
		select {
		case <-ctx.Done():
			return failed
		case res, ok := <-ch:
			if !ok {
				return failed
			}
			if res.Packet == nil {
				continue
			}
			if err := s.Write(res); err != nil {
				failed++
				l.Warn("write failed",
					log.Stringer("type", res.Packet.Type()),
					log.ErrorField(err))
			}
		}
	}
}

// SessionKey formats a session uid the way sinks expose it
func SessionKey(uid uint64) string {
	return strconv.FormatUint(uid, 16)
}
