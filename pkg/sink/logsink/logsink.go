// Package logsink reports decoded packets through the structured logger.
package logsink

import (
	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/sink"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

// Sink logs events and session changes at info level and every other
// packet at debug level.
type Sink struct {
	l       *log.Logger
	session uint64
	counts  map[model.PacketType]int
}

var _ sink.Sink = (*Sink)(nil)

func New(l *log.Logger) *Sink {
	return &Sink{l: l, counts: map[model.PacketType]int{}}
}

func (s *Sink) Write(res *stream.Result) error {
	p := res.Packet
	h := p.Header()
	s.counts[p.Type()]++
	if h.SessionUID != s.session {
		s.session = h.SessionUID
		s.l.Info("new session",
			log.String("session", sink.SessionKey(h.SessionUID)),
			log.Uint16("format", h.PacketFormat),
			log.Stringer("from", res.From))
	}
	switch v := p.(type) {
	case *model.Event:
		fields := []log.Field{
			log.String("code", v.Code.String()),
			log.Float32("sessionTime", h.SessionTime),
		}
		if idx, ok := v.VehicleIdx(); ok {
			fields = append(fields, log.Uint8("vehicleIdx", idx))
		}
		if v.Details != nil {
			fields = append(fields, log.Any("details", v.Details))
		}
		s.l.Info(v.Code.Description(), fields...)
	case *model.Session:
		s.l.Debug("session",
			log.Stringer("track", v.Track),
			log.Stringer("sessionType", v.SessionType),
			log.Uint16("timeLeft", v.SessionTimeLeft))
	default:
		if s.l.Enabled(log.DebugLevel) {
			s.l.Debug("packet",
				log.Stringer("type", p.Type()),
				log.Uint32("frame", h.FrameIdentifier),
				log.Int("size", res.Size))
		}
	}
	return nil
}

// Counts returns the number of logged packets per type
func (s *Sink) Counts() map[model.PacketType]int {
	return s.counts
}

func (s *Sink) Close() error {
	fields := make([]log.Field, 0, len(s.counts))
	for t, n := range s.counts {
		fields = append(fields, log.Int(t.String(), n))
	}
	s.l.Info("packets logged", fields...)
	return nil
}
