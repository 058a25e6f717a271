// Package stream reads datagrams from a transport and decodes them one at
// a time.
package stream

import (
	"context"
	"errors"
	"net"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/dispatch"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

// ErrNoData is returned by a Transport if no datagram is pending.
var ErrNoData = errors.New("f1t: no data")

const (
	// MaxDatagramSize is larger than any datagram of the supported formats
	MaxDatagramSize     = 2048
	DefaultPollInterval = 5 * time.Millisecond
)

// Transport delivers datagrams. Receive must not block for long and return
// ErrNoData if nothing is pending. Any other error ends the stream.
type Transport interface {
	Receive(buf []byte) (n int, from net.Addr, err error)
	LocalAddr() net.Addr
	Close() error
}

// Decoder is implemented by *dispatch.Dispatcher
type Decoder interface {
	Decode(buf []byte, n int) (model.Packet, error)
}

// Result is the outcome of one datagram. Either Packet or Err is set.
type Result struct {
	Packet   model.Packet
	Err      error
	Size     int
	From     net.Addr
	Received time.Time
	Raw      []byte // copy of the datagram, only with WithKeepRaw
}

type Option func(*Stream)

func WithDecoder(d Decoder) Option {
	return func(s *Stream) {
		s.decoder = d
	}
}

// WithPollInterval sets the pause of Run when no data is pending
func WithPollInterval(d time.Duration) Option {
	return func(s *Stream) {
		s.pollInterval = d
	}
}

// WithKeepRaw attaches a copy of each datagram to the result
func WithKeepRaw(keep bool) Option {
	return func(s *Stream) {
		s.keepRaw = keep
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Stream) {
		s.log = l
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Stream) {
		s.meterProvider = mp
	}
}

func withClock(now func() time.Time) Option {
	return func(s *Stream) {
		s.now = now
	}
}

// Stream is either idle (nothing pending) or ready (one datagram read).
// It is not safe for concurrent use.
type Stream struct {
	transport     Transport
	decoder       Decoder
	buf           []byte
	pollInterval  time.Duration
	keepRaw       bool
	log           *log.Logger
	meterProvider metric.MeterProvider
	metrics       *streamMetrics
	now           func() time.Time
}

func New(t Transport, opts ...Option) *Stream {
	ret := &Stream{
		transport:     t,
		decoder:       dispatch.Default(),
		buf:           make([]byte, MaxDatagramSize),
		pollInterval:  DefaultPollInterval,
		log:           log.Default().Named("stream"),
		meterProvider: otel.GetMeterProvider(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.metrics = newStreamMetrics(ret.meterProvider, ret.log)
	return ret
}

// Next returns (nil, nil) if no datagram is pending and a result for the
// next datagram otherwise. A non-nil error is always a *model.TransportError.
func (s *Stream) Next() (*Result, error) {
	n, from, err := s.transport.Receive(s.buf)
	if errors.Is(err, ErrNoData) {
		return nil, nil
	}
	if err != nil {
		s.metrics.transportError()
		return nil, &model.TransportError{Op: "receive", Err: err}
	}
	ret := &Result{Size: n, From: from, Received: s.now()}
	ret.Packet, ret.Err = s.decoder.Decode(s.buf, n)
	if s.keepRaw {
		ret.Raw = make([]byte, n)
		copy(ret.Raw, s.buf[:n])
	}
	s.metrics.record(ret)
	if ret.Err != nil && s.log.Enabled(log.DebugLevel) {
		s.log.Debug("dropping datagram",
			log.Int("size", n),
			log.String("kind", model.Kind(ret.Err)),
			log.ErrorField(ret.Err))
	}
	return ret, nil
}

// Run polls the transport until ctx is done, fn returns an error or the
// transport fails. Cancellation of ctx is not reported as error.
func (s *Stream) Run(ctx context.Context, fn func(*Result) error) error {
	s.log.Info("stream started", log.Stringer("addr", s.transport.LocalAddr()))
	defer s.log.Info("stream stopped", log.Stringer("addr", s.transport.LocalAddr()))
	for {
		if ctx.Err() != nil {
			return nil
		}
		res, err := s.Next()
		if err != nil {
			s.log.Error("transport failed", log.ErrorField(err))
			return err
		}
		if res == nil {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(s.pollInterval):
			}
			continue
		}
		if err := fn(res); err != nil {
			return err
		}
	}
}

func (s *Stream) LocalAddr() net.Addr {
	return s.transport.LocalAddr()
}

func (s *Stream) Close() error {
	return s.transport.Close()
}
