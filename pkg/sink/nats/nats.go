// Package nats publishes decoded packets as JSON messages.
//
// Subjects are <prefix>.<session>.<type>, e.g. f1t.1122334455667788.cartelemetry
package nats

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/sink"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

const (
	DefaultSubjectPrefix = "f1t"

	HeaderFormat = "F1t-Format"
	HeaderFrame  = "F1t-Frame"
	HeaderType   = "F1t-Type"
)

// Publisher is implemented by *nats.Conn
type Publisher interface {
	PublishMsg(m *nats.Msg) error
	Flush() error
}

type (
	Sink struct {
		pub       Publisher
		prefix    string
		closeConn bool
		l         *log.Logger
		published int
	}
	Option func(*Sink)
)

var _ sink.Sink = (*Sink)(nil)

func WithSubjectPrefix(prefix string) Option {
	return func(s *Sink) {
		s.prefix = strings.TrimSuffix(prefix, ".")
	}
}

// WithCloseConn closes the connection on Close if the publisher is a *nats.Conn
func WithCloseConn(closeConn bool) Option {
	return func(s *Sink) {
		s.closeConn = closeConn
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Sink) {
		s.l = l
	}
}

func New(pub Publisher, opts ...Option) *Sink {
	ret := &Sink{
		pub:    pub,
		prefix: DefaultSubjectPrefix,
		l:      log.Default().Named("nats"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Connect opens a connection to url and returns a sink owning it
func Connect(url string, opts ...Option) (*Sink, error) {
	conn, err := nats.Connect(url, nats.Name("f1t"))
	if err != nil {
		return nil, fmt.Errorf("connect to nats %s: %w", url, err)
	}
	return New(conn, append(opts, WithCloseConn(true))...), nil
}

// Subject returns the subject used for packets of type t in the given session
func (s *Sink) Subject(sessionUID uint64, t model.PacketType) string {
	return fmt.Sprintf("%s.%s.%s", s.prefix, sink.SessionKey(sessionUID),
		strings.ToLower(t.String()))
}

func (s *Sink) Write(res *stream.Result) error {
	p := res.Packet
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	h := p.Header()
	msg := nats.NewMsg(s.Subject(h.SessionUID, p.Type()))
	msg.Header.Set(HeaderFormat, strconv.Itoa(int(h.PacketFormat)))
	msg.Header.Set(HeaderFrame, strconv.FormatUint(uint64(h.FrameIdentifier), 10))
	msg.Header.Set(HeaderType, p.Type().String())
	msg.Data = data
	if err := s.pub.PublishMsg(msg); err != nil {
		return err
	}
	s.published++
	return nil
}

func (s *Sink) Published() int {
	return s.published
}

func (s *Sink) Close() error {
	err := s.pub.Flush()
	if conn, ok := s.pub.(*nats.Conn); ok && s.closeConn {
		conn.Close()
	}
	s.l.Debug("nats sink closed", log.Int("published", s.published))
	return err
}
