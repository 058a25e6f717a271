// Package jsonl writes decoded packets as one JSON document per line.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/samber/lo"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/sink"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

type (
	Sink struct {
		w       *bufio.Writer
		closer  io.Closer
		sel     jp.Expr
		types   []model.PacketType
		skipped int
	}
	Option func(*Sink) error

	record struct {
		Received time.Time `json:"received"`
		Format   uint16    `json:"format"`
		Type     string    `json:"type"`
		Session  string    `json:"session"`
		Frame    uint32    `json:"frame"`
		Data     any       `json:"data"`
	}
)

var _ sink.Sink = (*Sink)(nil)

// WithSelect projects each packet with a JSONPath expression, e.g.
// "$.lapData[0].currentLapTime". Packets without a match are skipped.
func WithSelect(expr string) Option {
	return func(s *Sink) error {
		if expr == "" {
			return nil
		}
		x, err := jp.ParseString(expr)
		if err != nil {
			return fmt.Errorf("invalid select expression %q: %w", expr, err)
		}
		s.sel = x
		return nil
	}
}

// WithTypes restricts the output to the given packet types
func WithTypes(types ...model.PacketType) Option {
	return func(s *Sink) error {
		s.types = types
		return nil
	}
}

// WithCloser closes c together with the sink, e.g. the output file
func WithCloser(c io.Closer) Option {
	return func(s *Sink) error {
		s.closer = c
		return nil
	}
}

func New(w io.Writer, opts ...Option) (*Sink, error) {
	ret := &Sink{w: bufio.NewWriter(w)}
	for _, opt := range opts {
		if err := opt(ret); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (s *Sink) Write(res *stream.Result) error {
	p := res.Packet
	if len(s.types) > 0 && !lo.Contains(s.types, p.Type()) {
		return nil
	}
	data, err := s.project(p)
	if err != nil {
		return err
	}
	if data == nil {
		s.skipped++
		return nil
	}
	h := p.Header()
	line, err := json.Marshal(record{
		Received: res.Received,
		Format:   h.PacketFormat,
		Type:     p.Type().String(),
		Session:  sink.SessionKey(h.SessionUID),
		Frame:    h.FrameIdentifier,
		Data:     data,
	})
	if err != nil {
		return err
	}
	if _, err := s.w.Write(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// project returns the packet itself or the values matched by the select
// expression. nil means no match.
func (s *Sink) project(p model.Packet) (any, error) {
	if s.sel == nil {
		return p, nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	obj, err := oj.Parse(raw)
	if err != nil {
		return nil, err
	}
	switch res := s.sel.Get(obj); len(res) {
	case 0:
		return nil, nil
	case 1:
		return res[0], nil
	default:
		return res, nil
	}
}

// Skipped returns the number of packets without a match of the select expression
func (s *Sink) Skipped() int {
	return s.skipped
}

func (s *Sink) Flush() error {
	return s.w.Flush()
}

func (s *Sink) Close() error {
	err := s.w.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
