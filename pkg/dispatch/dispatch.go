// Package dispatch selects the decoder set of a datagram by its format
// and decodes it into a model.Packet.
package dispatch

import (
	"encoding/binary"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/mpapenbr/f1-telemetry-go/pkg/format/f12019"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/f12020"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/f12021"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

// DecoderSet decodes all packet types of one format.
type DecoderSet interface {
	Format() uint16
	HeaderSize() int
	NumCars() int
	Name() string

	Header(r *wire.Reader) (model.Header, error)
	Motion(h model.Header, r *wire.Reader) (*model.Motion, error)
	Session(h model.Header, r *wire.Reader) (*model.Session, error)
	Lap(h model.Header, r *wire.Reader) (*model.Lap, error)
	Event(h model.Header, r *wire.Reader) (*model.Event, error)
	Participants(h model.Header, r *wire.Reader) (*model.Participants, error)
	CarSetups(h model.Header, r *wire.Reader) (*model.CarSetups, error)
	CarTelemetry(h model.Header, r *wire.Reader) (*model.CarTelemetry, error)
	CarStatus(h model.Header, r *wire.Reader) (*model.CarStatus, error)
}

var (
	_ DecoderSet = f12019.Decoder{}
	_ DecoderSet = f12020.Decoder{}
	_ DecoderSet = f12021.Decoder{}
)

// formatSize is the size of the format field every datagram starts with
const formatSize = 2

type Option func(*Dispatcher)

// WithDecoderSet registers s for its format. A set registered earlier for
// the same format is replaced.
func WithDecoderSet(s DecoderSet) Option {
	return func(d *Dispatcher) {
		d.sets[s.Format()] = s
	}
}

// Dispatcher is immutable after New and safe for concurrent use.
type Dispatcher struct {
	sets map[uint16]DecoderSet
}

func New(opts ...Option) *Dispatcher {
	ret := &Dispatcher{sets: map[uint16]DecoderSet{}}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Default returns a dispatcher for all supported formats.
func Default() *Dispatcher {
	return New(
		WithDecoderSet(f12019.Decoder{}),
		WithDecoderSet(f12020.Decoder{}),
		WithDecoderSet(f12021.Decoder{}),
	)
}

// Formats returns the registered formats in ascending order
func (d *Dispatcher) Formats() []uint16 {
	return slices.Sorted(maps.Keys(d.sets))
}

func (d *Dispatcher) Lookup(format uint16) (DecoderSet, bool) {
	s, ok := d.sets[format]
	return s, ok
}

// PeekFormat returns the format of the datagram without decoding it.
func PeekFormat(buf []byte) (uint16, error) {
	if len(buf) < formatSize {
		return 0, &model.PacketTooSmallError{Size: len(buf), Min: formatSize}
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// DecodeHeader decodes only the header of the first n bytes of buf.
func (d *Dispatcher) DecodeHeader(buf []byte, n int) (model.Header, error) {
	set, r, err := d.prepare(buf, n)
	if err != nil {
		return model.Header{}, err
	}
	return set.Header(r)
}

// Decode decodes the first n bytes of buf. The error is one of the typed
// errors of package model. Neither of them ends a packet stream.
func (d *Dispatcher) Decode(buf []byte, n int) (model.Packet, error) {
	set, r, err := d.prepare(buf, n)
	if err != nil {
		return nil, err
	}
	h, err := set.Header(r)
	if err != nil {
		return nil, err
	}
	return decodePayload(set, h, r)
}

// ErrUnhandledPacketType means a packet type passed header validation
// but has no case in decodePayload.
var ErrUnhandledPacketType = errors.New("f1t: unhandled packet type")

//nolint:cyclop // one case per packet type
func decodePayload(set DecoderSet, h model.Header, r *wire.Reader) (model.Packet, error) {
	switch h.PacketID {
	case model.PacketTypeMotion:
		return packet(set.Motion(h, r))
	case model.PacketTypeSession:
		return packet(set.Session(h, r))
	case model.PacketTypeLap:
		return packet(set.Lap(h, r))
	case model.PacketTypeEvent:
		return packet(set.Event(h, r))
	case model.PacketTypeParticipants:
		return packet(set.Participants(h, r))
	case model.PacketTypeCarSetups:
		return packet(set.CarSetups(h, r))
	case model.PacketTypeCarTelemetry:
		return packet(set.CarTelemetry(h, r))
	case model.PacketTypeCarStatus:
		return packet(set.CarStatus(h, r))
	case model.PacketTypeFinalClassification,
		model.PacketTypeLobbyInfo,
		model.PacketTypeCarDamage,
		model.PacketTypeSessionHistory:
		return nil, &model.UnsupportedPacketTypeError{Format: set.Format(), Type: h.PacketID}
	default:
		return nil, fmt.Errorf("%w: %d (format %d)", ErrUnhandledPacketType, h.PacketID, set.Format())
	}
}

func (d *Dispatcher) prepare(buf []byte, n int) (DecoderSet, *wire.Reader, error) {
	if n > len(buf) {
		return nil, nil, &model.PacketTooSmallError{Size: len(buf), Min: n}
	}
	if n < formatSize {
		return nil, nil, &model.PacketTooSmallError{Size: n, Min: formatSize}
	}
	format, _ := PeekFormat(buf[:n])
	set, ok := d.sets[format]
	if !ok {
		return nil, nil, &model.UnknownFormatError{Format: format}
	}
	if n < set.HeaderSize() {
		return nil, nil, &model.PacketTooSmallError{Size: n, Min: set.HeaderSize()}
	}
	return set, wire.NewReader(buf[:n]), nil
}

// packet avoids returning a typed nil inside the interface
func packet[T model.Packet](p T, err error) (model.Packet, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}
