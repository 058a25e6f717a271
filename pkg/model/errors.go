package model

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated             = errors.New("f1t: truncated datagram")
	ErrInvalidCode           = errors.New("f1t: invalid code")
	ErrUnknownFormat         = errors.New("f1t: unknown packet format")
	ErrUnsupportedPacketType = errors.New("f1t: unsupported packet type")
	ErrPacketTooSmall        = errors.New("f1t: packet too small")
	ErrTransport             = errors.New("f1t: transport failure")
)

// TruncatedError is returned when a read needs more bytes than remain.
type TruncatedError struct {
	Offset int // read position when the read was attempted
	Want   int
	Have   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%v: need %d bytes at offset %d, have %d",
		ErrTruncated, e.Want, e.Offset, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// InvalidCodeError is returned when a coded field carries a value outside
// the closed table of that field.
type InvalidCodeError struct {
	Field string
	Code  string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("%v: %s=%s", ErrInvalidCode, e.Field, e.Code)
}

func (e *InvalidCodeError) Unwrap() error { return ErrInvalidCode }

type UnknownFormatError struct {
	Format uint16
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("%v: %d", ErrUnknownFormat, e.Format)
}

func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }

type UnsupportedPacketTypeError struct {
	Format uint16
	Type   PacketType
}

func (e *UnsupportedPacketTypeError) Error() string {
	return fmt.Sprintf("%v: %s (format %d)", ErrUnsupportedPacketType, e.Type, e.Format)
}

func (e *UnsupportedPacketTypeError) Unwrap() error { return ErrUnsupportedPacketType }

type PacketTooSmallError struct {
	Size int
	Min  int
}

func (e *PacketTooSmallError) Error() string {
	return fmt.Sprintf("%v: %d bytes, need at least %d", ErrPacketTooSmall, e.Size, e.Min)
}

func (e *PacketTooSmallError) Unwrap() error { return ErrPacketTooSmall }

// TransportError wraps a failure of the datagram source. It matches both
// ErrTransport and the underlying cause with errors.Is.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrTransport, e.Op, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// IsFatal reports whether err ends the packet stream.
// Every decode error is scoped to a single datagram.
func IsFatal(err error) bool {
	return errors.Is(err, ErrTransport)
}

// Kind returns a short, stable label for err. Used for metrics and summaries.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrPacketTooSmall):
		return "too_small"
	case errors.Is(err, ErrUnknownFormat):
		return "unknown_format"
	case errors.Is(err, ErrUnsupportedPacketType):
		return "unsupported_type"
	case errors.Is(err, ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrInvalidCode):
		return "invalid_code"
	default:
		return "other"
	}
}
