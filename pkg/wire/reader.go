// Package wire reads and writes the little endian fixed layout fields of
// the telemetry datagrams.
package wire

import (
	"encoding/binary"
	"math"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

// Reader is a cursor over a datagram. The first failed read is kept
// (see Err); all following reads return zero values without advancing.
type Reader struct {
	buf []byte
	off int
	err error
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) Offset() int    { return r.off }
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Err returns the first error recorded on the reader
func (r *Reader) Err() error { return r.err }

// Fail records err unless an error is already present.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > r.Remaining() {
		r.err = &model.TruncatedError{Offset: r.off, Want: n, Have: r.Remaining()}
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) U8() uint8 {
	if b := r.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *Reader) I8() int8 {
	return int8(r.U8())
}

// Bool reads a byte, any non zero value is true
func (r *Reader) Bool() bool {
	return r.U8() != 0
}

func (r *Reader) U16() uint16 {
	if b := r.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (r *Reader) I16() int16 {
	return int16(r.U16())
}

func (r *Reader) U32() uint32 {
	if b := r.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (r *Reader) U64() uint64 {
	if b := r.take(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

func (r *Reader) F32() float32 {
	return math.Float32frombits(r.U32())
}

// Bytes returns the next n bytes. The slice aliases the datagram.
func (r *Reader) Bytes(n int) []byte {
	return r.take(n)
}

func (r *Reader) Skip(n int) {
	r.take(n)
}

// CString reads a fixed size field holding a zero terminated string.
func (r *Reader) CString(n int) string {
	b := r.take(n)
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// Array decodes n elements in index order. It stops at the first error,
// in that case the returned slice is nil.
func Array[T any](r *Reader, n int, fn func(r *Reader) T) []T {
	ret := make([]T, n)
	for i := range ret {
		ret[i] = fn(r)
		if r.err != nil {
			return nil
		}
	}
	return ret
}

// ReadWheels decodes a per wheel value in wire order (RL, RR, FL, FR)
func ReadWheels[T any](r *Reader, fn func(r *Reader) T) model.Wheels[T] {
	var w model.Wheels[T]
	for i := range w {
		w[i] = fn(r)
	}
	return w
}

// Vec3 decodes three consecutive values as x, y, z
func Vec3[T any](r *Reader, fn func(r *Reader) T) model.Vec3[T] {
	return model.Vec3[T]{X: fn(r), Y: fn(r), Z: fn(r)}
}

// Code converts a raw value using decode (usually a codes table).
// A conversion error is recorded on the reader.
func Code[K, V any](r *Reader, raw K, decode func(K) (V, error)) V {
	var zero V
	if r.err != nil {
		return zero
	}
	v, err := decode(raw)
	if err != nil {
		r.err = err
		return zero
	}
	return v
}

// method expressions usable with Array, ReadWheels and Vec3
var (
	U8  = (*Reader).U8
	I8  = (*Reader).I8
	U16 = (*Reader).U16
	I16 = (*Reader).I16
	U32 = (*Reader).U32
	F32 = (*Reader).F32
)
