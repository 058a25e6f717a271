package wire

import (
	"encoding/binary"
	"math"
)

// Writer builds datagrams with the same layout rules as Reader.
type Writer struct {
	buf []byte
}

func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

func (w *Writer) Data() []byte { return w.buf }
func (w *Writer) Len() int     { return len(w.buf) }

func (w *Writer) U8(v uint8) *Writer {
	w.buf = append(w.buf, v)
	return w
}

func (w *Writer) I8(v int8) *Writer {
	return w.U8(uint8(v))
}

func (w *Writer) Bool(v bool) *Writer {
	if v {
		return w.U8(1)
	}
	return w.U8(0)
}

func (w *Writer) U16(v uint16) *Writer {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
	return w
}

func (w *Writer) I16(v int16) *Writer {
	return w.U16(uint16(v))
}

func (w *Writer) U32(v uint32) *Writer {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
	return w
}

func (w *Writer) U64(v uint64) *Writer {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
	return w
}

func (w *Writer) F32(v float32) *Writer {
	return w.U32(math.Float32bits(v))
}

func (w *Writer) Bytes(b []byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// Zero appends n zero bytes
func (w *Writer) Zero(n int) *Writer {
	w.buf = append(w.buf, make([]byte, n)...)
	return w
}

// CString writes s into a zero padded field of n bytes, truncating if needed.
// The last byte is always zero.
func (w *Writer) CString(s string, n int) *Writer {
	b := make([]byte, n)
	copy(b[:n-1], s)
	return w.Bytes(b)
}

// Repeat calls fn n times, e.g. to write per car arrays
func (w *Writer) Repeat(n int, fn func(w *Writer, idx int)) *Writer {
	for i := range n {
		fn(w, i)
	}
	return w
}
