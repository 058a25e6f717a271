package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

func TestReaderPrimitives(t *testing.T) {
	data := NewWriter(32).
		U8(0xfe).
		I8(-1).
		U16(2019).
		I16(-32767).
		U32(0xdeadbeef).
		U64(0x0102030405060708).
		F32(1.5).
		Data()

	r := NewReader(data)
	assert.Equal(t, uint8(0xfe), r.U8())
	assert.Equal(t, int8(-1), r.I8())
	assert.Equal(t, uint16(2019), r.U16())
	assert.Equal(t, int16(-32767), r.I16())
	assert.Equal(t, uint32(0xdeadbeef), r.U32())
	assert.Equal(t, uint64(0x0102030405060708), r.U64())
	assert.Equal(t, float32(1.5), r.F32())
	require.NoError(t, r.Err())
	assert.Equal(t, 0, r.Remaining())
	assert.Equal(t, len(data), r.Offset())
}

func TestReaderLittleEndian(t *testing.T) {
	r := NewReader([]byte{0xE3, 0x07})
	assert.Equal(t, uint16(2019), r.U16())
}

func TestReaderTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(r *Reader)
		want *model.TruncatedError
	}{
		{
			name: "u8 on empty",
			data: []byte{},
			read: func(r *Reader) { r.U8() },
			want: &model.TruncatedError{Offset: 0, Want: 1, Have: 0},
		},
		{
			name: "u16 one byte left",
			data: []byte{1, 2, 3},
			read: func(r *Reader) { r.U16(); r.U16() },
			want: &model.TruncatedError{Offset: 2, Want: 2, Have: 1},
		},
		{
			name: "u64 short",
			data: []byte{1, 2, 3, 4},
			read: func(r *Reader) { r.U64() },
			want: &model.TruncatedError{Offset: 0, Want: 8, Have: 4},
		},
		{
			name: "bytes",
			data: []byte{1, 2, 3, 4},
			read: func(r *Reader) { r.Skip(1); r.Bytes(10) },
			want: &model.TruncatedError{Offset: 1, Want: 10, Have: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data)
			tt.read(r)
			var te *model.TruncatedError
			require.ErrorAs(t, r.Err(), &te)
			assert.Equal(t, tt.want, te)
			assert.ErrorIs(t, r.Err(), model.ErrTruncated)
		})
	}
}

func TestReaderKeepsFirstError(t *testing.T) {
	r := NewReader([]byte{1})
	assert.Equal(t, uint32(0), r.U32())
	assert.Equal(t, uint8(0), r.U8(), "reads after an error return zero")
	assert.Equal(t, 0, r.Offset())
	var te *model.TruncatedError
	require.ErrorAs(t, r.Err(), &te)
	assert.Equal(t, 4, te.Want)
}

func TestCString(t *testing.T) {
	data := NewWriter(48).CString("HAMILTON", 48).U8(7).Data()
	r := NewReader(data)
	assert.Equal(t, "HAMILTON", r.CString(48))
	assert.Equal(t, uint8(7), r.U8())

	// no terminator within the field
	r = NewReader([]byte("ABCD"))
	assert.Equal(t, "ABCD", r.CString(4))
}

func TestArray(t *testing.T) {
	w := NewWriter(8)
	for i := range 4 {
		w.U16(uint16(i * 10))
	}
	r := NewReader(w.Data())
	assert.Equal(t, []uint16{0, 10, 20, 30}, Array(r, 4, U16))
	require.NoError(t, r.Err())

	r = NewReader(w.Data())
	assert.Nil(t, Array(r, 5, U16), "no partially filled arrays")
	assert.ErrorIs(t, r.Err(), model.ErrTruncated)
}

func TestReadWheels(t *testing.T) {
	data := NewWriter(16).F32(1).F32(2).F32(3).F32(4).Data()
	w := ReadWheels(NewReader(data), F32)
	assert.Equal(t, float32(1), w.RearLeft())
	assert.Equal(t, float32(2), w.RearRight())
	assert.Equal(t, float32(3), w.FrontLeft())
	assert.Equal(t, float32(4), w.FrontRight())
}

func TestCode(t *testing.T) {
	errBad := errors.New("bad")
	decode := func(v uint8) (string, error) {
		if v == 1 {
			return "one", nil
		}
		return "", errBad
	}
	r := NewReader([]byte{1, 2, 1})
	assert.Equal(t, "one", Code(r, r.U8(), decode))
	assert.Equal(t, "", Code(r, r.U8(), decode))
	assert.ErrorIs(t, r.Err(), errBad)
	assert.Equal(t, "", Code(r, r.U8(), decode), "no conversion after an error")
}
