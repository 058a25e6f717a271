package f1data

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

func f32Wheels(w *wire.Writer, rl, rr, fl, fr float32) {
	w.F32(rl).F32(rr).F32(fl).F32(fr)
}

func Motion(format uint16) []byte {
	w := newWriter(format, model.PacketTypeMotion)
	w.Repeat(NumCars(format), func(w *wire.Writer, idx int) {
		w.F32(float32(idx)).F32(1.5).F32(-2)
		w.F32(10).F32(0).F32(-1)
		w.I16(1).I16(2).I16(3)
		w.I16(-1).I16(-2).I16(-3)
		w.F32(0.5).F32(1).F32(-1)
		w.F32(0.5).F32(0.25).F32(0.125)
	})
	f32Wheels(w, 1, 2, 3, 4)
	f32Wheels(w, 0.5, 0.5, 0.5, 0.5)
	f32Wheels(w, 0.25, 0.25, 0.25, 0.25)
	f32Wheels(w, 50, 50, 51, 51)
	f32Wheels(w, 0, 0, 0.125, 0.125)
	w.F32(10).F32(0).F32(0)
	w.F32(0).F32(0.5).F32(0)
	w.F32(0).F32(0).F32(0.25)
	w.F32(0.125)
	return w.Data()
}

// NumMarshalZones is the number of zones written by Session
const NumMarshalZones = 3

// NumForecastSamples is the number of forecast samples written by Session
const NumForecastSamples = 2

// Session builds a race session at Spa.
func Session(format uint16) []byte {
	w := newWriter(format, model.PacketTypeSession)
	w.U8(1) // light cloud
	w.I8(30).I8(22).U8(5).U16(5303)
	w.U8(10) // race
	w.I8(10) // spa
	w.U8(0).U16(3600).U16(7200).U8(80)
	w.Bool(false).Bool(false).U8(model.NoCar).Bool(false)
	w.U8(NumMarshalZones)
	w.Repeat(21, func(w *wire.Writer, idx int) {
		if idx < NumMarshalZones {
			w.F32(float32(idx) * 0.25).I8(int8(idx))
		} else {
			// unused slots carry garbage
			w.F32(-1).I8(99)
		}
	})
	w.U8(0).Bool(true)
	switch format {
	case F12020:
		w.U8(NumForecastSamples)
		w.Repeat(20, func(w *wire.Writer, idx int) {
			w.U8(10).U8(uint8(idx * 5)).U8(1).I8(30).I8(22)
		})
	case F12021:
		w.U8(NumForecastSamples)
		w.Repeat(56, func(w *wire.Writer, idx int) {
			w.U8(10).U8(uint8(idx * 5)).U8(1).I8(30).I8(0).I8(22).I8(2).U8(10)
		})
		w.U8(1) // approximate
		w.U8(90).U32(1).U32(2).U32(3)
		w.U8(12).U8(18).U8(7)
		// assists
		w.Bool(false).U8(1).U8(3).Bool(true).Bool(true).Bool(false).Bool(false).U8(2).U8(1)
	}
	return w.Data()
}

func Lap(format uint16) []byte {
	w := newWriter(format, model.PacketTypeLap)
	w.Repeat(NumCars(format), func(w *wire.Writer, idx int) {
		switch format {
		case F12019:
			w.F32(90.5).F32(30.25).F32(89.75).F32(28.5).F32(30)
		case F12020:
			w.F32(90.5).F32(30.25).U16(28500).U16(30000)
			w.F32(89.75).U8(2).U16(28000).U16(30000).U16(31750)
			w.U16(27900).U8(2).U16(29900).U8(2).U16(31500).U8(1)
		default:
			w.U32(90500).U32(30250).U16(28500).U16(30000)
		}
		w.F32(1000 + float32(idx)).F32(5000 + float32(idx)).F32(0)
		w.U8(uint8(idx + 1)).U8(3).U8(uint8(idx % 3))
		if format == F12021 {
			w.U8(1)
		}
		w.U8(uint8(idx % 3)).Bool(idx == 1).U8(0)
		if format == F12021 {
			w.U8(2).U8(0).U8(1)
		}
		w.U8(uint8(idx + 1)).U8(4).U8(2)
		if format == F12021 {
			w.Bool(idx%3 != 0).U16(21500).U16(2500).Bool(false)
		}
	})
	return w.Data()
}

// Event builds an event datagram padded to the format's event size.
func Event(format uint16, code string, details func(w *wire.Writer)) []byte {
	w := newWriter(format, model.PacketTypeEvent)
	w.Bytes([]byte(code))
	if details != nil {
		details(w)
	}
	if pad := Sizes[format][model.PacketTypeEvent] - w.Len(); pad > 0 {
		w.Zero(pad)
	}
	return w.Data()
}

// FastestLapEvent reports car 3 with 83.5 seconds.
func FastestLapEvent(format uint16) []byte {
	return Event(format, "FTLP", func(w *wire.Writer) {
		w.U8(3).F32(83.5)
	})
}

func Participants(format uint16) []byte {
	w := newWriter(format, model.PacketTypeParticipants)
	w.U8(uint8(NumCars(format)))
	w.Repeat(NumCars(format), func(w *wire.Writer, idx int) {
		w.Bool(idx != 0).U8(uint8(idx))
		if format == F12021 {
			w.U8(uint8(idx + 100))
		}
		w.U8(uint8(idx % 10))
		if format == F12021 {
			w.Bool(false)
		}
		w.U8(uint8(idx + 1)).
			U8(uint8(1 + idx%10)).
			CString(DriverName(idx), 48).
			Bool(true)
	})
	return w.Data()
}

func CarSetups(format uint16) []byte {
	w := newWriter(format, model.PacketTypeCarSetups)
	w.Repeat(NumCars(format), func(w *wire.Writer, idx int) {
		w.U8(uint8(idx)).U8(5).U8(50).U8(60)
		w.F32(-3.5).F32(-2).F32(0.125).F32(0.25)
		w.U8(5).U8(4).U8(6).U8(7).U8(3).U8(4).U8(100).U8(56)
		if format == F12019 {
			w.F32(23.5).F32(22)
		} else {
			f32Wheels(w, 22, 22, 23.5, 23.5)
		}
		w.U8(6).F32(20)
	})
	return w.Data()
}

func CarTelemetry(format uint16) []byte {
	w := newWriter(format, model.PacketTypeCarTelemetry)
	w.Repeat(NumCars(format), func(w *wire.Writer, idx int) {
		w.U16(uint16(200 + idx)).F32(1).F32(-0.25).F32(0)
		w.U8(0).I8(7).U16(11000).Bool(true).U8(80)
		if format == F12021 {
			w.U16(0x3ff)
		}
		w.U16(500).U16(501).U16(502).U16(503)
		if format == F12019 {
			w.U16(90).U16(91).U16(92).U16(93)
			w.U16(100).U16(101).U16(102).U16(103)
		} else {
			w.U8(90).U8(91).U8(92).U8(93)
			w.U8(100).U8(101).U8(102).U8(103)
		}
		w.U16(110)
		f32Wheels(w, 23.5, 23.5, 22, 22)
		w.U8(0).U8(0).U8(1).U8(7)
	})
	switch format {
	case F12019:
		w.U32(0x0001)
	case F12020:
		w.U32(0x0002).U8(1).U8(255).I8(0)
	default:
		w.U8(1).U8(255).I8(8)
	}
	return w.Data()
}

func CarStatus(format uint16) []byte {
	w := newWriter(format, model.PacketTypeCarStatus)
	w.Repeat(NumCars(format), func(w *wire.Writer, idx int) {
		w.U8(2).Bool(true).U8(1).U8(56).Bool(false)
		w.F32(10 + float32(idx)).F32(110).F32(3.5)
		w.U16(13000).U16(4000).U8(8).I8(1)
		if format != F12019 {
			w.U16(150)
		}
		if format != F12021 {
			w.U8(10).U8(11).U8(12).U8(13)
		}
		w.U8(18).U8(17)
		if format != F12019 {
			w.U8(4)
		}
		if format != F12021 {
			w.U8(1).U8(2).U8(3).U8(4)
			w.U8(5).U8(6).U8(7)
			if format == F12020 {
				w.Bool(false)
			}
			w.U8(8).U8(9)
		}
		w.I8(1).F32(2.5e6).U8(1).F32(1000).F32(2000).F32(500)
		if format == F12021 {
			w.Bool(false)
		}
	})
	return w.Data()
}
