// Package f1data builds datagrams of every supported format with known
// field values. Tests decode them and compare against the values below.
package f1data

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

const (
	F12019 uint16 = 2019
	F12020 uint16 = 2020
	F12021 uint16 = 2021
)

// header values used by all builders
const (
	GameMajorVersion uint8   = 1
	GameMinorVersion uint8   = 0
	PacketVersion    uint8   = 1
	SessionUID       uint64  = 0x1122334455667788
	SessionTime      float32 = 12.5
	Frame            uint32  = 4711
	PlayerCarIndex   uint8   = 0
)

// CmpOptions lets cmp compare decoded packets, the optional fields have
// unexported state.
var CmpOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Formats lists the formats the builders support
var Formats = []uint16{F12019, F12020, F12021}

// Sizes holds the full datagram size per format and packet type.
var Sizes = map[uint16]map[model.PacketType]int{
	F12019: {
		model.PacketTypeMotion:       1343,
		model.PacketTypeSession:      149,
		model.PacketTypeLap:          843,
		model.PacketTypeEvent:        32,
		model.PacketTypeParticipants: 1104,
		model.PacketTypeCarSetups:    843,
		model.PacketTypeCarTelemetry: 1347,
		model.PacketTypeCarStatus:    1143,
	},
	F12020: {
		model.PacketTypeMotion:       1464,
		model.PacketTypeSession:      251,
		model.PacketTypeLap:          1190,
		model.PacketTypeEvent:        35,
		model.PacketTypeParticipants: 1213,
		model.PacketTypeCarSetups:    1102,
		model.PacketTypeCarTelemetry: 1307,
		model.PacketTypeCarStatus:    1344,
	},
	F12021: {
		model.PacketTypeMotion:       1464,
		model.PacketTypeSession:      625,
		model.PacketTypeLap:          970,
		model.PacketTypeEvent:        36,
		model.PacketTypeParticipants: 1257,
		model.PacketTypeCarSetups:    1102,
		model.PacketTypeCarTelemetry: 1347,
		model.PacketTypeCarStatus:    1058,
	},
}

func HeaderSize(format uint16) int {
	if format == F12019 {
		return 23
	}
	return 24
}

func NumCars(format uint16) int {
	if format == F12019 {
		return 20
	}
	return 22
}

// Header writes the packet header. 2019 has no secondary player index.
func Header(w *wire.Writer, format uint16, packetID uint8) *wire.Writer {
	w.U16(format).
		U8(GameMajorVersion).
		U8(GameMinorVersion).
		U8(PacketVersion).
		U8(packetID).
		U64(SessionUID).
		F32(SessionTime).
		U32(Frame).
		U8(PlayerCarIndex)
	if format != F12019 {
		w.U8(model.NoCar)
	}
	return w
}

// ExpectedHeader is the header the builders write.
func ExpectedHeader(format uint16, t model.PacketType) model.Header {
	return model.Header{
		PacketFormat:            format,
		GameMajorVersion:        GameMajorVersion,
		GameMinorVersion:        GameMinorVersion,
		PacketVersion:           PacketVersion,
		PacketID:                t,
		SessionUID:              SessionUID,
		SessionTime:             SessionTime,
		FrameIdentifier:         Frame,
		PlayerCarIndex:          PlayerCarIndex,
		SecondaryPlayerCarIndex: model.NoCar,
	}
}

func newWriter(format uint16, t model.PacketType) *wire.Writer {
	w := wire.NewWriter(Sizes[format][t])
	return Header(w, format, uint8(t))
}

// Packet builds the default datagram of the given type.
func Packet(format uint16, t model.PacketType) []byte {
	switch t {
	case model.PacketTypeMotion:
		return Motion(format)
	case model.PacketTypeSession:
		return Session(format)
	case model.PacketTypeLap:
		return Lap(format)
	case model.PacketTypeEvent:
		return FastestLapEvent(format)
	case model.PacketTypeParticipants:
		return Participants(format)
	case model.PacketTypeCarSetups:
		return CarSetups(format)
	case model.PacketTypeCarTelemetry:
		return CarTelemetry(format)
	case model.PacketTypeCarStatus:
		return CarStatus(format)
	default:
		return Unsupported(format, uint8(t))
	}
}

// Unsupported builds a datagram of a type that has no decoder. Only the
// header is meaningful.
func Unsupported(format uint16, packetID uint8) []byte {
	return Header(wire.NewWriter(64), format, packetID).Zero(40).Data()
}

// DriverName is the name the participants builder writes for car idx.
func DriverName(idx int) string {
	return fmt.Sprintf("Driver %02d", idx)
}
