// Package layout contains decoding of structures that share the same wire
// layout in several formats.
package layout

import (
	"strconv"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

const (
	MaxMarshalZones = 21
	marshalZoneSize = 5
	NameSize        = 48
)

// Header decodes the common header. The secondary player index was added
// with 2020, older formats report model.NoCar.
//
//nolint:whitespace // editor/linter issue
func Header(
	r *wire.Reader,
	packetTypes codes.Table[uint8, model.PacketType],
	withSecondary bool,
) model.Header {
	h := model.Header{
		PacketFormat:            r.U16(),
		GameMajorVersion:        r.U8(),
		GameMinorVersion:        r.U8(),
		PacketVersion:           r.U8(),
		PacketID:                wire.Code(r, r.U8(), packetTypes.Decode),
		SessionUID:              r.U64(),
		SessionTime:             r.F32(),
		FrameIdentifier:         r.U32(),
		PlayerCarIndex:          r.U8(),
		SecondaryPlayerCarIndex: model.NoCar,
	}
	if withSecondary {
		h.SecondaryPlayerCarIndex = r.U8()
	}
	return h
}

func CarMotion(r *wire.Reader) model.CarMotion {
	return model.CarMotion{
		WorldPosition:      wire.Vec3(r, wire.F32),
		WorldVelocity:      wire.Vec3(r, wire.F32),
		WorldForwardDir:    wire.Vec3(r, wire.I16),
		WorldRightDir:      wire.Vec3(r, wire.I16),
		GForceLateral:      r.F32(),
		GForceLongitudinal: r.F32(),
		GForceVertical:     r.F32(),
		Yaw:                r.F32(),
		Pitch:              r.F32(),
		Roll:               r.F32(),
	}
}

// Motion decodes the per car motion data followed by the player only block.
func Motion(h model.Header, r *wire.Reader, numCars int) (*model.Motion, error) {
	ret := &model.Motion{
		PacketHeader:           h,
		Cars:                   wire.Array(r, numCars, CarMotion),
		SuspensionPosition:     wire.ReadWheels(r, wire.F32),
		SuspensionVelocity:     wire.ReadWheels(r, wire.F32),
		SuspensionAcceleration: wire.ReadWheels(r, wire.F32),
		WheelSpeed:             wire.ReadWheels(r, wire.F32),
		WheelSlip:              wire.ReadWheels(r, wire.F32),
		LocalVelocity:          wire.Vec3(r, wire.F32),
		AngularVelocity:        wire.Vec3(r, wire.F32),
		AngularAcceleration:    wire.Vec3(r, wire.F32),
		FrontWheelsAngle:       r.F32(),
	}
	return Finish(r, ret)
}

// MarshalZones reads all wire slots and returns the first num zones.
// Unused slots are not validated.
func MarshalZones(r *wire.Reader, num uint8) []model.MarshalZone {
	if num > MaxMarshalZones {
		r.Fail(&model.InvalidCodeError{Field: "numMarshalZones", Code: strconv.Itoa(int(num))})
		return nil
	}
	ret := make([]model.MarshalZone, num)
	for i := range ret {
		ret[i] = model.MarshalZone{
			ZoneStart: r.F32(),
			ZoneFlag:  wire.Code(r, r.I8(), codes.Flag.Decode),
		}
	}
	r.Skip((MaxMarshalZones - int(num)) * marshalZoneSize)
	if r.Err() != nil {
		return nil
	}
	return ret
}

// CarSetup decodes one setup entry. Formats since 2020 carry the tyre
// pressure per wheel, 2019 per axle.
func CarSetup(r *wire.Reader, perWheelPressure bool) model.CarSetup {
	s := model.CarSetup{
		FrontWing:             r.U8(),
		RearWing:              r.U8(),
		OnThrottle:            r.U8(),
		OffThrottle:           r.U8(),
		FrontCamber:           r.F32(),
		RearCamber:            r.F32(),
		FrontToe:              r.F32(),
		RearToe:               r.F32(),
		FrontSuspension:       r.U8(),
		RearSuspension:        r.U8(),
		FrontAntiRollBar:      r.U8(),
		RearAntiRollBar:       r.U8(),
		FrontSuspensionHeight: r.U8(),
		RearSuspensionHeight:  r.U8(),
		BrakePressure:         r.U8(),
		BrakeBias:             r.U8(),
	}
	if perWheelPressure {
		s.TyrePressures = omit.From(wire.ReadWheels(r, wire.F32))
	} else {
		s.FrontTyrePressure = omit.From(r.F32())
		s.RearTyrePressure = omit.From(r.F32())
	}
	s.Ballast = r.U8()
	s.FuelLoad = r.F32()
	return s
}

func CarSetups(h model.Header, r *wire.Reader, numCars int, perWheelPressure bool) (
	*model.CarSetups, error,
) {
	cars := wire.Array(r, numCars, func(r *wire.Reader) model.CarSetup {
		return CarSetup(r, perWheelPressure)
	})
	return Finish(r, &model.CarSetups{PacketHeader: h, Cars: cars})
}

// Name reads the fixed size driver name field
func Name(r *wire.Reader) string {
	return r.CString(NameSize)
}

// Finish returns p if no error was recorded on r
func Finish[T any](r *wire.Reader, p *T) (*T, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// Seconds converts a float seconds wire value
func Seconds(v float32) time.Duration {
	return time.Duration(float64(v) * float64(time.Second))
}

// Millis converts an integer milliseconds wire value
func Millis[T ~uint16 | ~uint32](v T) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Penalty decodes the details of the PENA event.
//
//nolint:whitespace // editor/linter issue
func Penalty(
	r *wire.Reader, infringements codes.Table[uint8, model.Infringement],
) model.Penalty {
	return model.Penalty{
		PenaltyType:      wire.Code(r, r.U8(), codes.PenaltyType.Decode),
		InfringementType: wire.Code(r, r.U8(), infringements.Decode),
		VehicleIdx:       r.U8(),
		OtherVehicleIdx:  r.U8(),
		Time:             r.U8(),
		LapNum:           r.U8(),
		PlacesGained:     r.U8(),
	}
}
