package f12020

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

func u8AsU16(r *wire.Reader) uint16 {
	return uint16(r.U8())
}

func surfaceType(r *wire.Reader) model.SurfaceType {
	return wire.Code(r, r.U8(), codes.SurfaceType.Decode)
}

// tyre temperatures are u8 since 2020
func carTelemetry(r *wire.Reader) model.CarTelemetryData {
	return model.CarTelemetryData{
		Speed:                   r.U16(),
		Throttle:                r.F32(),
		Steer:                   r.F32(),
		Brake:                   r.F32(),
		Clutch:                  r.U8(),
		Gear:                    r.I8(),
		EngineRPM:               r.U16(),
		DRS:                     r.Bool(),
		RevLightsPercent:        r.U8(),
		BrakesTemperature:       wire.ReadWheels(r, wire.U16),
		TyresSurfaceTemperature: wire.ReadWheels(r, u8AsU16),
		TyresInnerTemperature:   wire.ReadWheels(r, u8AsU16),
		EngineTemperature:       r.U16(),
		TyresPressure:           wire.ReadWheels(r, wire.F32),
		SurfaceType:             wire.ReadWheels(r, surfaceType),
	}
}

func (Decoder) CarTelemetry(h model.Header, r *wire.Reader) (*model.CarTelemetry, error) {
	return layout.Finish(r, &model.CarTelemetry{
		PacketHeader:            h,
		Cars:                    wire.Array(r, NumCars, carTelemetry),
		ButtonStatus:            omit.From(r.U32()),
		MFDPanel:                omit.From(wire.Code(r, r.U8(), codes.MFDPanel.Decode)),
		MFDPanelSecondaryPlayer: omit.From(wire.Code(r, r.U8(), codes.MFDPanel.Decode)),
		SuggestedGear:           omit.From(r.I8()),
	})
}
