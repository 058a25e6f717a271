package f12021

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

// all times are milliseconds in this format
func lapData(r *wire.Reader) model.LapData {
	return model.LapData{
		LastLapTime:                 layout.Millis(r.U32()),
		CurrentLapTime:              layout.Millis(r.U32()),
		Sector1Time:                 layout.Millis(r.U16()),
		Sector2Time:                 layout.Millis(r.U16()),
		LapDistance:                 r.F32(),
		TotalDistance:               r.F32(),
		SafetyCarDelta:              r.F32(),
		CarPosition:                 r.U8(),
		CurrentLapNum:               r.U8(),
		PitStatus:                   wire.Code(r, r.U8(), codes.PitStatus.Decode),
		NumPitStops:                 omit.From(r.U8()),
		Sector:                      wire.Code(r, r.U8(), codes.Sector.Decode),
		CurrentLapInvalid:           r.Bool(),
		Penalties:                   r.U8(),
		Warnings:                    omit.From(r.U8()),
		NumUnservedDriveThroughPens: omit.From(r.U8()),
		NumUnservedStopGoPens:       omit.From(r.U8()),
		GridPosition:                r.U8(),
		DriverStatus:                wire.Code(r, r.U8(), codes.DriverStatus.Decode),
		ResultStatus:                wire.Code(r, r.U8(), ResultStatus.Decode),
		PitLaneTimerActive:          omit.From(r.Bool()),
		PitLaneTimeInLane:           omit.From(layout.Millis(r.U16())),
		PitStopTimer:                omit.From(layout.Millis(r.U16())),
		PitStopShouldServePenalty:   omit.From(r.Bool()),
	}
}

func (Decoder) Lap(h model.Header, r *wire.Reader) (*model.Lap, error) {
	return layout.Finish(r, &model.Lap{
		PacketHeader: h,
		Cars:         wire.Array(r, NumCars, lapData),
	})
}
