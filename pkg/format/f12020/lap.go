package f12020

import (
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

func millis(r *wire.Reader) omit.Val[time.Duration] {
	return omit.From(layout.Millis(r.U16()))
}

// lap times are float seconds, sector times milliseconds
func lapData(r *wire.Reader) model.LapData {
	return model.LapData{
		LastLapTime:              layout.Seconds(r.F32()),
		CurrentLapTime:           layout.Seconds(r.F32()),
		Sector1Time:              layout.Millis(r.U16()),
		Sector2Time:              layout.Millis(r.U16()),
		BestLapTime:              omit.From(layout.Seconds(r.F32())),
		BestLapNum:               omit.From(r.U8()),
		BestLapSector1Time:       millis(r),
		BestLapSector2Time:       millis(r),
		BestLapSector3Time:       millis(r),
		BestOverallSector1Time:   millis(r),
		BestOverallSector1LapNum: omit.From(r.U8()),
		BestOverallSector2Time:   millis(r),
		BestOverallSector2LapNum: omit.From(r.U8()),
		BestOverallSector3Time:   millis(r),
		BestOverallSector3LapNum: omit.From(r.U8()),
		LapDistance:              r.F32(),
		TotalDistance:            r.F32(),
		SafetyCarDelta:           r.F32(),
		CarPosition:              r.U8(),
		CurrentLapNum:            r.U8(),
		PitStatus:                wire.Code(r, r.U8(), codes.PitStatus.Decode),
		Sector:                   wire.Code(r, r.U8(), codes.Sector.Decode),
		CurrentLapInvalid:        r.Bool(),
		Penalties:                r.U8(),
		GridPosition:             r.U8(),
		DriverStatus:             wire.Code(r, r.U8(), codes.DriverStatus.Decode),
		ResultStatus:             wire.Code(r, r.U8(), ResultStatus.Decode),
	}
}

func (Decoder) Lap(h model.Header, r *wire.Reader) (*model.Lap, error) {
	return layout.Finish(r, &model.Lap{
		PacketHeader: h,
		Cars:         wire.Array(r, NumCars, lapData),
	})
}
