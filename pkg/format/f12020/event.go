package f12020

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

func (Decoder) Event(h model.Header, r *wire.Reader) (*model.Event, error) {
	e := &model.Event{PacketHeader: h}
	e.Code = wire.Code(r, string(r.Bytes(4)), EventCodes.Decode)
	if r.Err() != nil {
		return nil, r.Err()
	}
	switch e.Code {
	case model.EventFastestLap:
		e.Details = model.FastestLap{VehicleIdx: r.U8(), LapTime: r.F32()}
	case model.EventRetirement:
		e.Details = model.Retirement{VehicleIdx: r.U8()}
	case model.EventTeamMateInPits:
		e.Details = model.TeamMateInPits{VehicleIdx: r.U8()}
	case model.EventRaceWinner:
		e.Details = model.RaceWinner{VehicleIdx: r.U8()}
	case model.EventPenaltyIssued:
		e.Details = layout.Penalty(r, Infringements)
	case model.EventSpeedTrapTriggered:
		e.Details = model.SpeedTrap{VehicleIdx: r.U8(), Speed: r.F32()}
	default:
		// no details
	}
	return layout.Finish(r, e)
}
