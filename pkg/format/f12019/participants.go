package f12019

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

func participant(r *wire.Reader) model.Participant {
	return model.Participant{
		AIControlled:    r.Bool(),
		DriverID:        r.U8(),
		Team:            wire.Code(r, r.U8(), Teams.Decode),
		RaceNumber:      r.U8(),
		Nationality:     wire.Code(r, r.U8(), Nationalities.Decode),
		Name:            layout.Name(r),
		PublicTelemetry: r.Bool(),
	}
}

func (Decoder) Participants(h model.Header, r *wire.Reader) (*model.Participants, error) {
	return layout.Finish(r, &model.Participants{
		PacketHeader:  h,
		NumActiveCars: r.U8(),
		Participants:  wire.Array(r, NumCars, participant),
	})
}
