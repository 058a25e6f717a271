package f12019

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

// Session has no weather forecast and none of the optional fields.
func (Decoder) Session(h model.Header, r *wire.Reader) (*model.Session, error) {
	s := &model.Session{PacketHeader: h}
	s.Weather = wire.Code(r, r.U8(), codes.Weather.Decode)
	s.TrackTemperature = r.I8()
	s.AirTemperature = r.I8()
	s.TotalLaps = r.U8()
	s.TrackLength = r.U16()
	s.SessionType = wire.Code(r, r.U8(), SessionTypes.Decode)
	s.Track = wire.Code(r, r.I8(), Tracks.Decode)
	s.Formula = wire.Code(r, r.U8(), codes.Formula.Decode)
	s.SessionTimeLeft = r.U16()
	s.SessionDuration = r.U16()
	s.PitSpeedLimit = r.U8()
	s.GamePaused = r.Bool()
	s.IsSpectating = r.Bool()
	s.SpectatorCarIndex = r.U8()
	s.SLIProNativeSupport = r.Bool()
	s.MarshalZones = layout.MarshalZones(r, r.U8())
	s.SafetyCarStatus = wire.Code(r, r.U8(), SafetyCar.Decode)
	s.NetworkGame = r.Bool()
	return layout.Finish(r, s)
}
