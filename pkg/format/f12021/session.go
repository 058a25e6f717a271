package f12021

import (
	"strconv"

	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

func forecastSample(r *wire.Reader) model.WeatherForecastSample {
	return model.WeatherForecastSample{
		SessionType:            wire.Code(r, r.U8(), SessionTypes.Decode),
		TimeOffset:             r.U8(),
		Weather:                wire.Code(r, r.U8(), codes.Weather.Decode),
		TrackTemperature:       r.I8(),
		TrackTemperatureChange: omit.From(wire.Code(r, r.I8(), codes.TemperatureChange.Decode)),
		AirTemperature:         r.I8(),
		AirTemperatureChange:   omit.From(wire.Code(r, r.I8(), codes.TemperatureChange.Decode)),
		RainPercentage:         omit.From(r.U8()),
	}
}

func forecastSamples(r *wire.Reader, num uint8) []model.WeatherForecastSample {
	if num > MaxWeatherForecastSamples {
		r.Fail(&model.InvalidCodeError{
			Field: "numWeatherForecastSamples",
			Code:  strconv.Itoa(int(num)),
		})
		return nil
	}
	ret := wire.Array(r, int(num), forecastSample)
	r.Skip((MaxWeatherForecastSamples - int(num)) * weatherForecastSampleSize)
	return ret
}

func drivingAssists(r *wire.Reader) model.DrivingAssists {
	return model.DrivingAssists{
		SteeringAssist:        r.Bool(),
		BrakingAssist:         wire.Code(r, r.U8(), codes.BrakingAssist.Decode),
		GearboxAssist:         wire.Code(r, r.U8(), codes.GearboxAssist.Decode),
		PitAssist:             r.Bool(),
		PitReleaseAssist:      r.Bool(),
		ERSAssist:             r.Bool(),
		DRSAssist:             r.Bool(),
		DynamicRacingLine:     wire.Code(r, r.U8(), codes.DynamicRacingLine.Decode),
		DynamicRacingLineType: wire.Code(r, r.U8(), codes.DynamicRacingLineType.Decode),
	}
}

// Session sets all optional fields, this format defines every one of them.
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
	s.WeatherForecastSamples = forecastSamples(r, r.U8())
	s.ForecastAccuracy = omit.From(wire.Code(r, r.U8(), codes.ForecastAccuracy.Decode))
	s.AIDifficulty = omit.From(r.U8())
	s.SeasonLinkIdentifier = omit.From(r.U32())
	s.WeekendLinkIdentifier = omit.From(r.U32())
	s.SessionLinkIdentifier = omit.From(r.U32())
	s.PitStopWindowIdealLap = omit.From(r.U8())
	s.PitStopWindowLatestLap = omit.From(r.U8())
	s.PitStopRejoinPosition = omit.From(r.U8())
	s.DrivingAssists = omit.From(drivingAssists(r))
	return layout.Finish(r, s)
}
