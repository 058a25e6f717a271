package f12021_test

import (
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1-telemetry-go/pkg/format/f12020"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/f12021"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
	"github.com/mpapenbr/f1-telemetry-go/testsupport/f1data"
)

var dec = f12021.Decoder{}

func reader(t *testing.T, buf []byte) (model.Header, *wire.Reader) {
	t.Helper()
	r := wire.NewReader(buf)
	h, err := dec.Header(r)
	require.NoError(t, err)
	require.Equal(t, f12021.HeaderSize, r.Offset())
	return h, r
}

func TestTables(t *testing.T) {
	f1data.CheckTable(t, f12021.PacketTypes, f1data.Seq[uint8](
		model.PacketTypeMotion,
		model.PacketTypeSession,
		model.PacketTypeLap,
		model.PacketTypeEvent,
		model.PacketTypeParticipants,
		model.PacketTypeCarSetups,
		model.PacketTypeCarTelemetry,
		model.PacketTypeCarStatus,
		model.PacketTypeFinalClassification,
		model.PacketTypeLobbyInfo,
		model.PacketTypeCarDamage,
		model.PacketTypeSessionHistory,
	))
	f1data.CheckTable(t, f12021.SessionTypes, map[uint8]model.SessionType{
		0:  model.SessionTypeUnknown,
		1:  model.SessionTypePractice1,
		2:  model.SessionTypePractice2,
		3:  model.SessionTypePractice3,
		4:  model.SessionTypePracticeShort,
		5:  model.SessionTypeQualifying1,
		6:  model.SessionTypeQualifying2,
		7:  model.SessionTypeQualifying3,
		8:  model.SessionTypeQualifyingShort,
		9:  model.SessionTypeOneShotQualifying,
		10: model.SessionTypeRace,
		11: model.SessionTypeRace2,
		12: model.SessionTypeRace3,
		13: model.SessionTypeTimeTrial,
	})
	f1data.CheckTable(t, f12021.SafetyCar, f1data.Seq[uint8](
		model.SafetyCarNone,
		model.SafetyCarFull,
		model.SafetyCarVirtual,
		model.SafetyCarFormationLap,
	))
	f1data.CheckTable(t, f12021.ResultStatus, f1data.Seq[uint8](
		model.ResultInvalid,
		model.ResultInactive,
		model.ResultActive,
		model.ResultFinished,
		model.ResultDidNotFinish,
		model.ResultDisqualified,
		model.ResultNotClassified,
		model.ResultRetired,
	))
	f1data.CheckTable(t, f12021.ERSDeployMode, f1data.Seq[uint8](
		model.ERSDeployNone,
		model.ERSDeployMedium,
		model.ERSDeployHotlap,
		model.ERSDeployOvertake,
	))
	assert.Equal(t, f12020.VisualTyreCompound.Codes(), f12021.VisualTyreCompound.Codes())

	assert.True(t, f12021.Tracks.Contains(int8(model.TrackJeddah)))
	assert.False(t, f12021.Tracks.Contains(int8(model.TrackJeddah)+1))
	assert.Equal(t, 89, f12021.Nationalities.Len())
}

func TestInfringements(t *testing.T) {
	assert.Equal(t, 54, f12021.Infringements.Len())
	for code, want := range map[uint8]model.Infringement{
		0:  model.InfringementBlockingBySlowDriving,
		47: model.InfringementGearboxChange,
		48: model.InfringementParcFermeChange,
		49: model.InfringementLeagueGridPenalty,
		53: model.InfringementAttributeAssigned,
	} {
		got, err := f12021.Infringements.Decode(code)
		require.NoError(t, err)
		assert.Equal(t, want, got, "code %d", code)
	}
	assert.False(t, f12021.Infringements.Contains(54))
}

func TestTeams(t *testing.T) {
	for code, want := range map[uint8]model.Team{
		4:   "Aston Martin",
		5:   "Alpine",
		42:  "Art GP '19",
		80:  "Hitech '20",
		106: "Prema '21",
		110: "Art GP '21",
		116: "Trident '21",
	} {
		got, err := f12021.Teams.Decode(code)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, code := range []uint8{10, 41, 52, 105, 117, 255} {
		assert.False(t, f12021.Teams.Contains(code), "team %d", code)
	}
}

func TestEventCodes(t *testing.T) {
	assert.Equal(t, []string{
		"BUTN", "CHQF", "DRSD", "DRSE", "DTSV", "FLBK", "FTLP", "LGOT",
		"PENA", "RCWN", "RTMT", "SEND", "SGSV", "SPTP", "SSTA", "STLG", "TMPT",
	}, f12021.EventCodes.Codes())
}

func TestSession(t *testing.T) {
	s, err := dec.Session(reader(t, f1data.Session(f1data.F12021)))
	require.NoError(t, err)
	assert.Equal(t, model.SessionTypeRace, s.SessionType)
	require.Len(t, s.WeatherForecastSamples, f1data.NumForecastSamples)
	assert.Equal(t, model.WeatherForecastSample{
		SessionType:            model.SessionTypeRace,
		TimeOffset:             5,
		Weather:                model.WeatherLightCloud,
		TrackTemperature:       30,
		TrackTemperatureChange: omit.From(model.TemperatureUp),
		AirTemperature:         22,
		AirTemperatureChange:   omit.From(model.TemperatureNoChange),
		RainPercentage:         omit.From(uint8(10)),
	}, s.WeatherForecastSamples[1])

	assert.Equal(t, omit.From(model.ForecastApproximate), s.ForecastAccuracy)
	assert.Equal(t, omit.From(uint8(90)), s.AIDifficulty)
	assert.Equal(t, omit.From(uint32(1)), s.SeasonLinkIdentifier)
	assert.Equal(t, omit.From(uint32(2)), s.WeekendLinkIdentifier)
	assert.Equal(t, omit.From(uint32(3)), s.SessionLinkIdentifier)
	assert.Equal(t, omit.From(uint8(12)), s.PitStopWindowIdealLap)
	assert.Equal(t, omit.From(uint8(18)), s.PitStopWindowLatestLap)
	assert.Equal(t, omit.From(uint8(7)), s.PitStopRejoinPosition)

	assists, ok := s.DrivingAssists.Get()
	require.True(t, ok)
	assert.Equal(t, model.DrivingAssists{
		SteeringAssist:        false,
		BrakingAssist:         model.BrakingAssistLow,
		GearboxAssist:         model.GearboxAutomatic,
		PitAssist:             true,
		PitReleaseAssist:      true,
		ERSAssist:             false,
		DRSAssist:             false,
		DynamicRacingLine:     model.RacingLineFull,
		DynamicRacingLineType: model.RacingLine3D,
	}, assists)
}

func TestSessionOptionalFieldsByFormat(t *testing.T) {
	d2020, err := f12020.Decoder{}.Session(
		sessionHeader(t, f12020.Decoder{}.Header, f1data.Session(f1data.F12020)))
	require.NoError(t, err)
	d2021, err := dec.Session(reader(t, f1data.Session(f1data.F12021)))
	require.NoError(t, err)

	assert.False(t, d2020.DrivingAssists.IsSet())
	assert.True(t, d2021.DrivingAssists.IsSet())
}

func sessionHeader(
	t *testing.T, header func(*wire.Reader) (model.Header, error), buf []byte,
) (model.Header, *wire.Reader) {
	t.Helper()
	r := wire.NewReader(buf)
	h, err := header(r)
	require.NoError(t, err)
	return h, r
}

func TestSessionInvalidAssist(t *testing.T) {
	buf := f1data.Session(f1data.F12021)
	// gearbox assist is the third byte of the assists block at the end
	buf[len(buf)-9+2] = 0
	_, err := dec.Session(reader(t, buf))
	var ice *model.InvalidCodeError
	require.ErrorAs(t, err, &ice)
	assert.Equal(t, "gearboxAssist", ice.Field)
	assert.Equal(t, "0", ice.Code)
}

func TestLap(t *testing.T) {
	l, err := dec.Lap(reader(t, f1data.Lap(f1data.F12021)))
	require.NoError(t, err)
	require.Len(t, l.Cars, f12021.NumCars)
	c := l.Cars[3]
	assert.Equal(t, 90500*time.Millisecond, c.LastLapTime)
	assert.Equal(t, 30250*time.Millisecond, c.CurrentLapTime)
	assert.Equal(t, 28500*time.Millisecond, c.Sector1Time)
	assert.Equal(t, float32(5003), c.TotalDistance)
	assert.Equal(t, model.Sector1, c.Sector)
	assert.Equal(t, omit.From(uint8(1)), c.NumPitStops)
	assert.Equal(t, omit.From(uint8(2)), c.Warnings)
	assert.Equal(t, omit.From(uint8(0)), c.NumUnservedDriveThroughPens)
	assert.Equal(t, omit.From(uint8(1)), c.NumUnservedStopGoPens)
	assert.Equal(t, omit.From(false), c.PitLaneTimerActive)
	assert.Equal(t, omit.From(21500*time.Millisecond), c.PitLaneTimeInLane)
	assert.Equal(t, omit.From(2500*time.Millisecond), c.PitStopTimer)
	assert.Equal(t, omit.From(false), c.PitStopShouldServePenalty)
	assert.True(t, c.BestLapTime.IsUnset())
	assert.Equal(t, omit.From(true), l.Cars[4].PitLaneTimerActive)
}

func TestLapResultStatus(t *testing.T) {
	// twelve single byte fields follow the distances
	const offset = f12021.HeaderSize + 12 + 12 + 12
	buf := f1data.Lap(f1data.F12021)
	require.Equal(t, byte(2), buf[offset])
	buf[offset] = 4
	l, err := dec.Lap(reader(t, buf))
	require.NoError(t, err)
	assert.Equal(t, model.ResultDidNotFinish, l.Cars[0].ResultStatus)
}

func TestEvents(t *testing.T) {
	tests := []struct {
		code    string
		details func(w *wire.Writer)
		want    model.EventDetails
	}{
		{
			"SPTP", func(w *wire.Writer) { w.U8(3).F32(340).Bool(true).Bool(false) },
			model.SpeedTrap{
				VehicleIdx:              3,
				Speed:                   340,
				OverallFastestInSession: omit.From(true),
				DriverFastestInSession:  omit.From(false),
			},
		},
		{"STLG", func(w *wire.Writer) { w.U8(4) }, model.StartLights{NumLights: 4}},
		{"LGOT", nil, nil},
		{"DTSV", func(w *wire.Writer) { w.U8(8) }, model.DriveThroughPenaltyServed{VehicleIdx: 8}},
		{"SGSV", func(w *wire.Writer) { w.U8(9) }, model.StopGoPenaltyServed{VehicleIdx: 9}},
		{
			"FLBK", func(w *wire.Writer) { w.U32(1234).F32(95.5) },
			model.Flashback{FlashbackFrameIdentifier: 1234, FlashbackSessionTime: 95.5},
		},
		{"BUTN", func(w *wire.Writer) { w.U32(0x0400) }, model.Buttons{ButtonStatus: 0x0400}},
		{
			"PENA", func(w *wire.Writer) { w.U8(5).U8(53).U8(1).U8(255).U8(255).U8(2).U8(0) },
			model.Penalty{
				PenaltyType:      model.PenaltyWarning,
				InfringementType: model.InfringementAttributeAssigned,
				VehicleIdx:       1,
				OtherVehicleIdx:  255,
				Time:             255,
				LapNum:           2,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			buf := f1data.Event(f1data.F12021, tt.code, tt.details)
			require.Len(t, buf, f1data.Sizes[f1data.F12021][model.PacketTypeEvent])
			e, err := dec.Event(reader(t, buf))
			require.NoError(t, err)
			assert.Equal(t, tt.code, e.Code.String())
			assert.Equal(t, tt.want, e.Details)
		})
	}
}

func TestParticipants(t *testing.T) {
	p, err := dec.Participants(reader(t, f1data.Participants(f1data.F12021)))
	require.NoError(t, err)
	require.Len(t, p.Participants, f12021.NumCars)
	d := p.Participants[4]
	assert.Equal(t, omit.From(uint8(104)), d.NetworkID)
	assert.Equal(t, model.Team("Aston Martin"), d.Team)
	assert.Equal(t, omit.From(false), d.MyTeam)
	assert.Equal(t, uint8(5), d.RaceNumber)
	assert.Equal(t, f1data.DriverName(4), d.Name)
	assert.True(t, d.PublicTelemetry)
}

func TestParticipantsF2Teams(t *testing.T) {
	const participantSize = 56
	buf := f1data.Participants(f1data.F12021)
	teamOffset := func(car int) int { return 24 + 1 + car*participantSize + 3 }
	buf[teamOffset(0)] = 106
	buf[teamOffset(f12021.NumCars-1)] = 116
	p, err := dec.Participants(reader(t, buf))
	require.NoError(t, err)
	assert.Equal(t, model.Team("Prema '21"), p.Participants[0].Team)
	assert.Equal(t, model.Team("Trident '21"), p.Participants[f12021.NumCars-1].Team)
}

func TestCarTelemetry(t *testing.T) {
	ct, err := dec.CarTelemetry(reader(t, f1data.CarTelemetry(f1data.F12021)))
	require.NoError(t, err)
	require.Len(t, ct.Cars, f12021.NumCars)
	c := ct.Cars[0]
	assert.Equal(t, omit.From(uint16(0x3ff)), c.RevLightsBitValue)
	assert.Equal(t, model.Wheels[uint16]{500, 501, 502, 503}, c.BrakesTemperature)
	assert.Equal(t, model.Wheels[uint16]{90, 91, 92, 93}, c.TyresSurfaceTemperature)
	assert.Equal(t, model.Wheels[float32]{23.5, 23.5, 22, 22}, c.TyresPressure)

	assert.True(t, ct.ButtonStatus.IsUnset())
	assert.Equal(t, omit.From(model.MFDPits), ct.MFDPanel)
	assert.Equal(t, omit.From(model.MFDClosed), ct.MFDPanelSecondaryPlayer)
	assert.Equal(t, omit.From(int8(8)), ct.SuggestedGear)
}

func TestCarStatus(t *testing.T) {
	cs, err := dec.CarStatus(reader(t, f1data.CarStatus(f1data.F12021)))
	require.NoError(t, err)
	require.Len(t, cs.Cars, f12021.NumCars)
	c := cs.Cars[21]
	assert.Equal(t, float32(31), c.FuelInTank)
	assert.Equal(t, omit.From(uint16(150)), c.DRSActivationDistance)
	assert.Equal(t, omit.From(uint8(4)), c.TyresAgeLaps)
	assert.Equal(t, omit.From(false), c.NetworkPaused)
	assert.Equal(t, model.ERSDeployMedium, c.ERSDeployMode)

	assert.True(t, c.TyresWear.IsUnset())
	assert.True(t, c.TyresDamage.IsUnset())
	assert.True(t, c.FrontLeftWingDamage.IsUnset())
	assert.True(t, c.EngineDamage.IsUnset())
	assert.True(t, c.DRSFault.IsUnset())
}

func TestMotionAndSetups(t *testing.T) {
	m, err := dec.Motion(reader(t, f1data.Motion(f1data.F12021)))
	require.NoError(t, err)
	assert.Len(t, m.Cars, f12021.NumCars)

	s, err := dec.CarSetups(reader(t, f1data.CarSetups(f1data.F12021)))
	require.NoError(t, err)
	assert.Len(t, s.Cars, f12021.NumCars)
	assert.True(t, s.Cars[0].TyrePressures.IsSet())
}
