package f12021

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/f12019"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/f12020"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

var (
	// CarDamage and SessionHistory are recognized but not decoded
	PacketTypes = f12020.PacketTypes.With(map[uint8]model.PacketType{
		10: model.PacketTypeCarDamage,
		11: model.PacketTypeSessionHistory,
	})

	// Race 3 was inserted at 12, Time Trial moved to 13
	SessionTypes = f12020.SessionTypes.With(map[uint8]model.SessionType{
		12: model.SessionTypeRace3,
		13: model.SessionTypeTimeTrial,
	})

	SafetyCar = f12020.SafetyCar.With(map[uint8]model.SafetyCarStatus{
		3: model.SafetyCarFormationLap,
	})

	// DNF was inserted at 4
	ResultStatus = codes.Sequence[uint8]("resultStatus",
		model.ResultInvalid,
		model.ResultInactive,
		model.ResultActive,
		model.ResultFinished,
		model.ResultDidNotFinish,
		model.ResultDisqualified,
		model.ResultNotClassified,
		model.ResultRetired,
	)

	Tracks = codes.TrackTable(model.TrackJeddah)

	VisualTyreCompound = f12020.VisualTyreCompound

	// hotlap and overtake swapped their codes
	ERSDeployMode = codes.Sequence[uint8]("ersDeployMode",
		model.ERSDeployNone,
		model.ERSDeployMedium,
		model.ERSDeployHotlap,
		model.ERSDeployOvertake,
	)

	Nationalities = codes.NationalityTable(88)

	EventCodes = f12020.EventCodes.With(map[string]model.EventCode{
		"STLG": model.EventStartLights,
		"LGOT": model.EventLightsOut,
		"DTSV": model.EventDriveThroughServed,
		"SGSV": model.EventStopGoServed,
		"FLBK": model.EventFlashback,
		"BUTN": model.EventButtonStatus,
	})

	// Parc Fermé change was inserted at 48, Attribute assigned appended
	Infringements = codes.Sequence[uint8]("infringementType",
		infringementsUpTo(model.InfringementAttributeAssigned)...,
	)

	Teams = codes.NewTable("teamId", teams())
)

func infringementsUpTo(last model.Infringement) []model.Infringement {
	ret := make([]model.Infringement, 0, int(last)+1)
	for i := model.InfringementBlockingBySlowDriving; i <= last; i++ {
		ret = append(ret, i)
	}
	return ret
}

func teams() map[uint8]model.Team {
	m := map[uint8]model.Team{
		0:   "Mercedes",
		1:   "Ferrari",
		2:   "Red Bull Racing",
		3:   "Williams",
		4:   "Aston Martin",
		5:   "Alpine",
		6:   "Alpha Tauri",
		7:   "Haas",
		8:   "McLaren",
		9:   "Alfa Romeo",
		70:  "Art GP '20",
		71:  "Campos '20",
		72:  "Carlin '20",
		73:  "Charouz '20",
		74:  "Dams '20",
		75:  "Uni-Virtuosi '20",
		76:  "MP Motorsport '20",
		77:  "Prema '20",
		78:  "Trident '20",
		79:  "BWT '20",
		80:  "Hitech '20",
		85:  "Mercedes 2020",
		86:  "Ferrari 2020",
		87:  "Red Bull 2020",
		88:  "Williams 2020",
		89:  "Racing Point 2020",
		90:  "Renault 2020",
		91:  "Alpha Tauri 2020",
		92:  "Haas 2020",
		93:  "McLaren 2020",
		94:  "Alfa Romeo 2020",
		106: "Prema '21",
		107: "Uni-Virtuosi '21",
		108: "Carlin '21",
		109: "Hitech '21",
		110: "Art GP '21",
		111: "MP Motorsport '21",
		112: "Charouz '21",
		113: "Dams '21",
		114: "Campos '21",
		115: "BWT '21",
		116: "Trident '21",
	}
	// the F2 '19 teams kept their codes
	for code := uint8(42); code <= 51; code++ {
		m[code], _ = f12019.Teams.Decode(code)
	}
	return m
}
