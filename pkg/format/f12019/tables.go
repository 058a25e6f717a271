package f12019

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

var (
	PacketTypes = codes.Sequence[uint8]("packetId",
		model.PacketTypeMotion,
		model.PacketTypeSession,
		model.PacketTypeLap,
		model.PacketTypeEvent,
		model.PacketTypeParticipants,
		model.PacketTypeCarSetups,
		model.PacketTypeCarTelemetry,
		model.PacketTypeCarStatus,
	)

	SessionTypes = codes.Sequence[uint8]("sessionType",
		model.SessionTypeUnknown,
		model.SessionTypePractice1,
		model.SessionTypePractice2,
		model.SessionTypePractice3,
		model.SessionTypePracticeShort,
		model.SessionTypeQualifying1,
		model.SessionTypeQualifying2,
		model.SessionTypeQualifying3,
		model.SessionTypeQualifyingShort,
		model.SessionTypeOneShotQualifying,
		model.SessionTypeRace,
		model.SessionTypeRace2,
		model.SessionTypeTimeTrial,
	)

	Tracks = codes.TrackTable(model.TrackSuzukaShort)

	SafetyCar = codes.Sequence[uint8]("safetyCarStatus",
		model.SafetyCarNone,
		model.SafetyCarFull,
		model.SafetyCarVirtual,
	)

	ResultStatus = codes.Sequence[uint8]("resultStatus",
		model.ResultInvalid,
		model.ResultInactive,
		model.ResultActive,
		model.ResultFinished,
		model.ResultDisqualified,
		model.ResultNotClassified,
		model.ResultRetired,
	)

	VisualTyreCompound = codes.NewTable("visualTyreCompound",
		map[uint8]model.VisualTyreCompound{
			0:  model.VisualTyreCompoundInvalid,
			7:  model.VisualTyreCompoundInter,
			8:  model.VisualTyreCompoundWet,
			9:  model.VisualTyreCompoundClassicDry,
			10: model.VisualTyreCompoundClassicWet,
			11: model.VisualTyreCompoundF2SuperSoft,
			12: model.VisualTyreCompoundF2Soft,
			13: model.VisualTyreCompoundF2Medium,
			14: model.VisualTyreCompoundF2Hard,
			15: model.VisualTyreCompoundF2Wet,
			16: model.VisualTyreCompoundSoft,
			17: model.VisualTyreCompoundMedium,
			18: model.VisualTyreCompoundHard,
		})

	ERSDeployMode = codes.Sequence[uint8]("ersDeployMode",
		model.ERSDeployNone,
		model.ERSDeployLow,
		model.ERSDeployMedium,
		model.ERSDeployHigh,
		model.ERSDeployOvertake,
		model.ERSDeployHotlap,
	)

	Nationalities = codes.NationalityTable(86)

	EventCodes = codes.NewTable("eventStringCode", map[string]model.EventCode{
		"SSTA": model.EventSessionStarted,
		"SEND": model.EventSessionEnded,
		"FTLP": model.EventFastestLap,
		"RTMT": model.EventRetirement,
		"DRSE": model.EventDRSEnabled,
		"DRSD": model.EventDRSDisabled,
		"TMPT": model.EventTeamMateInPits,
		"CHQF": model.EventChequeredFlag,
		"RCWN": model.EventRaceWinner,
	})

	Teams = codes.NewTable("teamId", map[uint8]model.Team{
		0:  "Mercedes",
		1:  "Ferrari",
		2:  "Red Bull Racing",
		3:  "Williams",
		4:  "Racing Point",
		5:  "Renault",
		6:  "Toro Rosso",
		7:  "Haas",
		8:  "McLaren",
		9:  "Alfa Romeo",
		10: "McLaren 1988",
		11: "McLaren 1991",
		12: "Williams 1992",
		13: "Ferrari 1995",
		14: "Williams 1996",
		15: "McLaren 1998",
		16: "Ferrari 2002",
		17: "Ferrari 2004",
		18: "Renault 2006",
		19: "Ferrari 2007",
		20: "McLaren 2008",
		21: "Red Bull 2010",
		22: "Ferrari 1976",
		23: "ART Grand Prix",
		24: "Campos Vexatec Racing",
		25: "Carlin",
		26: "Charouz Racing System",
		27: "DAMS",
		28: "Russian Time",
		29: "MP Motorsport",
		30: "Pertamina",
		31: "McLaren 1990",
		32: "Trident",
		33: "BWT Arden",
		34: "McLaren 1976",
		35: "Lotus 1972",
		36: "Ferrari 1979",
		37: "McLaren 1982",
		38: "Williams 2003",
		39: "Brawn 2009",
		40: "Lotus 1978",
		41: "F1 Generic car",
		42: "Art GP '19",
		43: "Campos '19",
		44: "Carlin '19",
		45: "Sauber Junior Charouz '19",
		46: "Dams '19",
		47: "Uni-Virtuosi '19",
		48: "MP Motorsport '19",
		49: "Prema '19",
		50: "Trident '19",
		51: "Arden '19",
		63: "Ferrari 1990",
		64: "McLaren 2010",
		65: "Ferrari 2010",
	})
)
