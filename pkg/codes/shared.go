package codes

import "github.com/mpapenbr/f1-telemetry-go/pkg/model"

// tables with the same codes in every supported format
var (
	Weather = Sequence[uint8]("weather",
		model.WeatherClear,
		model.WeatherLightCloud,
		model.WeatherOvercast,
		model.WeatherLightRain,
		model.WeatherHeavyRain,
		model.WeatherStorm,
	)
	TemperatureChange = Sequence[int8]("temperatureChange",
		model.TemperatureUp,
		model.TemperatureDown,
		model.TemperatureNoChange,
	)
	Formula = Sequence[uint8]("formula",
		model.FormulaF1Modern,
		model.FormulaF1Classic,
		model.FormulaF2,
		model.FormulaF1Generic,
	)
	Flag = NewTable("flag", map[int8]model.Flag{
		-1: model.FlagUnknown,
		0:  model.FlagNone,
		1:  model.FlagGreen,
		2:  model.FlagBlue,
		3:  model.FlagYellow,
		4:  model.FlagRed,
	})
	ForecastAccuracy = Sequence[uint8]("forecastAccuracy",
		model.ForecastPerfect,
		model.ForecastApproximate,
	)
	BrakingAssist = Sequence[uint8]("brakingAssist",
		model.BrakingAssistOff,
		model.BrakingAssistLow,
		model.BrakingAssistMedium,
		model.BrakingAssistHigh,
	)
	// gearbox assist starts at 1
	GearboxAssist = NewTable("gearboxAssist", map[uint8]model.GearboxAssist{
		1: model.GearboxManual,
		2: model.GearboxManualAndSuggestedGear,
		3: model.GearboxAutomatic,
	})
	DynamicRacingLine = Sequence[uint8]("dynamicRacingLine",
		model.RacingLineOff,
		model.RacingLineCornersOnly,
		model.RacingLineFull,
	)
	DynamicRacingLineType = Sequence[uint8]("dynamicRacingLineType",
		model.RacingLine2D,
		model.RacingLine3D,
	)
	PitStatus = Sequence[uint8]("pitStatus",
		model.PitStatusNone,
		model.PitStatusPitting,
		model.PitStatusInPitArea,
	)
	Sector = Sequence[uint8]("sector",
		model.Sector1,
		model.Sector2,
		model.Sector3,
	)
	DriverStatus = Sequence[uint8]("driverStatus",
		model.DriverInGarage,
		model.DriverFlyingLap,
		model.DriverInLap,
		model.DriverOutLap,
		model.DriverOnTrack,
	)
	TractionControl = Sequence[uint8]("tractionControl",
		model.TractionControlOff,
		model.TractionControlLow,
		model.TractionControlHigh,
	)
	FuelMix = Sequence[uint8]("fuelMix",
		model.FuelMixLean,
		model.FuelMixStandard,
		model.FuelMixRich,
		model.FuelMixMax,
	)
	DRS = NewTable("drsAllowed", map[int8]model.DRS{
		-1: model.DRSUnknown,
		0:  model.DRSNotAllowed,
		1:  model.DRSAllowed,
	})
	// 0 and 255 both denote an unknown compound
	ActualTyreCompound = NewTable("actualTyreCompound", map[uint8]model.TyreCompound{
		0:   model.TyreCompoundInvalid,
		7:   model.TyreCompoundInter,
		8:   model.TyreCompoundWet,
		9:   model.TyreCompoundClassicDry,
		10:  model.TyreCompoundClassicWet,
		11:  model.TyreCompoundF2SuperSoft,
		12:  model.TyreCompoundF2Soft,
		13:  model.TyreCompoundF2Medium,
		14:  model.TyreCompoundF2Hard,
		15:  model.TyreCompoundF2Wet,
		16:  model.TyreCompoundC5,
		17:  model.TyreCompoundC4,
		18:  model.TyreCompoundC3,
		19:  model.TyreCompoundC2,
		20:  model.TyreCompoundC1,
		255: model.TyreCompoundInvalid,
	})
	SurfaceType = Sequence[uint8]("surfaceType",
		model.SurfaceTarmac,
		model.SurfaceRumbleStrip,
		model.SurfaceConcrete,
		model.SurfaceRock,
		model.SurfaceGravel,
		model.SurfaceMud,
		model.SurfaceSand,
		model.SurfaceGrass,
		model.SurfaceWater,
		model.SurfaceCobblestone,
		model.SurfaceMetal,
		model.SurfaceRidged,
	)
	MFDPanel = NewTable("mfdPanel", map[uint8]model.MFDPanel{
		0:   model.MFDCarSetup,
		1:   model.MFDPits,
		2:   model.MFDDamage,
		3:   model.MFDEngine,
		4:   model.MFDTemperatures,
		255: model.MFDClosed,
	})
	PenaltyType = Sequence[uint8]("penaltyType",
		model.PenaltyDriveThrough,
		model.PenaltyStopGo,
		model.PenaltyGridPenalty,
		model.PenaltyReminder,
		model.PenaltyTimePenalty,
		model.PenaltyWarning,
		model.PenaltyDisqualified,
		model.PenaltyRemovedFromFormationLap,
		model.PenaltyParkedTooLongTimer,
		model.PenaltyTyreRegulations,
		model.PenaltyThisLapInvalidated,
		model.PenaltyThisAndNextLapInvalidated,
		model.PenaltyThisLapInvalidatedWithoutReason,
		model.PenaltyThisAndNextLapInvalidatedWithoutReason,
		model.PenaltyThisAndPreviousLapInvalidated,
		model.PenaltyThisAndPreviousLapInvalidatedWithoutReason,
		model.PenaltyRetired,
		model.PenaltyBlackFlagTimer,
	)
)

// Nationalities lists the demonyms in wire order starting with code 1.
// Code 0 means unspecified. Newer formats append to this list.
var Nationalities = []model.Nationality{
	"American", "Argentinean", "Australian", "Austrian", "Azerbaijani",
	"Bahraini", "Belgian", "Bolivian", "Brazilian", "British",
	"Bulgarian", "Cameroonian", "Canadian", "Chilean", "Chinese",
	"Colombian", "Costa Rican", "Croatian", "Cypriot", "Czech",
	"Danish", "Dutch", "Ecuadorian", "English", "Emirian",
	"Estonian", "Finnish", "French", "German", "Ghanaian",
	"Greek", "Guatemalan", "Honduran", "Hong Konger", "Hungarian",
	"Icelander", "Indian", "Indonesian", "Irish", "Israeli",
	"Italian", "Jamaican", "Japanese", "Jordanian", "Kuwaiti",
	"Latvian", "Lebanese", "Lithuanian", "Luxembourger", "Malaysian",
	"Maltese", "Mexican", "Monegasque", "New Zealander", "Nicaraguan",
	"North Korean", "Northern Irish", "Norwegian", "Omani", "Pakistani",
	"Panamanian", "Paraguayan", "Peruvian", "Polish", "Portuguese",
	"Qatari", "Romanian", "Russian", "Salvadoran", "Saudi",
	"Scottish", "Serbian", "Singaporean", "Slovakian", "Slovenian",
	"South Korean", "South African", "Spanish", "Swedish", "Swiss",
	"Thai", "Turkish", "Uruguayan", "Ukrainian", "Venezuelan",
	"Welsh", "Barbadian", "Vietnamese",
}

// NationalityTable builds the nationality table for codes 0..maxCode.
func NationalityTable(maxCode uint8) Table[uint8, model.Nationality] {
	m := map[uint8]model.Nationality{0: ""}
	for i := 1; i <= int(maxCode) && i <= len(Nationalities); i++ {
		m[uint8(i)] = Nationalities[i-1]
	}
	return Table[uint8, model.Nationality]{field: "nationality", m: m}
}

// TrackTable builds the track table from -1 (unknown) up to last.
// Circuits kept their ids when new ones were added.
func TrackTable(last model.Track) Table[int8, model.Track] {
	m := map[int8]model.Track{}
	for t := model.TrackUnknown; t <= last; t++ {
		m[int8(t)] = t
	}
	return Table[int8, model.Track]{field: "trackId", m: m}
}
