package model

import "github.com/aarondl/opt/omit"

type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherLightCloud
	WeatherOvercast
	WeatherLightRain
	WeatherHeavyRain
	WeatherStorm
)

func (w Weather) String() string {
	return enumName([]string{
		"Clear", "Light Cloud", "Overcast", "Light Rain", "Heavy Rain", "Storm",
	}, w, "Weather")
}

type TemperatureChange uint8

const (
	TemperatureUp TemperatureChange = iota
	TemperatureDown
	TemperatureNoChange
)

func (t TemperatureChange) String() string {
	return enumName([]string{"Up", "Down", "No Change"}, t, "TemperatureChange")
}

type SessionType uint8

const (
	SessionTypeUnknown SessionType = iota
	SessionTypePractice1
	SessionTypePractice2
	SessionTypePractice3
	SessionTypePracticeShort
	SessionTypeQualifying1
	SessionTypeQualifying2
	SessionTypeQualifying3
	SessionTypeQualifyingShort
	SessionTypeOneShotQualifying
	SessionTypeRace
	SessionTypeRace2
	SessionTypeRace3
	SessionTypeTimeTrial
)

func (s SessionType) String() string {
	return enumName([]string{
		"Unknown",
		"Free Practice 1",
		"Free Practice 2",
		"Free Practice 3",
		"Free Practice (Short)",
		"Qualifying 1",
		"Qualifying 2",
		"Qualifying 3",
		"Qualifying (Short)",
		"One-Shot Qualifying",
		"Race",
		"Race 2",
		"Race 3",
		"Time Trial",
	}, s, "SessionType")
}

// IsRace is true for all race sessions (Race, Race 2, Race 3)
func (s SessionType) IsRace() bool {
	return s == SessionTypeRace || s == SessionTypeRace2 || s == SessionTypeRace3
}

// Track uses the wire ids of the circuits, they never changed between formats.
type Track int8

const (
	TrackUnknown Track = iota - 1
	TrackMelbourne
	TrackPaulRicard
	TrackShanghai
	TrackSakhir
	TrackCatalunya
	TrackMonaco
	TrackMontreal
	TrackSilverstone
	TrackHockenheim
	TrackHungaroring
	TrackSpa
	TrackMonza
	TrackSingapore
	TrackSuzuka
	TrackAbuDhabi
	TrackTexas
	TrackBrazil
	TrackAustria
	TrackSochi
	TrackMexico
	TrackBaku
	TrackSakhirShort
	TrackSilverstoneShort
	TrackTexasShort
	TrackSuzukaShort
	TrackHanoi
	TrackZandvoort
	TrackImola
	TrackPortimao
	TrackJeddah
)

var trackNames = []string{
	"Melbourne Grand Prix Circuit",
	"Circuit Paul Ricard",
	"Shanghai International Circuit",
	"Bahrain International Circuit",
	"Circuit de Barcelona-Catalunya",
	"Circuit de Monaco",
	"Circuit Gilles Villeneuve",
	"Silverstone Circuit",
	"Hockenheimring",
	"Hungaroring",
	"Circuit de Spa-Francorchamps",
	"Autodromo Nazionale Monza",
	"Marina Bay Street Circuit",
	"Suzuka International Racing Course",
	"Yas Marina Circuit",
	"Circuit of the Americas",
	"Autódromo José Carlos Pace",
	"Red Bull Ring",
	"Sochi Autodrom",
	"Autódromo Hermanos Rodríguez",
	"Baku City Circuit",
	"Bahrain International Circuit (Short)",
	"Silverstone Circuit (Short)",
	"Circuit of the Americas (Short)",
	"Suzuka International Racing Course (Short)",
	"Hanoi Street Circuit",
	"Circuit Zandvoort",
	"Autodromo Enzo e Dino Ferrari",
	"Autódromo Internacional do Algarve",
	"Jeddah Corniche Circuit",
}

func (t Track) String() string {
	if t == TrackUnknown {
		return "[UNKNOWN]"
	}
	return enumName(trackNames, t, "Track")
}

type Formula uint8

const (
	FormulaF1Modern Formula = iota
	FormulaF1Classic
	FormulaF2
	FormulaF1Generic
)

func (f Formula) String() string {
	return enumName([]string{"F1 Modern", "F1 Classic", "F2", "F1 Generic"}, f, "Formula")
}

type SafetyCarStatus uint8

const (
	SafetyCarNone SafetyCarStatus = iota
	SafetyCarFull
	SafetyCarVirtual
	SafetyCarFormationLap
)

func (s SafetyCarStatus) String() string {
	return enumName([]string{
		"No Safety Car", "Safety Car", "Virtual Safety Car", "Formation Lap",
	}, s, "SafetyCarStatus")
}

// Flag keeps the wire values, -1 is a valid value (unknown).
type Flag int8

const (
	FlagUnknown Flag = iota - 1
	FlagNone
	FlagGreen
	FlagBlue
	FlagYellow
	FlagRed
)

func (f Flag) String() string {
	if f == FlagUnknown {
		return "Unknown"
	}
	return enumName([]string{"None", "Green", "Blue", "Yellow", "Red"}, f, "Flag")
}

type ForecastAccuracy uint8

const (
	ForecastPerfect ForecastAccuracy = iota
	ForecastApproximate
)

func (f ForecastAccuracy) String() string {
	return enumName([]string{"Perfect", "Approximate"}, f, "ForecastAccuracy")
}

type BrakingAssist uint8

const (
	BrakingAssistOff BrakingAssist = iota
	BrakingAssistLow
	BrakingAssistMedium
	BrakingAssistHigh
)

func (b BrakingAssist) String() string {
	return enumName([]string{"Off", "Low", "Medium", "High"}, b, "BrakingAssist")
}

type GearboxAssist uint8

const (
	GearboxManual GearboxAssist = iota
	GearboxManualAndSuggestedGear
	GearboxAutomatic
)

func (g GearboxAssist) String() string {
	return enumName([]string{
		"Manual", "Manual and Suggested Gear", "Automatic",
	}, g, "GearboxAssist")
}

type DynamicRacingLine uint8

const (
	RacingLineOff DynamicRacingLine = iota
	RacingLineCornersOnly
	RacingLineFull
)

func (d DynamicRacingLine) String() string {
	return enumName([]string{"Off", "Corners Only", "Full"}, d, "DynamicRacingLine")
}

type DynamicRacingLineType uint8

const (
	RacingLine2D DynamicRacingLineType = iota
	RacingLine3D
)

func (d DynamicRacingLineType) String() string {
	return enumName([]string{"2D", "3D"}, d, "DynamicRacingLineType")
}

type MarshalZone struct {
	ZoneStart float32 `json:"zoneStart"` // fraction (0..1) of the lap
	ZoneFlag  Flag    `json:"zoneFlag"`
}

type WeatherForecastSample struct {
	SessionType            SessionType                 `json:"sessionType"`
	TimeOffset             uint8                       `json:"timeOffset"` // minutes
	Weather                Weather                     `json:"weather"`
	TrackTemperature       int8                        `json:"trackTemperature"`
	TrackTemperatureChange omit.Val[TemperatureChange] `json:"trackTemperatureChange"`
	AirTemperature         int8                        `json:"airTemperature"`
	AirTemperatureChange   omit.Val[TemperatureChange] `json:"airTemperatureChange"`
	RainPercentage         omit.Val[uint8]             `json:"rainPercentage"`
}

type DrivingAssists struct {
	SteeringAssist        bool                  `json:"steeringAssist"`
	BrakingAssist         BrakingAssist         `json:"brakingAssist"`
	GearboxAssist         GearboxAssist         `json:"gearboxAssist"`
	PitAssist             bool                  `json:"pitAssist"`
	PitReleaseAssist      bool                  `json:"pitReleaseAssist"`
	ERSAssist             bool                  `json:"ersAssist"`
	DRSAssist             bool                  `json:"drsAssist"`
	DynamicRacingLine     DynamicRacingLine     `json:"dynamicRacingLine"`
	DynamicRacingLineType DynamicRacingLineType `json:"dynamicRacingLineType"`
}

// Session describes the session in progress.
// The omit.Val fields are set only by formats that carry them on the wire.
type Session struct {
	PacketHeader        Header          `json:"header"`
	Weather             Weather         `json:"weather"`
	TrackTemperature    int8            `json:"trackTemperature"`
	AirTemperature      int8            `json:"airTemperature"`
	TotalLaps           uint8           `json:"totalLaps"`
	TrackLength         uint16          `json:"trackLength"` // metres
	SessionType         SessionType     `json:"sessionType"`
	Track               Track           `json:"track"`
	Formula             Formula         `json:"formula"`
	SessionTimeLeft     uint16          `json:"sessionTimeLeft"` // seconds
	SessionDuration     uint16          `json:"sessionDuration"` // seconds
	PitSpeedLimit       uint8           `json:"pitSpeedLimit"`   // km/h
	GamePaused          bool            `json:"gamePaused"`
	IsSpectating        bool            `json:"isSpectating"`
	SpectatorCarIndex   uint8           `json:"spectatorCarIndex"`
	SLIProNativeSupport bool            `json:"sliProNativeSupport"`
	MarshalZones        []MarshalZone   `json:"marshalZones"`
	SafetyCarStatus     SafetyCarStatus `json:"safetyCarStatus"`
	NetworkGame         bool            `json:"networkGame"`
	// nil for formats without forecast
	WeatherForecastSamples []WeatherForecastSample `json:"weatherForecastSamples"`

	ForecastAccuracy       omit.Val[ForecastAccuracy] `json:"forecastAccuracy"`
	AIDifficulty           omit.Val[uint8]            `json:"aiDifficulty"`
	SeasonLinkIdentifier   omit.Val[uint32]           `json:"seasonLinkIdentifier"`
	WeekendLinkIdentifier  omit.Val[uint32]           `json:"weekendLinkIdentifier"`
	SessionLinkIdentifier  omit.Val[uint32]           `json:"sessionLinkIdentifier"`
	PitStopWindowIdealLap  omit.Val[uint8]            `json:"pitStopWindowIdealLap"`
	PitStopWindowLatestLap omit.Val[uint8]            `json:"pitStopWindowLatestLap"`
	PitStopRejoinPosition  omit.Val[uint8]            `json:"pitStopRejoinPosition"`
	DrivingAssists         omit.Val[DrivingAssists]   `json:"drivingAssists"`
}
