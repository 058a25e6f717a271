package model

import "github.com/aarondl/opt/omit"

// EventCode is the domain value of the four character event string code.
type EventCode uint8

const (
	EventSessionStarted EventCode = iota
	EventSessionEnded
	EventFastestLap
	EventRetirement
	EventDRSEnabled
	EventDRSDisabled
	EventTeamMateInPits
	EventChequeredFlag
	EventRaceWinner
	EventPenaltyIssued
	EventSpeedTrapTriggered
	EventStartLights
	EventLightsOut
	EventDriveThroughServed
	EventStopGoServed
	EventFlashback
	EventButtonStatus
)

var eventCodes = []struct{ code, desc string }{
	{"SSTA", "Session Started"},
	{"SEND", "Session Ended"},
	{"FTLP", "Fastest Lap"},
	{"RTMT", "Retirement"},
	{"DRSE", "DRS enabled"},
	{"DRSD", "DRS disabled"},
	{"TMPT", "Team mate in pits"},
	{"CHQF", "Chequered flag"},
	{"RCWN", "Race Winner"},
	{"PENA", "Penalty Issued"},
	{"SPTP", "Speed Trap Triggered"},
	{"STLG", "Start lights"},
	{"LGOT", "Lights out"},
	{"DTSV", "Drive through served"},
	{"SGSV", "Stop go served"},
	{"FLBK", "Flashback"},
	{"BUTN", "Button status"},
}

// String returns the wire code, e.g. "SSTA"
func (e EventCode) String() string {
	if int(e) < len(eventCodes) {
		return eventCodes[e].code
	}
	return enumName(nil, e, "EventCode")
}

func (e EventCode) Description() string {
	if int(e) < len(eventCodes) {
		return eventCodes[e].desc
	}
	return e.String()
}

type PenaltyType uint8

const (
	PenaltyDriveThrough PenaltyType = iota
	PenaltyStopGo
	PenaltyGridPenalty
	PenaltyReminder
	PenaltyTimePenalty
	PenaltyWarning
	PenaltyDisqualified
	PenaltyRemovedFromFormationLap
	PenaltyParkedTooLongTimer
	PenaltyTyreRegulations
	PenaltyThisLapInvalidated
	PenaltyThisAndNextLapInvalidated
	PenaltyThisLapInvalidatedWithoutReason
	PenaltyThisAndNextLapInvalidatedWithoutReason
	PenaltyThisAndPreviousLapInvalidated
	PenaltyThisAndPreviousLapInvalidatedWithoutReason
	PenaltyRetired
	PenaltyBlackFlagTimer
)

func (p PenaltyType) String() string {
	return enumName([]string{
		"Drive through",
		"Stop Go",
		"Grid penalty",
		"Penalty reminder",
		"Time penalty",
		"Warning",
		"Disqualified",
		"Removed from formation lap",
		"Parked too long timer",
		"Tyre regulations",
		"This lap invalidated",
		"This and next lap invalidated",
		"This lap invalidated without reason",
		"This and next lap invalidated without reason",
		"This and previous lap invalidated",
		"This and previous lap invalidated without reason",
		"Retired",
		"Black flag timer",
	}, p, "PenaltyType")
}

type Infringement uint8

const (
	InfringementBlockingBySlowDriving Infringement = iota
	InfringementBlockingByWrongWayDriving
	InfringementReversingOffTheStartLine
	InfringementBigCollision
	InfringementSmallCollision
	InfringementCollisionFailedToHandBackPositionSingle
	InfringementCollisionFailedToHandBackPositionMultiple
	InfringementCornerCuttingGainedTime
	InfringementCornerCuttingOvertakeSingle
	InfringementCornerCuttingOvertakeMultiple
	InfringementCrossedPitExitLane
	InfringementIgnoringBlueFlags
	InfringementIgnoringYellowFlags
	InfringementIgnoringDriveThrough
	InfringementTooManyDriveThroughs
	InfringementDriveThroughReminderServeWithinNLaps
	InfringementDriveThroughReminderServeThisLap
	InfringementPitLaneSpeeding
	InfringementParkedForTooLong
	InfringementIgnoringTyreRegulations
	InfringementTooManyPenalties
	InfringementMultipleWarnings
	InfringementApproachingDisqualification
	InfringementTyreRegulationsSelectSingle
	InfringementTyreRegulationsSelectMultiple
	InfringementLapInvalidatedCornerCutting
	InfringementLapInvalidatedRunningWide
	InfringementCornerCuttingRanWideGainedTimeMinor
	InfringementCornerCuttingRanWideGainedTimeSignificant
	InfringementCornerCuttingRanWideGainedTimeExtreme
	InfringementLapInvalidatedWallRiding
	InfringementLapInvalidatedFlashbackUsed
	InfringementLapInvalidatedResetToTrack
	InfringementBlockingThePitlane
	InfringementJumpStart
	InfringementSafetyCarToCarCollision
	InfringementSafetyCarIllegalOvertake
	InfringementSafetyCarExceedingAllowedPace
	InfringementVirtualSafetyCarExceedingAllowedPace
	InfringementFormationLapBelowAllowedSpeed
	InfringementRetiredMechanicalFailure
	InfringementRetiredTerminallyDamaged
	InfringementSafetyCarFallingTooFarBack
	InfringementBlackFlagTimer
	InfringementUnservedStopGoPenalty
	InfringementUnservedDriveThroughPenalty
	InfringementEngineComponentChange
	InfringementGearboxChange
	InfringementParcFermeChange
	InfringementLeagueGridPenalty
	InfringementRetryPenalty
	InfringementIllegalTimeGain
	InfringementMandatoryPitstop
	InfringementAttributeAssigned
)

var infringementNames = []string{
	"Blocking by slow driving",
	"Blocking by wrong way driving",
	"Reversing off the start line",
	"Big Collision",
	"Small Collision",
	"Collision failed to hand back position single",
	"Collision failed to hand back position multiple",
	"Corner cutting gained time",
	"Corner cutting overtake single",
	"Corner cutting overtake multiple",
	"Crossed pit exit lane",
	"Ignoring blue flags",
	"Ignoring yellow flags",
	"Ignoring drive through",
	"Too many drive throughs",
	"Drive through reminder serve within n laps",
	"Drive through reminder serve this lap",
	"Pit lane speeding",
	"Parked for too long",
	"Ignoring tyre regulations",
	"Too many penalties",
	"Multiple warnings",
	"Approaching disqualification",
	"Tyre regulations select single",
	"Tyre regulations select multiple",
	"Lap invalidated corner cutting",
	"Lap invalidated running wide",
	"Corner cutting ran wide gained time minor",
	"Corner cutting ran wide gained time significant",
	"Corner cutting ran wide gained time extreme",
	"Lap invalidated wall riding",
	"Lap invalidated flashback used",
	"Lap invalidated reset to track",
	"Blocking the pitlane",
	"Jump start",
	"Safety car to car collision",
	"Safety car illegal overtake",
	"Safety car exceeding allowed pace",
	"Virtual safety car exceeding allowed pace",
	"Formation lap below allowed speed",
	"Retired mechanical failure",
	"Retired terminally damaged",
	"Safety car falling too far back",
	"Black flag timer",
	"Unserved stop go penalty",
	"Unserved drive through penalty",
	"Engine component change",
	"Gearbox change",
	"Parc Fermé change",
	"League grid penalty",
	"Retry penalty",
	"Illegal time gain",
	"Mandatory pitstop",
	"Attribute assigned",
}

func (i Infringement) String() string {
	return enumName(infringementNames, i, "Infringement")
}

// EventDetails is the event specific payload. Events without details
// (e.g. SSTA, SEND, CHQF) carry nil.
type EventDetails interface {
	eventDetails()
}

type FastestLap struct {
	VehicleIdx uint8   `json:"vehicleIdx"`
	LapTime    float32 `json:"lapTime"` // seconds
}

type Retirement struct {
	VehicleIdx uint8 `json:"vehicleIdx"`
}

type TeamMateInPits struct {
	VehicleIdx uint8 `json:"vehicleIdx"`
}

type RaceWinner struct {
	VehicleIdx uint8 `json:"vehicleIdx"`
}

type Penalty struct {
	PenaltyType      PenaltyType  `json:"penaltyType"`
	InfringementType Infringement `json:"infringementType"`
	VehicleIdx       uint8        `json:"vehicleIdx"`
	OtherVehicleIdx  uint8        `json:"otherVehicleIdx"`
	Time             uint8        `json:"time"` // seconds, 255 = not applicable
	LapNum           uint8        `json:"lapNum"`
	PlacesGained     uint8        `json:"placesGained"`
}

type SpeedTrap struct {
	VehicleIdx              uint8          `json:"vehicleIdx"`
	Speed                   float32        `json:"speed"` // km/h
	OverallFastestInSession omit.Val[bool] `json:"overallFastestInSession"`
	DriverFastestInSession  omit.Val[bool] `json:"driverFastestInSession"`
}

type StartLights struct {
	NumLights uint8 `json:"numLights"`
}

type DriveThroughPenaltyServed struct {
	VehicleIdx uint8 `json:"vehicleIdx"`
}

type StopGoPenaltyServed struct {
	VehicleIdx uint8 `json:"vehicleIdx"`
}

type Flashback struct {
	FlashbackFrameIdentifier uint32  `json:"flashbackFrameIdentifier"`
	FlashbackSessionTime     float32 `json:"flashbackSessionTime"`
}

type Buttons struct {
	ButtonStatus uint32 `json:"buttonStatus"` // bit flags
}

func (FastestLap) eventDetails()                {}
func (Retirement) eventDetails()                {}
func (TeamMateInPits) eventDetails()            {}
func (RaceWinner) eventDetails()                {}
func (Penalty) eventDetails()                   {}
func (SpeedTrap) eventDetails()                 {}
func (StartLights) eventDetails()               {}
func (DriveThroughPenaltyServed) eventDetails() {}
func (StopGoPenaltyServed) eventDetails()       {}
func (Flashback) eventDetails()                 {}
func (Buttons) eventDetails()                   {}

type Event struct {
	PacketHeader Header       `json:"header"`
	Code         EventCode    `json:"code"`
	Details      EventDetails `json:"details,omitempty"`
}

// VehicleIdx returns the car the event refers to, if any.
func (e *Event) VehicleIdx() (uint8, bool) {
	switch d := e.Details.(type) {
	case FastestLap:
		return d.VehicleIdx, true
	case Retirement:
		return d.VehicleIdx, true
	case TeamMateInPits:
		return d.VehicleIdx, true
	case RaceWinner:
		return d.VehicleIdx, true
	case Penalty:
		return d.VehicleIdx, true
	case SpeedTrap:
		return d.VehicleIdx, true
	case DriveThroughPenaltyServed:
		return d.VehicleIdx, true
	case StopGoPenaltyServed:
		return d.VehicleIdx, true
	}
	return 0, false
}
