package model

import (
	"time"

	"github.com/aarondl/opt/omit"
)

type PitStatus uint8

const (
	PitStatusNone PitStatus = iota
	PitStatusPitting
	PitStatusInPitArea
)

func (p PitStatus) String() string {
	return enumName([]string{"None", "Pitting", "In Pit Area"}, p, "PitStatus")
}

type Sector uint8

const (
	Sector1 Sector = iota
	Sector2
	Sector3
)

func (s Sector) String() string {
	return enumName([]string{"Sector 1", "Sector 2", "Sector 3"}, s, "Sector")
}

type DriverStatus uint8

const (
	DriverInGarage DriverStatus = iota
	DriverFlyingLap
	DriverInLap
	DriverOutLap
	DriverOnTrack
)

func (d DriverStatus) String() string {
	return enumName([]string{
		"In Garage", "Flying Lap", "In Lap", "Out Lap", "On Track",
	}, d, "DriverStatus")
}

type ResultStatus uint8

const (
	ResultInvalid ResultStatus = iota
	ResultInactive
	ResultActive
	ResultFinished
	ResultDidNotFinish
	ResultDisqualified
	ResultNotClassified
	ResultRetired
)

func (r ResultStatus) String() string {
	return enumName([]string{
		"Invalid", "Inactive", "Active", "Finished",
		"DNF", "DSQ", "NC", "Retired",
	}, r, "ResultStatus")
}

// LapData holds timing data for one car. Times are normalized to
// time.Duration regardless of the wire unit (seconds or milliseconds).
type LapData struct {
	LastLapTime    time.Duration `json:"lastLapTime"`
	CurrentLapTime time.Duration `json:"currentLapTime"`
	Sector1Time    time.Duration `json:"sector1Time"`
	Sector2Time    time.Duration `json:"sector2Time"`

	BestLapTime              omit.Val[time.Duration] `json:"bestLapTime"`
	BestLapNum               omit.Val[uint8]         `json:"bestLapNum"`
	BestLapSector1Time       omit.Val[time.Duration] `json:"bestLapSector1Time"`
	BestLapSector2Time       omit.Val[time.Duration] `json:"bestLapSector2Time"`
	BestLapSector3Time       omit.Val[time.Duration] `json:"bestLapSector3Time"`
	BestOverallSector1Time   omit.Val[time.Duration] `json:"bestOverallSector1Time"`
	BestOverallSector1LapNum omit.Val[uint8]         `json:"bestOverallSector1LapNum"`
	BestOverallSector2Time   omit.Val[time.Duration] `json:"bestOverallSector2Time"`
	BestOverallSector2LapNum omit.Val[uint8]         `json:"bestOverallSector2LapNum"`
	BestOverallSector3Time   omit.Val[time.Duration] `json:"bestOverallSector3Time"`
	BestOverallSector3LapNum omit.Val[uint8]         `json:"bestOverallSector3LapNum"`

	LapDistance    float32 `json:"lapDistance"`   // metres, may be negative before the line
	TotalDistance  float32 `json:"totalDistance"` // metres
	SafetyCarDelta float32 `json:"safetyCarDelta"`
	CarPosition    uint8   `json:"carPosition"`
	CurrentLapNum  uint8   `json:"currentLapNum"`

	PitStatus                   PitStatus       `json:"pitStatus"`
	NumPitStops                 omit.Val[uint8] `json:"numPitStops"`
	Sector                      Sector          `json:"sector"`
	CurrentLapInvalid           bool            `json:"currentLapInvalid"`
	Penalties                   uint8           `json:"penalties"` // seconds
	Warnings                    omit.Val[uint8] `json:"warnings"`
	NumUnservedDriveThroughPens omit.Val[uint8] `json:"numUnservedDriveThroughPens"`
	NumUnservedStopGoPens       omit.Val[uint8] `json:"numUnservedStopGoPens"`
	GridPosition                uint8           `json:"gridPosition"`
	DriverStatus                DriverStatus    `json:"driverStatus"`
	ResultStatus                ResultStatus    `json:"resultStatus"`

	PitLaneTimerActive        omit.Val[bool]          `json:"pitLaneTimerActive"`
	PitLaneTimeInLane         omit.Val[time.Duration] `json:"pitLaneTimeInLane"`
	PitStopTimer              omit.Val[time.Duration] `json:"pitStopTimer"`
	PitStopShouldServePenalty omit.Val[bool]          `json:"pitStopShouldServePenalty"`
}

// InPit is true while the car is in the pit lane or pit area.
func (l *LapData) InPit() bool {
	return l.PitStatus != PitStatusNone
}

type Lap struct {
	PacketHeader Header    `json:"header"`
	Cars         []LapData `json:"cars"`
}
