package model

import "github.com/aarondl/opt/omit"

type TractionControl uint8

const (
	TractionControlOff TractionControl = iota
	TractionControlLow
	TractionControlHigh
)

func (t TractionControl) String() string {
	return enumName([]string{"Off", "Low", "High"}, t, "TractionControl")
}

type FuelMix uint8

const (
	FuelMixLean FuelMix = iota
	FuelMixStandard
	FuelMixRich
	FuelMixMax
)

func (f FuelMix) String() string {
	return enumName([]string{"Lean", "Standard", "Rich", "Max"}, f, "FuelMix")
}

// DRS keeps the wire values, -1 is a valid value (unknown).
type DRS int8

const (
	DRSUnknown DRS = iota - 1
	DRSNotAllowed
	DRSAllowed
)

func (d DRS) String() string {
	if d == DRSUnknown {
		return "Unknown"
	}
	return enumName([]string{"Not Allowed", "Allowed"}, d, "DRS")
}

// TyreCompound is the actual compound. Modern dry compounds are C1 to C5.
type TyreCompound uint8

const (
	TyreCompoundInvalid TyreCompound = iota
	TyreCompoundC5
	TyreCompoundC4
	TyreCompoundC3
	TyreCompoundC2
	TyreCompoundC1
	TyreCompoundInter
	TyreCompoundWet
	TyreCompoundClassicDry
	TyreCompoundClassicWet
	TyreCompoundF2SuperSoft
	TyreCompoundF2Soft
	TyreCompoundF2Medium
	TyreCompoundF2Hard
	TyreCompoundF2Wet
)

func (t TyreCompound) String() string {
	return enumName([]string{
		"Invalid", "C5", "C4", "C3", "C2", "C1", "Inter", "Wet",
		"Classic Dry", "Classic Wet",
		"F2 Super Soft", "F2 Soft", "F2 Medium", "F2 Hard", "F2 Wet",
	}, t, "TyreCompound")
}

// VisualTyreCompound is the compound as shown to the driver.
type VisualTyreCompound uint8

const (
	VisualTyreCompoundInvalid VisualTyreCompound = iota
	VisualTyreCompoundSoft
	VisualTyreCompoundMedium
	VisualTyreCompoundHard
	VisualTyreCompoundInter
	VisualTyreCompoundWet
	VisualTyreCompoundClassicDry
	VisualTyreCompoundClassicWet
	VisualTyreCompoundF2SuperSoft
	VisualTyreCompoundF2Soft
	VisualTyreCompoundF2Medium
	VisualTyreCompoundF2Hard
	VisualTyreCompoundF2Wet
)

func (t VisualTyreCompound) String() string {
	return enumName([]string{
		"Invalid", "Soft", "Medium", "Hard", "Inter", "Wet",
		"Classic Dry", "Classic Wet",
		"F2 Super Soft", "F2 Soft", "F2 Medium", "F2 Hard", "F2 Wet",
	}, t, "VisualTyreCompound")
}

type ERSDeployMode uint8

const (
	ERSDeployNone ERSDeployMode = iota
	ERSDeployLow
	ERSDeployMedium
	ERSDeployHigh
	ERSDeployOvertake
	ERSDeployHotlap
)

func (e ERSDeployMode) String() string {
	return enumName([]string{
		"None", "Low", "Medium", "High", "Overtake", "Hotlap",
	}, e, "ERSDeployMode")
}

// CarStatusData holds the status of one car. Damage and wear moved to a
// separate packet in 2021 and are unset there.
type CarStatusData struct {
	TractionControl       TractionControl  `json:"tractionControl"`
	AntiLockBrakes        bool             `json:"antiLockBrakes"`
	FuelMix               FuelMix          `json:"fuelMix"`
	FrontBrakeBias        uint8            `json:"frontBrakeBias"`
	PitLimiterStatus      bool             `json:"pitLimiterStatus"`
	FuelInTank            float32          `json:"fuelInTank"`
	FuelCapacity          float32          `json:"fuelCapacity"`
	FuelRemainingLaps     float32          `json:"fuelRemainingLaps"`
	MaxRPM                uint16           `json:"maxRpm"`
	IdleRPM               uint16           `json:"idleRpm"`
	MaxGears              uint8            `json:"maxGears"`
	DRSAllowed            DRS              `json:"drsAllowed"`
	DRSActivationDistance omit.Val[uint16] `json:"drsActivationDistance"` // metres

	TyresWear          omit.Val[Wheels[uint8]] `json:"tyresWear"` // percent
	ActualTyreCompound TyreCompound            `json:"actualTyreCompound"`
	VisualTyreCompound VisualTyreCompound      `json:"visualTyreCompound"`
	TyresAgeLaps       omit.Val[uint8]         `json:"tyresAgeLaps"`

	TyresDamage          omit.Val[Wheels[uint8]] `json:"tyresDamage"` // percent
	FrontLeftWingDamage  omit.Val[uint8]         `json:"frontLeftWingDamage"`
	FrontRightWingDamage omit.Val[uint8]         `json:"frontRightWingDamage"`
	RearWingDamage       omit.Val[uint8]         `json:"rearWingDamage"`
	DRSFault             omit.Val[bool]          `json:"drsFault"`
	EngineDamage         omit.Val[uint8]         `json:"engineDamage"`
	GearBoxDamage        omit.Val[uint8]         `json:"gearBoxDamage"`

	VehicleFIAFlags         Flag           `json:"vehicleFiaFlags"`
	ERSStoreEnergy          float32        `json:"ersStoreEnergy"` // joules
	ERSDeployMode           ERSDeployMode  `json:"ersDeployMode"`
	ERSHarvestedThisLapMGUK float32        `json:"ersHarvestedThisLapMguk"`
	ERSHarvestedThisLapMGUH float32        `json:"ersHarvestedThisLapMguh"`
	ERSDeployedThisLap      float32        `json:"ersDeployedThisLap"`
	NetworkPaused           omit.Val[bool] `json:"networkPaused"`
}

type CarStatus struct {
	PacketHeader Header          `json:"header"`
	Cars         []CarStatusData `json:"cars"`
}
