package model

import "github.com/aarondl/opt/omit"

type SurfaceType uint8

const (
	SurfaceTarmac SurfaceType = iota
	SurfaceRumbleStrip
	SurfaceConcrete
	SurfaceRock
	SurfaceGravel
	SurfaceMud
	SurfaceSand
	SurfaceGrass
	SurfaceWater
	SurfaceCobblestone
	SurfaceMetal
	SurfaceRidged
)

func (s SurfaceType) String() string {
	return enumName([]string{
		"Tarmac", "Rumble strip", "Concrete", "Rock", "Gravel", "Mud",
		"Sand", "Grass", "Water", "Cobblestone", "Metal", "Ridged",
	}, s, "SurfaceType")
}

type MFDPanel uint8

const (
	MFDCarSetup MFDPanel = iota
	MFDPits
	MFDDamage
	MFDEngine
	MFDTemperatures
	MFDClosed
)

func (m MFDPanel) String() string {
	return enumName([]string{
		"Car setup", "Pits", "Damage", "Engine", "Temperatures", "Closed",
	}, m, "MFDPanel")
}

type CarTelemetryData struct {
	Speed             uint16           `json:"speed"` // km/h
	Throttle          float32          `json:"throttle"`
	Steer             float32          `json:"steer"`
	Brake             float32          `json:"brake"`
	Clutch            uint8            `json:"clutch"`
	Gear              int8             `json:"gear"` // -1 reverse, 0 neutral
	EngineRPM         uint16           `json:"engineRpm"`
	DRS               bool             `json:"drs"`
	RevLightsPercent  uint8            `json:"revLightsPercent"`
	RevLightsBitValue omit.Val[uint16] `json:"revLightsBitValue"`
	BrakesTemperature Wheels[uint16]   `json:"brakesTemperature"`
	// u16 on the wire for 2019, u8 later
	TyresSurfaceTemperature Wheels[uint16]      `json:"tyresSurfaceTemperature"`
	TyresInnerTemperature   Wheels[uint16]      `json:"tyresInnerTemperature"`
	EngineTemperature       uint16              `json:"engineTemperature"`
	TyresPressure           Wheels[float32]     `json:"tyresPressure"`
	SurfaceType             Wheels[SurfaceType] `json:"surfaceType"`
}

type CarTelemetry struct {
	PacketHeader            Header             `json:"header"`
	Cars                    []CarTelemetryData `json:"cars"`
	ButtonStatus            omit.Val[uint32]   `json:"buttonStatus"`
	MFDPanel                omit.Val[MFDPanel] `json:"mfdPanel"`
	MFDPanelSecondaryPlayer omit.Val[MFDPanel] `json:"mfdPanelSecondaryPlayer"`
	SuggestedGear           omit.Val[int8]     `json:"suggestedGear"` // 0 if none
}

// Player returns the telemetry of the player car, nil if the index is
// out of range (e.g. spectating).
func (t *CarTelemetry) Player() *CarTelemetryData {
	idx := int(t.PacketHeader.PlayerCarIndex)
	if idx >= len(t.Cars) {
		return nil
	}
	return &t.Cars[idx]
}
