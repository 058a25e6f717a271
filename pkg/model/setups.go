package model

import "github.com/aarondl/opt/omit"

type CarSetup struct {
	FrontWing             uint8   `json:"frontWing"`
	RearWing              uint8   `json:"rearWing"`
	OnThrottle            uint8   `json:"onThrottle"`  // differential, percent
	OffThrottle           uint8   `json:"offThrottle"` // differential, percent
	FrontCamber           float32 `json:"frontCamber"`
	RearCamber            float32 `json:"rearCamber"`
	FrontToe              float32 `json:"frontToe"`
	RearToe               float32 `json:"rearToe"`
	FrontSuspension       uint8   `json:"frontSuspension"`
	RearSuspension        uint8   `json:"rearSuspension"`
	FrontAntiRollBar      uint8   `json:"frontAntiRollBar"`
	RearAntiRollBar       uint8   `json:"rearAntiRollBar"`
	FrontSuspensionHeight uint8   `json:"frontSuspensionHeight"`
	RearSuspensionHeight  uint8   `json:"rearSuspensionHeight"`
	BrakePressure         uint8   `json:"brakePressure"` // percent
	BrakeBias             uint8   `json:"brakeBias"`     // percent
	// per axle (2019) or per wheel (2020 and later), PSI
	FrontTyrePressure omit.Val[float32]         `json:"frontTyrePressure"`
	RearTyrePressure  omit.Val[float32]         `json:"rearTyrePressure"`
	TyrePressures     omit.Val[Wheels[float32]] `json:"tyrePressures"`
	Ballast           uint8                     `json:"ballast"`
	FuelLoad          float32                   `json:"fuelLoad"`
}

type CarSetups struct {
	PacketHeader Header     `json:"header"`
	Cars         []CarSetup `json:"cars"`
}
