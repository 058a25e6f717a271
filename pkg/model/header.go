package model

import (
	"fmt"
	"strings"
)

// NoCar marks an unused car index, e.g. the secondary player in single
// player sessions.
const NoCar uint8 = 255

type PacketType uint8

const (
	PacketTypeMotion PacketType = iota
	PacketTypeSession
	PacketTypeLap
	PacketTypeEvent
	PacketTypeParticipants
	PacketTypeCarSetups
	PacketTypeCarTelemetry
	PacketTypeCarStatus
	PacketTypeFinalClassification
	PacketTypeLobbyInfo
	PacketTypeCarDamage
	PacketTypeSessionHistory
)

var packetTypeNames = [...]string{
	"Motion",
	"Session",
	"Lap",
	"Event",
	"Participants",
	"CarSetups",
	"CarTelemetry",
	"CarStatus",
	"FinalClassification",
	"LobbyInfo",
	"CarDamage",
	"SessionHistory",
}

func (t PacketType) String() string {
	if int(t) < len(packetTypeNames) {
		return packetTypeNames[t]
	}
	return fmt.Sprintf("PacketType(%d)", uint8(t))
}

// ParsePacketType resolves a name as returned by String, ignoring case
func ParsePacketType(name string) (PacketType, error) {
	for i, n := range packetTypeNames {
		if strings.EqualFold(n, name) {
			return PacketType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown packet type %q", name)
}

// Header is the common leading part of every datagram.
type Header struct {
	PacketFormat            uint16     `json:"packetFormat"`
	GameMajorVersion        uint8      `json:"gameMajorVersion"`
	GameMinorVersion        uint8      `json:"gameMinorVersion"`
	PacketVersion           uint8      `json:"packetVersion"`
	PacketID                PacketType `json:"packetId"`
	SessionUID              uint64     `json:"sessionUid"`
	SessionTime             float32    `json:"sessionTime"`
	FrameIdentifier         uint32     `json:"frameIdentifier"`
	PlayerCarIndex          uint8      `json:"playerCarIndex"`
	SecondaryPlayerCarIndex uint8      `json:"secondaryPlayerCarIndex"`
}
