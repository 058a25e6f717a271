package model

import "github.com/aarondl/opt/omit"

// Team is the display name of a team. The wire codes differ between
// formats, see the team tables of the format packages.
type Team string

func (t Team) String() string { return string(t) }

// Nationality is the demonym of a driver, empty if unspecified.
type Nationality string

func (n Nationality) String() string { return string(n) }

type Participant struct {
	AIControlled    bool            `json:"aiControlled"`
	DriverID        uint8           `json:"driverId"` // 255 for human drivers
	NetworkID       omit.Val[uint8] `json:"networkId"`
	Team            Team            `json:"team"`
	MyTeam          omit.Val[bool]  `json:"myTeam"`
	RaceNumber      uint8           `json:"raceNumber"`
	Nationality     Nationality     `json:"nationality"`
	Name            string          `json:"name"`
	PublicTelemetry bool            `json:"publicTelemetry"`
}

type Participants struct {
	PacketHeader  Header        `json:"header"`
	NumActiveCars uint8         `json:"numActiveCars"`
	Participants  []Participant `json:"participants"`
}

// Active returns the participants of the first NumActiveCars slots.
func (p *Participants) Active() []Participant {
	n := min(int(p.NumActiveCars), len(p.Participants))
	return p.Participants[:n]
}
