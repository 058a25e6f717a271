package model

// Packet is implemented by the eight decoded payload types only.
// Consumers are expected to use a type switch:
//
//	switch p := pkt.(type) {
//	case *model.Lap:
//	case *model.Session:
//	...
//	}
type Packet interface {
	Header() *Header
	Type() PacketType
	packet()
}

// Wheels holds per-wheel values in wire order:
// rear left, rear right, front left, front right
type Wheels[T any] [4]T

const (
	WheelRearLeft = iota
	WheelRearRight
	WheelFrontLeft
	WheelFrontRight
)

func (w Wheels[T]) RearLeft() T   { return w[WheelRearLeft] }
func (w Wheels[T]) RearRight() T  { return w[WheelRearRight] }
func (w Wheels[T]) FrontLeft() T  { return w[WheelFrontLeft] }
func (w Wheels[T]) FrontRight() T { return w[WheelFrontRight] }

type Vec3[T any] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
}

func (p *Motion) Header() *Header       { return &p.PacketHeader }
func (p *Session) Header() *Header      { return &p.PacketHeader }
func (p *Lap) Header() *Header          { return &p.PacketHeader }
func (p *Event) Header() *Header        { return &p.PacketHeader }
func (p *Participants) Header() *Header { return &p.PacketHeader }
func (p *CarSetups) Header() *Header    { return &p.PacketHeader }
func (p *CarTelemetry) Header() *Header { return &p.PacketHeader }
func (p *CarStatus) Header() *Header    { return &p.PacketHeader }

func (p *Motion) Type() PacketType       { return PacketTypeMotion }
func (p *Session) Type() PacketType      { return PacketTypeSession }
func (p *Lap) Type() PacketType          { return PacketTypeLap }
func (p *Event) Type() PacketType        { return PacketTypeEvent }
func (p *Participants) Type() PacketType { return PacketTypeParticipants }
func (p *CarSetups) Type() PacketType    { return PacketTypeCarSetups }
func (p *CarTelemetry) Type() PacketType { return PacketTypeCarTelemetry }
func (p *CarStatus) Type() PacketType    { return PacketTypeCarStatus }

func (p *Motion) packet()       {}
func (p *Session) packet()      {}
func (p *Lap) packet()          {}
func (p *Event) packet()        {}
func (p *Participants) packet() {}
func (p *CarSetups) packet()    {}
func (p *CarTelemetry) packet() {}
func (p *CarStatus) packet()    {}
