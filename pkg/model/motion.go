package model

type CarMotion struct {
	WorldPosition Vec3[float32] `json:"worldPosition"`
	WorldVelocity Vec3[float32] `json:"worldVelocity"`
	// normalized direction vectors, divide by 32767.0 for float values
	WorldForwardDir    Vec3[int16] `json:"worldForwardDir"`
	WorldRightDir      Vec3[int16] `json:"worldRightDir"`
	GForceLateral      float32     `json:"gForceLateral"`
	GForceLongitudinal float32     `json:"gForceLongitudinal"`
	GForceVertical     float32     `json:"gForceVertical"`
	Yaw                float32     `json:"yaw"`
	Pitch              float32     `json:"pitch"`
	Roll               float32     `json:"roll"`
}

// Motion carries physics data for all cars. The wheel and local velocity
// fields refer to the player car only.
type Motion struct {
	PacketHeader           Header          `json:"header"`
	Cars                   []CarMotion     `json:"cars"`
	SuspensionPosition     Wheels[float32] `json:"suspensionPosition"`
	SuspensionVelocity     Wheels[float32] `json:"suspensionVelocity"`
	SuspensionAcceleration Wheels[float32] `json:"suspensionAcceleration"`
	WheelSpeed             Wheels[float32] `json:"wheelSpeed"`
	WheelSlip              Wheels[float32] `json:"wheelSlip"`
	LocalVelocity          Vec3[float32]   `json:"localVelocity"`
	AngularVelocity        Vec3[float32]   `json:"angularVelocity"`
	AngularAcceleration    Vec3[float32]   `json:"angularAcceleration"`
	FrontWheelsAngle       float32         `json:"frontWheelsAngle"`
}
