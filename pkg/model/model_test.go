package model

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     string
		fatal    bool
	}{
		{"nil", nil, nil, "none", false},
		{"truncated", &TruncatedError{Offset: 10, Want: 4, Have: 1}, ErrTruncated, "truncated", false},
		{"invalid code", &InvalidCodeError{Field: "weather", Code: "9"}, ErrInvalidCode, "invalid_code", false},
		{"unknown format", &UnknownFormatError{Format: 1}, ErrUnknownFormat, "unknown_format", false},
		{
			"unsupported",
			&UnsupportedPacketTypeError{Format: 2021, Type: PacketTypeCarDamage},
			ErrUnsupportedPacketType, "unsupported_type", false,
		},
		{"too small", &PacketTooSmallError{Size: 3, Min: 24}, ErrPacketTooSmall, "too_small", false},
		{
			"transport",
			&TransportError{Op: "read", Err: net.ErrClosed},
			ErrTransport, "transport", true,
		},
		{
			"wrapped",
			fmt.Errorf("session: %w", &InvalidCodeError{Field: "trackId", Code: "40"}),
			ErrInvalidCode, "invalid_code", false,
		},
		{"other", io.EOF, nil, "other", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Kind(tt.err))
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
			if tt.sentinel != nil {
				assert.ErrorIs(t, tt.err, tt.sentinel)
			}
		})
	}
}

func TestTransportErrorUnwrapsCause(t *testing.T) {
	err := error(&TransportError{Op: "read", Err: net.ErrClosed})
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, net.ErrClosed)
	assert.Contains(t, err.Error(), "read")
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "f1t: invalid code: weather=9",
		(&InvalidCodeError{Field: "weather", Code: "9"}).Error())
	assert.Equal(t, "f1t: truncated datagram: need 4 bytes at offset 10, have 1",
		(&TruncatedError{Offset: 10, Want: 4, Have: 1}).Error())
	assert.Equal(t, "f1t: unsupported packet type: LobbyInfo (format 2020)",
		(&UnsupportedPacketTypeError{Format: 2020, Type: PacketTypeLobbyInfo}).Error())

	var tooSmall *PacketTooSmallError
	require.True(t, errors.As(fmt.Errorf("x: %w", &PacketTooSmallError{Size: 1, Min: 2}), &tooSmall))
	assert.Equal(t, 2, tooSmall.Min)
}

func TestInPit(t *testing.T) {
	tests := []struct {
		status PitStatus
		want   bool
	}{
		{PitStatusNone, false},
		{PitStatusPitting, true},
		{PitStatusInPitArea, true},
	}
	for _, tt := range tests {
		l := LapData{PitStatus: tt.status}
		assert.Equal(t, tt.want, l.InPit(), tt.status.String())
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Free Practice 1", SessionTypePractice1.String())
	assert.Equal(t, "Race 3", SessionTypeRace3.String())
	assert.Equal(t, "SessionType(42)", SessionType(42).String())
	assert.True(t, SessionTypeRace2.IsRace())
	assert.False(t, SessionTypeTimeTrial.IsRace())

	assert.Equal(t, "[UNKNOWN]", TrackUnknown.String())
	assert.Equal(t, "Circuit de Spa-Francorchamps", TrackSpa.String())
	assert.Equal(t, "Jeddah Corniche Circuit", TrackJeddah.String())
	assert.Equal(t, "Track(99)", Track(99).String())

	assert.Equal(t, "SSTA", EventSessionStarted.String())
	assert.Equal(t, "Session Started", EventSessionStarted.Description())
	assert.Equal(t, "BUTN", EventButtonStatus.String())
	assert.Equal(t, "EventCode(99)", EventCode(99).String())

	assert.Equal(t, "C5", TyreCompoundC5.String())
	assert.Equal(t, "Invalid", TyreCompoundInvalid.String())
	assert.Equal(t, "CarDamage", PacketTypeCarDamage.String())
	assert.Equal(t, "PacketType(12)", PacketType(12).String())
}

func TestWheels(t *testing.T) {
	w := Wheels[int]{1, 2, 3, 4}
	assert.Equal(t, 1, w.RearLeft())
	assert.Equal(t, 2, w.RearRight())
	assert.Equal(t, 3, w.FrontLeft())
	assert.Equal(t, 4, w.FrontRight())
}

func TestParticipantsActive(t *testing.T) {
	p := Participants{NumActiveCars: 2, Participants: make([]Participant, 22)}
	assert.Len(t, p.Active(), 2)

	// a bogus count never exceeds the slots
	p.NumActiveCars = 40
	assert.Len(t, p.Active(), 22)
}

func TestEventVehicleIdx(t *testing.T) {
	tests := []struct {
		details EventDetails
		idx     uint8
		ok      bool
	}{
		{FastestLap{VehicleIdx: 3}, 3, true},
		{Penalty{VehicleIdx: 7, OtherVehicleIdx: 2}, 7, true},
		{SpeedTrap{VehicleIdx: 11}, 11, true},
		{StartLights{NumLights: 3}, 0, false},
		{Buttons{ButtonStatus: 1}, 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		e := Event{Details: tt.details}
		idx, ok := e.VehicleIdx()
		assert.Equal(t, tt.ok, ok, "%T", tt.details)
		assert.Equal(t, tt.idx, idx)
	}
}

func TestPacketInterface(t *testing.T) {
	packets := []Packet{
		&Motion{}, &Session{}, &Lap{}, &Event{},
		&Participants{}, &CarSetups{}, &CarTelemetry{}, &CarStatus{},
	}
	for i, p := range packets {
		assert.Equal(t, PacketType(i), p.Type())
		p.Header().FrameIdentifier = uint32(i)
		assert.Equal(t, uint32(i), p.Header().FrameIdentifier)
	}
}

func TestParsePacketType(t *testing.T) {
	for _, name := range []string{"Lap", "lap", "CARTELEMETRY", "SessionHistory"} {
		pt, err := ParsePacketType(name)
		require.NoError(t, err, name)
		assert.True(t, strings.EqualFold(name, pt.String()), name)
	}
	_, err := ParsePacketType("Laps")
	assert.Error(t, err)
}
