// Package processing builds the lap board view model from decoded packets.
package processing

import (
	"time"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/processing/car"
	"github.com/mpapenbr/f1-telemetry-go/pkg/processing/race"
)

const DefaultMaxEvents = 20

type Processor struct {
	CurrentData   *Board
	sessionUID    uint64
	carProcessor  *car.CarProcessor
	raceProcessor *race.RaceProcessor
	session       *model.Session
	lap           *model.Lap
	telemetry     *model.CarTelemetry
	status        *model.CarStatus
	events        []EventInfo
	maxEvents     int
}
type ProcessorOption func(proc *Processor)

// WithMaxEvents limits the number of retained events (oldest are dropped)
func WithMaxEvents(n int) ProcessorOption {
	return func(proc *Processor) {
		proc.maxEvents = n
	}
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	ret := &Processor{maxEvents: DefaultMaxEvents}
	for _, opt := range opts {
		opt(ret)
	}
	ret.reset(0)
	return ret
}

func (p *Processor) reset(sessionUID uint64) {
	p.sessionUID = sessionUID
	p.carProcessor = car.NewCarProcessor()
	p.raceProcessor = race.NewRaceProcessor(race.WithCarProcessor(p.carProcessor))
	p.session = nil
	p.lap = nil
	p.telemetry = nil
	p.status = nil
	p.events = make([]EventInfo, 0)
	p.CurrentData = nil
}

// SessionUID returns the session the processor currently follows
func (p *Processor) SessionUID() uint64 {
	return p.sessionUID
}

// ProcessPacket updates the view model. A packet of another session
// discards all retained data.
//
//nolint:cyclop // type switch
func (p *Processor) ProcessPacket(packet model.Packet) {
	if uid := packet.Header().SessionUID; uid != p.sessionUID {
		p.reset(uid)
	}
	switch v := packet.(type) {
	case *model.Session:
		p.session = v
	case *model.Lap:
		p.carProcessor.ProcessLap(v)
		p.raceProcessor.ProcessLap(v)
		p.lap = v
	case *model.Participants:
		p.carProcessor.ProcessParticipants(v)
	case *model.Event:
		p.processEvent(v)
	case *model.CarTelemetry:
		p.telemetry = v
	case *model.CarStatus:
		p.status = v
	case *model.Motion, *model.CarSetups:
		// not part of the board
		return
	}
	p.CurrentData = nil
}

func (p *Processor) processEvent(e *model.Event) {
	info := EventInfo{
		SessionTime: car.SessionTime(&e.PacketHeader),
		Code:        e.Code.String(),
		Description: e.Code.Description(),
	}
	if idx, ok := e.VehicleIdx(); ok {
		info.DriverName = p.carProcessor.Name(idx)
	}
	if fl, ok := e.Details.(model.FastestLap); ok {
		info.LapTime = time.Duration(float64(fl.LapTime) * float64(time.Second))
	}
	p.events = append(p.events, info)
	if len(p.events) > p.maxEvents {
		p.events = p.events[len(p.events)-p.maxEvents:]
	}
}

// GetData returns the board for the data received so far
func (p *Processor) GetData() *Board {
	if p.CurrentData == nil {
		p.composeBoard()
	}
	return p.CurrentData
}

func (p *Processor) composeBoard() {
	raceOrder := p.raceProcessor.RaceOrder // to keep names shorter
	p.CurrentData = &Board{
		Session:   p.sessionInfo(),
		Laps:      p.lapInfos(),
		Events:    append([]EventInfo(nil), p.events...),
		Telemetry: p.telemetryInfo(),
		CarLaps:   flattenByReference(p.raceProcessor.CarLaps, raceOrder),
		CarStints: flattenByReference(p.carProcessor.StintLookup, raceOrder),
		CarPits:   flattenByReference(p.carProcessor.PitLookup, raceOrder),
		RaceGraph: p.raceProcessor.RaceGraph,
	}
}

func flattenByReference[K comparable, E any](data map[K]E, sortReference []K) []E {
	arr := make([]E, 0, len(data))
	for _, k := range sortReference {
		if v, ok := data[k]; ok {
			arr = append(arr, v)
		}
	}
	return arr
}
