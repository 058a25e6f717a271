package car

import (
	"time"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

const (
	StateInit = "INIT"
	StateRun  = "RUN"
	StatePit  = "PIT"
	StateOut  = "OUT"
)

type (
	CarInfo struct {
		CarIdx       uint8
		Name         string
		Team         model.Team
		RaceNumber   uint8
		Nationality  model.Nationality
		AIControlled bool
	}
	CarComputeState struct {
		CarIdx uint8
		State  string
	}
	StintInfo struct {
		ExitTime       time.Duration
		EnterTime      time.Duration
		StintTime      time.Duration
		LapExit        int
		LapEnter       int
		NumLaps        int
		IsCurrentStint bool
	}
	CarStints struct {
		CarIdx  uint8
		Current StintInfo
		History []StintInfo
	}
	PitInfo struct {
		EnterTime        time.Duration
		ExitTime         time.Duration
		LaneTime         time.Duration
		LapEnter         int
		LapExit          int
		IsCurrentPitstop bool
	}
	CarPits struct {
		CarIdx  uint8
		Current PitInfo
		History []PitInfo
	}
)

// CarProcessor follows each car through the states INIT, RUN, PIT and OUT
// and records stints and pit stops on the transitions.
type CarProcessor struct {
	CarInfoLookup map[uint8]CarInfo
	ComputeState  map[uint8]CarComputeState
	StintLookup   map[uint8]CarStints
	PitLookup     map[uint8]CarPits
}

type CarProcessorOption func(cp *CarProcessor)

// WithCarInfos preloads the car infos, e.g. when the participants packet
// was received before the processor was created
func WithCarInfos(infos []CarInfo) CarProcessorOption {
	return func(cp *CarProcessor) {
		for i := range infos {
			cp.CarInfoLookup[infos[i].CarIdx] = infos[i]
		}
	}
}

func NewCarProcessor(opts ...CarProcessorOption) *CarProcessor {
	cp := &CarProcessor{
		CarInfoLookup: make(map[uint8]CarInfo),
		ComputeState:  make(map[uint8]CarComputeState),
		StintLookup:   make(map[uint8]CarStints),
		PitLookup:     make(map[uint8]CarPits),
	}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// ProcessParticipants updates the car infos of the active participants
func (p *CarProcessor) ProcessParticipants(payload *model.Participants) {
	for i, entry := range payload.Active() {
		carIdx := uint8(i)
		p.CarInfoLookup[carIdx] = CarInfo{
			CarIdx:       carIdx,
			Name:         entry.Name,
			Team:         entry.Team,
			RaceNumber:   entry.RaceNumber,
			Nationality:  entry.Nationality,
			AIControlled: entry.AIControlled,
		}
		p.ensureComputeState(carIdx)
	}
}

func (p *CarProcessor) ensureComputeState(carIdx uint8) CarComputeState {
	ret, ok := p.ComputeState[carIdx]
	if !ok {
		ret = CarComputeState{CarIdx: carIdx, State: StateInit}
		p.ComputeState[carIdx] = ret
	}
	return ret
}

// Name returns the driver name of carIdx or "" if unknown
func (p *CarProcessor) Name(carIdx uint8) string {
	return p.CarInfoLookup[carIdx].Name
}

// ProcessLap advances the state of every car with lap data
func (p *CarProcessor) ProcessLap(payload *model.Lap) {
	sessionTime := SessionTime(&payload.PacketHeader)
	for i := range payload.Cars {
		lap := &payload.Cars[i]
		if lap.ResultStatus <= model.ResultInactive {
			continue
		}
		carIdx := uint8(i)
		carComputeState := p.ensureComputeState(carIdx)
		p.handleComputeState(&carComputeState, lap, sessionTime)
		p.ComputeState[carIdx] = carComputeState
	}
}

// SessionTime converts the session timestamp of h
func SessionTime(h *model.Header) time.Duration {
	return time.Duration(float64(h.SessionTime) * float64(time.Second))
}

// CarState maps the lap data of a car to one of the states
func CarState(lap *model.LapData) string {
	switch {
	case lap.ResultStatus >= model.ResultDidNotFinish:
		return StateOut
	case lap.InPit():
		return StatePit
	default:
		return StateRun
	}
}

//nolint:whitespace // can't make the linters happy
func (p *CarProcessor) handleComputeState(
	carComputeState *CarComputeState,
	lap *model.LapData,
	sessionTime time.Duration,
) {
	curCarLap := int(lap.CurrentLapNum)
	// no data for cars that are not yet on track
	if curCarLap < 1 {
		return
	}
	curCarState := CarState(lap)

	switch carComputeState.State {
	case StateInit:
		p.handleComputeStateInit(carComputeState, curCarLap, curCarState, sessionTime)
	case StateRun:
		p.handleComputeStateRun(carComputeState, curCarLap, curCarState, sessionTime)
	case StatePit:
		p.handleComputeStatePit(carComputeState, curCarLap, curCarState, sessionTime)
	case StateOut:
		// final, a retired car does not come back
	}
}

//nolint:whitespace // can't make the linters happy
func (p *CarProcessor) handleComputeStateInit(
	carComputeState *CarComputeState,
	curCarLap int,
	curCarState string,
	sessionTime time.Duration,
) {
	switch curCarState {
	case StateRun:
		p.StintLookup[carComputeState.CarIdx] = CarStints{
			CarIdx: carComputeState.CarIdx,
			Current: StintInfo{
				ExitTime:       sessionTime,
				LapExit:        curCarLap,
				IsCurrentStint: true,
			},
			History: []StintInfo{},
		}
		carComputeState.State = StateRun
	case StateOut:
		carComputeState.State = StateOut
	case StatePit: // empty by design, the car starts from the garage
	}
}

//nolint:whitespace,funlen // can't make the linters happy
func (p *CarProcessor) handleComputeStateRun(
	carComputeState *CarComputeState,
	curCarLap int,
	curCarState string,
	sessionTime time.Duration,
) {
	stint := p.StintLookup[carComputeState.CarIdx]
	// these values are "precomputed" in case the stint ends or the car goes OUT
	stint.Current.EnterTime = sessionTime
	stint.Current.LapEnter = curCarLap
	stint.Current.NumLaps = curCarLap - stint.Current.LapExit + 1
	stint.Current.StintTime = sessionTime - stint.Current.ExitTime
	switch curCarState {
	case StateRun:
	case StateOut:
		stint.Current.IsCurrentStint = false
		stint.History = append(stint.History, stint.Current)
		stint.Current = StintInfo{IsCurrentStint: false}
		carComputeState.State = StateOut

	case StatePit:
		carComputeState.State = StatePit
		stint.Current.IsCurrentStint = false
		stint.History = append(stint.History, stint.Current)
		// reset current stint data
		stint.Current = StintInfo{IsCurrentStint: false}
		pits, ok := p.PitLookup[carComputeState.CarIdx]
		if !ok {
			pits = CarPits{
				CarIdx:  carComputeState.CarIdx,
				History: []PitInfo{},
			}
		}
		pits.Current = PitInfo{
			EnterTime:        sessionTime,
			LapEnter:         curCarLap,
			IsCurrentPitstop: true,
		}
		p.PitLookup[carComputeState.CarIdx] = pits
	}
	p.StintLookup[carComputeState.CarIdx] = stint
}

//nolint:whitespace,funlen // can't make the linters happy
func (p *CarProcessor) handleComputeStatePit(
	carComputeState *CarComputeState,
	curCarLap int,
	curCarState string,
	sessionTime time.Duration,
) {
	pits := p.PitLookup[carComputeState.CarIdx]
	pits.Current.ExitTime = sessionTime
	pits.Current.LapExit = curCarLap
	pits.Current.LaneTime = sessionTime - pits.Current.EnterTime
	switch curCarState {
	case StateRun:
		carComputeState.State = StateRun
		pits.Current.IsCurrentPitstop = false
		pits.History = append(pits.History, pits.Current)
		// reset current pit data
		pits.Current = PitInfo{IsCurrentPitstop: false}

		// create a new stint
		stints := p.StintLookup[carComputeState.CarIdx]
		stints.CarIdx = carComputeState.CarIdx
		stints.Current = StintInfo{
			ExitTime:       sessionTime,
			LapExit:        curCarLap,
			IsCurrentStint: true,
		}
		p.StintLookup[carComputeState.CarIdx] = stints
	case StateOut:
		carComputeState.State = StateOut
	case StatePit:
	}
	p.PitLookup[carComputeState.CarIdx] = pits
}
