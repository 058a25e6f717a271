package race

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/processing/car"
)

type (
	LapInfo struct {
		LapNo   int
		LapTime time.Duration
	}
	CarLaps struct {
		CarIdx uint8
		Laps   []LapInfo
	}
	GapInfo struct {
		CarIdx uint8
		LapNo  int
		Pos    int
	}
	// RaceGraph holds the positions when the leader started lap LapNo
	RaceGraph struct {
		LapNo int
		Gaps  []GapInfo
	}
)

type RaceProcessor struct {
	// carIdx ordered by position
	RaceOrder    []uint8
	CarLaps      map[uint8]CarLaps // key carIdx
	RaceGraph    []RaceGraph
	carProcessor *car.CarProcessor
}

type RaceProcessorOption func(rp *RaceProcessor)

func WithCarProcessor(cp *car.CarProcessor) RaceProcessorOption {
	return func(rp *RaceProcessor) {
		rp.carProcessor = cp
	}
}

func NewRaceProcessor(opts ...RaceProcessorOption) *RaceProcessor {
	ret := &RaceProcessor{
		RaceOrder: make([]uint8, 0),
		RaceGraph: make([]RaceGraph, 0),
		CarLaps:   make(map[uint8]CarLaps),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// ProcessLap processes the given lap packet.
// The packet must be already processed by the CarProcessor
func (p *RaceProcessor) ProcessLap(payload *model.Lap) {
	type entry struct {
		carIdx uint8
		lap    *model.LapData
	}
	active := make([]entry, 0, len(payload.Cars))
	for i := range payload.Cars {
		lap := &payload.Cars[i]
		if lap.ResultStatus <= model.ResultInactive || lap.CarPosition == 0 {
			continue
		}
		active = append(active, entry{uint8(i), lap})
	}
	if len(active) == 0 {
		return
	}
	slices.SortStableFunc(active, func(a, b entry) int {
		return int(a.lap.CarPosition) - int(b.lap.CarPosition)
	})
	p.RaceOrder = lo.Map(active, func(e entry, _ int) uint8 { return e.carIdx })

	for _, e := range active {
		p.processCarLap(e.carIdx, e.lap)
	}

	// race graph
	leader := active[0].lap
	graphEntry := RaceGraph{
		LapNo: int(leader.CurrentLapNum),
		Gaps: lo.Map(active, func(e entry, _ int) GapInfo {
			return GapInfo{
				CarIdx: e.carIdx,
				LapNo:  int(e.lap.CurrentLapNum),
				Pos:    int(e.lap.CarPosition),
			}
		}),
	}
	if idx := slices.IndexFunc(p.RaceGraph,
		func(item RaceGraph) bool { return item.LapNo == graphEntry.LapNo }); idx != -1 {
		p.RaceGraph[idx] = graphEntry
	} else {
		p.RaceGraph = append(p.RaceGraph, graphEntry)
	}
}

// processCarLap records the last lap time for the completed lap
func (p *RaceProcessor) processCarLap(carIdx uint8, lap *model.LapData) {
	completed := int(lap.CurrentLapNum) - 1
	if completed < 1 || lap.LastLapTime <= 0 {
		return // do not process invalid laps
	}
	carEntry, ok := p.CarLaps[carIdx]
	if !ok {
		carEntry = CarLaps{
			CarIdx: carIdx,
			Laps:   make([]LapInfo, 0),
		}
	}
	item := LapInfo{LapNo: completed, LapTime: lap.LastLapTime}
	if idx := slices.IndexFunc(carEntry.Laps,
		func(l LapInfo) bool { return l.LapNo == completed }); idx != -1 {
		// lap may be updated, so replace it
		carEntry.Laps[idx] = item
	} else {
		carEntry.Laps = append(carEntry.Laps, item)
	}
	p.CarLaps[carIdx] = carEntry
}

// BestLap returns the fastest recorded lap of carIdx
func (p *RaceProcessor) BestLap(carIdx uint8) (LapInfo, bool) {
	laps := p.CarLaps[carIdx].Laps
	if len(laps) == 0 {
		return LapInfo{}, false
	}
	return lo.MinBy(laps, func(a, b LapInfo) bool { return a.LapTime < b.LapTime }), true
}

// Positions returns the position of each car of the race order
func (p *RaceProcessor) Positions() map[uint8]int {
	return lo.SliceToMap(p.RaceOrder, func(carIdx uint8) (uint8, int) {
		return carIdx, lo.IndexOf(p.RaceOrder, carIdx) + 1
	})
}

// DriverName resolves carIdx through the car processor
func (p *RaceProcessor) DriverName(carIdx uint8) string {
	if p.carProcessor == nil {
		return ""
	}
	return p.carProcessor.Name(carIdx)
}
