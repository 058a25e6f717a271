package processing

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/processing/car"
	"github.com/mpapenbr/f1-telemetry-go/pkg/processing/race"
	"github.com/mpapenbr/f1-telemetry-go/pkg/processing/util"
)

type (
	Board struct {
		Session   *SessionInfo
		Laps      []LapInfo // ordered by position
		Events    []EventInfo
		Telemetry *TelemetryInfo
		CarLaps   []race.CarLaps
		CarStints []car.CarStints
		CarPits   []car.CarPits
		RaceGraph []race.RaceGraph
	}
	SessionInfo struct {
		Name             string
		Track            string
		Weather          string
		SafetyCar        string
		TrackTemperature int8
		AirTemperature   int8
		Elapsed          time.Duration
		Duration         time.Duration
		TimeLeft         time.Duration
		CurrentLap       int
		TotalLaps        int
	}
	LapInfo struct {
		Position       int
		CarIdx         uint8
		Name           string
		Team           string
		RaceNumber     uint8
		CurrentLap     int
		LastLapTime    time.Duration
		CurrentLapTime time.Duration
		BestLapTime    time.Duration
		Sector         string
		State          string
		ResultStatus   string
		InPit          bool
		PitStops       int
		LapInvalid     bool
		Penalties      time.Duration
		LapDistance    float32
		TotalDistance  float32
	}
	EventInfo struct {
		SessionTime time.Duration
		Code        string
		Description string
		DriverName  string
		LapTime     time.Duration // fastest lap events only
	}
	TelemetryInfo struct {
		CarIdx            uint8
		Speed             uint16
		Gear              int8
		EngineRPM         uint16
		Throttle          float32
		Brake             float32
		DRS               bool
		TyresSurfaceTemp  model.Wheels[uint16]
		TyreCompound      string
		TyresAgeLaps      int // -1 if the format has no tyre age
		FuelInTank        float32
		FuelRemainingLaps float32
		ERSStoreEnergy    float32
	}
)

func (p *Processor) sessionInfo() *SessionInfo {
	s := p.session
	if s == nil {
		return nil
	}
	ret := &SessionInfo{
		Name:             s.SessionType.String(),
		Track:            s.Track.String(),
		Weather:          s.Weather.String(),
		SafetyCar:        s.SafetyCarStatus.String(),
		TrackTemperature: s.TrackTemperature,
		AirTemperature:   s.AirTemperature,
		Duration:         time.Duration(s.SessionDuration) * time.Second,
		TimeLeft:         time.Duration(s.SessionTimeLeft) * time.Second,
		TotalLaps:        int(s.TotalLaps),
	}
	ret.Elapsed = max(ret.Duration-ret.TimeLeft, 0)
	if p.lap != nil && len(p.raceProcessor.RaceOrder) > 0 {
		leader := p.raceProcessor.RaceOrder[0]
		if int(leader) < len(p.lap.Cars) {
			ret.CurrentLap = int(p.lap.Cars[leader].CurrentLapNum)
		}
	}
	return ret
}

func (p *Processor) lapInfos() []LapInfo {
	if p.lap == nil {
		return []LapInfo{}
	}
	return lo.FilterMap(p.raceProcessor.RaceOrder, func(carIdx uint8, i int) (LapInfo, bool) {
		if int(carIdx) >= len(p.lap.Cars) {
			return LapInfo{}, false
		}
		lap := &p.lap.Cars[carIdx]
		info := p.carProcessor.CarInfoLookup[carIdx]
		ret := LapInfo{
			Position:       i + 1,
			CarIdx:         carIdx,
			Name:           info.Name,
			Team:           info.Team.String(),
			RaceNumber:     info.RaceNumber,
			CurrentLap:     int(lap.CurrentLapNum),
			LastLapTime:    lap.LastLapTime,
			CurrentLapTime: lap.CurrentLapTime,
			BestLapTime:    p.bestLapTime(carIdx, lap),
			Sector:         lap.Sector.String(),
			State:          p.carProcessor.ComputeState[carIdx].State,
			ResultStatus:   lap.ResultStatus.String(),
			InPit:          lap.InPit(),
			PitStops:       p.pitStops(carIdx, lap),
			LapInvalid:     lap.CurrentLapInvalid,
			Penalties:      time.Duration(lap.Penalties) * time.Second,
			LapDistance:    lap.LapDistance,
			TotalDistance:  lap.TotalDistance,
		}
		return ret, true
	})
}

// bestLapTime prefers the value reported by the game. Formats without it
// use the fastest recorded lap.
func (p *Processor) bestLapTime(carIdx uint8, lap *model.LapData) time.Duration {
	if best, ok := lap.BestLapTime.Get(); ok && best > 0 {
		return best
	}
	if best, ok := p.raceProcessor.BestLap(carIdx); ok {
		return best.LapTime
	}
	return 0
}

func (p *Processor) pitStops(carIdx uint8, lap *model.LapData) int {
	if n, ok := lap.NumPitStops.Get(); ok {
		return int(n)
	}
	return len(p.carProcessor.PitLookup[carIdx].History)
}

func (p *Processor) telemetryInfo() *TelemetryInfo {
	if p.telemetry == nil {
		return nil
	}
	data := p.telemetry.Player()
	if data == nil {
		return nil
	}
	carIdx := p.telemetry.PacketHeader.PlayerCarIndex
	ret := &TelemetryInfo{
		CarIdx:           carIdx,
		Speed:            data.Speed,
		Gear:             data.Gear,
		EngineRPM:        data.EngineRPM,
		Throttle:         data.Throttle,
		Brake:            data.Brake,
		DRS:              data.DRS,
		TyresSurfaceTemp: data.TyresSurfaceTemperature,
		TyresAgeLaps:     -1,
	}
	if p.status != nil && int(carIdx) < len(p.status.Cars) {
		st := &p.status.Cars[carIdx]
		ret.TyreCompound = st.VisualTyreCompound.String()
		ret.FuelInTank = st.FuelInTank
		ret.FuelRemainingLaps = st.FuelRemainingLaps
		ret.ERSStoreEnergy = st.ERSStoreEnergy
		if age, ok := st.TyresAgeLaps.Get(); ok {
			ret.TyresAgeLaps = int(age)
		}
	}
	return ret
}

// Lines renders the board as plain text, one line per car
func (b *Board) Lines() []string {
	ret := make([]string, 0, len(b.Laps)+1)
	if s := b.Session; s != nil {
		ret = append(ret, fmt.Sprintf("%s - %s  lap %d/%d  %s/%s  %s",
			s.Name, s.Track, s.CurrentLap, s.TotalLaps,
			util.FormatSessionTime(s.Elapsed), util.FormatSessionTime(s.Duration),
			s.Weather))
	}
	for i := range b.Laps {
		l := &b.Laps[i]
		flags := make([]string, 0, 2)
		if l.InPit {
			flags = append(flags, "PIT")
		}
		if l.LapInvalid {
			flags = append(flags, "INV")
		}
		line := fmt.Sprintf("%2d %-20s %-16s lap %2d  last %9s  best %9s  %s",
			l.Position, l.Name, l.Team, l.CurrentLap,
			util.FormatLapTime(l.LastLapTime), util.FormatLapTime(l.BestLapTime),
			strings.Join(flags, " "))
		ret = append(ret, strings.TrimRight(line, " "))
	}
	return ret
}
