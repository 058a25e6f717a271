package utils

import (
	"errors"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/processing"
)

const DefaultStaleDuration = time.Minute

var ErrSessionNotFound = errors.New("session not found")

type SessionLookupOption func(*SessionLookup)

// WithStaleDuration sets the duration after which a session without new
// packets is removed
func WithStaleDuration(d time.Duration) SessionLookupOption {
	return func(s *SessionLookup) {
		s.staleDuration = d
	}
}

func WithProcessorOptions(opts ...processing.ProcessorOption) SessionLookupOption {
	return func(s *SessionLookup) {
		s.procOpts = opts
	}
}

func withClock(now func() time.Time) SessionLookupOption {
	return func(s *SessionLookup) {
		s.now = now
	}
}

func NewSessionLookup(opts ...SessionLookupOption) *SessionLookup {
	ret := &SessionLookup{
		lookup:        make(map[uint64]*SessionProcessingData),
		staleDuration: DefaultStaleDuration,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

type SessionProcessingData struct {
	SessionUID uint64
	Format     uint16
	FirstSeen  time.Time
	LastSeen   time.Time
	Processor  *processing.Processor
}

// SessionLookup keeps one processor per session. Several games may send to
// the same port, each one is tracked separately.
type SessionLookup struct {
	mu            sync.Mutex
	lookup        map[uint64]*SessionProcessingData
	staleDuration time.Duration
	procOpts      []processing.ProcessorOption
	now           func() time.Time
}

// Process feeds p into the processor of its session, creating it on demand
func (s *SessionLookup) Process(p model.Packet) *SessionProcessingData {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := p.Header()
	now := s.now()
	spd, ok := s.lookup[h.SessionUID]
	if !ok {
		spd = &SessionProcessingData{
			SessionUID: h.SessionUID,
			Format:     h.PacketFormat,
			FirstSeen:  now,
			Processor:  processing.NewProcessor(s.procOpts...),
		}
		s.lookup[h.SessionUID] = spd
	}
	spd.LastSeen = now
	spd.Processor.ProcessPacket(p)
	return spd
}

func (s *SessionLookup) GetSession(sessionUID uint64) (*SessionProcessingData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ret, ok := s.lookup[sessionUID]; ok {
		return ret, nil
	}
	return nil, ErrSessionNotFound
}

// Latest returns the session that received a packet most recently
func (s *SessionLookup) Latest() (*SessionProcessingData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lookup) == 0 {
		return nil, ErrSessionNotFound
	}
	return lo.MaxBy(lo.Values(s.lookup), func(a, b *SessionProcessingData) bool {
		return a.LastSeen.After(b.LastSeen)
	}), nil
}

// RemoveStale drops sessions that did not receive packets within the stale
// duration and returns their uids
func (s *SessionLookup) RemoveStale() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	limit := s.now().Add(-s.staleDuration)
	ret := make([]uint64, 0)
	for uid, spd := range s.lookup {
		if spd.LastSeen.Before(limit) {
			delete(s.lookup, uid)
			ret = append(ret, uid)
		}
	}
	return ret
}

func (s *SessionLookup) GetSessions() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Keys(s.lookup)
}

func (s *SessionLookup) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookup = make(map[uint64]*SessionProcessingData)
}
