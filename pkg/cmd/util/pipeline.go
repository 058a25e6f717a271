package util

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-telemetry-go/log"
	"github.com/mpapenbr/f1-telemetry-go/pkg/config"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/sink"
	"github.com/mpapenbr/f1-telemetry-go/pkg/sink/jsonl"
	"github.com/mpapenbr/f1-telemetry-go/pkg/sink/logsink"
	natssink "github.com/mpapenbr/f1-telemetry-go/pkg/sink/nats"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
	"github.com/mpapenbr/f1-telemetry-go/pkg/utils"
	"github.com/mpapenbr/f1-telemetry-go/pkg/utils/broadcast"
)

const (
	sourceBufferSize   = 64
	listenerBufferSize = 1024
)

// NamedSink pairs a sink with the name used in logs
type NamedSink struct {
	Name string
	Sink sink.Sink
}

// BuildSinks creates the sinks enabled in cfg. The log sink is always part
// of the result.
func BuildSinks(cfg *config.Config) ([]NamedSink, error) {
	ret := []NamedSink{{Name: "log", Sink: logsink.New(log.Default().Named("packets"))}}
	closeAll := func() {
		for _, s := range ret {
			s.Sink.Close()
		}
	}
	if cfg.JSONL != "" {
		s, err := buildJSONLSink(cfg)
		if err != nil {
			closeAll()
			return nil, err
		}
		ret = append(ret, NamedSink{Name: "jsonl", Sink: s})
	}
	if cfg.NatsURL != "" {
		s, err := natssink.Connect(cfg.NatsURL,
			natssink.WithSubjectPrefix(cfg.NatsSubjectPrefix))
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("connect to nats: %w", err)
		}
		ret = append(ret, NamedSink{Name: "nats", Sink: s})
	}
	return ret, nil
}

func buildJSONLSink(cfg *config.Config) (*jsonl.Sink, error) {
	types, err := ParseTypes(cfg.Types)
	if err != nil {
		return nil, err
	}
	opts := []jsonl.Option{jsonl.WithSelect(cfg.Select), jsonl.WithTypes(types...)}
	if cfg.JSONL == "-" {
		return jsonl.New(os.Stdout, opts...)
	}
	f, err := os.Create(cfg.JSONL)
	if err != nil {
		return nil, err
	}
	s, err := jsonl.New(f, append(opts, jsonl.WithCloser(f))...)
	if err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// ParseTypes resolves packet type names, entries may be comma separated
func ParseTypes(names []string) ([]model.PacketType, error) {
	ret := make([]model.PacketType, 0, len(names))
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			if name = strings.TrimSpace(name); name == "" {
				continue
			}
			pt, err := model.ParsePacketType(name)
			if err != nil {
				return nil, err
			}
			ret = append(ret, pt)
		}
	}
	return lo.Uniq(ret), nil
}

// Pipeline distributes decoded packets to the sinks and the session boards.
type Pipeline struct {
	source   chan *stream.Result
	bs       broadcast.BroadcastServer[*stream.Result]
	sessions *utils.SessionLookup
	wg       sync.WaitGroup
	failed   int
	mu       sync.Mutex
}

// NewPipeline starts one goroutine per sink. If boardInterval is positive
// the board of the latest session is logged in this interval.
//
//nolint:whitespace // editor/linter issue
func NewPipeline(
	ctx context.Context, sinks []NamedSink, boardInterval time.Duration,
) *Pipeline {
	p := &Pipeline{
		source:   make(chan *stream.Result, sourceBufferSize),
		sessions: utils.NewSessionLookup(),
	}
	p.bs = broadcast.NewBroadcastServer("packets", p.source,
		broadcast.WithTelemetry[*stream.Result]("packets"),
		broadcast.WithBufferSize[*stream.Result](listenerBufferSize))
	// sinks drain until the source is closed, signals only stop the stream
	drainCtx := context.WithoutCancel(ctx)
	for _, s := range sinks {
		ch := p.bs.Subscribe()
		p.wg.Go(func() {
			failed := sink.Drain(drainCtx, s.Name, ch, s.Sink)
			p.mu.Lock()
			p.failed += failed
			p.mu.Unlock()
		})
	}
	ch := p.bs.Subscribe()
	p.wg.Go(func() { p.processBoards(ch, boardInterval) })
	return p
}

func (p *Pipeline) processBoards(ch <-chan *stream.Result, interval time.Duration) {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	l := log.Default().Named("board")
	for {
		select {
		case res, ok := <-ch:
			if !ok {
				return
			}
			p.sessions.Process(res.Packet)
		case <-tick:
			for _, uid := range p.sessions.RemoveStale() {
				l.Info("session removed", log.String("session", sink.SessionKey(uid)))
			}
			if spd, err := p.sessions.Latest(); err == nil {
				LogBoard(l, spd)
			}
		}
	}
}

// LogBoard writes the board of spd line by line
func LogBoard(l *log.Logger, spd *utils.SessionProcessingData) {
	l = l.With(log.String("session", sink.SessionKey(spd.SessionUID)))
	for _, line := range spd.Processor.GetData().Lines() {
		l.Info(line)
	}
}

// Publish hands a decoded result to the sinks. Results without a packet are
// ignored.
func (p *Pipeline) Publish(res *stream.Result) {
	if res.Packet == nil {
		return
	}
	p.source <- res
}

// Sessions gives access to the processors of the received sessions.
// Only safe to use after Stop.
func (p *Pipeline) Sessions() *utils.SessionLookup {
	return p.sessions
}

// Stop closes the source and waits for all sinks to finish. It returns the
// number of failed sink writes.
func (p *Pipeline) Stop() int {
	close(p.source)
	<-p.bs.Done()
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failed
}
