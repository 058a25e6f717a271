package replay

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/stream"
)

// Summary counts the outcome of every replayed datagram
type Summary struct {
	Datagrams int
	Bytes     int
	Skipped   int // non matching frames of the capture
	Duration  time.Duration
	Formats   map[uint16]int
	Types     map[model.PacketType]int
	Errors    map[string]int // key is model.Kind
}

func NewSummary() *Summary {
	return &Summary{
		Formats: make(map[uint16]int),
		Types:   make(map[model.PacketType]int),
		Errors:  make(map[string]int),
	}
}

func (s *Summary) Add(res *stream.Result) {
	s.Datagrams++
	s.Bytes += res.Size
	if res.Err != nil {
		s.Errors[model.Kind(res.Err)]++
		return
	}
	h := res.Packet.Header()
	s.Formats[h.PacketFormat]++
	s.Types[res.Packet.Type()]++
}

func (s *Summary) Decoded() int {
	return lo.Sum(lo.Values(s.Types))
}

func (s *Summary) Print(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "datagrams\t%d\t(%d bytes, %d frames skipped, %v)\n",
		s.Datagrams, s.Bytes, s.Skipped, s.Duration.Round(time.Millisecond))
	fmt.Fprintf(tw, "decoded\t%d\n", s.Decoded())
	for _, f := range sortedKeys(s.Formats) {
		fmt.Fprintf(tw, "format %d\t%d\n", f, s.Formats[f])
	}
	for _, t := range sortedKeys(s.Types) {
		fmt.Fprintf(tw, "  %s\t%d\n", t, s.Types[t])
	}
	if len(s.Errors) > 0 {
		fmt.Fprintf(tw, "errors\t%d\n", lo.Sum(lo.Values(s.Errors)))
		for _, k := range sortedKeys(s.Errors) {
			fmt.Fprintf(tw, "  %s\t%d\n", k, s.Errors[k])
		}
	}
	tw.Flush()
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
