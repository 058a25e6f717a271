// Package f12019 decodes the packet format 2019.
package f12019

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

const (
	Format     uint16 = 2019
	HeaderSize        = 23
	NumCars           = 20
)

// Decoder implements the decoder set for format 2019. The zero value is
// ready to use.
type Decoder struct{}

func (Decoder) Format() uint16  { return Format }
func (Decoder) HeaderSize() int { return HeaderSize }
func (Decoder) NumCars() int    { return NumCars }
func (Decoder) Name() string    { return "F1 2019" }

func (Decoder) Header(r *wire.Reader) (model.Header, error) {
	h := layout.Header(r, PacketTypes, false)
	return h, r.Err()
}

func (Decoder) Motion(h model.Header, r *wire.Reader) (*model.Motion, error) {
	return layout.Motion(h, r, NumCars)
}

func (Decoder) CarSetups(h model.Header, r *wire.Reader) (*model.CarSetups, error) {
	return layout.CarSetups(h, r, NumCars, false)
}
