// Package f12020 decodes the packet format 2020.
package f12020

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

const (
	Format     uint16 = 2020
	HeaderSize        = 24
	NumCars           = 22

	MaxWeatherForecastSamples = 20
	weatherForecastSampleSize = 5
)

// Decoder implements the decoder set for format 2020. The zero value is
// ready to use.
type Decoder struct{}

func (Decoder) Format() uint16  { return Format }
func (Decoder) HeaderSize() int { return HeaderSize }
func (Decoder) NumCars() int    { return NumCars }
func (Decoder) Name() string    { return "F1 2020" }

func (Decoder) Header(r *wire.Reader) (model.Header, error) {
	h := layout.Header(r, PacketTypes, true)
	return h, r.Err()
}

func (Decoder) Motion(h model.Header, r *wire.Reader) (*model.Motion, error) {
	return layout.Motion(h, r, NumCars)
}

func (Decoder) CarSetups(h model.Header, r *wire.Reader) (*model.CarSetups, error) {
	return layout.CarSetups(h, r, NumCars, true)
}
