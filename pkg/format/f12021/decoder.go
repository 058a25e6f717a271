// Package f12021 decodes the packet format 2021.
package f12021

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

const (
	Format     uint16 = 2021
	HeaderSize        = 24
	NumCars           = 22

	MaxWeatherForecastSamples = 56
	weatherForecastSampleSize = 8
)

// Decoder implements the decoder set for format 2021. The zero value is
// ready to use.
type Decoder struct{}

func (Decoder) Format() uint16  { return Format }
func (Decoder) HeaderSize() int { return HeaderSize }
func (Decoder) NumCars() int    { return NumCars }
func (Decoder) Name() string    { return "F1 2021" }

func (Decoder) Header(r *wire.Reader) (model.Header, error) {
	h := layout.Header(r, PacketTypes, true)
	return h, r.Err()
}

// Motion and car setups kept the 2020 layout

func (Decoder) Motion(h model.Header, r *wire.Reader) (*model.Motion, error) {
	return layout.Motion(h, r, NumCars)
}

func (Decoder) CarSetups(h model.Header, r *wire.Reader) (*model.CarSetups, error) {
	return layout.CarSetups(h, r, NumCars, true)
}
