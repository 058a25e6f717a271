package f12020

import (
	"github.com/aarondl/opt/omit"

	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/internal/layout"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
	"github.com/mpapenbr/f1-telemetry-go/pkg/wire"
)

func carStatus(r *wire.Reader) model.CarStatusData {
	return model.CarStatusData{
		TractionControl:         wire.Code(r, r.U8(), codes.TractionControl.Decode),
		AntiLockBrakes:          r.Bool(),
		FuelMix:                 wire.Code(r, r.U8(), codes.FuelMix.Decode),
		FrontBrakeBias:          r.U8(),
		PitLimiterStatus:        r.Bool(),
		FuelInTank:              r.F32(),
		FuelCapacity:            r.F32(),
		FuelRemainingLaps:       r.F32(),
		MaxRPM:                  r.U16(),
		IdleRPM:                 r.U16(),
		MaxGears:                r.U8(),
		DRSAllowed:              wire.Code(r, r.I8(), codes.DRS.Decode),
		DRSActivationDistance:   omit.From(r.U16()),
		TyresWear:               omit.From(wire.ReadWheels(r, wire.U8)),
		ActualTyreCompound:      wire.Code(r, r.U8(), codes.ActualTyreCompound.Decode),
		VisualTyreCompound:      wire.Code(r, r.U8(), VisualTyreCompound.Decode),
		TyresAgeLaps:            omit.From(r.U8()),
		TyresDamage:             omit.From(wire.ReadWheels(r, wire.U8)),
		FrontLeftWingDamage:     omit.From(r.U8()),
		FrontRightWingDamage:    omit.From(r.U8()),
		RearWingDamage:          omit.From(r.U8()),
		DRSFault:                omit.From(r.Bool()),
		EngineDamage:            omit.From(r.U8()),
		GearBoxDamage:           omit.From(r.U8()),
		VehicleFIAFlags:         wire.Code(r, r.I8(), codes.Flag.Decode),
		ERSStoreEnergy:          r.F32(),
		ERSDeployMode:           wire.Code(r, r.U8(), ERSDeployMode.Decode),
		ERSHarvestedThisLapMGUK: r.F32(),
		ERSHarvestedThisLapMGUH: r.F32(),
		ERSDeployedThisLap:      r.F32(),
	}
}

func (Decoder) CarStatus(h model.Header, r *wire.Reader) (*model.CarStatus, error) {
	return layout.Finish(r, &model.CarStatus{
		PacketHeader: h,
		Cars:         wire.Array(r, NumCars, carStatus),
	})
}
