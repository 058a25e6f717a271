package f12020

import (
	"github.com/mpapenbr/f1-telemetry-go/pkg/codes"
	"github.com/mpapenbr/f1-telemetry-go/pkg/format/f12019"
	"github.com/mpapenbr/f1-telemetry-go/pkg/model"
)

// Tables unchanged since 2019 are reused from there.
var (
	// FinalClassification and LobbyInfo are recognized but not decoded
	PacketTypes = f12019.PacketTypes.With(map[uint8]model.PacketType{
		8: model.PacketTypeFinalClassification,
		9: model.PacketTypeLobbyInfo,
	})

	SessionTypes = f12019.SessionTypes
	SafetyCar    = f12019.SafetyCar
	ResultStatus = f12019.ResultStatus

	Tracks = codes.TrackTable(model.TrackZandvoort)

	VisualTyreCompound = codes.NewTable("visualTyreCompound",
		map[uint8]model.VisualTyreCompound{
			0:  model.VisualTyreCompoundInvalid,
			7:  model.VisualTyreCompoundInter,
			8:  model.VisualTyreCompoundWet,
			15: model.VisualTyreCompoundF2Wet,
			16: model.VisualTyreCompoundSoft,
			17: model.VisualTyreCompoundMedium,
			18: model.VisualTyreCompoundHard,
			19: model.VisualTyreCompoundF2SuperSoft,
			20: model.VisualTyreCompoundF2Soft,
			21: model.VisualTyreCompoundF2Medium,
			22: model.VisualTyreCompoundF2Hard,
		})

	ERSDeployMode = codes.Sequence[uint8]("ersDeployMode",
		model.ERSDeployNone,
		model.ERSDeployMedium,
		model.ERSDeployOvertake,
		model.ERSDeployHotlap,
	)

	Nationalities = codes.NationalityTable(87)

	EventCodes = f12019.EventCodes.With(map[string]model.EventCode{
		"PENA": model.EventPenaltyIssued,
		"SPTP": model.EventSpeedTrapTriggered,
	})

	Teams = f12019.Teams.With(map[uint8]model.Team{
		6:   "AlphaTauri",
		53:  "Benetton 1994",
		54:  "Benetton 1995",
		55:  "Ferrari 2000",
		56:  "Jordan 1991",
		255: "My Team",
	})

	Infringements = codes.Sequence[uint8]("infringementType",
		model.InfringementBlockingBySlowDriving,
		model.InfringementBlockingByWrongWayDriving,
		model.InfringementReversingOffTheStartLine,
		model.InfringementBigCollision,
		model.InfringementSmallCollision,
		model.InfringementCollisionFailedToHandBackPositionSingle,
		model.InfringementCollisionFailedToHandBackPositionMultiple,
		model.InfringementCornerCuttingGainedTime,
		model.InfringementCornerCuttingOvertakeSingle,
		model.InfringementCornerCuttingOvertakeMultiple,
		model.InfringementCrossedPitExitLane,
		model.InfringementIgnoringBlueFlags,
		model.InfringementIgnoringYellowFlags,
		model.InfringementIgnoringDriveThrough,
		model.InfringementTooManyDriveThroughs,
		model.InfringementDriveThroughReminderServeWithinNLaps,
		model.InfringementDriveThroughReminderServeThisLap,
		model.InfringementPitLaneSpeeding,
		model.InfringementParkedForTooLong,
		model.InfringementIgnoringTyreRegulations,
		model.InfringementTooManyPenalties,
		model.InfringementMultipleWarnings,
		model.InfringementApproachingDisqualification,
		model.InfringementTyreRegulationsSelectSingle,
		model.InfringementTyreRegulationsSelectMultiple,
		model.InfringementLapInvalidatedCornerCutting,
		model.InfringementLapInvalidatedRunningWide,
		model.InfringementCornerCuttingRanWideGainedTimeMinor,
		model.InfringementCornerCuttingRanWideGainedTimeSignificant,
		model.InfringementCornerCuttingRanWideGainedTimeExtreme,
		model.InfringementLapInvalidatedWallRiding,
		model.InfringementLapInvalidatedFlashbackUsed,
		model.InfringementLapInvalidatedResetToTrack,
		model.InfringementBlockingThePitlane,
		model.InfringementJumpStart,
		model.InfringementSafetyCarToCarCollision,
		model.InfringementSafetyCarIllegalOvertake,
		model.InfringementSafetyCarExceedingAllowedPace,
		model.InfringementVirtualSafetyCarExceedingAllowedPace,
		model.InfringementFormationLapBelowAllowedSpeed,
		model.InfringementRetiredMechanicalFailure,
		model.InfringementRetiredTerminallyDamaged,
		model.InfringementSafetyCarFallingTooFarBack,
		model.InfringementBlackFlagTimer,
		model.InfringementUnservedStopGoPenalty,
		model.InfringementUnservedDriveThroughPenalty,
		model.InfringementEngineComponentChange,
		model.InfringementGearboxChange,
		model.InfringementLeagueGridPenalty,
		model.InfringementRetryPenalty,
		model.InfringementIllegalTimeGain,
		model.InfringementMandatoryPitstop,
	)
)
