package service

import (
	"time"

	"github.com/diegoclair/school-board/internal/domain/contract"
	"github.com/diegoclair/school-board/internal/domain/entity"
	"go.uber.org/zap"
)

// Options tune the board service. Zero values fall back to the defaults.
type Options struct {
	// DutyRotationModulus fixes the duty cycle length; <= 0 follows the list
	DutyRotationModulus int
	// AnnounceChannel receives the daily celebrations post when set
	AnnounceChannel string
	StartShift      entity.Shift
	Now             func() time.Time
}

type Instance struct {
	Board *boardService
}

func NewInstance(store contract.ConfigStore, textGen contract.TextGenerator, weather contract.WeatherSource, slackClient contract.SlackClient, logger *zap.Logger, opts Options) *Instance {
	return &Instance{
		Board: newBoard(store, textGen, weather, slackClient, logger, opts),
	}
}
