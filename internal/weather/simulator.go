package weather

import (
	"math/rand/v2"
	"sync"

	"github.com/diegoclair/school-board/internal/domain/contract"
	"github.com/diegoclair/school-board/internal/domain/entity"
)

const (
	StartTemperature = 22
	StartCondition   = "Güneşli"
)

// Simulator is a decorative weather feed: the temperature drifts one
// degree up or down on every Advance.
type Simulator struct {
	mu      sync.Mutex
	current entity.Weather
	coin    func() bool
}

var _ contract.WeatherSource = (*Simulator)(nil)

func NewSimulator() *Simulator {
	return NewSimulatorWithCoin(func() bool { return rand.IntN(2) == 1 })
}

// NewSimulatorWithCoin lets tests decide the direction of every step
func NewSimulatorWithCoin(coin func() bool) *Simulator {
	return &Simulator{
		current: entity.Weather{Temperature: StartTemperature, Condition: StartCondition},
		coin:    coin,
	}
}

func (s *Simulator) Sample() entity.Weather {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Simulator) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coin() {
		s.current.Temperature++
	} else {
		s.current.Temperature--
	}
}
