package service

import (
	"context"
	"time"

	"github.com/diegoclair/school-board/internal/scheduler"
)

// Periods configures how often each board task runs
type Periods struct {
	Clock      time.Duration
	Shift      time.Duration
	Duty       time.Duration
	Weather    time.Duration
	Motivation time.Duration
}

// DefaultPeriods mirrors the kiosk's original cadence
var DefaultPeriods = Periods{
	Clock:      time.Second,
	Shift:      30 * time.Second,
	Duty:       6 * time.Second,
	Weather:    time.Minute,
	Motivation: time.Hour,
}

// Tasks returns the periodic jobs that keep the board alive
func (s *boardService) Tasks(p Periods) []scheduler.Task {
	return []scheduler.Task{
		{
			Name:       "clock",
			Period:     p.Clock,
			RunOnStart: true,
			Run:        s.Tick,
		},
		{
			Name:   "shift",
			Period: p.Shift,
			Run: func(ctx context.Context, now time.Time) {
				s.FlipShift()
				s.refresh(now)
			},
		},
		{
			Name:   "duty",
			Period: p.Duty,
			Run: func(ctx context.Context, now time.Time) {
				s.AdvanceDuty()
			},
		},
		{
			Name:   "weather",
			Period: p.Weather,
			Run: func(ctx context.Context, now time.Time) {
				s.AdvanceWeather()
			},
		},
		{
			Name:       "motivation",
			Period:     p.Motivation,
			RunOnStart: true,
			Run: func(ctx context.Context, now time.Time) {
				s.RefreshMotivation(ctx)
			},
		},
	}
}
