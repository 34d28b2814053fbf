package service

import (
	"sync/atomic"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/entity"
)

// ShiftSelector alternates the displayed shift on every Flip. It is a
// kiosk rotation, not a wall-clock morning/afternoon cutoff.
type ShiftSelector struct {
	afternoon atomic.Bool
}

func NewShiftSelector(start entity.Shift) *ShiftSelector {
	s := &ShiftSelector{}
	s.afternoon.Store(start == entity.Afternoon)
	return s
}

func (s *ShiftSelector) Active() entity.Shift {
	if s.afternoon.Load() {
		return entity.Afternoon
	}
	return entity.Morning
}

// Flip switches to the other shift and returns the new one
func (s *ShiftSelector) Flip() entity.Shift {
	for {
		old := s.afternoon.Load()
		if s.afternoon.CompareAndSwap(old, !old) {
			if old {
				return entity.Morning
			}
			return entity.Afternoon
		}
	}
}

// Badge returns the header tag shown next to the school name
func Badge(shift entity.Shift) string {
	if shift == entity.Afternoon {
		return domain.AfternoonBadge
	}
	return domain.MorningBadge
}
