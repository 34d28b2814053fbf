package schedule

import (
	"fmt"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/entity"
)

// Resolve classifies now against the ordered slot list. It is a pure
// function of its inputs and is meant to be called on every clock tick.
func Resolve(now entity.TimeOfDay, slots []entity.LessonSlot) entity.LessonStatus {
	// First matching slot wins when slots overlap
	for _, slot := range slots {
		w, ok := SlotWindow(slot)
		if !ok {
			continue
		}
		if w.Contains(now) {
			return newStatus(entity.InSession, slot.Label, int(w.End-now))
		}
	}

	for i := 0; i+1 < len(slots); i++ {
		end, ok := ParseTimeOfDay(slots[i].End)
		if !ok {
			continue
		}
		nextStart, ok := ParseTimeOfDay(slots[i+1].Start)
		if !ok {
			continue
		}
		if now > end && now < nextStart {
			return newStatus(entity.Break, domain.BreakLabel, int(nextStart-now))
		}
	}

	return newStatus(entity.OutOfHours, domain.OutOfHoursLabel, 0)
}

func newStatus(state entity.LessonState, label string, remaining int) entity.LessonStatus {
	if remaining < 0 {
		remaining = 0
	}

	status := entity.LessonStatus{
		State:     state,
		Label:     label,
		Remaining: remaining,
	}

	switch state {
	case entity.InSession:
		status.Title = domain.StatusInSession
		status.Countdown = FormatCountdown(remaining)
	case entity.Break:
		status.Title = domain.StatusBreak
		status.Countdown = FormatCountdown(remaining)
	default:
		status.Title = domain.StatusOutOfHours
		status.Countdown = domain.NoCountdown
	}

	return status
}

// FormatCountdown renders seconds as M:SS. Minutes are unbounded and
// negative input is clamped to zero.
func FormatCountdown(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// OverlappingSlots lists index pairs (i<j) whose parsed windows intersect.
// The resolver tolerates overlaps, this only feeds admin warnings.
func OverlappingSlots(slots []entity.LessonSlot) [][2]int {
	var pairs [][2]int
	for i := range slots {
		a, ok := SlotWindow(slots[i])
		if !ok || a.End < a.Start {
			continue
		}
		for j := i + 1; j < len(slots); j++ {
			b, ok := SlotWindow(slots[j])
			if !ok || b.End < b.Start {
				continue
			}
			if a.Start <= b.End && b.Start <= a.End {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// SlotWarnings describes authoring problems in human-readable form,
// numbering slots from 1.
func SlotWarnings(slots []entity.LessonSlot) []string {
	var warnings []string
	for i, slot := range slots {
		if slot.Start == "" && slot.End == "" {
			continue
		}
		w, ok := SlotWindow(slot)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("slot %d (%s): unreadable time %q-%q, it will be skipped", i+1, slot.Label, slot.Start, slot.End))
			continue
		}
		if w.End < w.Start {
			warnings = append(warnings, fmt.Sprintf("slot %d (%s): ends before it starts, it will never be active", i+1, slot.Label))
		}
	}
	for _, p := range OverlappingSlots(slots) {
		warnings = append(warnings, fmt.Sprintf("slots %d and %d overlap, slot %d takes priority", p[0]+1, p[1]+1, p[0]+1))
	}
	return warnings
}
