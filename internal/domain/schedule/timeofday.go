package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/school-board/internal/domain/entity"
)

const secondsPerDay = 24 * 60 * 60

// ParseTimeOfDay converts "H:MM" or "HH:MM" into seconds since midnight.
// Anything else, including the empty string, reports false.
func ParseTimeOfDay(s string) (entity.TimeOfDay, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}

	return entity.TimeOfDay(hour*3600 + minute*60), true
}

// SecondOfDay returns the wall-clock position of t within its local day
func SecondOfDay(t time.Time) entity.TimeOfDay {
	return entity.TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// FormatTimeOfDay renders seconds since midnight as HH:MM
func FormatTimeOfDay(tod entity.TimeOfDay) string {
	sec := int(tod) % secondsPerDay
	if sec < 0 {
		sec += secondsPerDay
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Window is the closed interval a lesson slot covers
type Window struct {
	Start entity.TimeOfDay
	End   entity.TimeOfDay
}

// Contains is false for every now when End < Start (midnight spans are
// not supported).
func (w Window) Contains(now entity.TimeOfDay) bool {
	return w.Start <= now && now <= w.End
}

// SlotWindow parses both bounds of a slot; ok is false if either is unusable
func SlotWindow(slot entity.LessonSlot) (Window, bool) {
	start, ok := ParseTimeOfDay(slot.Start)
	if !ok {
		return Window{}, false
	}
	end, ok := ParseTimeOfDay(slot.End)
	if !ok {
		return Window{}, false
	}
	return Window{Start: start, End: end}, true
}
