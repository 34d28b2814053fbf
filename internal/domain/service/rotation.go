package service

import (
	"sync/atomic"
	"time"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/entity"
)

// DutyRotator tracks how far the duty panel has scrolled. Only the tick
// count is stored; the index is derived at read time so edits to the duty
// list can never leave it pointing past the end.
type DutyRotator struct {
	ticks   atomic.Uint64
	modulus int
}

// NewDutyRotator creates a rotator. A modulus <= 0 means the cycle length
// follows the actual duty list length.
func NewDutyRotator(modulus int) *DutyRotator {
	return &DutyRotator{modulus: modulus}
}

// Advance moves the rotation one row forward
func (r *DutyRotator) Advance() {
	r.ticks.Add(1)
}

func (r *DutyRotator) Ticks() uint64 {
	return r.ticks.Load()
}

// Index returns the highlighted row for a list of listLen rows
func (r *DutyRotator) Index(listLen int) int {
	return rotationIndex(r.ticks.Load(), r.modulus, listLen)
}

func rotationIndex(ticks uint64, modulus, listLen int) int {
	if listLen <= 0 {
		return 0
	}

	cycle := listLen
	if modulus > 0 {
		cycle = modulus
	}

	idx := int(ticks % uint64(cycle))
	// a fixed modulus larger than the list must not read past the end
	return idx % listLen
}

// WeekdayName returns the Turkish name of t's weekday
func WeekdayName(t time.Time) string {
	return domain.WeekdayNames[t.Weekday()]
}

// DutyForDay returns the roster for t's weekday, empty on weekends or
// when the day has no roster.
func DutyForDay(school entity.SchoolData, t time.Time) []entity.DutySection {
	sections, ok := school.DutyTeachers[WeekdayName(t)]
	if !ok {
		return []entity.DutySection{}
	}

	out := make([]entity.DutySection, 0, len(sections))
	for _, s := range sections {
		if s.Teachers == "" {
			s.Teachers = domain.TeachersMissing
		}
		out = append(out, s)
	}
	return out
}
