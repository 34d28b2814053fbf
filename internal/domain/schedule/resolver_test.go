package schedule

import (
	"testing"
	"time"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hm(h, m int) entity.TimeOfDay {
	return entity.TimeOfDay(h*3600 + m*60)
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   entity.TimeOfDay
		wantOK bool
	}{
		{name: "Should parse HH:MM", input: "08:30", want: hm(8, 30), wantOK: true},
		{name: "Should parse H:MM", input: "9:10", want: hm(9, 10), wantOK: true},
		{name: "Should parse midnight", input: "0:00", want: 0, wantOK: true},
		{name: "Should parse last minute of day", input: "23:59", want: hm(23, 59), wantOK: true},
		{name: "Should trim surrounding spaces", input: "  13:30 ", want: hm(13, 30), wantOK: true},
		{name: "Should reject empty string", input: "", wantOK: false},
		{name: "Should reject blank string", input: "   ", wantOK: false},
		{name: "Should reject missing minutes", input: "08", wantOK: false},
		{name: "Should reject seconds component", input: "08:30:00", wantOK: false},
		{name: "Should reject letters", input: "ab:cd", wantOK: false},
		{name: "Should reject hour out of range", input: "24:00", wantOK: false},
		{name: "Should reject minute out of range", input: "09:75", wantOK: false},
		{name: "Should reject negative hour", input: "-1:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSecondOfDay(t *testing.T) {
	now := time.Date(2024, 9, 16, 9, 15, 42, 0, time.Local)
	assert.Equal(t, entity.TimeOfDay(9*3600+15*60+42), SecondOfDay(now))
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "08:30", FormatTimeOfDay(hm(8, 30)))
	assert.Equal(t, "00:00", FormatTimeOfDay(0))
	assert.Equal(t, "23:59", FormatTimeOfDay(hm(23, 59)))
}

func TestResolve(t *testing.T) {
	twoLessons := []entity.LessonSlot{
		{Label: "1. Ders", Start: "08:30", End: "09:10"},
		{Label: "2. Ders", Start: "09:20", End: "10:00"},
	}

	type args struct {
		now   entity.TimeOfDay
		slots []entity.LessonSlot
	}
	tests := []struct {
		name          string
		args          args
		wantState     entity.LessonState
		wantLabel     string
		wantRemaining int
		wantCountdown string
	}{
		{
			name:          "Should be in session inside the first lesson",
			args:          args{now: hm(8, 45), slots: twoLessons},
			wantState:     entity.InSession,
			wantLabel:     "1. Ders",
			wantRemaining: 1500,
			wantCountdown: "25:00",
		},
		{
			name:          "Should be on break between lessons",
			args:          args{now: hm(9, 15), slots: twoLessons},
			wantState:     entity.Break,
			wantLabel:     domain.BreakLabel,
			wantRemaining: 300,
			wantCountdown: "5:00",
		},
		{
			name:          "Should include the start second of a lesson",
			args:          args{now: hm(8, 30), slots: twoLessons},
			wantState:     entity.InSession,
			wantLabel:     "1. Ders",
			wantRemaining: 2400,
			wantCountdown: "40:00",
		},
		{
			name:          "Should include the end second of a lesson with zero remaining",
			args:          args{now: hm(9, 10), slots: twoLessons},
			wantState:     entity.InSession,
			wantLabel:     "1. Ders",
			wantRemaining: 0,
			wantCountdown: "0:00",
		},
		{
			name:          "Should count wall-clock seconds during a break",
			args:          args{now: hm(9, 10) + 1, slots: twoLessons},
			wantState:     entity.Break,
			wantLabel:     domain.BreakLabel,
			wantRemaining: 599,
			wantCountdown: "9:59",
		},
		{
			name:          "Should be out of hours before the first lesson",
			args:          args{now: hm(7, 0), slots: twoLessons},
			wantState:     entity.OutOfHours,
			wantLabel:     domain.OutOfHoursLabel,
			wantRemaining: 0,
			wantCountdown: domain.NoCountdown,
		},
		{
			name:          "Should be out of hours after the last lesson",
			args:          args{now: hm(10, 0) + 1, slots: twoLessons},
			wantState:     entity.OutOfHours,
			wantLabel:     domain.OutOfHoursLabel,
			wantRemaining: 0,
			wantCountdown: domain.NoCountdown,
		},
		{
			name:          "Should be out of hours with no slots",
			args:          args{now: hm(9, 0), slots: nil},
			wantState:     entity.OutOfHours,
			wantLabel:     domain.OutOfHoursLabel,
			wantCountdown: domain.NoCountdown,
		},
		{
			name: "Should pick the first slot when slots overlap",
			args: args{now: hm(8, 45), slots: []entity.LessonSlot{
				{Label: "A", Start: "08:00", End: "09:00"},
				{Label: "B", Start: "08:30", End: "09:30"},
			}},
			wantState:     entity.InSession,
			wantLabel:     "A",
			wantRemaining: 900,
			wantCountdown: "15:00",
		},
		{
			name: "Should skip slots with empty times",
			args: args{now: hm(9, 30), slots: []entity.LessonSlot{
				{Label: "1. Ders", Start: "", End: ""},
				{Label: "2. Ders", Start: "09:20", End: "10:00"},
			}},
			wantState:     entity.InSession,
			wantLabel:     "2. Ders",
			wantRemaining: 1800,
			wantCountdown: "30:00",
		},
		{
			name: "Should treat a gap next to a malformed slot as out of hours",
			args: args{now: hm(9, 15), slots: []entity.LessonSlot{
				{Label: "1. Ders", Start: "08:30", End: "09:10"},
				{Label: "bozuk", Start: "xx", End: ""},
				{Label: "2. Ders", Start: "09:20", End: "10:00"},
			}},
			wantState:     entity.OutOfHours,
			wantLabel:     domain.OutOfHoursLabel,
			wantCountdown: domain.NoCountdown,
		},
		{
			name: "Should never match a slot that spans midnight",
			args: args{now: hm(23, 30), slots: []entity.LessonSlot{
				{Label: "gece", Start: "22:00", End: "01:00"},
			}},
			wantState:     entity.OutOfHours,
			wantLabel:     domain.OutOfHoursLabel,
			wantCountdown: domain.NoCountdown,
		},
		{
			name: "Should not report a break when the gap has no room",
			args: args{now: hm(9, 10), slots: []entity.LessonSlot{
				{Label: "1", Start: "08:30", End: "09:00"},
				{Label: "2", Start: "09:00", End: "09:05"},
			}},
			wantState:     entity.OutOfHours,
			wantLabel:     domain.OutOfHoursLabel,
			wantCountdown: domain.NoCountdown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.args.now, tt.args.slots)

			assert.Equal(t, tt.wantState, got.State)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantRemaining, got.Remaining)
			assert.Equal(t, tt.wantCountdown, got.Countdown)
			assert.GreaterOrEqual(t, got.Remaining, 0)
		})
	}
}

func TestResolve_Titles(t *testing.T) {
	slots := []entity.LessonSlot{
		{Label: "1. Ders", Start: "08:30", End: "09:10"},
		{Label: "2. Ders", Start: "09:20", End: "10:00"},
	}

	assert.Equal(t, domain.StatusInSession, Resolve(hm(8, 40), slots).Title)
	assert.Equal(t, domain.StatusBreak, Resolve(hm(9, 15), slots).Title)
	assert.Equal(t, domain.StatusOutOfHours, Resolve(hm(12, 0), slots).Title)
}

func TestResolve_EverySecondOfTheDay(t *testing.T) {
	slots := []entity.LessonSlot{
		{Label: "1. Ders", Start: "08:30", End: "09:10"},
		{Label: "2. Ders", Start: "09:20", End: "10:00"},
		{Label: "3. Ders", Start: "10:10", End: "10:50"},
	}

	for now := entity.TimeOfDay(0); now < secondsPerDay; now++ {
		got := Resolve(now, slots)
		require.GreaterOrEqual(t, got.Remaining, 0, "now=%d", now)

		switch got.State {
		case entity.InSession, entity.Break:
			require.Greater(t, got.Remaining+int(now), 0)
			require.LessOrEqual(t, int(now)+got.Remaining, int(hm(10, 50)))
		case entity.OutOfHours:
			require.Zero(t, got.Remaining)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		name string
		sec  int
		want string
	}{
		{name: "Should pad seconds", sec: 125, want: "2:05"},
		{name: "Should show zero minutes", sec: 59, want: "0:59"},
		{name: "Should show zero", sec: 0, want: "0:00"},
		{name: "Should not bound minutes", sec: 3 * 3600, want: "180:00"},
		{name: "Should clamp negative values", sec: -1, want: "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCountdown(tt.sec))
		})
	}
}

func TestOverlappingSlots(t *testing.T) {
	slots := []entity.LessonSlot{
		{Label: "A", Start: "08:00", End: "09:00"},
		{Label: "B", Start: "08:30", End: "09:30"},
		{Label: "C", Start: "10:00", End: "10:40"},
		{Label: "D", Start: "", End: ""},
	}

	assert.Equal(t, [][2]int{{0, 1}}, OverlappingSlots(slots))
	assert.Empty(t, OverlappingSlots(slots[2:]))
}

func TestSlotWarnings(t *testing.T) {
	slots := []entity.LessonSlot{
		{Label: "A", Start: "08:00", End: "09:00"},
		{Label: "B", Start: "08:30", End: "09:30"},
		{Label: "C", Start: "10:00", End: "xx"},
		{Label: "D", Start: "23:00", End: "01:00"},
		{Label: "E", Start: "", End: ""},
	}

	warnings := SlotWarnings(slots)

	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "slot 3 (C)")
	assert.Contains(t, warnings[1], "slot 4 (D)")
	assert.Contains(t, warnings[2], "slots 1 and 2 overlap")
}
