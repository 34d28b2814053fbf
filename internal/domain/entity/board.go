package entity

import "strings"

// TimeOfDay is a count of seconds since local midnight, in [0, 86399]
type TimeOfDay int

type Shift string

const (
	Morning   Shift = "morning"
	Afternoon Shift = "afternoon"
)

// Other returns the opposite shift
func (s Shift) Other() Shift {
	if s == Morning {
		return Afternoon
	}
	return Morning
}

func (s Shift) Valid() bool {
	return s == Morning || s == Afternoon
}

// ParseShift accepts the English names and their Turkish aliases
func ParseShift(s string) (Shift, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning", "sabah":
		return Morning, true
	case "afternoon", "ogle", "öğle":
		return Afternoon, true
	}
	return "", false
}

// LessonSlot keeps the raw, user-editable times. An empty or malformed
// start/end turns the slot into a hole for the resolver.
type LessonSlot struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type Announcement struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type DutySection struct {
	SectionName string `json:"section_name"`
	Teachers    string `json:"teachers"`
}

type SpecialDayType string

const (
	Birthday        SpecialDayType = "Doğum Günü"
	SpecialOccasion SpecialDayType = "Özel Gün"
)

type SpecialDay struct {
	Name string         `json:"name"`
	Date string         `json:"date"` // DD.MM
	Type SpecialDayType `json:"type"`
}

type SchoolData struct {
	Name          string                   `json:"name"`
	Motto         string                   `json:"motto"`
	Slots         []LessonSlot             `json:"slots"`
	Announcements []Announcement           `json:"announcements"`
	DutyTeachers  map[string][]DutySection `json:"duty_teachers"`
	SpecialDays   []SpecialDay             `json:"special_days"`
}

// Clone returns a deep copy so callers can never alias store internals
func (d SchoolData) Clone() SchoolData {
	out := d
	out.Slots = append([]LessonSlot(nil), d.Slots...)
	out.Announcements = append([]Announcement(nil), d.Announcements...)
	out.SpecialDays = append([]SpecialDay(nil), d.SpecialDays...)
	if d.DutyTeachers != nil {
		out.DutyTeachers = make(map[string][]DutySection, len(d.DutyTeachers))
		for day, sections := range d.DutyTeachers {
			out.DutyTeachers[day] = append([]DutySection(nil), sections...)
		}
	}
	return out
}

// BoardConfig holds both shifts. They share a shape but are never merged.
type BoardConfig struct {
	Morning   SchoolData `json:"morning"`
	Afternoon SchoolData `json:"afternoon"`
}

func (c BoardConfig) School(shift Shift) SchoolData {
	if shift == Afternoon {
		return c.Afternoon
	}
	return c.Morning
}

// WithSchool returns a copy of c with the given shift replaced
func (c BoardConfig) WithSchool(shift Shift, data SchoolData) BoardConfig {
	if shift == Afternoon {
		c.Afternoon = data
	} else {
		c.Morning = data
	}
	return c
}

func (c BoardConfig) Clone() BoardConfig {
	return BoardConfig{
		Morning:   c.Morning.Clone(),
		Afternoon: c.Afternoon.Clone(),
	}
}

// EditResult is the shift's data right after an admin edit, plus any
// authoring warnings about it
type EditResult struct {
	School   SchoolData `json:"school"`
	Warnings []string   `json:"warnings,omitempty"`
}
