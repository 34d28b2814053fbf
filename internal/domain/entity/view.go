package entity

import "time"

type LessonState string

const (
	InSession  LessonState = "in_session"
	Break      LessonState = "break"
	OutOfHours LessonState = "out_of_hours"
)

// LessonStatus is what the countdown panel shows for one tick
type LessonStatus struct {
	State     LessonState `json:"state"`
	Title     string      `json:"title"`
	Label     string      `json:"label"`
	Remaining int         `json:"remaining"`
	Countdown string      `json:"countdown"`
}

type Weather struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
}

type TickerItem struct {
	Kind string `json:"kind"` // special_day or announcement
	Text string `json:"text"`
}

// BoardView is one fully rendered frame of the display
type BoardView struct {
	RenderedAt   time.Time     `json:"rendered_at"`
	Shift        Shift         `json:"shift"`
	Badge        string        `json:"badge"`
	Name         string        `json:"name"`
	Motto        string        `json:"motto"`
	Clock        string        `json:"clock"`
	DateLabel    string        `json:"date_label"`
	Lesson       LessonStatus  `json:"lesson"`
	DutyDay      string        `json:"duty_day"`
	Duty         []DutySection `json:"duty"`
	DutyIndex    int           `json:"duty_index"`
	SpecialDays  []SpecialDay  `json:"special_days"`
	Ticker       []TickerItem  `json:"ticker"`
	Weather      Weather       `json:"weather"`
	Motivation   string        `json:"motivation"`
	SlotWarnings []string      `json:"slot_warnings,omitempty"`
}
