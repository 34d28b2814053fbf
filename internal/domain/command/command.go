package command

import (
	"errors"
	"fmt"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/entity"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownWeekday  = errors.New("unknown weekday")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrNotFound        = errors.New("not found")
)

// Command is one edit to a single shift's SchoolData. The set of variants
// is closed, Reduce handles every one of them.
type Command interface {
	isCommand()
}

type SetName struct{ Value string }
type SetMotto struct{ Value string }

type ReplaceSlots struct{ Slots []entity.LessonSlot }
type AppendSlot struct{ Slot entity.LessonSlot }
type UpdateSlot struct {
	Index int
	Slot  entity.LessonSlot
}
type RemoveSlot struct{ Index int }

// RetimeSlot changes a slot's times and keeps its label
type RetimeSlot struct {
	Index      int
	Start, End string
}

type ReplaceAnnouncements struct{ Announcements []entity.Announcement }
type AppendAnnouncement struct{ Announcement entity.Announcement }
type UpdateAnnouncement struct {
	Index int
	Text  string
}
type RemoveAnnouncement struct{ Index int }

// RewriteAnnouncement replaces the text of the announcement with ID,
// wherever it sits in the list at the time of the edit
type RewriteAnnouncement struct {
	ID   string
	Text string
}

type ReplaceDuty struct {
	Day      string
	Sections []entity.DutySection
}
type AppendDuty struct {
	Day     string
	Section entity.DutySection
}
type UpdateDuty struct {
	Day     string
	Index   int
	Section entity.DutySection
}
type SetDutyTeachers struct {
	Day      string
	Index    int
	Teachers string
}
type RemoveDuty struct {
	Day   string
	Index int
}

type AppendSpecialDays struct{ Days []entity.SpecialDay }
type UpdateSpecialDay struct {
	Index int
	Day   entity.SpecialDay
}
type RemoveSpecialDay struct{ Index int }

func (SetName) isCommand()              {}
func (SetMotto) isCommand()             {}
func (ReplaceSlots) isCommand()         {}
func (AppendSlot) isCommand()           {}
func (UpdateSlot) isCommand()           {}
func (RemoveSlot) isCommand()           {}
func (RetimeSlot) isCommand()           {}
func (ReplaceAnnouncements) isCommand() {}
func (AppendAnnouncement) isCommand()   {}
func (UpdateAnnouncement) isCommand()   {}
func (RemoveAnnouncement) isCommand()   {}
func (RewriteAnnouncement) isCommand()  {}
func (ReplaceDuty) isCommand()          {}
func (AppendDuty) isCommand()           {}
func (UpdateDuty) isCommand()           {}
func (SetDutyTeachers) isCommand()      {}
func (RemoveDuty) isCommand()           {}
func (AppendSpecialDays) isCommand()    {}
func (UpdateSpecialDay) isCommand()     {}
func (RemoveSpecialDay) isCommand()     {}

// Reduce applies cmd to data and returns the new value. The input is never
// modified: every touched slice or map is freshly allocated.
func Reduce(data entity.SchoolData, cmd Command) (entity.SchoolData, error) {
	switch c := cmd.(type) {
	case SetName:
		data.Name = c.Value
	case SetMotto:
		data.Motto = c.Value

	case ReplaceSlots:
		data.Slots = clone(c.Slots)
	case AppendSlot:
		data.Slots = appendItem(data.Slots, c.Slot)
	case UpdateSlot:
		slots, err := updateAt(data.Slots, c.Index, c.Slot)
		if err != nil {
			return data, fmt.Errorf("failed to update slot: %w", err)
		}
		data.Slots = slots
	case RemoveSlot:
		slots, err := removeAt(data.Slots, c.Index)
		if err != nil {
			return data, fmt.Errorf("failed to remove slot: %w", err)
		}
		data.Slots = slots
	case RetimeSlot:
		if c.Index < 0 || c.Index >= len(data.Slots) {
			return data, fmt.Errorf("failed to retime slot: %w", ErrIndexOutOfRange)
		}
		slot := data.Slots[c.Index]
		slot.Start, slot.End = c.Start, c.End
		slots, _ := updateAt(data.Slots, c.Index, slot)
		data.Slots = slots

	case ReplaceAnnouncements:
		data.Announcements = clone(c.Announcements)
	case AppendAnnouncement:
		data.Announcements = appendItem(data.Announcements, c.Announcement)
	case UpdateAnnouncement:
		if c.Index < 0 || c.Index >= len(data.Announcements) {
			return data, fmt.Errorf("failed to update announcement: %w", ErrIndexOutOfRange)
		}
		ann := data.Announcements[c.Index]
		ann.Text = c.Text
		announcements, _ := updateAt(data.Announcements, c.Index, ann)
		data.Announcements = announcements
	case RemoveAnnouncement:
		announcements, err := removeAt(data.Announcements, c.Index)
		if err != nil {
			return data, fmt.Errorf("failed to remove announcement: %w", err)
		}
		data.Announcements = announcements
	case RewriteAnnouncement:
		index := -1
		for i, a := range data.Announcements {
			if a.ID == c.ID {
				index = i
				break
			}
		}
		if index < 0 {
			return data, fmt.Errorf("failed to rewrite announcement %q: %w", c.ID, ErrNotFound)
		}
		ann := data.Announcements[index]
		ann.Text = c.Text
		announcements, _ := updateAt(data.Announcements, index, ann)
		data.Announcements = announcements

	case ReplaceDuty:
		if err := checkDay(c.Day); err != nil {
			return data, err
		}
		data.DutyTeachers = withDay(data.DutyTeachers, c.Day, clone(c.Sections))
	case AppendDuty:
		if err := checkDay(c.Day); err != nil {
			return data, err
		}
		data.DutyTeachers = withDay(data.DutyTeachers, c.Day, appendItem(data.DutyTeachers[c.Day], c.Section))
	case UpdateDuty:
		if err := checkDay(c.Day); err != nil {
			return data, err
		}
		sections, err := updateAt(data.DutyTeachers[c.Day], c.Index, c.Section)
		if err != nil {
			return data, fmt.Errorf("failed to update duty section: %w", err)
		}
		data.DutyTeachers = withDay(data.DutyTeachers, c.Day, sections)
	case SetDutyTeachers:
		if err := checkDay(c.Day); err != nil {
			return data, err
		}
		current := data.DutyTeachers[c.Day]
		if c.Index < 0 || c.Index >= len(current) {
			return data, fmt.Errorf("failed to set duty teachers: %w", ErrIndexOutOfRange)
		}
		section := current[c.Index]
		section.Teachers = c.Teachers
		sections, _ := updateAt(current, c.Index, section)
		data.DutyTeachers = withDay(data.DutyTeachers, c.Day, sections)
	case RemoveDuty:
		if err := checkDay(c.Day); err != nil {
			return data, err
		}
		sections, err := removeAt(data.DutyTeachers[c.Day], c.Index)
		if err != nil {
			return data, fmt.Errorf("failed to remove duty section: %w", err)
		}
		data.DutyTeachers = withDay(data.DutyTeachers, c.Day, sections)

	case AppendSpecialDays:
		days := make([]entity.SpecialDay, 0, len(data.SpecialDays)+len(c.Days))
		days = append(days, data.SpecialDays...)
		data.SpecialDays = append(days, c.Days...)
	case UpdateSpecialDay:
		days, err := updateAt(data.SpecialDays, c.Index, c.Day)
		if err != nil {
			return data, fmt.Errorf("failed to update special day: %w", err)
		}
		data.SpecialDays = days
	case RemoveSpecialDay:
		days, err := removeAt(data.SpecialDays, c.Index)
		if err != nil {
			return data, fmt.Errorf("failed to remove special day: %w", err)
		}
		data.SpecialDays = days

	default:
		return data, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}

	return data, nil
}

func checkDay(day string) error {
	for _, d := range domain.SchoolDays {
		if d == day {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
}

func clone[T any](items []T) []T {
	return append([]T(nil), items...)
}

func appendItem[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func updateAt[T any](items []T, index int, item T) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := clone(items)
	out[index] = item
	return out, nil
}

func removeAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

func withDay(duty map[string][]entity.DutySection, day string, sections []entity.DutySection) map[string][]entity.DutySection {
	out := make(map[string][]entity.DutySection, len(duty)+1)
	for d, s := range duty {
		out[d] = s
	}
	out[day] = sections
	return out
}
