package service

import (
	"strings"
	"time"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/entity"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TodaysSpecialDays keeps the entries whose DD.MM date equals today's.
// The comparison is exact, so "15.9" never matches "15.09".
func TodaysSpecialDays(days []entity.SpecialDay, now time.Time) []entity.SpecialDay {
	today := now.Format(domain.DateFormat)

	matches := []entity.SpecialDay{}
	for _, d := range days {
		if d.Date == today {
			matches = append(matches, d)
		}
	}
	return matches
}

// CelebrationText is the ticker line for a special day
func CelebrationText(d entity.SpecialDay) string {
	greeting := domain.OccasionGreeting
	if d.Type == entity.Birthday {
		greeting = domain.BirthdayGreeting
	}
	return cases.Upper(language.Turkish).String(d.Name) + " - " + greeting
}

// ParseSpecialDays reads one "name;DD.MM[;type]" entry per line. Lines with
// fewer than two fields are dropped without error.
func ParseSpecialDays(text string) []entity.SpecialDay {
	var days []entity.SpecialDay

	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(line, ";")
		if len(parts) < 2 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		day := entity.SpecialDay{
			Name: parts[0],
			Date: parts[1],
			Type: entity.Birthday,
		}
		if len(parts) > 2 {
			day.Type = parseSpecialDayType(parts[2])
		}
		days = append(days, day)
	}

	return days
}

// parseSpecialDayType defaults to Birthday for empty or unknown input
func parseSpecialDayType(s string) entity.SpecialDayType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "özel gün", "ozel gun", "özel", "ozel", "occasion", "special":
		return entity.SpecialOccasion
	default:
		return entity.Birthday
	}
}
