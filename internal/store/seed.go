package store

import (
	"fmt"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/entity"
	"github.com/google/uuid"
)

// Seed builds the configuration the board starts with
func Seed() entity.BoardConfig {
	return entity.BoardConfig{
		Morning: entity.SchoolData{
			Name:  "SABAH ANADOLU LİSESİ",
			Motto: "Bilgi Aydınlıktır",
			Slots: seedSlots(8),
			Announcements: []entity.Announcement{
				{ID: uuid.NewString(), Text: "Sabah grubu deneme sınavı saat 09:00'da başlayacaktır."},
			},
			DutyTeachers: emptyDuty(),
			SpecialDays: []entity.SpecialDay{
				{Name: "Okul Açılış Yıl Dönümü", Date: "15.09", Type: entity.SpecialOccasion},
			},
		},
		Afternoon: entity.SchoolData{
			Name:  "ÖĞLE ANADOLU LİSESİ",
			Motto: "Gelecek Burada Başlar",
			Slots: seedSlots(13),
			Announcements: []entity.Announcement{
				{ID: uuid.NewString(), Text: "Öğle grubu kurs kayıtları devam etmektedir."},
			},
			DutyTeachers: emptyDuty(),
			SpecialDays: []entity.SpecialDay{
				{Name: "29 Ekim Cumhuriyet Bayramı", Date: "29.10", Type: entity.SpecialOccasion},
			},
		},
	}
}

// seedSlots builds lessons starting at firstHour:30 and lasting 40 minutes
func seedSlots(firstHour int) []entity.LessonSlot {
	slots := make([]entity.LessonSlot, 0, domain.DefaultSlotCount)
	for i := 0; i < domain.DefaultSlotCount; i++ {
		slots = append(slots, entity.LessonSlot{
			Label: fmt.Sprintf("%d. Ders", i+1),
			Start: fmt.Sprintf("%d:30", firstHour+i),
			End:   fmt.Sprintf("%d:10", firstHour+i+1),
		})
	}
	return slots
}

func emptyDuty() map[string][]entity.DutySection {
	duty := make(map[string][]entity.DutySection, len(domain.SchoolDays))
	for _, day := range domain.SchoolDays {
		sections := make([]entity.DutySection, 0, domain.DefaultDutySections)
		for i := 0; i < domain.DefaultDutySections; i++ {
			sections = append(sections, entity.DutySection{SectionName: fmt.Sprintf("%d. Kat", i+1)})
		}
		duty[day] = sections
	}
	return duty
}
