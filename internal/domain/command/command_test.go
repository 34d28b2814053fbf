package command

import (
	"testing"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unknownCommand struct{}

func (unknownCommand) isCommand() {}

func baseSchool() entity.SchoolData {
	return entity.SchoolData{
		Name:  "SABAH ANADOLU LİSESİ",
		Motto: "Bilgi Aydınlıktır",
		Slots: []entity.LessonSlot{
			{Label: "1. Ders", Start: "08:30", End: "09:10"},
			{Label: "2. Ders", Start: "09:20", End: "10:00"},
		},
		Announcements: []entity.Announcement{
			{ID: "a1", Text: "Deneme sınavı"},
			{ID: "a2", Text: "Kurs kayıtları"},
		},
		DutyTeachers: map[string][]entity.DutySection{
			domain.Monday: {
				{SectionName: "1. Kat", Teachers: "Ali"},
				{SectionName: "2. Kat", Teachers: "Veli"},
			},
		},
		SpecialDays: []entity.SpecialDay{
			{Name: "Okul Açılış Yıl Dönümü", Date: "15.09", Type: entity.SpecialOccasion},
		},
	}
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		check   func(t *testing.T, got entity.SchoolData)
		wantErr error
	}{
		{
			name: "Should set name",
			cmd:  SetName{Value: "YENİ LİSE"},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Equal(t, "YENİ LİSE", got.Name)
			},
		},
		{
			name: "Should accept an empty motto",
			cmd:  SetMotto{Value: ""},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Equal(t, "", got.Motto)
			},
		},
		{
			name: "Should replace slots",
			cmd:  ReplaceSlots{Slots: []entity.LessonSlot{{Label: "X", Start: "10:00", End: "10:40"}}},
			check: func(t *testing.T, got entity.SchoolData) {
				require.Len(t, got.Slots, 1)
				assert.Equal(t, "X", got.Slots[0].Label)
			},
		},
		{
			name: "Should append slot",
			cmd:  AppendSlot{Slot: entity.LessonSlot{Label: "3. Ders", Start: "10:10", End: "10:50"}},
			check: func(t *testing.T, got entity.SchoolData) {
				require.Len(t, got.Slots, 3)
				assert.Equal(t, "3. Ders", got.Slots[2].Label)
			},
		},
		{
			name: "Should update slot",
			cmd:  UpdateSlot{Index: 1, Slot: entity.LessonSlot{Label: "2. Ders", Start: "09:25", End: "10:05"}},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Equal(t, "09:25", got.Slots[1].Start)
			},
		},
		{
			name:    "Should reject slot update out of range",
			cmd:     UpdateSlot{Index: 2},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name: "Should remove slot",
			cmd:  RemoveSlot{Index: 0},
			check: func(t *testing.T, got entity.SchoolData) {
				require.Len(t, got.Slots, 1)
				assert.Equal(t, "2. Ders", got.Slots[0].Label)
			},
		},
		{
			name:    "Should reject negative slot removal",
			cmd:     RemoveSlot{Index: -1},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name: "Should retime slot and keep its label",
			cmd:  RetimeSlot{Index: 1, Start: "09:15", End: "09:55"},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Equal(t, entity.LessonSlot{Label: "2. Ders", Start: "09:15", End: "09:55"}, got.Slots[1])
			},
		},
		{
			name:    "Should reject retime out of range",
			cmd:     RetimeSlot{Index: 2, Start: "09:15", End: "09:55"},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name: "Should append announcement",
			cmd:  AppendAnnouncement{Announcement: entity.Announcement{ID: "a3", Text: "Veli toplantısı"}},
			check: func(t *testing.T, got entity.SchoolData) {
				require.Len(t, got.Announcements, 3)
				assert.Equal(t, "a3", got.Announcements[2].ID)
			},
		},
		{
			name: "Should update announcement text and keep its id",
			cmd:  UpdateAnnouncement{Index: 1, Text: "Kayıtlar uzatıldı"},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Equal(t, entity.Announcement{ID: "a2", Text: "Kayıtlar uzatıldı"}, got.Announcements[1])
			},
		},
		{
			name:    "Should reject announcement update out of range",
			cmd:     UpdateAnnouncement{Index: 5, Text: "x"},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name: "Should remove announcement",
			cmd:  RemoveAnnouncement{Index: 0},
			check: func(t *testing.T, got entity.SchoolData) {
				require.Len(t, got.Announcements, 1)
				assert.Equal(t, "a2", got.Announcements[0].ID)
			},
		},
		{
			name: "Should rewrite announcement by id",
			cmd:  RewriteAnnouncement{ID: "a2", Text: "Kayıtlar uzatıldı"},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Equal(t, []entity.Announcement{
					{ID: "a1", Text: "Deneme sınavı"},
					{ID: "a2", Text: "Kayıtlar uzatıldı"},
				}, got.Announcements)
			},
		},
		{
			name:    "Should reject rewrite of a missing announcement",
			cmd:     RewriteAnnouncement{ID: "gone", Text: "x"},
			wantErr: ErrNotFound,
		},
		{
			name: "Should replace announcements",
			cmd:  ReplaceAnnouncements{Announcements: nil},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Empty(t, got.Announcements)
			},
		},
		{
			name: "Should replace a duty day",
			cmd:  ReplaceDuty{Day: domain.Friday, Sections: []entity.DutySection{{SectionName: "Bahçe", Teachers: "Ayşe"}}},
			check: func(t *testing.T, got entity.SchoolData) {
				require.Len(t, got.DutyTeachers[domain.Friday], 1)
				assert.Len(t, got.DutyTeachers[domain.Monday], 2)
			},
		},
		{
			name:    "Should reject weekend duty",
			cmd:     ReplaceDuty{Day: domain.Saturday},
			wantErr: ErrUnknownWeekday,
		},
		{
			name: "Should append duty section",
			cmd:  AppendDuty{Day: domain.Monday, Section: entity.DutySection{SectionName: "3. Kat"}},
			check: func(t *testing.T, got entity.SchoolData) {
				require.Len(t, got.DutyTeachers[domain.Monday], 3)
			},
		},
		{
			name: "Should update duty section",
			cmd:  UpdateDuty{Day: domain.Monday, Index: 1, Section: entity.DutySection{SectionName: "2. Kat", Teachers: "Fatma, Hasan"}},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Equal(t, "Fatma, Hasan", got.DutyTeachers[domain.Monday][1].Teachers)
			},
		},
		{
			name:    "Should reject duty update on an empty day",
			cmd:     UpdateDuty{Day: domain.Tuesday, Index: 0},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name: "Should set duty teachers and keep the section name",
			cmd:  SetDutyTeachers{Day: domain.Monday, Index: 0, Teachers: "Zeynep"},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Equal(t, entity.DutySection{SectionName: "1. Kat", Teachers: "Zeynep"}, got.DutyTeachers[domain.Monday][0])
			},
		},
		{
			name:    "Should reject duty teachers out of range",
			cmd:     SetDutyTeachers{Day: domain.Monday, Index: 2, Teachers: "Zeynep"},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "Should reject duty teachers for an unknown day",
			cmd:     SetDutyTeachers{Day: "Pazar", Index: 0, Teachers: "Zeynep"},
			wantErr: ErrUnknownWeekday,
		},
		{
			name: "Should remove duty section",
			cmd:  RemoveDuty{Day: domain.Monday, Index: 0},
			check: func(t *testing.T, got entity.SchoolData) {
				require.Len(t, got.DutyTeachers[domain.Monday], 1)
				assert.Equal(t, "2. Kat", got.DutyTeachers[domain.Monday][0].SectionName)
			},
		},
		{
			name: "Should append special days",
			cmd: AppendSpecialDays{Days: []entity.SpecialDay{
				{Name: "Ayşe Kaya", Date: "05.03", Type: entity.Birthday},
			}},
			check: func(t *testing.T, got entity.SchoolData) {
				require.Len(t, got.SpecialDays, 2)
				assert.Equal(t, "Ayşe Kaya", got.SpecialDays[1].Name)
			},
		},
		{
			name: "Should update special day",
			cmd:  UpdateSpecialDay{Index: 0, Day: entity.SpecialDay{Name: "Açılış", Date: "16.09", Type: entity.SpecialOccasion}},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Equal(t, "16.09", got.SpecialDays[0].Date)
			},
		},
		{
			name: "Should remove special day",
			cmd:  RemoveSpecialDay{Index: 0},
			check: func(t *testing.T, got entity.SchoolData) {
				assert.Empty(t, got.SpecialDays)
			},
		},
		{
			name:    "Should reject unknown commands",
			cmd:     unknownCommand{},
			wantErr: ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := baseSchool()
			snapshot := before.Clone()

			got, err := Reduce(before, tt.cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				tt.check(t, got)
			}

			// the input value must be left untouched
			assert.Equal(t, snapshot, before)
		})
	}
}
