package slack

import (
	"testing"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/command"
	"github.com/diegoclair/school-board/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *Command
		wantErr error
	}{
		{
			name: "Should default to help",
			text: "   ",
			want: &Command{Type: CmdHelp},
		},
		{
			name: "Should parse name with spaces",
			text: "name sabah  ATATÜRK ANADOLU LİSESİ ",
			want: &Command{Type: CmdName, Action: ActionSet, Shift: entity.Morning, Text: "ATATÜRK ANADOLU LİSESİ",
				Edit: command.SetName{Value: "ATATÜRK ANADOLU LİSESİ"}},
		},
		{
			name: "Should parse motto for the afternoon",
			text: "motto öğle Gelecek Burada",
			want: &Command{Type: CmdMotto, Action: ActionSet, Shift: entity.Afternoon, Text: "Gelecek Burada",
				Edit: command.SetMotto{Value: "Gelecek Burada"}},
		},
		{
			name:    "Should require text for name",
			text:    "name sabah",
			wantErr: ErrUsage,
		},
		{
			name:    "Should reject an unknown shift",
			text:    "name gece Okul",
			wantErr: ErrUsage,
		},
		{
			name: "Should parse slot add with a multi word label",
			text: "slot add morning 9. Ders 16:30 17:10",
			want: &Command{Type: CmdSlot, Action: ActionAdd, Shift: entity.Morning,
				Edit: command.AppendSlot{Slot: entity.LessonSlot{Label: "9. Ders", Start: "16:30", End: "17:10"}}},
		},
		{
			name: "Should parse slot set as a retime without a label",
			text: "slot set sabah 2 09:15 09:55",
			want: &Command{Type: CmdSlot, Action: ActionSet, Shift: entity.Morning, Index: 1,
				Edit: command.RetimeSlot{Index: 1, Start: "09:15", End: "09:55"}},
		},
		{
			name: "Should parse slot set with a label",
			text: "slot set ogle 1 13:30 14:10 Öğle 1",
			want: &Command{Type: CmdSlot, Action: ActionSet, Shift: entity.Afternoon, Index: 0,
				Edit: command.UpdateSlot{Index: 0, Slot: entity.LessonSlot{Label: "Öğle 1", Start: "13:30", End: "14:10"}}},
		},
		{
			name: "Should keep unreadable times for the board to warn about",
			text: "slot add sabah Etüt 25:00 x",
			want: &Command{Type: CmdSlot, Action: ActionAdd, Shift: entity.Morning,
				Edit: command.AppendSlot{Slot: entity.LessonSlot{Label: "Etüt", Start: "25:00", End: "x"}}},
		},
		{
			name: "Should parse slot rm",
			text: "slot rm sabah 8",
			want: &Command{Type: CmdSlot, Action: ActionRemove, Shift: entity.Morning, Index: 7,
				Edit: command.RemoveSlot{Index: 7}},
		},
		{
			name:    "Should reject position zero",
			text:    "slot rm sabah 0",
			wantErr: ErrUsage,
		},
		{
			name:    "Should reject a slot without times",
			text:    "slot add sabah 9.Ders",
			wantErr: ErrUsage,
		},
		{
			name:    "Should reject an unknown slot action",
			text:    "slot move sabah 1",
			wantErr: ErrUsage,
		},
		{
			name: "Should parse announce add",
			text: "announce add sabah Veli toplantısı cuma 14:00'te.",
			want: &Command{Type: CmdAnnounce, Action: ActionAdd, Shift: entity.Morning, Text: "Veli toplantısı cuma 14:00'te."},
		},
		{
			name: "Should parse announce edit",
			text: "duyuru edit sabah 1 Sınav ertelendi.",
			want: &Command{Type: CmdAnnounce, Action: ActionEdit, Shift: entity.Morning, Index: 0, Text: "Sınav ertelendi.",
				Edit: command.UpdateAnnouncement{Index: 0, Text: "Sınav ertelendi."}},
		},
		{
			name: "Should parse announce polish without a store edit",
			text: "announce polish ogle 2",
			want: &Command{Type: CmdAnnounce, Action: ActionPolish, Shift: entity.Afternoon, Index: 1},
		},
		{
			name: "Should parse announce remove",
			text: "announce remove sabah 3",
			want: &Command{Type: CmdAnnounce, Action: ActionRemove, Shift: entity.Morning, Index: 2,
				Edit: command.RemoveAnnouncement{Index: 2}},
		},
		{
			name:    "Should require a position for polish",
			text:    "announce polish sabah",
			wantErr: ErrUsage,
		},
		{
			name: "Should parse duty set with an ascii day",
			text: "duty set sabah carsamba 2 Ali Yılmaz, Ayşe Demir",
			want: &Command{Type: CmdDuty, Action: ActionSet, Shift: entity.Morning, Index: 1, Text: "Ali Yılmaz, Ayşe Demir",
				Edit: command.SetDutyTeachers{Day: domain.Wednesday, Index: 1, Teachers: "Ali Yılmaz, Ayşe Demir"}},
		},
		{
			name: "Should parse duty add",
			text: "nöbet add ogle Cuma Bahçe",
			want: &Command{Type: CmdDuty, Action: ActionAdd, Shift: entity.Afternoon, Text: "Bahçe",
				Edit: command.AppendDuty{Day: domain.Friday, Section: entity.DutySection{SectionName: "Bahçe"}}},
		},
		{
			name: "Should parse duty rm with a numbered day",
			text: "duty rm sabah 1 5",
			want: &Command{Type: CmdDuty, Action: ActionRemove, Shift: entity.Morning, Index: 4,
				Edit: command.RemoveDuty{Day: domain.Monday, Index: 4}},
		},
		{
			name:    "Should reject a weekend duty day",
			text:    "duty add sabah cumartesi Bahçe",
			wantErr: ErrUsage,
		},
		{
			name: "Should parse special add",
			text: "special add sabah Ayşe Kaya;05.03;doğum günü",
			want: &Command{Type: CmdSpecial, Action: ActionAdd, Shift: entity.Morning, Text: "Ayşe Kaya;05.03;doğum günü"},
		},
		{
			name:    "Should reject special add without a date",
			text:    "special add sabah Ayşe Kaya",
			wantErr: ErrUsage,
		},
		{
			name: "Should keep line breaks for special import",
			text: "special import ogle\nAyşe Kaya;05.03\nCumhuriyet Bayramı;29.10;Özel Gün",
			want: &Command{Type: CmdSpecial, Action: ActionImport, Shift: entity.Afternoon,
				Text: "Ayşe Kaya;05.03\nCumhuriyet Bayramı;29.10;Özel Gün"},
		},
		{
			name: "Should parse special rm",
			text: "special rm sabah 1",
			want: &Command{Type: CmdSpecial, Action: ActionRemove, Shift: entity.Morning, Index: 0,
				Edit: command.RemoveSpecialDay{Index: 0}},
		},
		{
			name: "Should parse show for both shifts",
			text: "show",
			want: &Command{Type: CmdShow},
		},
		{
			name: "Should parse show for one shift",
			text: "show afternoon",
			want: &Command{Type: CmdShow, Shift: entity.Afternoon},
		},
		{
			name: "Should parse status",
			text: "status",
			want: &Command{Type: CmdStatus},
		},
		{
			name:    "Should reject unknown commands",
			text:    "reboot",
			wantErr: ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			tt.want.Raw = tt.text
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_splitHead(t *testing.T) {
	head, rest := splitHead("  special import sabah\nA;01.02\n  B;03.04  ", 3)
	assert.Equal(t, []string{"special", "import", "sabah"}, head)
	assert.Equal(t, "A;01.02\n  B;03.04", rest)

	head, rest = splitHead("status", 3)
	assert.Equal(t, []string{"status"}, head)
	assert.Empty(t, rest)
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()
	for _, word := range []string{"name", "motto", "slot", "announce", "duty", "special", "show", "status"} {
		assert.Contains(t, help, "/board "+word)
	}
}
