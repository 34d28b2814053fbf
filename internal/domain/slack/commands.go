package slack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/command"
	"github.com/diegoclair/school-board/internal/domain/entity"
)

type CommandType string

const (
	CmdName     CommandType = "name"
	CmdMotto    CommandType = "motto"
	CmdSlot     CommandType = "slot"
	CmdAnnounce CommandType = "announce"
	CmdDuty     CommandType = "duty"
	CmdSpecial  CommandType = "special"
	CmdShow     CommandType = "show"
	CmdStatus   CommandType = "status"
	CmdHelp     CommandType = "help"
)

const (
	ActionAdd    = "add"
	ActionSet    = "set"
	ActionEdit   = "edit"
	ActionRemove = "rm"
	ActionPolish = "polish"
	ActionImport = "import"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

const (
	usageName          = "`/board name <shift> <text>`"
	usageMotto         = "`/board motto <shift> <text>`"
	usageSlotAdd       = "`/board slot add <shift> <label> <HH:MM> <HH:MM>`"
	usageSlotSet       = "`/board slot set <shift> <n> <HH:MM> <HH:MM> [label]`"
	usageSlotRemove    = "`/board slot rm <shift> <n>`"
	usageAnnounceAdd   = "`/board announce add <shift> <text>`"
	usageAnnounceEdit  = "`/board announce edit <shift> <n> <text>`"
	usageAnnounceIndex = "`/board announce rm|polish <shift> <n>`"
	usageDutySet       = "`/board duty set <shift> <day> <n> <teachers>`"
	usageDutyAdd       = "`/board duty add <shift> <day> <section>`"
	usageDutyRemove    = "`/board duty rm <shift> <day> <n>`"
	usageSpecialAdd    = "`/board special add <shift> <name>;<DD.MM>[;type]`"
	usageSpecialImport = "`/board special import <shift>` followed by one `name;DD.MM[;type]` per line"
	usageSpecialRemove = "`/board special rm <shift> <n>`"
	usageShow          = "`/board show [shift]`"
)

// Command is a parsed /board invocation. Edit is set when the command maps
// straight onto a store edit; the rest need the board service (Text, Index).
type Command struct {
	Type   CommandType
	Action string
	Shift  entity.Shift
	Edit   command.Command
	Index  int
	Text   string
	Raw    string
}

func ParseCommand(text string) (*Command, error) {
	head, _ := splitHead(text, 1)
	if len(head) == 0 {
		return &Command{Type: CmdHelp, Raw: text}, nil
	}

	cmd := &Command{Raw: text}

	var err error
	switch strings.ToLower(head[0]) {
	case "name", "ad":
		err = parseSetText(cmd, CmdName, text)
	case "motto", "slogan":
		err = parseSetText(cmd, CmdMotto, text)
	case "slot", "ders":
		err = parseSlot(cmd, text)
	case "announce", "duyuru":
		err = parseAnnounce(cmd, text)
	case "duty", "nobet", "nöbet":
		err = parseDuty(cmd, text)
	case "special", "ozel", "özel":
		err = parseSpecial(cmd, text)
	case "show", "goster", "göster":
		err = parseShow(cmd, text)
	case "status", "durum":
		cmd.Type = CmdStatus
	case "help", "yardim", "yardım":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, head[0])
	}
	if err != nil {
		return nil, err
	}

	return cmd, nil
}

func parseSetText(cmd *Command, t CommandType, text string) error {
	usage := usageName
	if t == CmdMotto {
		usage = usageMotto
	}

	head, rest := splitHead(text, 2)
	if len(head) < 2 || rest == "" {
		return usageError(usage)
	}
	shift, err := parseShift(head[1])
	if err != nil {
		return err
	}

	cmd.Type = t
	cmd.Action = ActionSet
	cmd.Shift = shift
	cmd.Text = rest
	if t == CmdName {
		cmd.Edit = command.SetName{Value: rest}
	} else {
		cmd.Edit = command.SetMotto{Value: rest}
	}
	return nil
}

func parseSlot(cmd *Command, text string) error {
	head, rest := splitHead(text, 3)
	if len(head) < 3 {
		return usageError(usageSlotAdd, usageSlotSet, usageSlotRemove)
	}
	shift, err := parseShift(head[2])
	if err != nil {
		return err
	}

	cmd.Type = CmdSlot
	cmd.Action = strings.ToLower(head[1])
	cmd.Shift = shift

	fields := strings.Fields(rest)
	switch cmd.Action {
	case ActionAdd:
		if len(fields) < 3 {
			return usageError(usageSlotAdd)
		}
		n := len(fields)
		cmd.Edit = command.AppendSlot{Slot: entity.LessonSlot{
			Label: strings.Join(fields[:n-2], " "),
			Start: fields[n-2],
			End:   fields[n-1],
		}}
	case ActionSet:
		if len(fields) < 3 {
			return usageError(usageSlotSet)
		}
		index, err := parseIndex(fields[0])
		if err != nil {
			return err
		}
		cmd.Index = index
		if len(fields) > 3 {
			cmd.Edit = command.UpdateSlot{Index: index, Slot: entity.LessonSlot{
				Label: strings.Join(fields[3:], " "),
				Start: fields[1],
				End:   fields[2],
			}}
		} else {
			cmd.Edit = command.RetimeSlot{Index: index, Start: fields[1], End: fields[2]}
		}
	case ActionRemove, "remove":
		if len(fields) != 1 {
			return usageError(usageSlotRemove)
		}
		index, err := parseIndex(fields[0])
		if err != nil {
			return err
		}
		cmd.Action = ActionRemove
		cmd.Index = index
		cmd.Edit = command.RemoveSlot{Index: index}
	default:
		return usageError(usageSlotAdd, usageSlotSet, usageSlotRemove)
	}
	return nil
}

func parseAnnounce(cmd *Command, text string) error {
	head, rest := splitHead(text, 3)
	if len(head) < 3 {
		return usageError(usageAnnounceAdd, usageAnnounceEdit, usageAnnounceIndex)
	}
	shift, err := parseShift(head[2])
	if err != nil {
		return err
	}

	cmd.Type = CmdAnnounce
	cmd.Action = strings.ToLower(head[1])
	cmd.Shift = shift

	switch cmd.Action {
	case ActionAdd:
		if rest == "" {
			return usageError(usageAnnounceAdd)
		}
		cmd.Text = rest
	case ActionEdit:
		idx, body := splitHead(rest, 1)
		if len(idx) == 0 || body == "" {
			return usageError(usageAnnounceEdit)
		}
		index, err := parseIndex(idx[0])
		if err != nil {
			return err
		}
		cmd.Index = index
		cmd.Text = body
		cmd.Edit = command.UpdateAnnouncement{Index: index, Text: body}
	case ActionRemove, "remove", ActionPolish:
		if cmd.Action == "remove" {
			cmd.Action = ActionRemove
		}
		fields := strings.Fields(rest)
		if len(fields) != 1 {
			return usageError(usageAnnounceIndex)
		}
		index, err := parseIndex(fields[0])
		if err != nil {
			return err
		}
		cmd.Index = index
		if cmd.Action == ActionRemove {
			cmd.Edit = command.RemoveAnnouncement{Index: index}
		}
	default:
		return usageError(usageAnnounceAdd, usageAnnounceEdit, usageAnnounceIndex)
	}
	return nil
}

func parseDuty(cmd *Command, text string) error {
	head, rest := splitHead(text, 4)
	if len(head) < 4 {
		return usageError(usageDutySet, usageDutyAdd, usageDutyRemove)
	}
	shift, err := parseShift(head[2])
	if err != nil {
		return err
	}
	day, err := parseDay(head[3])
	if err != nil {
		return err
	}

	cmd.Type = CmdDuty
	cmd.Action = strings.ToLower(head[1])
	cmd.Shift = shift

	switch cmd.Action {
	case ActionSet:
		idx, teachers := splitHead(rest, 1)
		if len(idx) == 0 || teachers == "" {
			return usageError(usageDutySet)
		}
		index, err := parseIndex(idx[0])
		if err != nil {
			return err
		}
		cmd.Index = index
		cmd.Text = teachers
		cmd.Edit = command.SetDutyTeachers{Day: day, Index: index, Teachers: teachers}
	case ActionAdd:
		if rest == "" {
			return usageError(usageDutyAdd)
		}
		cmd.Text = rest
		cmd.Edit = command.AppendDuty{Day: day, Section: entity.DutySection{SectionName: rest}}
	case ActionRemove, "remove":
		fields := strings.Fields(rest)
		if len(fields) != 1 {
			return usageError(usageDutyRemove)
		}
		index, err := parseIndex(fields[0])
		if err != nil {
			return err
		}
		cmd.Action = ActionRemove
		cmd.Index = index
		cmd.Edit = command.RemoveDuty{Day: day, Index: index}
	default:
		return usageError(usageDutySet, usageDutyAdd, usageDutyRemove)
	}
	return nil
}

func parseSpecial(cmd *Command, text string) error {
	head, rest := splitHead(text, 3)
	if len(head) < 3 {
		return usageError(usageSpecialAdd, usageSpecialImport, usageSpecialRemove)
	}
	shift, err := parseShift(head[2])
	if err != nil {
		return err
	}

	cmd.Type = CmdSpecial
	cmd.Action = strings.ToLower(head[1])
	cmd.Shift = shift

	switch cmd.Action {
	case ActionAdd:
		if !strings.Contains(rest, ";") {
			return usageError(usageSpecialAdd)
		}
		cmd.Text = rest
	case ActionImport:
		if rest == "" {
			return usageError(usageSpecialImport)
		}
		cmd.Text = rest
	case ActionRemove, "remove":
		fields := strings.Fields(rest)
		if len(fields) != 1 {
			return usageError(usageSpecialRemove)
		}
		index, err := parseIndex(fields[0])
		if err != nil {
			return err
		}
		cmd.Action = ActionRemove
		cmd.Index = index
		cmd.Edit = command.RemoveSpecialDay{Index: index}
	default:
		return usageError(usageSpecialAdd, usageSpecialImport, usageSpecialRemove)
	}
	return nil
}

// parseShow leaves Shift empty when no shift is given, meaning both
func parseShow(cmd *Command, text string) error {
	cmd.Type = CmdShow
	head, _ := splitHead(text, 2)
	if len(head) < 2 {
		return nil
	}
	shift, err := parseShift(head[1])
	if err != nil {
		return fmt.Errorf("%w\n%s", err, usageShow)
	}
	cmd.Shift = shift
	return nil
}

func parseShift(s string) (entity.Shift, error) {
	shift, ok := entity.ParseShift(s)
	if !ok {
		return "", fmt.Errorf("%w: unknown shift %q, use morning/sabah or afternoon/ogle", ErrUsage, s)
	}
	return shift, nil
}

func parseDay(s string) (string, error) {
	day, ok := domain.WeekdayAliases[strings.ToLower(s)]
	if !ok {
		return "", fmt.Errorf("%w: unknown school day %q, use %s", ErrUsage, s, strings.Join(domain.SchoolDays, ", "))
	}
	return day, nil
}

// parseIndex turns a 1-based position typed by a person into a slice index
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a position, positions start at 1", ErrUsage, s)
	}
	return n - 1, nil
}

func usageError(usages ...string) error {
	return fmt.Errorf("%w: %s", ErrUsage, strings.Join(usages, " or "))
}

// splitHead pops up to n whitespace separated tokens off text and returns
// them with the trimmed remainder, which keeps its inner line breaks.
func splitHead(text string, n int) ([]string, string) {
	rest := strings.TrimSpace(text)
	tokens := make([]string, 0, n)

	for len(tokens) < n && rest != "" {
		end := strings.IndexFunc(rest, unicode.IsSpace)
		if end < 0 {
			tokens = append(tokens, rest)
			rest = ""
			break
		}
		tokens = append(tokens, rest[:end])
		rest = strings.TrimSpace(rest[end:])
	}

	return tokens, rest
}

func GetHelpText() string {
	return `*Available Commands:*

*School:*
• ` + "`/board name <shift> <text>`" + ` - Set the school name shown on the board
• ` + "`/board motto <shift> <text>`" + ` - Set the motto

*Timetable:*
• ` + "`/board slot add <shift> <label> <HH:MM> <HH:MM>`" + ` - Add a lesson (ex: ` + "`slot add sabah 9. Ders 16:30 17:10`" + `)
• ` + "`/board slot set <shift> <n> <HH:MM> <HH:MM> [label]`" + ` - Change lesson n
• ` + "`/board slot rm <shift> <n>`" + ` - Remove lesson n

*Announcements:*
• ` + "`/board announce add <shift> <text>`" + ` - Add to the ticker
• ` + "`/board announce edit <shift> <n> <text>`" + ` - Replace the text of announcement n
• ` + "`/board announce polish <shift> <n>`" + ` - Rewrite announcement n in a formal tone
• ` + "`/board announce rm <shift> <n>`" + ` - Remove announcement n

*Duty Teachers:*
• ` + "`/board duty set <shift> <day> <n> <teachers>`" + ` - Set the teachers of row n (ex: ` + "`duty set sabah pzt 1 Ali, Ayşe`" + `)
• ` + "`/board duty add <shift> <day> <section>`" + ` - Add a row
• ` + "`/board duty rm <shift> <day> <n>`" + ` - Remove row n

*Special Days:*
• ` + "`/board special add <shift> <name>;<DD.MM>[;type]`" + ` - Add a birthday or occasion (type: ` + "`doğum günü`" + ` or ` + "`özel gün`" + `)
• ` + "`/board special import <shift>`" + ` - Add many, one ` + "`name;DD.MM[;type]`" + ` per line below the command
• ` + "`/board special rm <shift> <n>`" + ` - Remove entry n

*Board:*
• ` + "`/board show [shift]`" + ` - Show the current configuration
• ` + "`/board status`" + ` - Show what the screen displays right now

Shifts: ` + "`morning`/`sabah`" + `, ` + "`afternoon`/`ogle`" + `. Positions start at 1.`
}
