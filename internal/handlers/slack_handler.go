package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/contract"
	"github.com/diegoclair/school-board/internal/domain/entity"
	slackcmd "github.com/diegoclair/school-board/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	board         contract.BoardService
	signingSecret string
	logger        *zap.Logger
}

func NewSlackHandler(board contract.BoardService, signingSecret string, logger *zap.Logger) *SlackHandler {
	return &SlackHandler{
		board:         board,
		signingSecret: signingSecret,
		logger:        logger,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.logger.Warn("Rejected slash command", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.logger.Warn("Rejected slash command", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	h.logger.Info("Slash command received",
		zap.String("user_id", s.UserID),
		zap.String("type", string(cmd.Type)),
		zap.String("action", cmd.Action),
		zap.String("shift", string(cmd.Shift)),
	)

	response := h.handleCommand(r.Context(), cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch {
	case cmd.Type == slackcmd.CmdHelp:
		return h.handleHelp()
	case cmd.Type == slackcmd.CmdShow:
		return h.handleShow(cmd)
	case cmd.Type == slackcmd.CmdStatus:
		return h.handleStatus()
	case cmd.Type == slackcmd.CmdAnnounce && cmd.Action == slackcmd.ActionAdd:
		return h.handleAddAnnouncement(cmd)
	case cmd.Type == slackcmd.CmdAnnounce && cmd.Action == slackcmd.ActionPolish:
		return h.handlePolish(ctx, cmd)
	case cmd.Type == slackcmd.CmdSpecial && (cmd.Action == slackcmd.ActionAdd || cmd.Action == slackcmd.ActionImport):
		return h.handleImportSpecialDays(cmd)
	case cmd.Edit != nil:
		return h.handleEdit(cmd)
	default:
		return h.createErrorResponse("Command not recognized")
	}
}

func (h *SlackHandler) handleEdit(cmd *slackcmd.Command) *slack.Msg {
	result, err := h.board.Apply(cmd.Shift, cmd.Edit)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error updating the board: %v", err))
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("✅ %s updated for the %s shift", describe(cmd), cmd.Shift))
	for _, w := range result.Warnings {
		text.WriteString("\n⚠️ " + w)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleAddAnnouncement(cmd *slackcmd.Command) *slack.Msg {
	ann, err := h.board.AddAnnouncement(cmd.Shift, cmd.Text)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error adding announcement: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Announcement added to the %s shift:\n> %s", cmd.Shift, ann.Text),
	}
}

func (h *SlackHandler) handlePolish(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	ann, err := h.board.PolishAnnouncement(ctx, cmd.Shift, cmd.Index)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error rewriting announcement %d: %v", cmd.Index+1, err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✨ Announcement %d now reads:\n> %s", cmd.Index+1, ann.Text),
	}
}

func (h *SlackHandler) handleImportSpecialDays(cmd *slackcmd.Command) *slack.Msg {
	n, err := h.board.ImportSpecialDays(cmd.Shift, cmd.Text)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error adding special days: %v", err))
	}
	if n == 0 {
		return h.createErrorResponse("No valid lines found. Use `name;DD.MM[;type]`, one per line")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %d special day(s) added to the %s shift", n, cmd.Shift),
	}
}

func (h *SlackHandler) handleShow(cmd *slackcmd.Command) *slack.Msg {
	cfg := h.board.Config()

	shifts := []entity.Shift{entity.Morning, entity.Afternoon}
	if cmd.Shift != "" {
		shifts = []entity.Shift{cmd.Shift}
	}

	var text strings.Builder
	for i, shift := range shifts {
		if i > 0 {
			text.WriteString("\n")
		}
		text.WriteString(formatSchool(shift, cfg.School(shift)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	view := h.board.Latest()

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*%s* · %s\n", view.Name, view.Badge))
	text.WriteString(fmt.Sprintf("🕒 %s · %s\n", view.Clock, view.DateLabel))
	text.WriteString(fmt.Sprintf("🔔 %s · %s %s\n", view.Lesson.Title, view.Lesson.Label, view.Lesson.Countdown))
	text.WriteString(fmt.Sprintf("🌤️ %d°C %s\n", view.Weather.Temperature, view.Weather.Condition))
	if len(view.Duty) > 0 {
		d := view.Duty[view.DutyIndex]
		text.WriteString(fmt.Sprintf("👮 %s: %s · %s\n", view.DutyDay, d.SectionName, d.Teachers))
	}
	for _, item := range view.Ticker {
		text.WriteString("📣 " + item.Text + "\n")
	}
	text.WriteString("💬 _" + view.Motivation + "_")

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func describe(cmd *slackcmd.Command) string {
	switch cmd.Type {
	case slackcmd.CmdName:
		return "School name"
	case slackcmd.CmdMotto:
		return "Motto"
	case slackcmd.CmdSlot:
		return "Timetable"
	case slackcmd.CmdAnnounce:
		return "Announcements"
	case slackcmd.CmdDuty:
		return "Duty roster"
	case slackcmd.CmdSpecial:
		return "Special days"
	default:
		return "Board"
	}
}

func formatSchool(shift entity.Shift, school entity.SchoolData) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("*%s* (%s)\n_%s_\n", school.Name, shift, school.Motto))

	b.WriteString("\n*Lessons:*\n")
	for i, s := range school.Slots {
		b.WriteString(fmt.Sprintf("%d. %s %s-%s\n", i+1, s.Label, s.Start, s.End))
	}

	b.WriteString("\n*Announcements:*\n")
	if len(school.Announcements) == 0 {
		b.WriteString("none\n")
	}
	for i, a := range school.Announcements {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, a.Text))
	}

	b.WriteString("\n*Duty:*\n")
	for _, day := range dutyDays(school) {
		var rows []string
		for _, s := range school.DutyTeachers[day] {
			teachers := s.Teachers
			if teachers == "" {
				teachers = "-"
			}
			rows = append(rows, fmt.Sprintf("%s: %s", s.SectionName, teachers))
		}
		b.WriteString(fmt.Sprintf("%s → %s\n", day, strings.Join(rows, " | ")))
	}

	b.WriteString("\n*Special days:*\n")
	if len(school.SpecialDays) == 0 {
		b.WriteString("none\n")
	}
	for i, d := range school.SpecialDays {
		b.WriteString(fmt.Sprintf("%d. %s %s (%s)\n", i+1, d.Date, d.Name, d.Type))
	}

	return b.String()
}

func dutyDays(school entity.SchoolData) []string {
	days := make([]string, 0, len(domain.SchoolDays))
	for _, d := range domain.SchoolDays {
		if len(school.DutyTeachers[d]) > 0 {
			days = append(days, d)
		}
	}
	return days
}
