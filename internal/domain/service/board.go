package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/command"
	"github.com/diegoclair/school-board/internal/domain/contract"
	"github.com/diegoclair/school-board/internal/domain/entity"
	"github.com/diegoclair/school-board/internal/domain/schedule"
	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

var ErrAnnouncementGone = errors.New("announcement was removed while it was being rewritten")

type boardService struct {
	store   contract.ConfigStore
	textGen contract.TextGenerator
	weather contract.WeatherSource
	slack   contract.SlackClient
	logger  *zap.Logger
	now     func() time.Time

	shift *ShiftSelector
	duty  *DutyRotator

	announceChannel string

	latest     atomic.Pointer[entity.BoardView]
	motivation atomic.Pointer[string]
	refreshing atomic.Bool

	// clock task state
	tickMu    sync.Mutex
	lastState entity.LessonState
	lastLabel string
	lastDay   string
}

var _ contract.BoardService = (*boardService)(nil)

func newBoard(store contract.ConfigStore, textGen contract.TextGenerator, weather contract.WeatherSource, slackClient contract.SlackClient, logger *zap.Logger, opts Options) *boardService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	start := opts.StartShift
	if !start.Valid() {
		start = entity.Morning
	}

	b := &boardService{
		store:           store,
		textGen:         textGen,
		weather:         weather,
		slack:           slackClient,
		logger:          logger,
		now:             now,
		shift:           NewShiftSelector(start),
		duty:            NewDutyRotator(opts.DutyRotationModulus),
		announceChannel: opts.AnnounceChannel,
	}

	fallback := domain.FallbackMotivation
	b.motivation.Store(&fallback)

	return b
}

// Render builds one display frame for now. It reads the store once and
// derives everything else from that snapshot.
func (s *boardService) Render(now time.Time) entity.BoardView {
	shift := s.shift.Active()
	school := s.store.School(shift)

	duty := DutyForDay(school, now)
	specials := TodaysSpecialDays(school.SpecialDays, now)

	ticker := make([]entity.TickerItem, 0, len(specials)+len(school.Announcements))
	for _, d := range specials {
		ticker = append(ticker, entity.TickerItem{Kind: "special_day", Text: CelebrationText(d)})
	}
	for _, a := range school.Announcements {
		ticker = append(ticker, entity.TickerItem{Kind: "announcement", Text: a.Text})
	}

	var weather entity.Weather
	if s.weather != nil {
		weather = s.weather.Sample()
	}

	return entity.BoardView{
		RenderedAt:   now,
		Shift:        shift,
		Badge:        Badge(shift),
		Name:         school.Name,
		Motto:        school.Motto,
		Clock:        now.Format("15:04"),
		DateLabel:    DateLabel(now),
		Lesson:       schedule.Resolve(schedule.SecondOfDay(now), school.Slots),
		DutyDay:      WeekdayName(now),
		Duty:         duty,
		DutyIndex:    s.duty.Index(len(duty)),
		SpecialDays:  specials,
		Ticker:       ticker,
		Weather:      weather,
		Motivation:   *s.motivation.Load(),
		SlotWarnings: schedule.SlotWarnings(school.Slots),
	}
}

// DateLabel formats t like "Pazartesi, 16 Eylül"
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%s, %d %s", WeekdayName(t), t.Day(), domain.MonthNames[t.Month()])
}

// Latest returns the most recently rendered frame
func (s *boardService) Latest() entity.BoardView {
	if v := s.latest.Load(); v != nil {
		return *v
	}
	return s.refresh(s.now())
}

func (s *boardService) refresh(now time.Time) entity.BoardView {
	view := s.Render(now)
	s.latest.Store(&view)
	return view
}

// Tick is the 1 Hz clock task: render, log bell transitions and post the
// day's celebrations once the calendar day changes.
func (s *boardService) Tick(ctx context.Context, now time.Time) {
	view := s.refresh(now)

	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	if view.Lesson.State != s.lastState || view.Lesson.Label != s.lastLabel {
		if s.lastState != "" {
			s.logger.Info("Lesson state changed",
				zap.String("shift", string(view.Shift)),
				zap.String("from", string(s.lastState)),
				zap.String("to", string(view.Lesson.State)),
				zap.String("label", view.Lesson.Label),
			)
		}
		s.lastState = view.Lesson.State
		s.lastLabel = view.Lesson.Label
	}

	today := now.Format("2006-01-02")
	if s.lastDay != "" && s.lastDay != today {
		s.announceCelebrations(now)
	}
	s.lastDay = today
}

// FlipShift is the shift task
func (s *boardService) FlipShift() entity.Shift {
	shift := s.shift.Flip()
	s.logger.Debug("Shift flipped", zap.String("shift", string(shift)))
	return shift
}

func (s *boardService) ActiveShift() entity.Shift {
	return s.shift.Active()
}

// AdvanceDuty is the duty rotation task
func (s *boardService) AdvanceDuty() {
	s.duty.Advance()
}

// AdvanceWeather is the weather task
func (s *boardService) AdvanceWeather() {
	if s.weather != nil {
		s.weather.Advance()
	}
}

// RefreshMotivation asks the text generator for a new quote without
// blocking the caller. Only one refresh runs at a time.
func (s *boardService) RefreshMotivation(ctx context.Context) {
	if !s.refreshing.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer s.refreshing.Store(false)
		s.refreshMotivation(ctx)
	}()
}

func (s *boardService) refreshMotivation(ctx context.Context) {
	text := strings.TrimSpace(s.textGen.GenerateMotivation(ctx))
	if text == "" {
		text = domain.FallbackMotivation
	}
	s.motivation.Store(&text)
}

func (s *boardService) Motivation() string {
	return *s.motivation.Load()
}

func (s *boardService) Config() entity.BoardConfig {
	return s.store.Read()
}

// Apply runs an admin edit and returns the shift's data as the edit left
// it. Slot edits also carry warnings about times the resolver will skip
// or overlaps it will settle by first match.
func (s *boardService) Apply(shift entity.Shift, cmd command.Command) (entity.EditResult, error) {
	school, err := s.store.Apply(shift, cmd)
	if err != nil {
		s.logger.Warn("Configuration update rejected",
			zap.String("shift", string(shift)),
			zap.String("command", fmt.Sprintf("%T", cmd)),
			zap.Error(err),
		)
		return entity.EditResult{}, err
	}

	s.logger.Info("Configuration updated",
		zap.String("shift", string(shift)),
		zap.String("command", fmt.Sprintf("%T", cmd)),
		zap.Uint64("version", s.store.Version()),
	)

	s.refresh(s.now())

	result := entity.EditResult{School: school}
	switch cmd.(type) {
	case command.ReplaceSlots, command.AppendSlot, command.UpdateSlot, command.RetimeSlot, command.RemoveSlot:
		result.Warnings = schedule.SlotWarnings(school.Slots)
	}
	return result, nil
}

func (s *boardService) AddAnnouncement(shift entity.Shift, text string) (entity.Announcement, error) {
	ann := entity.Announcement{ID: uuid.NewString(), Text: text}
	if _, err := s.Apply(shift, command.AppendAnnouncement{Announcement: ann}); err != nil {
		return entity.Announcement{}, fmt.Errorf("failed to add announcement: %w", err)
	}
	return ann, nil
}

// PolishAnnouncement rewrites one announcement through the text generator.
// If the generator fails the text is kept as it was.
func (s *boardService) PolishAnnouncement(ctx context.Context, shift entity.Shift, index int) (entity.Announcement, error) {
	school := s.store.School(shift)
	if index < 0 || index >= len(school.Announcements) {
		return entity.Announcement{}, fmt.Errorf("failed to polish announcement: %w", command.ErrIndexOutOfRange)
	}
	original := school.Announcements[index]

	polished := strings.TrimSpace(s.textGen.RewriteAnnouncement(ctx, original.Text))
	if polished == "" {
		polished = original.Text
	}

	// the list may have changed while the generator was running
	_, err := s.Apply(shift, command.RewriteAnnouncement{ID: original.ID, Text: polished})
	if errors.Is(err, command.ErrNotFound) {
		return entity.Announcement{}, ErrAnnouncementGone
	}
	if err != nil {
		return entity.Announcement{}, fmt.Errorf("failed to polish announcement: %w", err)
	}

	return entity.Announcement{ID: original.ID, Text: polished}, nil
}

// ImportSpecialDays appends every valid line of text and reports how many
// entries were added.
func (s *boardService) ImportSpecialDays(shift entity.Shift, text string) (int, error) {
	days := ParseSpecialDays(text)
	if len(days) == 0 {
		return 0, nil
	}
	if _, err := s.Apply(shift, command.AppendSpecialDays{Days: days}); err != nil {
		return 0, fmt.Errorf("failed to import special days: %w", err)
	}
	return len(days), nil
}

func (s *boardService) announceCelebrations(now time.Time) {
	if s.slack == nil || s.announceChannel == "" {
		return
	}

	var lines []string
	for _, shift := range []entity.Shift{entity.Morning, entity.Afternoon} {
		for _, d := range TodaysSpecialDays(s.store.School(shift).SpecialDays, now) {
			lines = append(lines, fmt.Sprintf("• %s (%s)", CelebrationText(d), Badge(shift)))
		}
	}
	if len(lines) == 0 {
		return
	}

	message := fmt.Sprintf("🎉 *%s*\n\n%s", DateLabel(now), strings.Join(lines, "\n"))
	_, _, err := s.slack.PostMessage(
		s.announceChannel,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		s.logger.Error("Failed to post celebrations", zap.String("channel", s.announceChannel), zap.Error(err))
		return
	}

	s.logger.Info("Celebrations posted", zap.String("channel", s.announceChannel), zap.Int("count", len(lines)))
}
