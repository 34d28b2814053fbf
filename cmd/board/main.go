package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/school-board/internal/config"
	"github.com/diegoclair/school-board/internal/domain/contract"
	"github.com/diegoclair/school-board/internal/domain/service"
	"github.com/diegoclair/school-board/internal/handlers"
	"github.com/diegoclair/school-board/internal/logger"
	"github.com/diegoclair/school-board/internal/scheduler"
	"github.com/diegoclair/school-board/internal/store"
	"github.com/diegoclair/school-board/internal/textgen"
	"github.com/diegoclair/school-board/internal/weather"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Fatal("Board stopped with error", zap.Error(err))
	}
	zapLogger.Info("Board stopped")
}

func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) error {
	var textGen contract.TextGenerator = textgen.Static{}
	if cfg.AIEnabled() {
		textGen = textgen.NewClient(textgen.Config{
			APIKey:  cfg.AIAPIKey,
			BaseURL: cfg.AIBaseURL,
			Model:   cfg.AIModel,
			Timeout: cfg.AITimeout,
		}, zapLogger.Named("textgen"))
	} else {
		zapLogger.Info("AI_API_KEY not set, using built-in texts")
	}

	// a nil *slack.Client must not end up inside the interface
	var slackClient contract.SlackClient
	if cfg.SlackBotToken != "" {
		slackClient = slack.New(cfg.SlackBotToken)
	}

	shift, err := cfg.Shift()
	if err != nil {
		return err
	}

	board := service.NewInstance(
		store.New(store.Seed()),
		textGen,
		weather.NewSimulator(),
		slackClient,
		zapLogger.Named("board"),
		service.Options{
			DutyRotationModulus: cfg.DutyRotationModulus,
			AnnounceChannel:     cfg.SlackAnnounceChannel,
			StartShift:          shift,
		},
	).Board

	sched := scheduler.New(scheduler.RealClock{}, zapLogger.Named("scheduler"), board.Tasks(service.Periods{
		Clock:      cfg.ClockPeriod,
		Shift:      cfg.ShiftPeriod,
		Duty:       cfg.DutyPeriod,
		Weather:    cfg.WeatherPeriod,
		Motivation: cfg.MotivationPeriod,
	})...)

	var slackHandler *handlers.SlackHandler
	if cfg.SlackEnabled() {
		slackHandler = handlers.NewSlackHandler(board, cfg.SlackSigningSecret, zapLogger.Named("slack"))
	} else {
		zapLogger.Info("SLACK_SIGNING_SECRET not set, /slack/commands is disabled")
	}

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handlers.NewRouter(handlers.RouterConfig{
			Board:          board,
			Slack:          slackHandler,
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AdminRateLimit: cfg.AdminRateLimit,
			Logger:         zapLogger.Named("http"),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sched.Run(ctx)
	})

	g.Go(func() error {
		zapLogger.Info("Server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		zapLogger.Info("Shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
