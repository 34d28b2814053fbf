package handlers

import (
	"net/http"
	"time"

	"github.com/diegoclair/school-board/internal/domain/contract"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Board contract.BoardService
	// Slack is optional; without it /slack/commands is not mounted
	Slack          *SlackHandler
	AllowedOrigins []string
	// AdminRateLimit is requests per second per client IP on admin routes
	AdminRateLimit int
	Logger         *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	adminLimiter := httprate.LimitByIP(cfg.AdminRateLimit, time.Second)
	board := NewBoardHandler(cfg.Board, cfg.Logger)

	router.Route("/api", func(r chi.Router) {
		r.Get("/board", board.GetBoard)

		r.Group(func(r chi.Router) {
			r.Use(adminLimiter)
			r.Get("/config", board.GetConfig)
			r.Route("/config/{shift}", func(r chi.Router) {
				attachConfigRoutes(r, board)
			})
		})
	})

	if cfg.Slack != nil {
		router.With(adminLimiter).Post("/slack/commands", cfg.Slack.HandleSlashCommand)
	}

	return router
}

func attachConfigRoutes(r chi.Router, h *BoardHandler) {
	r.Put("/name", h.SetName)
	r.Put("/motto", h.SetMotto)

	r.Put("/slots", h.ReplaceSlots)
	r.Post("/slots", h.AddSlot)
	r.Put("/slots/{index}", h.UpdateSlot)
	r.Delete("/slots/{index}", h.RemoveSlot)

	r.Post("/announcements", h.AddAnnouncement)
	r.Put("/announcements/{index}", h.UpdateAnnouncement)
	r.Delete("/announcements/{index}", h.RemoveAnnouncement)
	r.Post("/announcements/{index}/polish", h.PolishAnnouncement)

	r.Put("/duty/{day}", h.ReplaceDuty)
	r.Post("/duty/{day}", h.AddDuty)
	r.Put("/duty/{day}/{index}", h.UpdateDuty)
	r.Delete("/duty/{day}/{index}", h.RemoveDuty)

	r.Post("/special-days", h.AddSpecialDays)
	r.Post("/special-days/import", h.ImportSpecialDays)
	r.Delete("/special-days/{index}", h.RemoveSpecialDay)
}
