package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diegoclair/school-board/internal/domain"
	"github.com/diegoclair/school-board/internal/domain/command"
	"github.com/diegoclair/school-board/internal/domain/contract"
	"github.com/diegoclair/school-board/internal/domain/entity"
	"github.com/diegoclair/school-board/internal/domain/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var errBadRequest = errors.New("bad request")

// BoardHandler serves the display frame and the JSON admin API. Path
// indices are 0-based.
type BoardHandler struct {
	board  contract.BoardService
	logger *zap.Logger
}

func NewBoardHandler(board contract.BoardService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{board: board, logger: logger}
}

type valueRequest struct {
	Value string `json:"value"`
}

type textRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.board.Latest())
}

func (h *BoardHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.board.Config())
}

func (h *BoardHandler) SetName(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	h.edit(w, r, &req, func() (command.Command, error) {
		return command.SetName{Value: req.Value}, nil
	})
}

func (h *BoardHandler) SetMotto(w http.ResponseWriter, r *http.Request) {
	var req valueRequest
	h.edit(w, r, &req, func() (command.Command, error) {
		return command.SetMotto{Value: req.Value}, nil
	})
}

func (h *BoardHandler) ReplaceSlots(w http.ResponseWriter, r *http.Request) {
	var slots []entity.LessonSlot
	h.edit(w, r, &slots, func() (command.Command, error) {
		return command.ReplaceSlots{Slots: slots}, nil
	})
}

func (h *BoardHandler) AddSlot(w http.ResponseWriter, r *http.Request) {
	var slot entity.LessonSlot
	h.edit(w, r, &slot, func() (command.Command, error) {
		return command.AppendSlot{Slot: slot}, nil
	})
}

func (h *BoardHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	var slot entity.LessonSlot
	h.edit(w, r, &slot, func() (command.Command, error) {
		index, err := pathIndex(r)
		return command.UpdateSlot{Index: index, Slot: slot}, err
	})
}

func (h *BoardHandler) RemoveSlot(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, nil, func() (command.Command, error) {
		index, err := pathIndex(r)
		return command.RemoveSlot{Index: index}, err
	})
}

func (h *BoardHandler) AddAnnouncement(w http.ResponseWriter, r *http.Request) {
	shift, err := pathShift(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: text is required", errBadRequest))
		return
	}

	ann, err := h.board.AddAnnouncement(shift, req.Text)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ann)
}

func (h *BoardHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	h.edit(w, r, &req, func() (command.Command, error) {
		index, err := pathIndex(r)
		return command.UpdateAnnouncement{Index: index, Text: req.Text}, err
	})
}

func (h *BoardHandler) RemoveAnnouncement(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, nil, func() (command.Command, error) {
		index, err := pathIndex(r)
		return command.RemoveAnnouncement{Index: index}, err
	})
}

func (h *BoardHandler) PolishAnnouncement(w http.ResponseWriter, r *http.Request) {
	shift, err := pathShift(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	index, err := pathIndex(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ann, err := h.board.PolishAnnouncement(r.Context(), shift, index)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ann)
}

func (h *BoardHandler) ReplaceDuty(w http.ResponseWriter, r *http.Request) {
	var sections []entity.DutySection
	h.edit(w, r, &sections, func() (command.Command, error) {
		day, err := pathDay(r)
		return command.ReplaceDuty{Day: day, Sections: sections}, err
	})
}

func (h *BoardHandler) AddDuty(w http.ResponseWriter, r *http.Request) {
	var section entity.DutySection
	h.edit(w, r, &section, func() (command.Command, error) {
		day, err := pathDay(r)
		return command.AppendDuty{Day: day, Section: section}, err
	})
}

func (h *BoardHandler) UpdateDuty(w http.ResponseWriter, r *http.Request) {
	var section entity.DutySection
	h.edit(w, r, &section, func() (command.Command, error) {
		day, err := pathDay(r)
		if err != nil {
			return nil, err
		}
		index, err := pathIndex(r)
		return command.UpdateDuty{Day: day, Index: index, Section: section}, err
	})
}

func (h *BoardHandler) RemoveDuty(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, nil, func() (command.Command, error) {
		day, err := pathDay(r)
		if err != nil {
			return nil, err
		}
		index, err := pathIndex(r)
		return command.RemoveDuty{Day: day, Index: index}, err
	})
}

func (h *BoardHandler) AddSpecialDays(w http.ResponseWriter, r *http.Request) {
	var days []entity.SpecialDay
	h.edit(w, r, &days, func() (command.Command, error) {
		for i := range days {
			if days[i].Type != entity.SpecialOccasion {
				days[i].Type = entity.Birthday
			}
		}
		return command.AppendSpecialDays{Days: days}, nil
	})
}

// ImportSpecialDays takes the plain text "name;DD.MM[;type]" format
func (h *BoardHandler) ImportSpecialDays(w http.ResponseWriter, r *http.Request) {
	shift, err := pathShift(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	n, err := h.board.ImportSpecialDays(shift, string(body))
	if err != nil {
		h.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": n})
}

func (h *BoardHandler) RemoveSpecialDay(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, nil, func() (command.Command, error) {
		index, err := pathIndex(r)
		return command.RemoveSpecialDay{Index: index}, err
	})
}

// edit decodes the body into dst when it is not nil, builds the command and
// applies it to the shift named in the path.
func (h *BoardHandler) edit(w http.ResponseWriter, r *http.Request, dst any, build func() (command.Command, error)) {
	shift, err := pathShift(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if dst != nil {
		if err := decodeBody(r, dst); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	cmd, err := build()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.board.Apply(shift, cmd)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *BoardHandler) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, command.ErrIndexOutOfRange), errors.Is(err, command.ErrUnknownWeekday):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrAnnouncementGone):
		writeError(w, http.StatusConflict, err)
	default:
		h.logger.Error("Board request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}

func pathShift(r *http.Request) (entity.Shift, error) {
	raw := chi.URLParam(r, "shift")
	shift, ok := entity.ParseShift(raw)
	if !ok {
		return "", fmt.Errorf("%w: unknown shift %q", errBadRequest, raw)
	}
	return shift, nil
}

func pathIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: invalid index %q", errBadRequest, raw)
	}
	return index, nil
}

func pathDay(r *http.Request) (string, error) {
	raw, err := url.PathUnescape(chi.URLParam(r, "day"))
	if err != nil {
		return "", fmt.Errorf("%w: invalid day: %v", errBadRequest, err)
	}
	day, ok := domain.WeekdayAliases[strings.ToLower(raw)]
	if !ok {
		return "", fmt.Errorf("%w: unknown school day %q", errBadRequest, raw)
	}
	return day, nil
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
