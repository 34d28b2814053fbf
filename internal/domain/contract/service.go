package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"

	"github.com/diegoclair/school-board/internal/domain/command"
	"github.com/diegoclair/school-board/internal/domain/entity"
)

// BoardService is what the admin and display surfaces talk to
type BoardService interface {
	Latest() entity.BoardView
	Config() entity.BoardConfig
	Apply(shift entity.Shift, cmd command.Command) (entity.EditResult, error)
	AddAnnouncement(shift entity.Shift, text string) (entity.Announcement, error)
	PolishAnnouncement(ctx context.Context, shift entity.Shift, index int) (entity.Announcement, error)
	ImportSpecialDays(shift entity.Shift, text string) (int, error)
}
