package contract

import (
	"github.com/diegoclair/school-board/internal/domain/command"
	"github.com/diegoclair/school-board/internal/domain/entity"
)

// ConfigStore holds both shift configurations for the process lifetime
type ConfigStore interface {
	Read() entity.BoardConfig
	School(shift entity.Shift) entity.SchoolData
	// Apply returns the shift's data as it stands right after the edit
	Apply(shift entity.Shift, cmd command.Command) (entity.SchoolData, error)
	Version() uint64
}
