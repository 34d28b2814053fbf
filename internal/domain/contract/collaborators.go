package contract

//go:generate mockgen -source=collaborators.go -destination=../../../mocks/collaborators.go -package=mocks

import (
	"context"

	"github.com/diegoclair/school-board/internal/domain/entity"
)

// TextGenerator produces display text. Implementations never fail: they
// fall back to a sensible default instead.
type TextGenerator interface {
	GenerateMotivation(ctx context.Context) string
	RewriteAnnouncement(ctx context.Context, text string) string
}

// WeatherSource is a purely decorative temperature/condition feed
type WeatherSource interface {
	Sample() entity.Weather
	Advance()
}
