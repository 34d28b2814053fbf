package service

import (
	"testing"
	"time"

	"github.com/diegoclair/school-board/internal/domain/entity"
	"github.com/diegoclair/school-board/internal/store"
	"github.com/diegoclair/school-board/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	store             *store.Store
	mockTextGenerator *mocks.MockTextGenerator
	mockWeather       *mocks.MockWeatherSource
	mockSlackClient   *mocks.MockSlackClient
}

// newServiceTestMock wires a board over a real seeded store and mocked
// collaborators. The clock is pinned to now and the weather always
// samples 22 degrees.
func newServiceTestMock(t *testing.T, now time.Time, opts Options) (m allMocks, board *boardService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		store:             store.New(store.Seed()),
		mockTextGenerator: mocks.NewMockTextGenerator(ctrl),
		mockWeather:       mocks.NewMockWeatherSource(ctrl),
		mockSlackClient:   mocks.NewMockSlackClient(ctrl),
	}

	if opts.Now == nil {
		opts.Now = func() time.Time { return now }
	}

	m.mockWeather.EXPECT().Sample().Return(entity.Weather{Temperature: 22, Condition: "Güneşli"}).AnyTimes()

	board = NewInstance(m.store, m.mockTextGenerator, m.mockWeather, m.mockSlackClient, zap.NewNop(), opts).Board
	require.NotNil(t, board)

	return
}
