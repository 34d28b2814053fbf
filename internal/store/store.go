package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/diegoclair/school-board/internal/domain/command"
	"github.com/diegoclair/school-board/internal/domain/contract"
	"github.com/diegoclair/school-board/internal/domain/entity"
)

var ErrUnknownShift = errors.New("unknown shift")

// Store keeps the board configuration in process memory. Readers load an
// immutable snapshot; writers build the next snapshot and swap it in, so a
// read never observes a half-applied edit.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[entity.BoardConfig]
	version atomic.Uint64
}

var _ contract.ConfigStore = (*Store)(nil)

// New creates a store holding a private copy of initial
func New(initial entity.BoardConfig) *Store {
	s := &Store{}
	cfg := initial.Clone()
	s.current.Store(&cfg)
	return s
}

// Read returns a deep copy of the current configuration
func (s *Store) Read() entity.BoardConfig {
	return s.current.Load().Clone()
}

// School returns a deep copy of one shift's data
func (s *Store) School(shift entity.Shift) entity.SchoolData {
	return s.current.Load().School(shift).Clone()
}

// Version increases by one on every successful Apply
func (s *Store) Version() uint64 {
	return s.version.Load()
}

// Apply runs cmd through the reducer for the given shift and returns a
// copy of the resulting shift data
func (s *Store) Apply(shift entity.Shift, cmd command.Command) (entity.SchoolData, error) {
	if !shift.Valid() {
		return entity.SchoolData{}, fmt.Errorf("%w: %q", ErrUnknownShift, shift)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	next, err := command.Reduce(cur.School(shift), cmd)
	if err != nil {
		return entity.SchoolData{}, err
	}

	cfg := cur.WithSchool(shift, next)
	s.current.Store(&cfg)
	s.version.Add(1)
	return next.Clone(), nil
}
