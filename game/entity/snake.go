package entity

import (
	"github.com/kamstrup/intmap"
	"github.com/pkg/errors"

	"grid-snake/game/types"
)

var (
	ErrShortSnake        = errors.New("snake length below minimum")
	ErrBadDirection      = errors.New("snake needs a cardinal direction")
	ErrTooCloseToEdge    = errors.New("snake start too close to the board edge")
	ErrGrowthTooLarge    = errors.New("growth step too large")
	ErrGrowthNotPositive = errors.New("growth step must be positive")
)

// Snake keeps only the cells of its live body, head first.
type Snake struct {
	body      *ring
	occupied  *intmap.Map[int64, int] // cell key -> number of body cells on it
	direction types.Direction
	length    int
}

// NewSnake lays out a snake of the given length behind head, facing dir.
func NewSnake(grid types.Grid, head types.Point, length int, dir types.Direction) (*Snake, error) {
	if length < types.InitialLength {
		return nil, errors.Wrapf(ErrShortSnake, "length %d", length)
	}
	if dir == types.NONE {
		return nil, ErrBadDirection
	}

	step := dir.ToPoint()
	s := &Snake{
		body:      newRing(length * 2),
		occupied:  intmap.New[int64, int](length * 4),
		direction: dir,
		length:    length,
	}
	for i := 0; i < length; i++ {
		p := head.Sub(step.Scale(i))
		if !grid.Contains(p) {
			return nil, errors.Wrapf(ErrTooCloseToEdge, "head %v facing %v needs cell %v", head, dir, p)
		}
		s.body.pushBack(p)
		s.mark(p)
	}
	return s, nil
}

// Move advances the head one cell in dir. A request to reverse onto the
// body is ignored and reported as false.
func (s *Snake) Move(dir types.Direction) bool {
	if dir == types.NONE || dir == s.direction.Opposite() {
		return false
	}
	s.direction = dir

	head := s.Head().Add(dir.ToPoint())
	s.body.pushFront(head)
	s.mark(head)
	for s.body.len() > s.length {
		s.unmark(s.body.popBack())
	}
	return true
}

// ChangeLength grows the logical length. The new cell shows up on the next move.
func (s *Snake) ChangeLength(delta int) error {
	if delta > types.MaxGrowth {
		return errors.Wrapf(ErrGrowthTooLarge, "delta %d", delta)
	}
	if delta < 1 {
		return errors.Wrapf(ErrGrowthNotPositive, "delta %d", delta)
	}
	s.length += delta
	return nil
}

func (s *Snake) Head() types.Point {
	return s.body.at(0)
}

// Body returns a copy of the live cells, head first.
func (s *Snake) Body() []types.Point {
	cells := make([]types.Point, s.body.len())
	for i := range cells {
		cells[i] = s.body.at(i)
	}
	return cells
}

// Len is the number of cells currently on the board.
func (s *Snake) Len() int {
	return s.body.len()
}

// Length is the logical length the body grows towards.
func (s *Snake) Length() int {
	return s.length
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) Contains(p types.Point) bool {
	return s.occupied.Has(p.Key())
}

// HitsItself reports whether the head shares a cell with any other body cell.
func (s *Snake) HitsItself() bool {
	n, _ := s.occupied.Get(s.Head().Key())
	return n > 1
}

func (s *Snake) mark(p types.Point) {
	n, _ := s.occupied.Get(p.Key())
	s.occupied.Put(p.Key(), n+1)
}

func (s *Snake) unmark(p types.Point) {
	n, _ := s.occupied.Get(p.Key())
	if n <= 1 {
		s.occupied.Del(p.Key())
		return
	}
	s.occupied.Put(p.Key(), n-1)
}
