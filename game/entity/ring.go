package entity

import "grid-snake/game/types"

// ring is a double-ended queue of cells. Index 0 is the front (the head).
type ring struct {
	buf   []types.Point
	front int
	n     int
}

func newRing(capacity int) *ring {
	if capacity < 1 {
		capacity = 1
	}
	return &ring{buf: make([]types.Point, capacity)}
}

func (r *ring) len() int {
	return r.n
}

func (r *ring) at(i int) types.Point {
	return r.buf[(r.front+i)%len(r.buf)]
}

func (r *ring) pushFront(p types.Point) {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.front = (r.front - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.front] = p
	r.n++
}

func (r *ring) pushBack(p types.Point) {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.buf[(r.front+r.n)%len(r.buf)] = p
	r.n++
}

func (r *ring) popBack() types.Point {
	r.n--
	return r.buf[(r.front+r.n)%len(r.buf)]
}

// grow doubles the backing array and unwraps the contents to index 0.
func (r *ring) grow() {
	buf := make([]types.Point, len(r.buf)*2)
	for i := 0; i < r.n; i++ {
		buf[i] = r.at(i)
	}
	r.buf = buf
	r.front = 0
}
