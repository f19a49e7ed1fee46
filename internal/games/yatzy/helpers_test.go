package yatzy

import (
	"fmt"
	"sync"
)

// scriptedSource returns faces from a fixed script, cycling when exhausted.
type scriptedSource struct {
	faces []int
	i     int
}

func newScripted(faces ...int) *scriptedSource {
	return &scriptedSource{faces: faces}
}

func (s *scriptedSource) Intn(n int) int {
	f := s.faces[s.i%len(s.faces)]
	s.i++
	return (f - 1) % n
}

// recorder collects dispatched events.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = fmt.Sprintf("%T", ev)
	}
	return out
}

func (r *recorder) last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func newTestGame(gems int, players []string, faces ...int) *Game {
	return New(Options{
		Players:      players,
		StartingGems: gems,
		Source:       newScripted(faces...),
	})
}
