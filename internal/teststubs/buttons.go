package teststubs

import (
	"sync"

	"github.com/preston-bernstein/sports-ticker/internal/input"
)

// ScriptedButtons is a test double for input.Reader. Queued edges are
// reported once each, in order, per button.
type ScriptedButtons struct {
	mu      sync.Mutex
	pending map[input.Button]int
	Reads   int
}

// Press queues an edge for b.
func (s *ScriptedButtons) Press(b input.Button) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		s.pending = make(map[input.Button]int)
	}
	s.pending[b]++
}

// Edge consumes one queued edge for b.
func (s *ScriptedButtons) Edge(b input.Button) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reads++
	if s.pending[b] == 0 {
		return false
	}
	s.pending[b]--
	return true
}
