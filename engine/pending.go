package engine

import (
	"sync"

	"github.com/lixenwraith/collide/physics"
)

// PendingChanges is the arena of change sets staged during the compute
// phase, keyed by body. Staging a second change set for the same body in
// one frame overwrites the first: change sets carry whole values, not
// deltas, so there is nothing meaningful to merge. Multi-contact bodies
// therefore resolve last-write-wins within a frame
type PendingChanges[V, A, R any] struct {
	mu   sync.Mutex
	sets map[Entity]physics.ChangeSet[V, A, R]
}

// NewPendingChanges creates an empty arena
func NewPendingChanges[V, A, R any]() *PendingChanges[V, A, R] {
	return &PendingChanges[V, A, R]{
		sets: make(map[Entity]physics.ChangeSet[V, A, R]),
	}
}

// Stage records a change set for a body, replacing any previous one.
// Safe for concurrent callers
func (p *PendingChanges[V, A, R]) Stage(e Entity, set physics.ChangeSet[V, A, R]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sets[e] = set
}

// Drain returns and clears all staged change sets
func (p *PendingChanges[V, A, R]) Drain() map[Entity]physics.ChangeSet[V, A, R] {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.sets
	p.sets = make(map[Entity]physics.ChangeSet[V, A, R])
	return out
}

// Len reports the number of staged change sets
func (p *PendingChanges[V, A, R]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sets)
}
