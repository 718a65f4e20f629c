package registry

import (
	"sync"

	"github.com/aretw0/slideception/pkg/domain"
)

// Registry is the ordered, append-only collection of slides of one deck.
// Insertion order is presentation order.
type Registry struct {
	mu     sync.RWMutex
	slides []domain.Slide
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a slide and returns its 1-based position.
func (r *Registry) Add(s domain.Slide) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slides = append(r.slides, s)
	return len(r.slides)
}

// Len returns the number of registered slides.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slides)
}

// Slides returns a snapshot of the registered slides in order.
func (r *Registry) Slides() []domain.Slide {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Slide, len(r.slides))
	copy(out, r.slides)
	return out
}
