package listing

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items []*Listing // front = newest
	byID  map[string]*Listing
	now   func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID: make(map[string]*Listing),
		now:  time.Now,
	}
}

func (r *InMemoryRepository) Append(l *Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	for r.byID[id] != nil {
		id = uuid.New().String()
	}

	l.ID = id
	l.IsClaimed = false
	l.CreatedAt = r.now()

	stored := *l
	r.items = append([]*Listing{&stored}, r.items...)
	r.byID[id] = &stored
	return nil
}

func (r *InMemoryRepository) Seed(items []Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool, len(items))
	for i := range items {
		id := items[i].ID
		if _, exists := r.byID[id]; exists || id == "" || seen[id] {
			return ErrDuplicateID
		}
		seen[id] = true
	}

	for i := range items {
		stored := items[i]
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = r.now()
		}
		r.items = append(r.items, &stored)
		r.byID[stored.ID] = &stored
	}
	return nil
}

func (r *InMemoryRepository) MarkClaimed(id string) (Listing, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byID[id]
	if !ok {
		return Listing{}, false, ErrNotFound
	}
	if l.IsClaimed {
		return *l, false, nil
	}
	l.IsClaimed = true
	return *l, true, nil
}

func (r *InMemoryRepository) Get(id string) (Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return Listing{}, ErrNotFound
	}
	return *l, nil
}

func (r *InMemoryRepository) List(status Status) []Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Listing, 0, len(r.items))
	for _, l := range r.items {
		if l.IsClaimed == (status == StatusClaimed) {
			out = append(out, *l)
		}
	}
	return out
}

func (r *InMemoryRepository) All() []Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Listing, 0, len(r.items))
	for _, l := range r.items {
		out = append(out, *l)
	}
	return out
}
