package board

import (
	"context"
	"errors"
	"sync"

	"nourishnet/internal/listing"
	"nourishnet/internal/mealidea"
	"nourishnet/internal/selection"
)

var (
	ErrEmptySelection = errors.New("please select at least one food item to generate a meal idea")
	ErrClaimed        = errors.New("listing is already claimed")
	ErrInvalidView    = errors.New("view must be find or post")
)

// Suggester produces display text for a list of item names.
type Suggester interface {
	Suggest(ctx context.Context, foodItems []string) string
}

// Publisher pushes board events to open views. The board calls Publish while
// holding its lock, so implementations must not block or call back into it.
type Publisher interface {
	Publish(kind string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any) {}

// Board owns all application state. Every mutation goes through one of its
// methods while holding mu, so readers never see a claimed listing that is
// still selected.
type Board struct {
	mu         sync.Mutex
	repo       listing.Repository
	selected   *selection.Set
	suggester  Suggester
	events     Publisher
	provider   string
	view       View
	suggestion *mealidea.Result
	seq        uint64
	inflight   sync.WaitGroup
}

func NewService(
	repo listing.Repository,
	suggester Suggester,
	events Publisher,
	provider string,
) *Board {
	if events == nil {
		events = nopPublisher{}
	}
	return &Board{
		repo:      repo,
		selected:  selection.New(),
		suggester: suggester,
		events:    events,
		provider:  provider,
		view:      ViewFind,
	}
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (b *Board) Seed(items []listing.Listing) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.repo.Seed(items)
}

// Append validates the draft, stores it at the front and switches back to
// the browse view.
func (b *Board) Append(d listing.Draft) (listing.Listing, error) {
	if err := d.Validate(); err != nil {
		return listing.Listing{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	l := &listing.Listing{
		Name:        d.Name,
		Description: d.Description,
		Quantity:    d.Quantity,
		PickupTime:  d.PickupTime,
		Restaurant:  b.provider,
		Image:       d.Image,
	}
	if err := b.repo.Append(l); err != nil {
		return listing.Listing{}, err
	}
	b.view = ViewFind

	b.events.Publish(EventListingCreated, *l)
	return *l, nil
}

// Claim marks the listing claimed and drops it from the selection in one
// step. Claiming twice is a no-op.
func (b *Board) Claim(id string) (listing.Listing, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, changed, err := b.repo.MarkClaimed(id)
	if err != nil {
		return listing.Listing{}, err
	}
	deselected := b.selected.Remove(id)

	if changed {
		b.events.Publish(EventListingClaimed, l)
	}
	if deselected {
		b.events.Publish(EventSelectionChanged, b.selected.IDs())
	}
	return l, nil
}

func (b *Board) Listings(status listing.Status) []listing.Listing {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.repo.List(status)
}

// --------------------------------------------------
// Selection
// --------------------------------------------------

// Select toggles a listing's membership. Only unclaimed listings can be
// added; removing is always allowed.
func (b *Board) Select(id string, selected bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, err := b.repo.Get(id)
	if err != nil {
		return err
	}
	if selected && l.IsClaimed {
		return ErrClaimed
	}

	if b.selected.Toggle(id, selected) {
		b.events.Publish(EventSelectionChanged, b.selected.IDs())
	}
	return nil
}

func (b *Board) Selected() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selected.IDs()
}

// --------------------------------------------------
// Meal idea
// --------------------------------------------------

// RequestMealIdea opens the display in the loading state and resolves it in
// the background. The newest request wins: a reply for a superseded or
// closed request is dropped, though its call is left to finish.
//
// Events are published while mu is held, so subscribers see them in the
// same order as the state transitions.
func (b *Board) RequestMealIdea(ctx context.Context) (*mealidea.Result, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.selected.Len() == 0 {
		return nil, ErrEmptySelection
	}

	var names []string
	for _, l := range b.repo.All() {
		if b.selected.Has(l.ID) {
			names = append(names, l.Name)
		}
	}

	b.seq++
	ticket := b.seq
	b.suggestion = mealidea.NewLoading(names)
	b.suggestion.Ticket = ticket
	loading := b.suggestion.Clone()

	b.events.Publish(EventSuggestionLoading, loading)

	b.inflight.Add(1)
	go func() {
		defer b.inflight.Done()

		text := b.suggester.Suggest(context.WithoutCancel(ctx), names)

		b.mu.Lock()
		defer b.mu.Unlock()

		if b.seq != ticket || b.suggestion == nil {
			return
		}
		b.suggestion.Resolve(text)
		b.events.Publish(EventSuggestionResolved, b.suggestion.Clone())
	}()

	return loading.Clone(), nil
}

// Suggestion returns the current display state, or nil when closed.
func (b *Board) Suggestion() *mealidea.Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.suggestion.Clone()
}

// CloseSuggestion discards the result and any reply still on its way.
func (b *Board) CloseSuggestion() {
	b.mu.Lock()
	defer b.mu.Unlock()

	wasOpen := b.suggestion != nil
	b.suggestion = nil
	b.seq++

	if wasOpen {
		b.events.Publish(EventSuggestionClosed, map[string]uint64{"ticket": b.seq})
	}
}

// Wait blocks until every outstanding suggestion call has returned.
func (b *Board) Wait() {
	b.inflight.Wait()
}

// --------------------------------------------------
// View + projection
// --------------------------------------------------

func (b *Board) SetView(v View) error {
	if !v.Valid() {
		return ErrInvalidView
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.view != v {
		b.view = v
		b.events.Publish(EventViewChanged, v)
	}
	return nil
}

func (b *Board) Snapshot() Projection {
	b.mu.Lock()
	defer b.mu.Unlock()

	p := Projection{
		View:       b.view,
		Available:  []Card{},
		Claimed:    []Card{},
		Selected:   b.selected.IDs(),
		CanSuggest: b.selected.Len() > 0,
	}

	for _, l := range b.repo.All() {
		if l.IsClaimed {
			p.Claimed = append(p.Claimed, Card{Listing: l})
			continue
		}
		p.Available = append(p.Available, Card{
			Listing:    l,
			Claimable:  true,
			Selectable: true,
			Selected:   b.selected.Has(l.ID),
		})
	}

	if b.suggestion != nil {
		res := b.suggestion.Clone()
		p.Suggestion = &SuggestionView{Result: res, Blocks: res.ParsedBlocks()}
	}

	return p
}
