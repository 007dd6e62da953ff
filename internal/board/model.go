package board

import (
	"nourishnet/internal/listing"
	"nourishnet/internal/mealidea"
)

type View string

const (
	ViewFind View = "find"
	ViewPost View = "post"
)

func (v View) Valid() bool {
	return v == ViewFind || v == ViewPost
}

// Card is a listing as rendered in the browse view.
type Card struct {
	listing.Listing
	Claimable  bool `json:"claimable"`
	Selectable bool `json:"selectable"`
	Selected   bool `json:"selected"`
}

// SuggestionView is the modal state: absent when closed, loading or resolved.
type SuggestionView struct {
	*mealidea.Result
	Blocks []mealidea.Block `json:"blocks"`
}

// Projection is a read-only snapshot of the whole board.
type Projection struct {
	View       View            `json:"view"`
	Available  []Card          `json:"available"`
	Claimed    []Card          `json:"claimed"`
	Selected   []string        `json:"selected"`
	CanSuggest bool            `json:"can_suggest"`
	Suggestion *SuggestionView `json:"suggestion"`
}

// Event names pushed to open views.
const (
	EventListingCreated     = "listing.created"
	EventListingClaimed     = "listing.claimed"
	EventSelectionChanged   = "selection.changed"
	EventSuggestionLoading  = "suggestion.loading"
	EventSuggestionResolved = "suggestion.resolved"
	EventSuggestionClosed   = "suggestion.closed"
	EventViewChanged        = "view.changed"
)
