package listing

import "errors"

var (
	ErrNotFound    = errors.New("listing not found")
	ErrDuplicateID = errors.New("listing id already exists")
)

// Repository defines the item store contract.
// Returned listings are copies; callers never mutate stored state directly.
type Repository interface {
	// Append assigns a fresh ID, forces IsClaimed=false and inserts at the front.
	Append(l *Listing) error
	// Seed inserts listings in the given order at the back, keeping their IDs.
	Seed(items []Listing) error
	// MarkClaimed reports whether the call flipped the flag. Claiming an
	// already claimed listing is a no-op.
	MarkClaimed(id string) (Listing, bool, error)
	Get(id string) (Listing, error)
	List(status Status) []Listing
	All() []Listing
}
