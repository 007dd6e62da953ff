package listing

import "time"

// Listing is one posted offer of surplus food.
type Listing struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    string    `json:"quantity"`
	PickupTime  string    `json:"pickup_time"`
	Restaurant  string    `json:"restaurant"`
	Image       string    `json:"image,omitempty"` // data URI or URL
	IsClaimed   bool      `json:"is_claimed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Draft is a listing as captured by the form, before it has an identity.
type Draft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	PickupTime  string `json:"pickup_time"`
	Image       string `json:"image,omitempty"`
}

// Status filters a listing view.
type Status string

const (
	StatusAvailable Status = "available"
	StatusClaimed   Status = "claimed"
)
