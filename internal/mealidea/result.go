package mealidea

// Result is the display state of one meal-idea request.
type Result struct {
	Loading bool     `json:"loading"`
	Text    *string  `json:"text"`
	Items   []string `json:"items"` // names captured when the request was issued
	Ticket  uint64   `json:"ticket"`
}

// NewLoading captures a copy of the item names so later selection changes
// cannot alter the result.
func NewLoading(items []string) *Result {
	captured := make([]string, len(items))
	copy(captured, items)
	return &Result{Loading: true, Items: captured}
}

func (r *Result) Resolve(text string) {
	r.Loading = false
	r.Text = &text
}

// ParsedBlocks parses the resolved text; it returns nil while loading.
func (r *Result) ParsedBlocks() []Block {
	if r.Loading || r.Text == nil {
		return nil
	}
	return ParseMarkup(*r.Text)
}

// Clone returns a deep copy safe to hand to readers.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := NewLoading(r.Items)
	out.Loading = r.Loading
	out.Ticket = r.Ticket
	if r.Text != nil {
		text := *r.Text
		out.Text = &text
	}
	return out
}
