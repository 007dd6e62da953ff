package listing

// Appender accepts a validated draft and returns the stored listing.
type Appender interface {
	Append(d Draft) (Listing, error)
}

// Form holds the listing form's field values between edits.
type Form struct {
	Draft
}

// Submit validates the fields, hands the draft to the appender and, on
// success, resets every field to empty. A failed submit leaves the fields
// untouched and never reaches the appender when validation fails.
func (f *Form) Submit(a Appender) (Listing, error) {
	if err := f.Validate(); err != nil {
		return Listing{}, err
	}

	l, err := a.Append(f.Draft)
	if err != nil {
		return Listing{}, err
	}

	f.Reset()
	return l, nil
}

func (f *Form) Reset() {
	f.Draft = Draft{}
}
