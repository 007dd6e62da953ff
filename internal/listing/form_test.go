package listing

import (
	"errors"
	"testing"
)

type recordingAppender struct {
	calls []Draft
	err   error
}

func (a *recordingAppender) Append(d Draft) (Listing, error) {
	if a.err != nil {
		return Listing{}, a.err
	}
	a.calls = append(a.calls, d)
	return Listing{ID: "new", Name: d.Name}, nil
}

func filledForm() *Form {
	return &Form{Draft: Draft{
		Name:        "Pasta Salad",
		Description: "Cold pasta with pesto",
		Quantity:    "1 tray",
		PickupTime:  "Today at 5 PM",
	}}
}

func TestSubmitMissingDescription(t *testing.T) {
	f := filledForm()
	f.Description = ""
	a := &recordingAppender{}

	_, err := f.Submit(a)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(a.calls) != 0 {
		t.Fatalf("appender must not be called on validation failure")
	}
	if f.Name != "Pasta Salad" {
		t.Errorf("fields must be kept after a failed submit")
	}

	var v *ValidationError
	errors.As(err, &v)
	if len(v.Fields) != 1 || v.Fields[0] != "description" {
		t.Errorf("expected description to be reported, got %v", v.Fields)
	}
}

func TestSubmitResetsFields(t *testing.T) {
	f := filledForm()
	a := &recordingAppender{}

	l, err := f.Submit(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Name != "Pasta Salad" {
		t.Errorf("unexpected listing %+v", l)
	}
	if f.Draft != (Draft{}) {
		t.Errorf("expected fields reset, got %+v", f.Draft)
	}
}

func TestSubmitAppenderErrorKeepsFields(t *testing.T) {
	f := filledForm()
	a := &recordingAppender{err: errors.New("boom")}

	if _, err := f.Submit(a); err == nil {
		t.Fatal("expected error")
	}
	if f.Name == "" {
		t.Errorf("fields must survive a failed append")
	}
}

func TestValidateWhitespaceOnly(t *testing.T) {
	d := Draft{Name: "  ", Description: "x", Quantity: "x", PickupTime: "x"}
	if err := d.Validate(); !IsValidation(err) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}

func TestValidateImageIsOptional(t *testing.T) {
	if err := filledForm().Validate(); err != nil {
		t.Fatalf("image should be optional: %v", err)
	}
}
