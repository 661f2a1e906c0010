package qerr

import "testing"

func TestParseErrorMessage(t *testing.T) {
	err := NewParseError("boom")
	if err.Error() != "boom" {
		t.Errorf("got %q, want %q", err.Error(), "boom")
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	if ErrLikeNotPossible == nil || ErrDenied == nil {
		t.Fatal("sentinel errors must not be nil")
	}
	if ErrLikeNotPossible == ErrDenied {
		t.Error("ErrLikeNotPossible and ErrDenied must be distinct")
	}
}
