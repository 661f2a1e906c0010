package dateresolve

import (
	"testing"
	"time"

	"github.com/nrbnet/qfilter/field"
)

func TestResolveISODate(t *testing.T) {
	today := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	rng, err := Resolver{}.Resolve(today, field.From, "2022-12-24")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := rng.Start(), "2022-12-24"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveGermanDate(t *testing.T) {
	today := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	rng, err := Resolver{}.Resolve(today, field.From, "24.12.2022")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := rng.Start(), "2022-12-24"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveBareMonthFrom(t *testing.T) {
	today := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	rng, err := Resolver{}.Resolve(today, field.From, "Feb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := rng.Start(), "2023-02-01"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveBareMonthToRollsToNextMonth(t *testing.T) {
	today := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	rng, err := Resolver{}.Resolve(today, field.To, "Feb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := rng.Start(), "2023-03-01"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveBareMonthToRollsIntoNextYearForDecember(t *testing.T) {
	today := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	rng, err := Resolver{}.Resolve(today, field.To, "Dez")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := rng.Start(), "2024-01-01"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveGermanAndEnglishMonthAliases(t *testing.T) {
	today := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, tok := range []string{"February", "februar", "FEB"} {
		rng, err := Resolver{}.Resolve(today, field.From, tok)
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error: %v", tok, err)
		}
		if got, want := rng.Start(), "2023-02-01"; got != want {
			t.Errorf("Resolve(%q) = %q, want %q", tok, got, want)
		}
	}
}

func TestResolveUnrecognizedTokenErrors(t *testing.T) {
	today := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := (Resolver{}).Resolve(today, field.From, "not-a-date"); err == nil {
		t.Error("expected error for unrecognized token")
	}
}
