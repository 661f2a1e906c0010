package permission

import "testing"

func TestAllowAllGrantsEverything(t *testing.T) {
	var p Permission = AllowAll{}
	if err := p.HasPerm("anything"); err != nil {
		t.Errorf("AllowAll.HasPerm returned %v, want nil", err)
	}
}

func TestSetGrantsOnlyItsTokens(t *testing.T) {
	p := NewSet("read:age", "read:price")
	if err := p.HasPerm("read:age"); err != nil {
		t.Errorf("HasPerm(read:age) = %v, want nil", err)
	}
	if err := p.HasPerm("read:changed"); err == nil {
		t.Error("HasPerm(read:changed) = nil, want DeniedError")
	}
}

func TestEmptySetDeniesEverything(t *testing.T) {
	p := NewSet()
	if err := p.HasPerm("read:age"); err == nil {
		t.Error("expected empty Set to deny every token")
	}
}

func TestDeniedErrorMessageNamesToken(t *testing.T) {
	err := &DeniedError{Token: "read:age"}
	if got, want := err.Error(), "permission denied: read:age"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
