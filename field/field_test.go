package field

import "testing"

func TestComparatorParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Comparator
		wantErr bool
	}{
		{"=", Equal, false},
		{"==", Equal, false},
		{">=", Gte, false},
		{"=>", Gte, false},
		{"<=", Lte, false},
		{"=<", Lte, false},
		{"!=", NotEqual, false},
		{"=!", NotEqual, false},
		{">", Gt, false},
		{"<", Lt, false},
		{"~=", Equal, true},
	}
	for _, tt := range tests {
		got, err := ParseComparator(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseComparator(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseComparator(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseComparator(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComparatorNegateIsInvolution(t *testing.T) {
	for _, c := range []Comparator{Equal, NotEqual, Gt, Lt, Gte, Lte} {
		if got := c.Negate().Negate(); got != c {
			t.Errorf("Negate(Negate(%v)) = %v, want %v", c, got, c)
		}
	}
}

func TestComparatorNegateTable(t *testing.T) {
	tests := []struct {
		in, want Comparator
	}{
		{Equal, NotEqual},
		{Gt, Lte},
		{Gte, Lt},
	}
	for _, tt := range tests {
		if got := tt.in.Negate(); got != tt.want {
			t.Errorf("%v.Negate() = %v, want %v", tt.in, got, tt.want)
		}
		if got := tt.want.Negate(); got != tt.in {
			t.Errorf("%v.Negate() = %v, want %v (symmetric)", tt.want, got, tt.in)
		}
	}
}

func TestComparatorString(t *testing.T) {
	tests := map[Comparator]string{
		Equal: "=", NotEqual: "!=", Gt: ">", Lt: "<", Gte: ">=", Lte: "<=",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", c, got, want)
		}
	}
}

func TestSchemaRejectsDuplicateAlias(t *testing.T) {
	_, err := NewSchema(
		NewDescriptor("a", NewText(), "perm.a", "x"),
		NewDescriptor("b", NewText(), "perm.b", "X"),
	)
	if err == nil {
		t.Fatal("expected error for case-insensitive duplicate alias")
	}
}

func TestSchemaRejectsEmptyAliases(t *testing.T) {
	_, err := NewSchema(NewDescriptor("a", NewText(), "perm.a"))
	if err == nil {
		t.Fatal("expected error for field with no aliases")
	}
}

func TestSchemaFindIsCaseInsensitive(t *testing.T) {
	schema, err := NewSchema(NewDescriptor("article_number", NewVarchar(10), "perm.art", "ArtNr"))
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	f, ok := schema.Find("artnr")
	if !ok {
		t.Fatal("expected to find field by case-folded alias")
	}
	if f.SQLName != "article_number" {
		t.Errorf("SQLName = %q, want %q", f.SQLName, "article_number")
	}
	if _, ok := schema.Find("nope"); ok {
		t.Error("expected no match for unknown alias")
	}
}

func TestSchemaFieldsPreservesDeclarationOrder(t *testing.T) {
	schema, err := NewSchema(
		NewDescriptor("a", NewText(), "p", "a"),
		NewDescriptor("b", NewText(), "p", "b"),
		NewDescriptor("c", NewText(), "p", "c"),
	)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	got := schema.Fields()
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if got[i].SQLName != w {
			t.Errorf("Fields()[%d].SQLName = %q, want %q", i, got[i].SQLName, w)
		}
	}
}

func TestFieldTypeBucket(t *testing.T) {
	tests := []struct {
		ft   FieldType
		want string
	}{
		{NewVarchar(10), "TEXT"},
		{NewText(), "TEXT"},
		{NewInteger(0, 10), "NUMBER"},
		{NewNumeric(5, 2), "NUMBER"},
		{NewBool(), "BOOL"},
		{NewDate(), "TIME"},
		{NewTimestamp(), "TIME"},
	}
	for _, tt := range tests {
		if got := tt.ft.Bucket(); got != tt.want {
			t.Errorf("Bucket() = %q, want %q", got, tt.want)
		}
	}
}

func TestAliasList(t *testing.T) {
	d := NewDescriptor("x", NewText(), "p", "a", "b", "c")
	if got, want := d.AliasList(), "[a, b, c]"; got != want {
		t.Errorf("AliasList() = %q, want %q", got, want)
	}
}
