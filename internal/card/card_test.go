package card

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseTypeTag(t *testing.T) {
	tests := []struct {
		in   string
		want TypeTag
	}{
		{"Forest", Forest},
		{"  settlement ", Settlement},
		{"SNOW", Snow},
		{"[NONE]", None},
		{"none", None},
	}
	for _, tt := range tests {
		got, err := ParseTypeTag(tt.in)
		if err != nil {
			t.Fatalf("ParseTypeTag(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseTypeTag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	_, err := ParseTypeTag("Volcano")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNewTypeSetKeepsFirstOccurrence(t *testing.T) {
	s, err := NewTypeSet(River, Forest, River, Hill, Forest)
	if err != nil {
		t.Fatalf("NewTypeSet: %v", err)
	}
	want := []TypeTag{River, Forest, Hill}
	if !reflect.DeepEqual(s.Tags(), want) {
		t.Fatalf("Tags = %v, want %v", s.Tags(), want)
	}
	if got := s.String(); got != "River, Forest, Hill" {
		t.Fatalf("String = %q", got)
	}
}

func TestNewTypeSetRejectsNone(t *testing.T) {
	for _, tag := range []TypeTag{None, TypeTag(42), TypeTag(-1)} {
		_, err := NewTypeSet(Forest, tag)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("NewTypeSet(%v): expected ValidationError, got %v", tag, err)
		}
	}
}

func TestTagsReturnsCopy(t *testing.T) {
	s := MustTypeSet(Sea, Road)
	tags := s.Tags()
	tags[0] = Snow
	if s.Has(Snow) || !s.Has(Sea) {
		t.Fatalf("mutating Tags() changed the set: %v", s.Tags())
	}
}

func TestEmptySetIsValid(t *testing.T) {
	c := Blank()
	if err := c.Validate(); err != nil {
		t.Fatalf("blank card: %v", err)
	}
	if c.Types.String() != "" || c.Types.Len() != 0 {
		t.Fatalf("blank card has types %q", c.Types.String())
	}
}

func TestValidateRejectsHandBuiltSet(t *testing.T) {
	c := Card{Title: "Broken", Types: TypeSet{tags: []TypeTag{Forest, None}}}
	var ve *ValidationError
	if err := c.Validate(); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	c.Types = TypeSet{tags: []TypeTag{Forest, Forest}}
	if err := c.Validate(); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for duplicate, got %v", err)
	}
}

func TestFromSlotsSkipsPlaceholders(t *testing.T) {
	c, err := FromSlots("Greenwood", []string{"[NONE]", "Forest", "", "River"}, "rules", "flavor")
	if err != nil {
		t.Fatalf("FromSlots: %v", err)
	}
	if got := c.Types.String(); got != "Forest, River" {
		t.Fatalf("types = %q", got)
	}
	if c.Title != "Greenwood" || c.RulesText != "rules" || c.FlavorText != "flavor" {
		t.Fatalf("unexpected card %+v", c)
	}

	if _, err := FromSlots("x", []string{"Lava"}, "", ""); err == nil {
		t.Fatalf("expected error for unknown slot value")
	}
}

func TestAllTags(t *testing.T) {
	tags := AllTags()
	if len(tags) != 11 {
		t.Fatalf("AllTags has %d entries", len(tags))
	}
	for _, tag := range tags {
		if tag == None {
			t.Fatalf("AllTags contains None")
		}
		if back, err := ParseTypeTag(tag.String()); err != nil || back != tag {
			t.Fatalf("round trip of %v gave %v, %v", tag, back, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greenwood.toml")
	data := `title = "Greenwood"
types = ["Forest", "[NONE]"]
rules = "Grants +1 to adjacent hexes."
flavor = "The trees remember."
extend_rules = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !f.ExtendRules {
		t.Fatalf("extend_rules not decoded")
	}
	c, err := f.Card()
	if err != nil {
		t.Fatalf("Card: %v", err)
	}
	if c.Title != "Greenwood" || c.Types.String() != "Forest" {
		t.Fatalf("unexpected card %+v", c)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(dir, "typo.toml")
	if err := os.WriteFile(path, []byte("titel = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}
