package card

import (
	"fmt"
	"strings"
)

// TypeTag is one of the fixed terrain types a hexcard can carry.
type TypeTag int

const (
	None TypeTag = iota // form placeholder, never part of a TypeSet
	Desert
	Farm
	Field
	Forest
	Hill
	River
	Road
	Sea
	Settlement
	Snow
	Swamp
)

// NoneLabel is how the form spells the empty dropdown slot.
const NoneLabel = "[NONE]"

var tagNames = [...]string{
	None:       NoneLabel,
	Desert:     "Desert",
	Farm:       "Farm",
	Field:      "Field",
	Forest:     "Forest",
	Hill:       "Hill",
	River:      "River",
	Road:       "Road",
	Sea:        "Sea",
	Settlement: "Settlement",
	Snow:       "Snow",
	Swamp:      "Swamp",
}

// AllTags returns every real tag in enumeration order, without None.
func AllTags() []TypeTag {
	tags := make([]TypeTag, 0, len(tagNames)-1)
	for t := Desert; t <= Swamp; t++ {
		tags = append(tags, t)
	}
	return tags
}

func (t TypeTag) String() string {
	if !t.valid() && t != None {
		return fmt.Sprintf("TypeTag(%d)", int(t))
	}
	return tagNames[t]
}

func (t TypeTag) valid() bool {
	return t > None && t <= Swamp
}

// ParseTypeTag resolves a tag name. Matching ignores case and surrounding space.
// The form placeholder "[NONE]" parses to None.
func ParseTypeTag(s string) (TypeTag, error) {
	name := strings.TrimSpace(s)
	for i, n := range tagNames {
		if strings.EqualFold(n, name) {
			return TypeTag(i), nil
		}
	}
	if strings.EqualFold(name, "none") {
		return None, nil
	}
	return None, &ValidationError{Field: "types", Value: s, Reason: "unknown type tag"}
}

// TypeSet is an ordered set of tags. The zero value is the empty set.
type TypeSet struct {
	tags []TypeTag
}

// NewTypeSet builds a set from tags, keeping the first occurrence of each.
// None and values outside the enumeration are rejected.
func NewTypeSet(tags ...TypeTag) (TypeSet, error) {
	var s TypeSet
	for _, t := range tags {
		if !t.valid() {
			return TypeSet{}, &ValidationError{Field: "types", Value: t.String(), Reason: "not a hex type"}
		}
		if s.Has(t) {
			continue
		}
		s.tags = append(s.tags, t)
	}
	return s, nil
}

// MustTypeSet is NewTypeSet for literals known to be valid.
func MustTypeSet(tags ...TypeTag) TypeSet {
	s, err := NewTypeSet(tags...)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseTypes builds a set from tag names.
func ParseTypes(names []string) (TypeSet, error) {
	tags := make([]TypeTag, 0, len(names))
	for _, n := range names {
		t, err := ParseTypeTag(n)
		if err != nil {
			return TypeSet{}, err
		}
		tags = append(tags, t)
	}
	return NewTypeSet(tags...)
}

// Has reports whether t is in the set.
func (s TypeSet) Has(t TypeTag) bool {
	for _, x := range s.tags {
		if x == t {
			return true
		}
	}
	return false
}

// Len returns the number of tags.
func (s TypeSet) Len() int { return len(s.tags) }

// Tags returns a copy of the tags in stored order.
func (s TypeSet) Tags() []TypeTag {
	out := make([]TypeTag, len(s.tags))
	copy(out, s.tags)
	return out
}

// Names returns the tag names in stored order.
func (s TypeSet) Names() []string {
	names := make([]string, len(s.tags))
	for i, t := range s.tags {
		names[i] = t.String()
	}
	return names
}

// String joins the tags the way the type banner shows them.
func (s TypeSet) String() string {
	return strings.Join(s.Names(), ", ")
}

// Card is the record the form hands to the renderer.
type Card struct {
	Title      string
	Types      TypeSet
	RulesText  string
	FlavorText string
}

// Blank returns the empty card the form starts with.
func Blank() Card {
	return Card{}
}

// FromSlots builds a card from the form's type dropdowns. Slots holding
// the placeholder are skipped.
func FromSlots(title string, slots []string, rules, flavor string) (Card, error) {
	names := make([]string, 0, len(slots))
	for _, s := range slots {
		if strings.TrimSpace(s) == "" || strings.EqualFold(strings.TrimSpace(s), NoneLabel) {
			continue
		}
		names = append(names, s)
	}
	types, err := ParseTypes(names)
	if err != nil {
		return Card{}, err
	}
	return Card{
		Title:      title,
		Types:      types,
		RulesText:  rules,
		FlavorText: flavor,
	}, nil
}

// Validate checks the record before rendering.
func (c Card) Validate() error {
	seen := make(map[TypeTag]bool, len(c.Types.tags))
	for _, t := range c.Types.tags {
		if !t.valid() {
			return &ValidationError{Field: "types", Value: t.String(), Reason: "not a hex type"}
		}
		if seen[t] {
			return &ValidationError{Field: "types", Value: t.String(), Reason: "duplicate tag"}
		}
		seen[t] = true
	}
	return nil
}
