package catalog

import "strings"

// Summary is a lightweight pointer to a detail record as returned by the
// listing endpoint.
type Summary struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listingResponse struct {
	Count    int       `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []Summary `json:"results"`
}

// NamedResource is the catalog's generic {name, url} reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type MoveEntry struct {
	Move NamedResource `json:"move"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// Record is a fully resolved catalog entry. Records are never mutated after
// they are decoded.
type Record struct {
	Name           string          `json:"name"`
	Height         int             `json:"height"`
	Weight         int             `json:"weight"`
	BaseExperience int             `json:"base_experience"`
	Abilities      []AbilitySlot   `json:"abilities"`
	Forms          []NamedResource `json:"forms"`
	Moves          []MoveEntry     `json:"moves"`
	Types          []TypeSlot      `json:"types"`
	Sprites        Sprites         `json:"sprites"`
}

// TypeNames returns the record's type names in slot order.
func (r Record) TypeNames() []string {
	names := make([]string, 0, len(r.Types))
	for _, t := range r.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// HasType reports whether any of the record's types is named category.
func (r Record) HasType(category string) bool {
	for _, t := range r.Types {
		if t.Type.Name == category {
			return true
		}
	}
	return false
}

// AbilityNames returns the ability names in the order the catalog lists them.
func (r Record) AbilityNames() []string {
	names := make([]string, 0, len(r.Abilities))
	for _, a := range r.Abilities {
		names = append(names, a.Ability.Name)
	}
	return names
}

// AbilityList joins the ability names with ", ".
func (r Record) AbilityList() string {
	return strings.Join(r.AbilityNames(), ", ")
}
