package state

import (
	"fmt"
	"testing"

	"github.com/atomicstack/pokedex-table/internal/catalog"
	"github.com/google/go-cmp/cmp"
)

func rec(name string, height, weight int, types ...string) catalog.Record {
	r := catalog.Record{Name: name, Height: height, Weight: weight}
	for i, t := range types {
		r.Types = append(r.Types, catalog.TypeSlot{Slot: i + 1, Type: catalog.NamedResource{Name: t}})
	}
	return r
}

func names(records []catalog.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func sampleRecords() []catalog.Record {
	return []catalog.Record{
		rec("bulbasaur", 7, 69, "grass", "poison"),
		rec("charmander", 6, 85, "fire"),
		rec("squirtle", 5, 90, "water"),
		rec("ivysaur", 10, 130, "grass", "poison"),
		rec("pidgey", 3, 18, "normal", "flying"),
	}
}

func TestFilterByType(t *testing.T) {
	got := names(FilterByType(sampleRecords(), "poison"))
	if diff := cmp.Diff([]string{"bulbasaur", "ivysaur"}, got); diff != "" {
		t.Fatalf("poison filter mismatch (-want +got):\n%s", diff)
	}
	all := names(FilterByType(sampleRecords(), ""))
	if diff := cmp.Diff(names(sampleRecords()), all); diff != "" {
		t.Fatalf("empty filter should keep original order (-want +got):\n%s", diff)
	}
	if got := FilterByType(sampleRecords(), "dragon"); len(got) != 0 {
		t.Fatalf("expected no dragons, got %v", names(got))
	}
}

func TestFilterByNameFuzzy(t *testing.T) {
	got := names(FilterByName(sampleRecords(), "saur"))
	if diff := cmp.Diff([]string{"bulbasaur", "ivysaur"}, got); diff != "" {
		t.Fatalf("name filter mismatch (-want +got):\n%s", diff)
	}
	got = names(FilterByName(sampleRecords(), "CHRMDR"))
	if diff := cmp.Diff([]string{"charmander"}, got); diff != "" {
		t.Fatalf("fuzzy case-insensitive match failed (-want +got):\n%s", diff)
	}
	if got := FilterByName(sampleRecords(), "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", names(got))
	}
}

func TestSortAscendingAndDescending(t *testing.T) {
	asc := Sort(sampleRecords(), ColumnWeight, true)
	for i := 0; i+1 < len(asc); i++ {
		if asc[i].Weight > asc[i+1].Weight {
			t.Fatalf("ascending order violated at %d: %d > %d", i, asc[i].Weight, asc[i+1].Weight)
		}
	}
	desc := Sort(sampleRecords(), ColumnWeight, false)
	for i := 0; i+1 < len(desc); i++ {
		if desc[i].Weight < desc[i+1].Weight {
			t.Fatalf("descending order violated at %d: %d < %d", i, desc[i].Weight, desc[i+1].Weight)
		}
	}
	byName := names(Sort(sampleRecords(), ColumnName, true))
	want := []string{"bulbasaur", "charmander", "ivysaur", "pidgey", "squirtle"}
	if diff := cmp.Diff(want, byName); diff != "" {
		t.Fatalf("name sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortTiesBreakByName(t *testing.T) {
	records := []catalog.Record{rec("zubat", 8, 75), rec("abra", 9, 195), rec("mew", 4, 40), rec("kabuto", 5, 115)}
	records[0].Height, records[1].Height = 9, 9
	got := names(Sort(records, ColumnHeight, false))
	want := []string{"abra", "zubat", "kabuto", "mew"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tie-break mismatch (-want +got):\n%s", diff)
	}
}

func TestSortNoneKeepsOrderAndDoesNotMutate(t *testing.T) {
	input := sampleRecords()
	got := Sort(input, ColumnNone, true)
	if diff := cmp.Diff(names(input), names(got)); diff != "" {
		t.Fatalf("unsorted order changed (-want +got):\n%s", diff)
	}
	_ = Sort(input, ColumnName, false)
	if input[0].Name != "bulbasaur" {
		t.Fatalf("expected input slice untouched, got %s first", input[0].Name)
	}
}

func TestSortByAbilities(t *testing.T) {
	a := catalog.Record{Name: "a", Abilities: []catalog.AbilitySlot{{Ability: catalog.NamedResource{Name: "static"}}}}
	b := catalog.Record{Name: "b", Abilities: []catalog.AbilitySlot{{Ability: catalog.NamedResource{Name: "blaze"}}}}
	got := names(Sort([]catalog.Record{a, b}, ColumnAbilities, true))
	if diff := cmp.Diff([]string{"b", "a"}, got); diff != "" {
		t.Fatalf("abilities sort mismatch (-want +got):\n%s", diff)
	}
}

func TestPaginate(t *testing.T) {
	seq := make([]int, 45)
	for i := range seq {
		seq[i] = i
	}
	if got := Paginate(seq, 20, 1); len(got) != 20 || got[0] != 0 || got[19] != 19 {
		t.Fatalf("unexpected first page %v", got)
	}
	if got := Paginate(seq, 20, 2); len(got) != 20 || got[0] != 20 || got[19] != 39 {
		t.Fatalf("unexpected second page %v", got)
	}
	if got := Paginate(seq, 20, 3); len(got) != 5 || got[0] != 40 {
		t.Fatalf("unexpected last page %v", got)
	}
	if got := Paginate(seq, 20, 4); len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %v", got)
	}
	if got := Paginate(seq[:7], 20, 1); len(got) != 7 {
		t.Fatalf("expected short first page, got %v", got)
	}
}

func TestMaxPageAndClamp(t *testing.T) {
	cases := []struct{ count, want int }{{0, 0}, {1, 1}, {20, 1}, {21, 2}, {60, 3}}
	for _, tc := range cases {
		if got := MaxPage(tc.count, PageSize); got != tc.want {
			t.Fatalf("MaxPage(%d) = %d, want %d", tc.count, got, tc.want)
		}
	}
	if got := ClampPage(0, 3); got != 1 {
		t.Fatalf("expected clamp of 0 to 1, got %d", got)
	}
	if got := ClampPage(4, 3); got != 3 {
		t.Fatalf("expected clamp of max+1 to max, got %d", got)
	}
	if got := ClampPage(2, 0); got != 1 {
		t.Fatalf("expected clamp to 1 with no pages, got %d", got)
	}
}

func TestDeriveComposesPipeline(t *testing.T) {
	records := make([]catalog.Record, 60)
	for i := range records {
		typ := "water"
		if i%2 == 0 {
			typ = "grass"
		}
		records[i] = rec(fmt.Sprintf("mon-%02d", i), i, 60-i, typ)
	}
	v := NewView().SelectFilter("grass").SortBy(ColumnWeight)
	page := Derive(records, v)
	if page.Total != 60 || page.Matched != 30 || page.MaxPage != 2 || page.Number != 1 {
		t.Fatalf("unexpected page meta %#v", page)
	}
	if len(page.Rows) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(page.Rows))
	}
	want := Paginate(Sort(FilterByType(records, "grass"), ColumnWeight, true), PageSize, 1)
	if diff := cmp.Diff(names(want), names(page.Rows)); diff != "" {
		t.Fatalf("derive mismatch (-want +got):\n%s", diff)
	}
	if page.NoMatch {
		t.Fatalf("expected matches")
	}
}

func TestDeriveNoMatch(t *testing.T) {
	page := Derive(sampleRecords(), NewView().SelectFilter("dragon"))
	if !page.NoMatch || len(page.Rows) != 0 || page.MaxPage != 0 {
		t.Fatalf("expected no-match page, got %#v", page)
	}
	if empty := Derive(nil, NewView()); empty.NoMatch {
		t.Fatalf("expected no-match only when filtering")
	}
}
