package gazetteer

import "testing"

func TestLookup(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantName string
		wantOK   bool
	}{
		{"exact match", "Dupont Circle", "Dupont Circle", true},
		{"case-insensitive", "bEtHeSdA", "Bethesda", true},
		{"surrounding whitespace trimmed", "  Arlington  ", "Arlington", true},
		{"unknown place", "Narnia", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Lookup(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("Lookup(%q) ok = %v; want %v", tc.input, ok, tc.wantOK)
			}
			if ok && got.Name != tc.wantName {
				t.Errorf("Lookup(%q) = %q; want %q", tc.input, got.Name, tc.wantName)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantName string
		wantOK   bool
	}{
		{"exact", "Silver Spring", "Silver Spring", true},
		{"candidate contains key", "Dupont Circle, DC", "Dupont Circle", true},
		{"key contains candidate", "clarend", "Clarendon", true},
		{"no match", "Timbuktu", "", false},
		{"empty", "   ", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Match(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("Match(%q) ok = %v; want %v", tc.input, ok, tc.wantOK)
			}
			if ok && got.Name != tc.wantName {
				t.Errorf("Match(%q) = %q; want %q", tc.input, got.Name, tc.wantName)
			}
		})
	}
}

func TestMatch_FirstEntryWinsTies(t *testing.T) {
	// "washington" appears first in the authored order, so text mentioning
	// both it and a later entry resolves to it.
	got, ok := Match("Washington and Rockville commuters")
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Name != "Washington" {
		t.Errorf("tie resolved to %q; want first authored entry %q", got.Name, "Washington")
	}
}

func TestExtractPlace(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantName string
		wantOK   bool
	}{
		{"place inside group name", "Arlington Young Professionals", "Arlington", true},
		{"case-insensitive", "takoma park potluck crew", "Takoma Park", true},
		{"no known place", "Garden Enthusiasts", "", false},
		{"empty text", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractPlace(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ExtractPlace(%q) ok = %v; want %v", tc.input, ok, tc.wantOK)
			}
			if ok && got.Name != tc.wantName {
				t.Errorf("ExtractPlace(%q) = %q; want %q", tc.input, got.Name, tc.wantName)
			}
		})
	}
}

func TestAnchorsMatchTableEntries(t *testing.T) {
	for _, anchor := range []Entry{Arlington, SilverSpring} {
		e, ok := Lookup(anchor.Name)
		if !ok {
			t.Fatalf("anchor %q missing from the gazetteer", anchor.Name)
		}
		if e.Lat != anchor.Lat || e.Lng != anchor.Lng {
			t.Errorf("anchor %q = (%v, %v); table has (%v, %v)", anchor.Name, anchor.Lat, anchor.Lng, e.Lat, e.Lng)
		}
	}
}
