package classifier

import (
	"reflect"
	"testing"
)

func TestIsDataLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want bool
	}{
		{"locality row", "Teplárna Brno B 10.5 5.2", true},
		{"accented initial", "Šumperská provozní U 1.0", true},
		{"leading whitespace before letter", "  Teplárna Brno B", true},
		{"empty", "", false},
		{"whitespace only", "   \t ", false},
		{"header marker", "Cenová lokalita Kraj Uhlí", false},
		{"column marker", "Dodávky z výroby při výkonu nad 10 MWt", false},
		{"marker anywhere beats letter initial", "Přehled Dodávky ceny", false},
		{"digit initial continuation", "10.5 5.2 0.0 80.1", false},
		{"symbol initial", "- celkem 1200", false},
		{"parenthesis initial", "(pokračování)", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDataLine(tc.line); got != tc.want {
				t.Errorf("IsDataLine(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}

func TestDataLines(t *testing.T) {
	page := "Cenová lokalita Kraj Uhlí Biomasa\n" +
		"Teplárna Brno B 10.5 5.2 0.0 80.1 4.2\n" +
		"\n" +
		"10.5 420.0 continuation\n" +
		"Výtopna Kladno S 0.0 0.0 0.0 100.0 0.0\n" +
		"Dodávky z primárního rozvodu\n"

	got := DataLines(page)
	want := []string{
		"Teplárna Brno B 10.5 5.2 0.0 80.1 4.2",
		"Výtopna Kladno S 0.0 0.0 0.0 100.0 0.0",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DataLines() = %q, want %q", got, want)
	}
}

func TestDataLines_EmptyPage(t *testing.T) {
	// A page of pure boilerplate yields an empty sequence, not an error.
	page := "Cenová lokalita\nDodávky\n\n   \n"
	if got := DataLines(page); len(got) != 0 {
		t.Errorf("DataLines() = %q, want empty", got)
	}
}
