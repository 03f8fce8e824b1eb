package pdftext

import "testing"

func TestStreamText(t *testing.T) {
	stream := []byte(`BT
/F1 9 Tf
1 0 0 1 50 700 Tm
(Teplárna Brno B) Tj
10 0 Td
(10.5 5.2) Tj
0 -12 Td
(Výtopna Kladno S) Tj
T*
(0.0 100.0) Tj
ET`)

	got := streamText(stream)
	want := "Teplárna Brno B 10.5 5.2\nVýtopna Kladno S\n0.0 100.0"
	if got != want {
		t.Errorf("streamText() = %q, want %q", got, want)
	}
}

func TestStreamText_QuoteOperatorStartsLine(t *testing.T) {
	stream := []byte("(první řádek) Tj\n(druhý řádek) '")

	got := streamText(stream)
	want := "první řádek\ndruhý řádek"
	if got != want {
		t.Errorf("streamText() = %q, want %q", got, want)
	}
}

func TestStreamText_LeadingMoveEmitsNothing(t *testing.T) {
	// A Td before any shown text must not produce an empty first line.
	stream := []byte("0 -12 Td\n(text) Tj")
	if got := streamText(stream); got != "text" {
		t.Errorf("streamText() = %q, want %q", got, "text")
	}
}

func TestVerticalMove(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"10 0 Td", false},
		{"10 -12 Td", true},
		{"0 5.5 TD", true},
		{"12.5 0.0 Td", false},
		{"garbage Td", true},
		{"Td", true},
	}
	for _, tc := range cases {
		if got := verticalMove([]byte(tc.line)); got != tc.want {
			t.Errorf("verticalMove(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestDecodeString(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"plain text", "plain text"},
		{`a\(b\)c`, "a(b)c"},
		{`back\\slash`, `back\slash`},
		{`tab\there`, "tab\there"},
		{`\101\102`, "AB"},
		{`\12`, "\n"},
		{`trailing\`, `trailing\`},
		{`\q`, "q"},
	}
	for _, tc := range cases {
		if got := decodeString([]byte(tc.raw)); got != tc.want {
			t.Errorf("decodeString(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	in := "  Teplárna   Brno \t B  \n\n  10.5  5.2  \n   \n"
	want := "Teplárna Brno B\n10.5 5.2"
	if got := cleanText(in); got != want {
		t.Errorf("cleanText() = %q, want %q", got, want)
	}
}
