package common

import (
	"reflect"
	"testing"
)

func TestSplitUnits(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "page markers",
			text: "--- PAGE 1 ---\nfirst page\n--- PAGE 2 ---\nsecond page",
			want: []string{"first page", "second page"},
		},
		{
			name: "slide markers",
			text: "--- SLIDE 1 ---\nintro slide\n--- SLIDE 2 ---\npricing slide",
			want: []string{"intro slide", "pricing slide"},
		},
		{
			name: "sheet markers with loose spacing",
			text: "---  SHEET 1  ---  \ntab one\n--- sheet 2 ---\ntab two",
			want: []string{"tab one", "tab two"},
		},
		{
			name: "form feed fallback",
			text: "first\fsecond\fthird",
			want: []string{"first", "second", "third"},
		},
		{
			name: "no boundary is one unit",
			text: "just one block of text\nwith two lines",
			want: []string{"just one block of text\nwith two lines"},
		},
		{
			name: "empty units dropped",
			text: "--- PAGE 1 ---\n\n--- PAGE 2 ---\ncontent",
			want: []string{"content"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitUnits(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitUnits() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{name: "shorter than limit", s: "short", n: 10, want: "short"},
		{name: "exactly at limit", s: "12345", n: 5, want: "12345"},
		{name: "truncated", s: "123456789", n: 5, want: "12345"},
		{name: "multibyte safe", s: "héllo wörld", n: 7, want: "héllo w"},
		{name: "zero limit", s: "anything", n: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.s, tt.n); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
		})
	}
}
