package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/voyago/voyago/internal/santsg"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Sea view rooms", "Sea view rooms"},
		{"tags removed", "<p>Breakfast <b>included</b></p>", "Breakfast included"},
		{"breaks become newlines", "Line one<br/>Line two", "Line one\nLine two"},
		{"entities decoded", "Spa &amp; wellness&nbsp;center", "Spa & wellness center"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripHTML(tt.in); got != tt.want {
				t.Errorf("stripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	if got := formatPrice(1234.5, "EUR"); got != "1234.50 EUR" {
		t.Errorf("formatPrice = %q", got)
	}
	if got := formatPrice(99, ""); got != "99.00" {
		t.Errorf("formatPrice without currency = %q", got)
	}
}

func TestStarLabel(t *testing.T) {
	tests := []struct {
		stars float64
		want  string
	}{
		{0, "—"},
		{3, "★★★"},
		{4.5, "★★★★"},
		{9, "★★★★★"},
	}
	for _, tt := range tests {
		if got := starLabel(tt.stars); got != tt.want {
			t.Errorf("starLabel(%v) = %q, want %q", tt.stars, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate kept = %q", got)
	}
	if got := truncate("a very long hotel name indeed", 10); got != "a very lo…" {
		t.Errorf("truncate cut = %q", got)
	}
	if n := len([]rune(truncate("a very long hotel name indeed", 10))); n != 10 {
		t.Errorf("truncate length = %d, want 10", n)
	}
}

func TestWrapLine(t *testing.T) {
	got := wrapLine("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapLine = %q, want %q", got, want)
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name                    string
		total, cursor, height   int
		wantVisible, wantOffset int
	}{
		{"fits entirely", 5, 2, 10, 5, 0},
		{"cursor at top", 50, 0, 10, 10, 0},
		{"cursor centered", 50, 25, 10, 10, 20},
		{"cursor at bottom", 50, 49, 10, 10, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, offset := visibleWindow(tt.total, tt.cursor, tt.height)
			if visible != tt.wantVisible || offset != tt.wantOffset {
				t.Errorf("visibleWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.total, tt.cursor, tt.height, visible, offset, tt.wantVisible, tt.wantOffset)
			}
			if tt.cursor < offset || tt.cursor >= offset+visible {
				t.Errorf("cursor %d outside window [%d, %d)", tt.cursor, offset, offset+visible)
			}
		})
	}
}

func TestThemeCycle(t *testing.T) {
	seen := map[string]bool{}
	name := "Voyago Night"
	for range themes {
		seen[name] = true
		name = NextTheme(name)
	}
	if len(seen) != len(themes) {
		t.Errorf("cycle visited %d themes, want %d", len(seen), len(themes))
	}
	if name != "Voyago Night" {
		t.Errorf("cycle did not return to start, got %q", name)
	}
}

func TestGetThemeUnknownFallsBack(t *testing.T) {
	theme := GetTheme("no such theme")
	if theme.Name != themes[0].Name {
		t.Errorf("unknown theme resolved to %q", theme.Name)
	}
	if !reflect.DeepEqual(theme, themes[0]) {
		t.Error("fallback theme differs from the default")
	}
}

func TestPresentationTextJoinsBlocks(t *testing.T) {
	blocks := []santsg.Presentation{
		{Text: "<p>First block</p>"},
		{Text: "   "},
		{Text: "Second block"},
	}
	got := presentationText(blocks)
	want := "First block\n\nSecond block"
	if got != want {
		t.Errorf("presentationText = %q, want %q", got, want)
	}
	if strings.Contains(got, "<") {
		t.Error("presentationText left markup in output")
	}
}
