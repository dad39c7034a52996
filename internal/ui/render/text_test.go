package render

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean string untouched", "Forever Changes", "Forever Changes"},
		{"control chars removed", "Love\x00\x1b[31m", "Love[31m"},
		{"tab preserved", "a\tb", "a\tb"},
		{"nbsp becomes space", "a b", "a b"},
		{"invalid utf8 dropped", "a\xffb", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"short string untouched", "abc", 10, "abc"},
		{"long string cut with ellipsis", "abcdefghij", 6, "abc..."},
		{"exact width untouched", "abcdef", 6, "abcdef"},
		{"wide chars measured by columns", "日本語のタイトル", 8, "日本..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	got := TruncateAndPad("abc", 6)
	if got != "abc   " {
		t.Errorf("TruncateAndPad() = %q", got)
	}
	got = TruncateAndPad("abcdefghij", 6)
	if got != "abc..." {
		t.Errorf("TruncateAndPad() = %q", got)
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if len(got) != 20 {
		t.Errorf("Row() width = %d, want 20", len(got))
	}
	if got != "left           right" {
		t.Errorf("Row() = %q", got)
	}

	// Too narrow still keeps one space gap
	got = Row("left", "right", 5)
	if got != "left right" {
		t.Errorf("Row() = %q", got)
	}
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := EmptyLine(3); got != "   " {
		t.Errorf("EmptyLine(3) = %q", got)
	}
}
