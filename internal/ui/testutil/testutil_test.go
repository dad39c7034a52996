package testutil

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Forever Changes", "Forever Changes"},
		{"color codes", "\x1b[31mSoundtracks\x1b[0m header", "Soundtracks header"},
		{"compound codes", "\x1b[1;38;5;39mArtist\x1b[0m", "Artist"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAssertContains(t *testing.T) {
	out := "\x1b[36mRecords · 12 shown\x1b[0m"

	if msg := AssertContains(out, "12 shown"); msg != "" {
		t.Errorf("should pass through styling: %s", msg)
	}
	if msg := AssertContains(out, "13 shown"); msg == "" {
		t.Error("should fail for absent text")
	}
}

func TestAssertNotContains(t *testing.T) {
	out := "Title · 1967"

	if msg := AssertNotContains(out, "hidden"); msg != "" {
		t.Errorf("should pass for absent text: %s", msg)
	}
	if msg := AssertNotContains(out, "1967"); msg == "" {
		t.Error("should fail for present text")
	}
}
