package collection

import (
	"reflect"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"LP", FormatLP},
		{"EP", FormatEP},
		{"Single", FormatSingle},
		{"", FormatLP},
		{"cassette", FormatLP},
	}
	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCharacteristicRoundTrip(t *testing.T) {
	for _, c := range Characteristics() {
		got, ok := ParseCharacteristic(c.String())
		if !ok {
			t.Errorf("ParseCharacteristic(%q) not recognised", c.String())
			continue
		}
		if got != c {
			t.Errorf("ParseCharacteristic(%q) = %v, want %v", c.String(), got, c)
		}
	}

	if _, ok := ParseCharacteristic("Bootleg"); ok {
		t.Error("ParseCharacteristic accepted unknown identifier")
	}
}

func TestCharacteristicPriorityOrder(t *testing.T) {
	want := []Characteristic{Soundtrack, Compilation, Concert, ComposerWork, Miscellanea, Reissue}
	if got := Characteristics(); !reflect.DeepEqual(got, want) {
		t.Errorf("Characteristics() = %v, want %v", got, want)
	}
	if len(want) != CharacteristicCount {
		t.Errorf("CharacteristicCount = %d, want %d", CharacteristicCount, len(want))
	}
}

func TestCharacteristicLabels(t *testing.T) {
	tests := []struct {
		c    Characteristic
		want string
	}{
		{Soundtrack, "Soundtracks"},
		{Compilation, "Compilations"},
		{Concert, "Concerts"},
		{ComposerWork, "Composer Works"},
		{Miscellanea, "Miscellanea"},
		{Reissue, "Reissues"},
	}
	for _, tt := range tests {
		if got := tt.c.Label(); got != tt.want {
			t.Errorf("%v.Label() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestEncodeDecodeCharacteristics(t *testing.T) {
	cs := []Characteristic{Soundtrack, Reissue}
	encoded := encodeCharacteristics(cs)
	if encoded != "Soundtrack,Reissue" {
		t.Errorf("encodeCharacteristics() = %q", encoded)
	}
	if got := decodeCharacteristics(encoded); !reflect.DeepEqual(got, cs) {
		t.Errorf("decodeCharacteristics(%q) = %v, want %v", encoded, got, cs)
	}

	if got := decodeCharacteristics(""); got != nil {
		t.Errorf("decodeCharacteristics(\"\") = %v, want nil", got)
	}

	// Identifiers from removed versions are dropped, not fatal.
	got := decodeCharacteristics("Soundtrack, Bootleg ,Concert")
	want := []Characteristic{Soundtrack, Concert}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decodeCharacteristics() = %v, want %v", got, want)
	}
}

func TestHasCharacteristic(t *testing.T) {
	r := Record{Characteristics: []Characteristic{Compilation}}
	if !r.HasCharacteristic(Compilation) {
		t.Error("HasCharacteristic(Compilation) = false")
	}
	if r.HasCharacteristic(Soundtrack) {
		t.Error("HasCharacteristic(Soundtrack) = true")
	}
}
