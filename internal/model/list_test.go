package model

import (
	"reflect"
	"testing"
)

func TestDecodeStringList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []byte
		want StringList
	}{
		{"nil input", nil, StringList{}},
		{"empty input", []byte{}, StringList{}},
		{"json null", []byte("null"), StringList{}},
		{"corrupt json", []byte("{not json"), StringList{}},
		{"wrong type", []byte(`{"a":1}`), StringList{}},
		{"empty array", []byte("[]"), StringList{}},
		{"valid list", []byte(`["go","postgres"]`), StringList{"go", "postgres"}},
		{"order preserved", []byte(`["c","a","b"]`), StringList{"c", "a", "b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DecodeStringList(tt.raw)
			if got == nil {
				t.Fatal("DecodeStringList should never return nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeStringList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStringList_Encode(t *testing.T) {
	t.Parallel()

	var nilList StringList
	if got := string(nilList.Encode()); got != "[]" {
		t.Errorf("nil list should encode as [], got %q", got)
	}

	list := StringList{"a", "b"}
	if got := string(list.Encode()); got != `["a","b"]` {
		t.Errorf("Encode = %q, want %q", got, `["a","b"]`)
	}
}

func TestStringList_EncodeDecodeRoundtrip(t *testing.T) {
	t.Parallel()

	original := StringList{"one", "two", "three"}
	decoded := DecodeStringList(original.Encode())
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("roundtrip = %v, want %v", decoded, original)
	}
}

func TestDecodeFocusAreas_CorruptBlob(t *testing.T) {
	t.Parallel()

	got := DecodeFocusAreas([]byte("{corrupt"))
	if got == nil || len(got) != 0 {
		t.Errorf("Corrupt blob should decode to empty list, got %v", got)
	}

	valid := DecodeFocusAreas([]byte(`[{"title":"Backend","description":"APIs"}]`))
	if len(valid) != 1 || valid[0].Title != "Backend" {
		t.Errorf("Valid blob should decode, got %v", valid)
	}
}

func TestDecodeStats_CorruptBlob(t *testing.T) {
	t.Parallel()

	got := DecodeStats([]byte("not json"))
	if got == nil || len(got) != 0 {
		t.Errorf("Corrupt blob should decode to empty list, got %v", got)
	}

	valid := DecodeStats([]byte(`[{"label":"Years","value":"10+"}]`))
	if len(valid) != 1 || valid[0].Value != "10+" {
		t.Errorf("Valid blob should decode, got %v", valid)
	}
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	if s.ID != SettingsID {
		t.Errorf("ID = %q, want %q", s.ID, SettingsID)
	}
	if s.FocusAreas == nil || s.Stats == nil {
		t.Error("Default lists should be empty, not nil")
	}
}
