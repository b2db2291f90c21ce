package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2026-01-31", false},
		{"2026-02-30", true},
		{"31-01-2026", true},
		{"2026/01/31", true},
		{"tomorrow", true},
		{"", true},
	}

	for _, tt := range tests {
		d, err := ParseDate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.in, err)
			continue
		}
		if d.String() != tt.in {
			t.Errorf("String: got %q, want %q", d.String(), tt.in)
		}
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2026, time.March, 1)
	b := NewDate(2026, time.March, 2)

	if !a.Before(b) || b.Before(a) {
		t.Error("Before: wrong ordering")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After: wrong ordering")
	}
	if !a.Equal(NewDate(2026, time.March, 1)) {
		t.Error("Equal: same date compared unequal")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.December, 5)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2026-12-05"` {
		t.Errorf("Marshal: got %s, want \"2026-12-05\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip: got %s, want %s", back, d)
	}

	var null Date
	if err := json.Unmarshal([]byte("null"), &null); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &back); err == nil {
		t.Error("Unmarshal: expected error for malformed date")
	}
}
