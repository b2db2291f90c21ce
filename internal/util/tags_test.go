package util

import (
	"reflect"
	"testing"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Work", "work"},
		{"  Deep   Work  ", "deep work"},
		{"HOME", "home"},
		{"already-normal", "already-normal"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasTag(t *testing.T) {
	tags := []string{"work", "deep work"}

	if !HasTag(tags, "Work") {
		t.Error("HasTag: expected case-insensitive match")
	}
	if !HasTag(tags, " deep   work ") {
		t.Error("HasTag: expected whitespace-normalized match")
	}
	if HasTag(tags, "home") {
		t.Error("HasTag: unexpected match")
	}
	if HasTag(nil, "work") {
		t.Error("HasTag: match against nil slice")
	}
}

func TestRemoveTag(t *testing.T) {
	tags := []string{"work", "home", "errands"}

	got := RemoveTag(tags, "HOME")
	want := []string{"work", "errands"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveTag: got %v, want %v", got, want)
	}

	got = RemoveTag(tags, "missing")
	if !reflect.DeepEqual(got, tags) {
		t.Errorf("RemoveTag: got %v, want unchanged %v", got, tags)
	}
}
