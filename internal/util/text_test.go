package util

import (
	"reflect"
	"testing"
)

func TestNormalizeWhitespace(t *testing.T) {
	got := NormalizeWhitespace("  hello\t\nworld  ")
	if got != "hello world" {
		t.Fatalf("got %q", got)
	}
}

func TestMentions(t *testing.T) {
	got := Mentions("hey @alice and @bob, also @alice again")
	want := []string{"alice", "bob"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if Mentions("no mentions here") != nil {
		t.Fatalf("expected nil for no mentions")
	}
}

func TestHashtags(t *testing.T) {
	got := Hashtags("shipping #Go code #go #testing")
	want := []string{"go", "testing"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
