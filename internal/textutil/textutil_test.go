package textutil

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"hello world", []string{"hello", "world"}},
		{"user_name", []string{"user_name"}},
		{"email@example.com", []string{"email", "example", "com"}},
		{"", nil},
		{"  spaces  ", []string{"spaces"}},
		{"café résumé", []string{"café", "résumé"}},
		{"hello-world", []string{"hello", "world"}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTokenNgrams(t *testing.T) {
	tokens := []string{"the", "quick", "brown", "fox"}
	got := TokenNgrams(tokens, 1, 2)
	want := []string{"the", "quick", "brown", "fox", "the quick", "quick brown", "brown fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenNgrams = %v, want %v", got, want)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		cell string
		sep  string
		want []string
	}{
		{"a|b|c", "|", []string{"a", "b", "c"}},
		{" a | b ", "|", []string{"a", "b"}},
		{"a||b|", "|", []string{"a", "b"}},
		{"a;a", ";", []string{"a", "a"}},
		{"", "|", nil},
		{"   ", "|", nil},
		{"solo", "|", []string{"solo"}},
	}
	for _, tt := range tests {
		got := SplitList(tt.cell, tt.sep)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q, %q) = %v, want %v", tt.cell, tt.sep, got, tt.want)
		}
	}
}

func TestSplitter(t *testing.T) {
	tests := []struct {
		s    Splitter
		cell string
		want []string
	}{
		{Splitter{Sep: ","}, "x, y", []string{"x", "y"}},
		{Splitter{Tokens: true}, "Red Car", []string{"red", "car"}},
		{Splitter{Tokens: true, MaxN: 2}, "Red Car", []string{"red", "car", "red car"}},
		{Splitter{Tokens: true}, "", nil},
	}
	for _, tt := range tests {
		got := tt.s.Split(tt.cell)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%+v.Split(%q) = %v, want %v", tt.s, tt.cell, got, tt.want)
		}
	}
}
