package textutil

import (
	"reflect"
	"testing"
)

func TestNormalizeSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world ", "hello world"},
		{"one\ttwo\nthree", "one two three"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeSpace(tt.in); got != tt.want {
			t.Errorf("NormalizeSpace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "basic",
			in:   "First point. Second point! Third?",
			want: []string{"First point.", "Second point!", "Third?"},
		},
		{
			name: "trailing fragment kept",
			in:   "Done. And one more thing",
			want: []string{"Done.", "And one more thing"},
		},
		{
			name: "cjk punctuation",
			in:   "第一句。第二句？",
			want: []string{"第一句。", "第二句？"},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSentences(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEndsWithSentencePunct(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"done.", true},
		{"really?", true},
		{"quote ends.\"", true},
		{"trailing word", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := EndsWithSentencePunct(tt.in); got != tt.want {
			t.Errorf("EndsWithSentencePunct(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"a", "b"}, []string{"b", "a"}, 1},
		{"disjoint", []string{"a"}, []string{"b"}, 0},
		{"half", []string{"a", "b"}, []string{"b", "c", "d"}, 0.25},
		{"both empty", nil, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Jaccard(tt.a, tt.b); got != tt.want {
				t.Errorf("Jaccard() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncateAtSentence(t *testing.T) {
	s := "Short one. A somewhat longer second sentence here."
	got := TruncateAtSentence(s, 20)
	if got != "Short one." {
		t.Errorf("TruncateAtSentence() = %q, want %q", got, "Short one.")
	}

	if got := TruncateAtSentence("tiny", 100); got != "tiny" {
		t.Errorf("under-budget text must pass through unchanged, got %q", got)
	}

	noBoundary := TruncateAtSentence("wordswithoutanyboundaryatall", 10)
	if len([]rune(noBoundary)) > 10 {
		t.Errorf("truncated text longer than budget: %q", noBoundary)
	}
}
