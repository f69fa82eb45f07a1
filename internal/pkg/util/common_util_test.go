package util

import (
	"reflect"
	"testing"
	"time"
)

func TestExtractTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "no tags", content: "plain text without tags", want: nil},
		{name: "single tag", content: "thoughts on #biotech today", want: []string{"biotech"}},
		{
			name:    "multiple tags deduplicated",
			content: "#Biotech rally, more #biotech and #REIT.",
			want:    []string{"biotech", "reit"},
		},
		{name: "trailing punctuation stripped", content: "watch #semis, seriously", want: []string{"semis"}},
		{name: "bare hash ignored", content: "just a # symbol", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTags(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractTags(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Biotech", "biotech"},
		{"REIT.", "reit"},
		{"#options", "options"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncToHour(t *testing.T) {
	in := time.Date(2026, 3, 1, 14, 37, 12, 500, time.UTC)
	want := time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC)
	if got := TruncToHour(in); !got.Equal(want) {
		t.Errorf("TruncToHour(%v) = %v, want %v", in, got, want)
	}
}
