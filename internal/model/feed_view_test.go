package model

import "testing"

func TestParseFeedView(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FeedView
		wantErr bool
	}{
		{name: "empty defaults to for_you", input: "", want: FeedViewForYou},
		{name: "for_you", input: "for_you", want: FeedViewForYou},
		{name: "new", input: "new", want: FeedViewNew},
		{name: "following", input: "following", want: FeedViewFollowing},
		{name: "unknown", input: "hot", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFeedView(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFeedView(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFeedView(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFeedViewBehavior(t *testing.T) {
	tests := []struct {
		view            FeedView
		personalization bool
		followFilter    bool
		ignoreScore     bool
	}{
		{FeedViewForYou, true, false, false},
		{FeedViewNew, false, false, true},
		{FeedViewFollowing, false, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			if got := tt.view.UsePersonalization(); got != tt.personalization {
				t.Errorf("UsePersonalization() = %v, want %v", got, tt.personalization)
			}
			if got := tt.view.FilterByFollows(); got != tt.followFilter {
				t.Errorf("FilterByFollows() = %v, want %v", got, tt.followFilter)
			}
			if got := tt.view.IgnoreScore(); got != tt.ignoreScore {
				t.Errorf("IgnoreScore() = %v, want %v", got, tt.ignoreScore)
			}
		})
	}
}
