package scoring

import (
	"math"
	"testing"
	"time"
)

// 48 小时前发布、10 赞 2 评 0 收藏、质量与信任均为 1.0 的帖子：
// engagement = 16, decay = 0.5, score = 8.0
func TestPostScoreBaselineScenario(t *testing.T) {
	p := DefaultParams()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	in := Input{
		Likes:     10,
		Comments:  2,
		Bookmarks: 0,
		Quality:   QualityInput{ContentLength: 50},
		Trust:     TrustInput{},
		CreatedAt: now.Add(-48 * time.Hour),
	}

	b := p.PostScore(in, now)

	if math.Abs(b.Engagement-16.0) > 1e-9 {
		t.Errorf("engagement = %v, want 16.0", b.Engagement)
	}
	if math.Abs(b.Decay-0.5) > 1e-9 {
		t.Errorf("decay = %v, want 0.5", b.Decay)
	}
	if math.Abs(b.Score-8.0) > 1e-9 {
		t.Errorf("score = %v, want 8.0", b.Score)
	}
	if b.Bonus != 0 {
		t.Errorf("anonymous viewer bonus = %v, want 0", b.Bonus)
	}
}

// 同一帖子，观看者同专业、已关注作者且命中一个兴趣标签：8.0 + 20 + 15 + 10 = 53.0
func TestPostScorePersonalizedScenario(t *testing.T) {
	p := DefaultParams()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	in := Input{
		Likes:     10,
		Comments:  2,
		Quality:   QualityInput{ContentLength: 50},
		CreatedAt: now.Add(-48 * time.Hour),
		Viewer: &PersonalizationInput{
			SharesSpecialty: true,
			FollowsAuthor:   true,
			MatchesInterest: true,
		},
	}

	b := p.PostScore(in, now)
	if math.Abs(b.Score-53.0) > 1e-9 {
		t.Errorf("personalized score = %v, want 53.0", b.Score)
	}
}

func TestPostScoreDeterministic(t *testing.T) {
	p := DefaultParams()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	in := Input{
		Likes:     123,
		Comments:  45,
		Bookmarks: 6,
		Quality:   QualityInput{ContentLength: 700, MediaCount: 1, TagCount: 2, Comments: 45, Views: 300},
		Trust:     TrustInput{Verified: true, Level: 15},
		CreatedAt: now.Add(-31 * time.Hour),
		Viewer:    &PersonalizationInput{FollowsAuthor: true},
	}

	first := p.PostScore(in, now)
	second := p.PostScore(in, now)
	if first != second {
		t.Errorf("same inputs produced different breakdowns: %+v vs %+v", first, second)
	}
}

func TestPostScoreNonNegative(t *testing.T) {
	p := DefaultParams()
	now := time.Now()

	inputs := []Input{
		{},
		{CreatedAt: now.Add(-1000 * time.Hour)},
		{Likes: 1, CreatedAt: now},
		{Viewer: &PersonalizationInput{}},
	}

	for i, in := range inputs {
		if b := p.PostScore(in, now); b.Score < 0 {
			t.Errorf("input %d: score = %v, want non-negative", i, b.Score)
		}
	}
}

func TestPersonalizationBonusNonNegative(t *testing.T) {
	p := DefaultParams()

	for _, specialty := range []bool{false, true} {
		for _, follows := range []bool{false, true} {
			for _, interest := range []bool{false, true} {
				in := PersonalizationInput{
					SharesSpecialty: specialty,
					FollowsAuthor:   follows,
					MatchesInterest: interest,
				}
				if got := p.PersonalizationBonus(in); got < 0 {
					t.Errorf("PersonalizationBonus(%+v) = %v, want non-negative", in, got)
				}
			}
		}
	}
}

// 3600 秒内点赞从 5 涨到 15：velocity = 10/3600
func TestVelocityScenario(t *testing.T) {
	p := DefaultParams()

	got := p.Velocity(5, 0, 0, 15, 0, 0, 3600)
	want := 10.0 / 3600.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("velocity = %v, want %v", got, want)
	}
}

func TestVelocity(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name     string
		prev     [3]int
		cur      [3]int
		elapsed  float64
		expected float64
	}{
		{name: "no elapsed time", prev: [3]int{1, 1, 1}, cur: [3]int{5, 5, 5}, elapsed: 0, expected: 0},
		{name: "no change", prev: [3]int{5, 2, 1}, cur: [3]int{5, 2, 1}, elapsed: 3600, expected: 0},
		{
			name:    "weighted delta",
			prev:    [3]int{0, 0, 0},
			cur:     [3]int{10, 2, 1},
			elapsed: 100,
			// 10×1 + 2×3 + 1×5 = 21
			expected: 0.21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Velocity(tt.prev[0], tt.prev[1], tt.prev[2], tt.cur[0], tt.cur[1], tt.cur[2], tt.elapsed)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("velocity = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(p *Params) {}, wantErr: false},
		{name: "zero half life", mutate: func(p *Params) { p.HalfLifeHours = 0 }, wantErr: true},
		{name: "negative half life", mutate: func(p *Params) { p.HalfLifeHours = -48 }, wantErr: true},
		{name: "min decay of 1", mutate: func(p *Params) { p.MinDecay = 1 }, wantErr: true},
		{name: "negative like weight", mutate: func(p *Params) { p.LikeWeight = -1 }, wantErr: true},
		{name: "quality ceiling below 1", mutate: func(p *Params) { p.QualityCeiling = 0.5 }, wantErr: true},
		{name: "expert level below high level", mutate: func(p *Params) { p.ExpertLevel = 5 }, wantErr: true},
		{name: "decay factor of 1", mutate: func(p *Params) { p.InterestDecayFactor = 1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
