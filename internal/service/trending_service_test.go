package service

import (
	"Pulse/internal/model"
	"fmt"
	"testing"
)

func TestRankTopicsOrdering(t *testing.T) {
	tags := []*model.Hashtag{
		{ID: 1, Name: "stocks"},
		{ID: 2, Name: "crypto"},
		{ID: 3, Name: "bonds"},
	}
	heat := map[uint64]float64{1: 2.5, 2: 9.0, 3: 0.7}
	count := map[uint64]int64{1: 3, 2: 10, 3: 1}

	topics := rankTopics(tags, heat, count)
	if len(topics) != 3 {
		t.Fatalf("topics length = %d, want 3", len(topics))
	}
	want := []string{"crypto", "stocks", "bonds"}
	for i, name := range want {
		if topics[i].Tag != name {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i].Tag, name)
		}
	}
	if topics[0].MentionCount != 10 {
		t.Errorf("crypto mention count = %d, want 10", topics[0].MentionCount)
	}
}

// 热度同分时按标签名升序，保证榜单顺序稳定
func TestRankTopicsTieBreak(t *testing.T) {
	tags := []*model.Hashtag{
		{ID: 1, Name: "zinc"},
		{ID: 2, Name: "alpha"},
		{ID: 3, Name: "mid"},
	}
	heat := map[uint64]float64{1: 1.0, 2: 1.0, 3: 1.0}
	count := map[uint64]int64{1: 1, 2: 1, 3: 1}

	topics := rankTopics(tags, heat, count)
	want := []string{"alpha", "mid", "zinc"}
	for i, name := range want {
		if topics[i].Tag != name {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i].Tag, name)
		}
	}
}

func TestRankTopicsTruncates(t *testing.T) {
	tags := make([]*model.Hashtag, 0, TrendingSize+10)
	heat := make(map[uint64]float64)
	count := make(map[uint64]int64)
	for i := 0; i < TrendingSize+10; i++ {
		id := uint64(i + 1)
		tags = append(tags, &model.Hashtag{ID: id, Name: fmt.Sprintf("tag%02d", i)})
		heat[id] = float64(i)
		count[id] = 1
	}

	topics := rankTopics(tags, heat, count)
	if len(topics) != TrendingSize {
		t.Fatalf("topics length = %d, want %d", len(topics), TrendingSize)
	}
	// 热度最高的排第一
	if topics[0].Heat != float64(TrendingSize+9) {
		t.Errorf("top heat = %v, want %v", topics[0].Heat, float64(TrendingSize+9))
	}
}

func TestRankTopicsEmpty(t *testing.T) {
	topics := rankTopics(nil, map[uint64]float64{}, map[uint64]int64{})
	if len(topics) != 0 {
		t.Fatalf("topics length = %d, want 0", len(topics))
	}
}
