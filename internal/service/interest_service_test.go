package service

import (
	"Pulse/internal/pkg/consts"
	"Pulse/internal/pkg/scoring"
	"context"
	"math"
	"testing"
)

func TestReinforceIncrements(t *testing.T) {
	tests := []struct {
		action string
		want   float64
	}{
		{consts.ActionView, 0.1},
		{consts.ActionLike, 1.0},
		{consts.ActionComment, 2.0},
		{consts.ActionBookmark, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			repo := newFakeInterestRepo()
			svc := NewInterestService(scoring.DefaultParams(), repo)

			if err := svc.Reinforce(context.Background(), 1, []string{"stocks"}, tt.action); err != nil {
				t.Fatalf("Reinforce() error = %v", err)
			}
			if got := repo.weights[1]["stocks"]; math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("weight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReinforceAccumulates(t *testing.T) {
	repo := newFakeInterestRepo()
	svc := NewInterestService(scoring.DefaultParams(), repo)
	ctx := context.Background()

	_ = svc.Reinforce(ctx, 1, []string{"crypto"}, consts.ActionLike)
	_ = svc.Reinforce(ctx, 1, []string{"crypto"}, consts.ActionComment)

	if got := repo.weights[1]["crypto"]; math.Abs(got-3.0) > 1e-9 {
		t.Errorf("accumulated weight = %v, want 3.0", got)
	}
}

func TestReinforceIgnoresUnknownAction(t *testing.T) {
	repo := newFakeInterestRepo()
	svc := NewInterestService(scoring.DefaultParams(), repo)

	if err := svc.Reinforce(context.Background(), 1, []string{"stocks"}, "share"); err != nil {
		t.Fatalf("Reinforce() error = %v", err)
	}
	if len(repo.weights) != 0 {
		t.Errorf("unknown action should not write, got %v", repo.weights)
	}
}

func TestReinforceIgnoresAnonymousUser(t *testing.T) {
	repo := newFakeInterestRepo()
	svc := NewInterestService(scoring.DefaultParams(), repo)

	if err := svc.Reinforce(context.Background(), 0, []string{"stocks"}, consts.ActionLike); err != nil {
		t.Fatalf("Reinforce() error = %v", err)
	}
	if len(repo.weights) != 0 {
		t.Errorf("anonymous interaction should not write, got %v", repo.weights)
	}
}

// 衰减后跌破阈值的兴趣被删除，其余保留
func TestDecayAllPrunes(t *testing.T) {
	repo := newFakeInterestRepo()
	_ = repo.ReinforceInterest(context.Background(), 1, "stocks", 5.0)
	_ = repo.ReinforceInterest(context.Background(), 1, "bonds", 0.1)

	svc := NewInterestService(scoring.DefaultParams(), repo)
	if _, err := svc.DecayAll(context.Background()); err != nil {
		t.Fatalf("DecayAll() error = %v", err)
	}

	if got := repo.weights[1]["stocks"]; math.Abs(got-4.75) > 1e-9 {
		t.Errorf("stocks weight = %v, want 4.75", got)
	}
	if _, ok := repo.weights[1]["bonds"]; ok {
		t.Error("bonds should have been pruned")
	}
}
