package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shecanfoundation/intern-backend/internal/model"
)

func statsFixture() *fakeUserRepo {
	return newFakeUserRepo(
		model.User{UID: "u1", Name: "Sarah", DonationsRaised: 15420, ReferralCode: "sarah2025", TierLabel: "Bronze"},
		model.User{UID: "u2", Name: "Maria", DonationsRaised: 18750, ReferralCode: "maria2025", TierLabel: "Bronze"},
		model.User{UID: "u3", Name: "Emily", DonationsRaised: 12300, ReferralCode: "emily2025", TierLabel: "Bronze"},
	)
}

func TestLeaderboard(t *testing.T) {
	svc := NewStatsService(statsFixture(), func() int { return 10 })
	entries, err := svc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len=%d want=3", len(entries))
	}
	wantOrder := []string{"u2", "u1", "u3"}
	for i, e := range entries {
		if e.UID != wantOrder[i] || e.Rank != i+1 {
			t.Fatalf("pos %d: uid=%s rank=%d want uid=%s rank=%d", i, e.UID, e.Rank, wantOrder[i], i+1)
		}
	}
}

func TestUserStatsByRank(t *testing.T) {
	svc := NewStatsService(statsFixture(), func() int { return 25 })
	s := svc.UserStats(context.Background(), "u1")
	if s.RankPosition != 2 {
		t.Fatalf("rank=%d want=2", s.RankPosition)
	}
	if s.TotalRaised != 15420 {
		t.Fatalf("totalRaised=%v want=15420", s.TotalRaised)
	}
	if s.MonthlyGrowth != 25 {
		t.Fatalf("growth=%d want injected 25", s.MonthlyGrowth)
	}
}

func TestUserStatsMissingUser(t *testing.T) {
	svc := NewStatsService(statsFixture(), func() int { return 10 })
	s := svc.UserStats(context.Background(), "ghost")
	if s.TotalRaised != 0 || s.TierLabel != "Bronze" || s.RankPosition != 4 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestUserStatsStoreError(t *testing.T) {
	repo := statsFixture()
	repo.listErr = errors.New("store down")
	svc := NewStatsService(repo, func() int { return 10 })
	// read path degrades to defaults instead of failing
	s := svc.UserStats(context.Background(), "u1")
	if s.TotalRaised != 0 || s.TierLabel != "Bronze" || s.RankPosition != 1 || s.TotalInterns != 0 {
		t.Fatalf("unexpected degraded stats: %+v", s)
	}
}

func TestLeaderboardStoreError(t *testing.T) {
	repo := statsFixture()
	repo.listErr = errors.New("store down")
	svc := NewStatsService(repo, nil)
	if _, err := svc.Leaderboard(context.Background()); err == nil {
		t.Fatalf("expected error from leaderboard read")
	}
}
