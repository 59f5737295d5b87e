package leaderboard

import (
	"testing"

	"github.com/shecanfoundation/intern-backend/internal/model"
)

func u(uid, name string, raised float64) model.User {
	return model.User{UID: uid, Name: name, DonationsRaised: raised, ReferralCode: name + "2025"}
}

func TestCompute(t *testing.T) {
	users := []model.User{
		u("1", "sarah", 15420),
		u("2", "maria", 18750),
		u("3", "emily", 12300),
	}
	entries := Compute(users)
	if len(entries) != len(users) {
		t.Fatalf("len=%d want=%d", len(entries), len(users))
	}
	wantOrder := []string{"2", "1", "3"}
	for i, e := range entries {
		if e.UID != wantOrder[i] {
			t.Fatalf("pos %d: uid=%s want=%s", i, e.UID, wantOrder[i])
		}
		if e.Rank != i+1 {
			t.Fatalf("pos %d: rank=%d want=%d", i, e.Rank, i+1)
		}
	}
	// input untouched
	if users[0].UID != "1" || users[2].UID != "3" {
		t.Fatalf("input slice was reordered: %v", users)
	}
}

func TestComputeOrderingAndDenseRanks(t *testing.T) {
	tests := []struct {
		name  string
		users []model.User
	}{
		{"empty", nil},
		{"single", []model.User{u("a", "a", 5)}},
		{"ties", []model.User{u("a", "a", 100), u("b", "b", 100), u("c", "c", 50)}},
		{"all zero", []model.User{u("a", "a", 0), u("b", "b", 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Compute(tt.users)
			if len(entries) != len(tt.users) {
				t.Fatalf("len=%d want=%d", len(entries), len(tt.users))
			}
			for i, e := range entries {
				if e.Rank != i+1 {
					t.Fatalf("rank=%d want=%d", e.Rank, i+1)
				}
				if i > 0 && entries[i-1].DonationsRaised < e.DonationsRaised {
					t.Fatalf("not sorted at %d: %v then %v", i, entries[i-1].DonationsRaised, e.DonationsRaised)
				}
			}
		})
	}
}

func TestComputeStableOnTies(t *testing.T) {
	users := []model.User{
		u("first", "first", 100),
		u("second", "second", 100),
		u("third", "third", 100),
	}
	entries := Compute(users)
	for i, e := range entries {
		if e.UID != users[i].UID {
			t.Fatalf("tie order changed at %d: got %s want %s", i, e.UID, users[i].UID)
		}
	}
}

func TestUserStatsPresent(t *testing.T) {
	users := []model.User{
		u("1", "sarah", 15420),
		u("2", "maria", 18750),
		u("3", "emily", 12300),
	}
	growth := func() int { return 17 }
	s := UserStats("1", users, growth)
	if s.RankPosition != 2 {
		t.Fatalf("rank=%d want=2", s.RankPosition)
	}
	if s.TotalRaised != 15420 {
		t.Fatalf("totalRaised=%v want=15420", s.TotalRaised)
	}
	if s.TierLabel != "Bronze" {
		t.Fatalf("tier=%q want=Bronze", s.TierLabel)
	}
	if s.TotalInterns != 3 {
		t.Fatalf("totalInterns=%d want=3", s.TotalInterns)
	}
	if s.MonthlyGrowth != 17 {
		t.Fatalf("growth=%d want injected 17", s.MonthlyGrowth)
	}
	if s.ReferralCode != "sarah2025" {
		t.Fatalf("referralCode=%q want=sarah2025", s.ReferralCode)
	}
}

func TestUserStatsEchoesStoredTier(t *testing.T) {
	users := []model.User{u("1", "sarah", 10)}
	users[0].TierLabel = "Gold"
	s := UserStats("1", users, func() int { return 10 })
	if s.TierLabel != "Gold" {
		t.Fatalf("tier=%q want=Gold", s.TierLabel)
	}
}

func TestUserStatsAbsent(t *testing.T) {
	users := []model.User{
		u("1", "sarah", 15420),
		u("2", "maria", 18750),
	}
	s := UserStats("missing", users, func() int { return 10 })
	if s.TotalRaised != 0 {
		t.Fatalf("totalRaised=%v want=0", s.TotalRaised)
	}
	if s.TierLabel != "Bronze" {
		t.Fatalf("tier=%q want=Bronze", s.TierLabel)
	}
	if s.RankPosition != 3 {
		t.Fatalf("rank=%d want=N+1=3", s.RankPosition)
	}
	if s.ReferralCode == "" {
		t.Fatalf("expected fallback referral code")
	}
}

func TestDefaultGrowthRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		g := DefaultGrowth()
		if g < 10 || g > 39 {
			t.Fatalf("growth=%d outside [10,39]", g)
		}
	}
}
