// Package leaderboard derives rankings and per-user stats from the full set
// of intern profiles. It is pure computation: callers fetch the records,
// this package only projects them.
package leaderboard

import (
	"math/rand"
	"sort"
	"time"

	"github.com/shecanfoundation/intern-backend/internal/model"
	"github.com/shecanfoundation/intern-backend/internal/referral"
)

// DefaultTier is the tier label assigned to every profile until something
// external promotes it. Promotion thresholds are an unimplemented extension
// point; nothing here derives tiers from donation totals.
const DefaultTier = "Bronze"

// Entry is a user plus their 1-based position when all users are sorted by
// DonationsRaised descending.
type Entry struct {
	model.User
	Rank int
}

// Stats is the derived per-user dashboard view. RankPosition is the numeric
// leaderboard position; TierLabel is the stored qualitative tier. The two are
// deliberately distinct fields and must not be conflated.
type Stats struct {
	TotalRaised   float64
	TierLabel     string
	RankPosition  int
	TotalInterns  int
	MonthlyGrowth int
	ReferralCode  string
}

// Compute sorts users by DonationsRaised descending and assigns
// rank = index + 1. The sort is stable: equal totals keep their input order.
// The input slice is left untouched and every record appears exactly once in
// the output.
func Compute(users []model.User) []Entry {
	sorted := make([]model.User, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DonationsRaised > sorted[j].DonationsRaised
	})
	entries := make([]Entry, 0, len(sorted))
	for i := range sorted {
		entries = append(entries, Entry{User: sorted[i], Rank: i + 1})
	}
	return entries
}

// DefaultGrowth returns the placeholder monthly growth figure, a uniform
// random integer in [10, 39]. It is a stub, not a real metric; callers must
// not assume repeated calls agree.
func DefaultGrowth() int {
	return rand.Intn(30) + 10
}

// UserStats derives uid's stats from the full user set. growth supplies the
// monthly growth stub and defaults to DefaultGrowth when nil. A uid absent
// from the set yields defaults (zero raised, DefaultTier, rank N+1, fallback
// referral code) instead of an error.
func UserStats(uid string, users []model.User, growth func() int) Stats {
	if growth == nil {
		growth = DefaultGrowth
	}
	for _, e := range Compute(users) {
		if e.UID != uid {
			continue
		}
		tier := e.TierLabel
		if tier == "" {
			tier = DefaultTier
		}
		return Stats{
			TotalRaised:   e.DonationsRaised,
			TierLabel:     tier,
			RankPosition:  e.Rank,
			TotalInterns:  len(users),
			MonthlyGrowth: growth(),
			ReferralCode:  e.ReferralCode,
		}
	}
	return Stats{
		TotalRaised:   0,
		TierLabel:     DefaultTier,
		RankPosition:  len(users) + 1,
		TotalInterns:  len(users),
		MonthlyGrowth: growth(),
		ReferralCode:  referral.Fallback(time.Now()),
	}
}
