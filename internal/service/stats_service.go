package service

import (
	"context"
	"log"

	"github.com/shecanfoundation/intern-backend/internal/leaderboard"
	"github.com/shecanfoundation/intern-backend/internal/repository"
)

type StatsService interface {
	Leaderboard(ctx context.Context) ([]leaderboard.Entry, error)
	// UserStats never fails: a missing user or an unreachable store both
	// degrade to the documented defaults.
	UserStats(ctx context.Context, uid string) leaderboard.Stats
}

type statsService struct {
	repo   repository.UserRepository
	growth func() int
}

// NewStatsService builds the stats reader. growth overrides the monthly
// growth stub (nil keeps leaderboard.DefaultGrowth).
func NewStatsService(repo repository.UserRepository, growth func() int) StatsService {
	if growth == nil {
		growth = leaderboard.DefaultGrowth
	}
	return &statsService{repo: repo, growth: growth}
}

func (s *statsService) Leaderboard(ctx context.Context) ([]leaderboard.Entry, error) {
	users, err := s.repo.ListByDonationsDesc(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.Compute(users), nil
}

func (s *statsService) UserStats(ctx context.Context, uid string) leaderboard.Stats {
	users, err := s.repo.ListByDonationsDesc(ctx)
	if err != nil {
		log.Printf("stats: list users: %v", err)
		users = nil
	}
	return leaderboard.UserStats(uid, users, s.growth)
}
