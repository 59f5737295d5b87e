package service

import (
	"context"
	"errors"
	"math"

	"github.com/shecanfoundation/intern-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidAmount = errors.New("invalid amount")

type DonationService interface {
	// Apply adds amount to the user's total and returns the new total.
	Apply(ctx context.Context, uid string, amount float64) (float64, error)
}

type donationService struct {
	repo repository.UserRepository
}

func NewDonationService(repo repository.UserRepository) DonationService {
	return &donationService{repo: repo}
}

func (s *donationService) Apply(ctx context.Context, uid string, amount float64) (float64, error) {
	if uid == "" {
		return 0, ErrNotFound
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	rows, err := s.repo.AddDonation(ctx, uid, amount)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrNotFound
	}
	// Re-read so the caller sees the post-increment total, matching the
	// read-after-write the dashboard expects.
	u, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return u.DonationsRaised, nil
}
