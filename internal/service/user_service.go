package service

import (
	"context"
	"errors"
	"log"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/shecanfoundation/intern-backend/internal/avatar"
	"github.com/shecanfoundation/intern-backend/internal/leaderboard"
	"github.com/shecanfoundation/intern-backend/internal/model"
	"github.com/shecanfoundation/intern-backend/internal/referral"
	"github.com/shecanfoundation/intern-backend/internal/repository"
	"gorm.io/gorm"
)

// ErrAuthUnavailable means the Firebase client never initialized (startup
// check timed out or credentials are missing) and account operations cannot
// be served.
var ErrAuthUnavailable = errors.New("auth unavailable")

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Profile(ctx context.Context, uid string) (*model.User, error)
	ChangePassword(ctx context.Context, uid, password string) error
}

type userService struct {
	repo    repository.UserRepository
	authCli *auth.Client
	avatars *avatar.Store
}

func NewUserService(repo repository.UserRepository, authCli *auth.Client, avatars *avatar.Store) UserService {
	return &userService{repo: repo, authCli: authCli, avatars: avatars}
}

// Register creates the Firebase account, then the profile row. The referral
// code and avatar are derived from the name once, here, and never recomputed.
func (s *userService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if s.authCli == nil {
		return nil, ErrAuthUnavailable
	}
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name)
	rec, err := s.authCli.CreateUser(ctx, params)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &model.User{
		UID:             rec.UID,
		Name:            name,
		Email:           email,
		ReferralCode:    referral.Code(name, now),
		DonationsRaised: 0,
		TierLabel:       leaderboard.DefaultTier,
		JoinDate:        now.Format("2006-01-02"),
		Avatar:          s.avatars.URL(ctx, rec.UID, name),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// Leaves an auth account without a profile row; the next register
		// attempt with this email will surface email-already-exists.
		log.Printf("register: profile create failed for %s: %v", rec.UID, err)
		return nil, err
	}
	return u, nil
}

func (s *userService) Profile(ctx context.Context, uid string) (*model.User, error) {
	u, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) ChangePassword(ctx context.Context, uid, password string) error {
	if s.authCli == nil {
		return ErrAuthUnavailable
	}
	_, err := s.authCli.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Password(password))
	return err
}
