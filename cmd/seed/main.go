// Command seed loads the five demo interns into the SQL store so the live
// API has the same dataset the mock server hardcodes.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shecanfoundation/intern-backend/internal/config"
	"github.com/shecanfoundation/intern-backend/internal/db"
	"github.com/shecanfoundation/intern-backend/internal/leaderboard"
	"github.com/shecanfoundation/intern-backend/internal/model"
)

type seedIntern struct {
	Name         string
	Email        string
	ReferralCode string
	Raised       float64
	JoinDate     string
	Avatar       string
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(&model.User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	var count int64
	if err := conn.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 && os.Getenv("FORCE_SEED") != "true" {
		log.Printf("users already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	for _, it := range demoInterns() {
		u := model.User{
			UID:             uuid.NewString(),
			Name:            it.Name,
			Email:           it.Email,
			ReferralCode:    it.ReferralCode,
			DonationsRaised: it.Raised,
			TierLabel:       leaderboard.DefaultTier,
			JoinDate:        it.JoinDate,
			Avatar:          it.Avatar,
		}
		if err := conn.WithContext(ctx).Create(&u).Error; err != nil {
			return fmt.Errorf("create %s: %w", it.Email, err)
		}
		log.Printf("seeded %s (%s)", it.Name, u.UID)
	}
	return nil
}

func demoInterns() []seedIntern {
	return []seedIntern{
		{
			Name:         "Sarah Johnson",
			Email:        "sarah@shecanfoundation.org",
			ReferralCode: "sarah2025",
			Raised:       15420,
			JoinDate:     "2024-01-15",
			Avatar:       "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			Name:         "Maria Garcia",
			Email:        "maria@shecanfoundation.org",
			ReferralCode: "maria2025",
			Raised:       18750,
			JoinDate:     "2024-01-20",
			Avatar:       "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			Name:         "Emily Chen",
			Email:        "emily@shecanfoundation.org",
			ReferralCode: "emily2025",
			Raised:       12300,
			JoinDate:     "2024-02-01",
			Avatar:       "https://images.pexels.com/photos/1130626/pexels-photo-1130626.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			Name:         "Aisha Patel",
			Email:        "aisha@shecanfoundation.org",
			ReferralCode: "aisha2025",
			Raised:       9850,
			JoinDate:     "2024-02-10",
			Avatar:       "https://images.pexels.com/photos/1181519/pexels-photo-1181519.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			Name:         "Jessica Williams",
			Email:        "jessica@shecanfoundation.org",
			ReferralCode: "jessica2025",
			Raised:       21600,
			JoinDate:     "2024-01-05",
			Avatar:       "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
	}
}
