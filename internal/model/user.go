package model

import "time"

// User is one intern's profile row. UID is the Firebase auth uid; the row is
// created once at registration and only DonationsRaised changes afterwards.
type User struct {
	UID             string    `gorm:"column:uid;primaryKey;size:128"`
	Name            string    `gorm:"size:120;not null"`
	Email           string    `gorm:"size:254;not null;uniqueIndex"`
	ReferralCode    string    `gorm:"size:64;not null"`
	DonationsRaised float64   `gorm:"not null;default:0"`
	TierLabel       string    `gorm:"size:32;not null;default:'Bronze'"`
	JoinDate        string    `gorm:"size:10;not null"`
	Avatar          string    `gorm:"size:512;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
