package repository

import (
	"context"

	"github.com/shecanfoundation/intern-backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	// ListByDonationsDesc returns every profile ordered by donations_raised
	// descending. The store's order is the tiebreak for equal totals.
	ListByDonationsDesc(ctx context.Context) ([]model.User, error)
	// AddDonation applies a single atomic increment and reports how many rows
	// matched (0 means the uid does not exist).
	AddDonation(ctx context.Context, uid string, amount float64) (int64, error)
	SetDB(db *gorm.DB)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ListByDonationsDesc(ctx context.Context) ([]model.User, error) {
	var list []model.User
	if err := r.db.WithContext(ctx).
		Order("donations_raised DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *userRepository) AddDonation(ctx context.Context, uid string, amount float64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("uid = ?", uid).
		Update("donations_raised", gorm.Expr("donations_raised + ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *userRepository) SetDB(db *gorm.DB) {
	r.db = db
}
