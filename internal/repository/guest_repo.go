package repository

import (
	"context"
	"errors"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

// GetByID returns nil, nil when the guest does not exist.
func (r *GuestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	var guest domain.Guest
	err := r.db.WithContext(ctx).First(&guest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) GetAll(ctx context.Context) ([]domain.Guest, error) {
	var guests []domain.Guest
	if err := r.db.WithContext(ctx).Order("created_at").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *GuestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}
