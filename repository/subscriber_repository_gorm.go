package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"savings-site/domain"
)

type subscriberRow struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Email     string    `gorm:"uniqueIndex;not null;size:254"`
	Source    string    `gorm:"size:64"`
	CreatedAt time.Time `gorm:"not null"`
}

func (subscriberRow) TableName() string {
	return "waitlist_subscribers"
}

type SubscriberRepositoryGorm struct {
	db *gorm.DB
}

func NewSubscriberRepositoryGorm(db *gorm.DB) *SubscriberRepositoryGorm {
	return &SubscriberRepositoryGorm{db: db}
}

func (r *SubscriberRepositoryGorm) Save(ctx context.Context, s domain.Subscriber) error {
	row := subscriberRow{
		ID:        s.ID,
		Email:     s.Email,
		Source:    s.Source,
		CreatedAt: s.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *SubscriberRepositoryGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&subscriberRow{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
