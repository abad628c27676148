package repository

import (
	"context"
	"errors"

	"savings-site/domain"
)

var ErrDuplicateEmail = errors.New("email already registered")

type SubscriberRepository interface {
	// Save stores a subscriber; it returns ErrDuplicateEmail when the address exists.
	Save(ctx context.Context, s domain.Subscriber) error
	Count(ctx context.Context) (int64, error)
}
