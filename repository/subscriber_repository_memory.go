package repository

import (
	"context"
	"sync"

	"savings-site/domain"
)

// SubscriberRepositoryMemory is an in-memory implementation of SubscriberRepository.
type SubscriberRepositoryMemory struct {
	mu      sync.RWMutex
	byEmail map[string]domain.Subscriber
}

// NewSubscriberRepositoryMemory creates a new in-memory subscriber repository.
func NewSubscriberRepositoryMemory() *SubscriberRepositoryMemory {
	return &SubscriberRepositoryMemory{
		byEmail: make(map[string]domain.Subscriber),
	}
}

// Save stores the subscriber in memory.
func (r *SubscriberRepositoryMemory) Save(_ context.Context, s domain.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[s.Email]; exists {
		return ErrDuplicateEmail
	}
	r.byEmail[s.Email] = s
	return nil
}

func (r *SubscriberRepositoryMemory) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byEmail)), nil
}
