package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savings-site/domain"
)

func TestSubscriberRepositoryMemory_Save(t *testing.T) {
	ctx := context.Background()
	repo := NewSubscriberRepositoryMemory()

	sub := domain.Subscriber{ID: "1", Email: "ops@plant.example.com", CreatedAt: time.Now()}
	require.NoError(t, repo.Save(ctx, sub))

	err := repo.Save(ctx, domain.Subscriber{ID: "2", Email: "ops@plant.example.com"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.Save(ctx, domain.Subscriber{ID: "3", Email: "facilities@plant.example.com"}))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
