package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUniqueShortID(t *testing.T) {
	id, err := GenerateUniqueShortID(context.Background(), func(ctx context.Context, id string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	assert.Len(t, id, 6)
}

func TestGenerateUniqueShortIDRetriesOnCollision(t *testing.T) {
	calls := 0
	id, err := GenerateUniqueShortID(context.Background(), func(ctx context.Context, id string) (bool, error) {
		calls++
		return calls < 3, nil
	})
	require.NoError(t, err)
	assert.Len(t, id, 6)
	assert.Equal(t, 3, calls)
}

func TestGenerateUniqueShortIDGivesUpAfterBoundedAttempts(t *testing.T) {
	calls := 0
	_, err := GenerateUniqueShortID(context.Background(), func(ctx context.Context, id string) (bool, error) {
		calls++
		return true, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not allocate a unique id")
	assert.Equal(t, maxIDGenerationAttempts, calls)
}

func TestGenerateUniqueShortIDPropagatesStoreError(t *testing.T) {
	_, err := GenerateUniqueShortID(context.Background(), func(ctx context.Context, id string) (bool, error) {
		return false, fmt.Errorf("connection reset")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"name": "name", "created_at": "created_at"}

	assert.Equal(t, "name ASC", orderClause("name", allowed, "created_at DESC"))
	assert.Equal(t, "name DESC", orderClause("-name", allowed, "created_at DESC"))
	assert.Equal(t, "created_at DESC", orderClause("", allowed, "created_at DESC"))
	assert.Equal(t, "created_at DESC", orderClause("password", allowed, "created_at DESC"))
	assert.Equal(t, "created_at DESC", orderClause("-password", allowed, "created_at DESC"))
}
