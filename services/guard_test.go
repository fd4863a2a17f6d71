package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCheckUniqueAvailableWhenNoRowExists(t *testing.T) {
	store := newFakeStore()
	guard := &UniquenessGuard{Store: store}

	available, err := guard.CheckUnique(context.Background(), "vendors", "phone", "9999999999")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCheckUniqueConflictWhenRowExists(t *testing.T) {
	store := newFakeStore()
	store.rows["vendors"] = []bson.M{{"user_id": "u1", "phone": "9999999999"}}
	guard := &UniquenessGuard{Store: store}

	available, err := guard.CheckUnique(context.Background(), "vendors", "phone", "9999999999")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestCheckUniqueStoreErrorIsNotAConflict(t *testing.T) {
	store := newFakeStore()
	store.findErr = errors.New("connection reset")
	guard := &UniquenessGuard{Store: store}

	_, err := guard.CheckUnique(context.Background(), "vendors", "phone", "9999999999")
	require.Error(t, err)
	assert.Equal(t, KindStoreUnavailable, KindOf(err))
}
