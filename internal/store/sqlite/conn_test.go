package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamratSK/better-bites/internal/model"
)

func TestInMemoryStoresAreIsolated(t *testing.T) {
	ctx := context.Background()

	first, err := New(":memory:")
	require.NoError(t, err)
	second, err := New(":memory:")
	require.NoError(t, err)

	_, err = first.Profiles().Upsert(ctx, &model.Profile{UserID: "u1", DisplayName: "u1"})
	require.NoError(t, err)

	got, err := first.Profiles().Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	_, err = second.Profiles().Get(ctx, "u1")
	assert.True(t, errors.Is(err, model.ErrNotFound), "second in-memory store must not see the first store's rows")
}
