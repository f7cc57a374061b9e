package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects to a running redis", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: a storage is created for the container address
		redisStorage, err := NewRedisStorage(ctx, st.Addr)

		// Then: it is connected and can be closed
		require.NoError(t, err)
		require.NoError(t, redisStorage.Close())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// When: a storage is created for a closed port
		redisStorage, err := NewRedisStorage(ctx, "127.0.0.1:1")

		// Then: an error is returned
		require.Error(t, err)
		require.Nil(t, redisStorage)
	})
}
