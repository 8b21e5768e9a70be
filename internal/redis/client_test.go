package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicles-of-arvandor/spell-converter/internal/errors"
	"github.com/chronicles-of-arvandor/spell-converter/internal/redis"
)

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{DB: 0})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	require.NoError(t, redis.Ping(context.Background(), client))

	mr.Close()
	err = redis.Ping(context.Background(), client)
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}
