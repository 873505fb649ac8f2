package cache_test

import (
	"context"
	"errors"
	"testing"
	"zonecast/infras/otel/mocks"
	"zonecast/shared/cache"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache_NilClientIsNoop(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "conversion:UTC", map[string]string{"a": "b"}, 60))

	var value map[string]string
	err := c.Get(ctx, "conversion:UTC", &value)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
	assert.Nil(t, value)

	assert.NoError(t, c.Delete(ctx, "conversion:UTC"))
}
