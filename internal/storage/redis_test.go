package storage

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisBackend_RequiresURL(t *testing.T) {
	_, err := NewRedisBackend("", "autoelite:")
	assert.Error(t, err)

	_, err = NewRedisBackend("not a url", "autoelite:")
	assert.Error(t, err)
}

func TestRedisBackend_KeyLayout(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	rb := NewRedisBackendFromClient(client, "autoelite:")

	assert.Equal(t, "autoelite:scope-1:autoelite_favorites", rb.key("scope-1", "autoelite_favorites"))
}
