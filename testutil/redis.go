package testutil

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewRedis starts an in-process miniredis server and returns a client for
// it. Both are shut down when the test finishes. The server is returned so
// tests can inspect keys or fast-forward TTLs.
func NewRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("testutil.NewRedis: ping: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client, mr
}
