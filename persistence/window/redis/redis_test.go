package redis

import (
	"time"

	"testing"

	redigo "github.com/gomodule/redigo/redis"

	"github.com/Al3x4n/Fast-DDS/persistence/window/test"
)

func newPool(addr string) *redigo.Pool {
	return &redigo.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		Dial:        func() (redigo.Conn, error) { return redigo.Dial("tcp", addr) },
	}
}

func TestStore(t *testing.T) {
	pool := newPool(":6379")
	c, err := pool.Dial()
	if err != nil {
		t.Skipf("redis not reachable on :6379, skipping: %v", err)
	}
	c.Close()

	test.TestSuite(t, New(Options{Pool: pool}))
}
