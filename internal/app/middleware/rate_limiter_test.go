package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketBurst(t *testing.T) {
	tb := NewTokenBucket(1, 5)

	// 桶满时允许突发消耗全部容量
	for i := 0; i < 5; i++ {
		assert.True(t, tb.Allow(), "request %d within burst", i)
	}
	assert.False(t, tb.Allow())
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(100, 1)

	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())

	// 100/s 的速率下 50ms 足够补充一个令牌
	time.Sleep(50 * time.Millisecond)
	assert.True(t, tb.Allow())
}
