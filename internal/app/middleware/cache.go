package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// cacheEntry 缓存条目
type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

// memoryCache 内存缓存
type memoryCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

// 全局缓存实例
var cache = &memoryCache{
	items: make(map[string]cacheEntry),
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Expiration time.Duration // 缓存过期时间
}

// responseWriter 捕获响应体以便写入缓存
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache 创建GET响应缓存中间件，只缓存成功的JSON响应
func Cache(cfg CacheConfig) gin.HandlerFunc {
	if cfg.Expiration <= 0 {
		cfg.Expiration = 5 * time.Second
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.Path

		// 尝试命中缓存
		cache.RLock()
		entry, found := cache.items[key]
		cache.RUnlock()

		if found && entry.Expiration.After(time.Now()) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", entry.Content)
			c.Abort()
			return
		}

		// 缓存未命中，捕获响应
		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			cache.Lock()
			cache.items[key] = cacheEntry{
				Content:    writer.body.Bytes(),
				Expiration: time.Now().Add(cfg.Expiration),
			}
			cache.Unlock()
		}
	}
}
