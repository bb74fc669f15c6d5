package container

import (
	"context"
	"sync"
	"time"

	"civicdesk-http-service/internal/domain/services"
	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 业务服务
	issueService      services.InterfaceIssueService
	contentService    services.InterfaceContentService
	subscriberService services.InterfaceSubscriberService
	statsService      services.InterfaceStatsService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  connectRedis(cfg),
	}
	container.initializeServices()
	return container
}

// connectRedis 建立Redis连接，未配置或不可达时返回 nil，统计服务降级为直查
func connectRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisHost == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		config.Warning("Redis ping failed: %v, stats caching disabled", err)
		return nil
	}
	return client
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issueService = services.NewIssueService(c.db, c.config)
	c.contentService = services.NewContentService(c.db, c.config)
	c.subscriberService = services.NewSubscriberService(c.db, c.config)
	c.statsService = services.NewStatsService(c.db, c.config, c.redis)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "issue":
		return c.issueService
	case "content":
		return c.contentService
	case "subscriber":
		return c.subscriberService
	case "stats":
		return c.statsService
	default:
		return nil
	}
}
