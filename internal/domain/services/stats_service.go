package services

import (
	"context"
	"encoding/json"
	"time"

	"civicdesk-http-service/internal/domain/models"
	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	statsCacheKey = "site:stats"
	statsCacheTTL = 30 * time.Second
)

// SiteStats 首页与透明度页面展示的聚合统计
type SiteStats struct {
	TotalIssues      int64 `json:"total_issues"`
	ResolvedIssues   int64 `json:"resolved_issues"`
	InProgressIssues int64 `json:"in_progress_issues"`
	TotalUpdates     int64 `json:"total_updates"`
	TotalSubscribers int64 `json:"total_subscribers"`
}

// InterfaceStatsService 聚合统计服务接口
type InterfaceStatsService interface {
	GetSiteStats() (*SiteStats, error)
	InvalidateCache()
}

// StatsService 提供只读聚合统计，Redis 可用时做短 TTL 缓存
type StatsService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *redis.Client
	Ctx    context.Context
}

// NewStatsService 创建一个新的统计服务，redisClient 允许为 nil（降级为直查）
func NewStatsService(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) InterfaceStatsService {
	return &StatsService{
		DB:     db,
		Config: cfg,
		Redis:  redisClient,
		Ctx:    context.Background(),
	}
}

// 1 GetSiteStats 返回一致性快照的各项计数
func (s *StatsService) GetSiteStats() (*SiteStats, error) {
	if cached := s.readCache(); cached != nil {
		return cached, nil
	}

	// 所有计数在同一事务内读取，避免并发写造成的统计偏差
	stats := &SiteStats{}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Issue{}).Count(&stats.TotalIssues).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Issue{}).Where("status = ?", models.StatusResolved).Count(&stats.ResolvedIssues).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Issue{}).Where("status = ?", models.StatusInProgress).Count(&stats.InProgressIssues).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Update{}).Count(&stats.TotalUpdates).Error; err != nil {
			return err
		}
		return tx.Model(&models.Subscriber{}).Count(&stats.TotalSubscribers).Error
	})
	if err != nil {
		return nil, err
	}

	s.writeCache(stats)
	return stats, nil
}

// 2 InvalidateCache 在任何影响计数的写入后清除缓存
func (s *StatsService) InvalidateCache() {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(s.Ctx, statsCacheKey)
}

// readCache 尝试读取缓存，Redis 不可用或未命中时返回 nil
func (s *StatsService) readCache() *SiteStats {
	if s.Redis == nil {
		return nil
	}
	val, err := s.Redis.Get(s.Ctx, statsCacheKey).Result()
	if err != nil {
		return nil
	}
	var stats SiteStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil
	}
	return &stats
}

// writeCache 写入缓存，失败时静默放弃
func (s *StatsService) writeCache(stats *SiteStats) {
	if s.Redis == nil {
		return
	}
	if payload, err := json.Marshal(stats); err == nil {
		s.Redis.Set(s.Ctx, statsCacheKey, payload, statsCacheTTL)
	}
}
