package controllers

import (
	"net/http"

	"civicdesk-http-service/internal/domain/services"
	"civicdesk-http-service/internal/domain/services/container"
	"civicdesk-http-service/internal/error/code"
	"civicdesk-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceStatsController 定义统计控制器接口
type InterfaceStatsController interface {
	GetStats()
	Ping()
}

// StatsController 聚合统计控制器
type StatsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStatsController 创建一个新的统计控制器
func NewStatsController(ctx *gin.Context, container *container.ServiceContainer) *StatsController {
	return &StatsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStatsFunc 返回一个处理统计请求的Gin处理函数
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatsController(ctx, container)

		switch method {
		case "getStats":
			controller.GetStats()
		case "ping":
			controller.Ping()
		default:
			response.Fail(ctx, code.ErrRecordNotFound, nil)
		}
	}
}

// 1 GetStats 返回机器可读的聚合统计
// @Summary      聚合统计
// @Description  返回问题、订阅与更新的计数，所有计数来自同一快照
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  services.SiteStats
// @Failure      500  {object}  response.Response
// @Router       /api/stats [get]
func (c *StatsController) GetStats() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetSiteStats()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	// 首页脚本直接消费裸字段，这里不包统一响应格式
	c.Ctx.JSON(http.StatusOK, stats)
}

// 2 Ping 健康检查
// @Summary      健康检查
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/ping [get]
func (c *StatsController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}
