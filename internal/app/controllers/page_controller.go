package controllers

import (
	"net/http"

	"civicdesk-http-service/internal/domain/services"
	"civicdesk-http-service/internal/domain/services/container"
	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfacePageController 定义公开页面控制器接口
type InterfacePageController interface {
	Home()
	About()
	Manifesto()
	Media()
	Accountability()
	Updates()
	Events()
	NotFound()
}

// PageController 公开内容页面控制器
type PageController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPageController 创建一个新的页面控制器
func NewPageController(ctx *gin.Context, container *container.ServiceContainer) *PageController {
	return &PageController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandlePageFunc 返回一个处理公开页面请求的Gin处理函数
func HandlePageFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPageController(ctx, container)

		switch method {
		case "home":
			controller.Home()
		case "about":
			controller.About()
		case "manifesto":
			controller.Manifesto()
		case "media":
			controller.Media()
		case "accountability":
			controller.Accountability()
		case "updates":
			controller.Updates()
		case "events":
			controller.Events()
		default:
			controller.NotFound()
		}
	}
}

// baseData 页面模板的公共数据
func baseData(container *container.ServiceContainer, title string) gin.H {
	cfg := container.GetService("config").(*config.Config)
	return gin.H{
		"Title":         title,
		"CandidateName": cfg.CandidateName,
		"Tagline":       config.SiteTagline,
	}
}

// renderServerError 渲染通用的服务器错误页面并记录原始错误
func renderServerError(ctx *gin.Context, container *container.ServiceContainer, err error) {
	config.Error("request %s %s failed: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.HTML(http.StatusInternalServerError, "error.html", baseData(container, "Server Error"))
}

// 1 Home 首页：最新更新、近期活动与聚合统计
func (c *PageController) Home() {
	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)

	updates, err := contentService.GetLatestUpdates(3)
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}
	events, err := contentService.GetUpcomingEvents(3)
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}
	stats, err := statsService.GetSiteStats()
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	data := baseData(c.Container, "Home")
	data["Updates"] = updates
	data["Events"] = events
	data["Stats"] = stats
	c.Ctx.HTML(http.StatusOK, "home.html", data)
}

// 2 About 关于页面
func (c *PageController) About() {
	c.Ctx.HTML(http.StatusOK, "about.html", baseData(c.Container, "About"))
}

// 3 Manifesto 竞选纲领页面
func (c *PageController) Manifesto() {
	c.Ctx.HTML(http.StatusOK, "manifesto.html", baseData(c.Container, "Manifesto"))
}

// 4 Media 媒体中心页面
func (c *PageController) Media() {
	c.Ctx.HTML(http.StatusOK, "media.html", baseData(c.Container, "Media"))
}

// 5 Accountability 透明度页面：问题处理进度统计
func (c *PageController) Accountability() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetSiteStats()
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	data := baseData(c.Container, "Accountability")
	data["Stats"] = stats
	c.Ctx.HTML(http.StatusOK, "accountability.html", data)
}

// 6 Updates 官方更新列表页面
func (c *PageController) Updates() {
	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	updates, err := contentService.GetLatestUpdates(100)
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	data := baseData(c.Container, "Official Updates")
	data["Updates"] = updates
	c.Ctx.HTML(http.StatusOK, "updates.html", data)
}

// 7 Events 活动列表页面
func (c *PageController) Events() {
	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	events, err := contentService.GetUpcomingEvents(0)
	if err != nil {
		renderServerError(c.Ctx, c.Container, err)
		return
	}

	data := baseData(c.Container, "Events")
	data["Events"] = events
	c.Ctx.HTML(http.StatusOK, "events.html", data)
}

// 8 NotFound 404页面
func (c *PageController) NotFound() {
	c.Ctx.HTML(http.StatusNotFound, "404.html", baseData(c.Container, "Not Found"))
}
