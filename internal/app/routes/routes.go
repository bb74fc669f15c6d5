package routes

import (
	"time"

	_ "civicdesk-http-service/docs"
	"civicdesk-http-service/internal/app/controllers"
	"civicdesk-http-service/internal/app/middleware"
	"civicdesk-http-service/internal/domain/services/container"
	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 加载页面模板与静态资源
	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/public", cfg.PublicDir)

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化认证中间件
	middleware.InitAuthMiddleware(cfg)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有路由
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	registerPublicRoutes(r, container)
	registerAPIRoutes(r, container)
	registerAdminRoutes(r, container)

	// 404页面
	r.NoRoute(controllers.HandlePageFunc(container, "notFound"))
}

// registerPublicRoutes 注册公开页面路由
func registerPublicRoutes(r *gin.Engine, container *container.ServiceContainer) {
	r.GET("/", controllers.HandlePageFunc(container, "home"))
	r.GET("/about", controllers.HandlePageFunc(container, "about"))
	r.GET("/manifesto", controllers.HandlePageFunc(container, "manifesto"))
	r.GET("/media", controllers.HandlePageFunc(container, "media"))
	r.GET("/accountability", controllers.HandlePageFunc(container, "accountability"))
	r.GET("/updates", controllers.HandlePageFunc(container, "updates"))
	r.GET("/events", controllers.HandlePageFunc(container, "events"))

	r.GET("/issues", controllers.HandleIssueFunc(container, "showForm"))
	r.GET("/track/:reference", controllers.HandleIssueFunc(container, "track"))
	r.GET("/contact", controllers.HandleContactFunc(container, "showPage"))

	// 公开写入接口加IP限流 - 每秒10个请求，最多突发20个请求
	writes := r.Group("/")
	writes.Use(middleware.IPRateLimiter(10, 20))
	writes.POST("/issues", controllers.HandleIssueFunc(container, "submit"))
	writes.POST("/subscribe", controllers.HandleContactFunc(container, "subscribe"))
	writes.POST("/contact-message", controllers.HandleContactFunc(container, "saveMessage"))
}

// registerAPIRoutes 注册机器可读接口路由
func registerAPIRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	api.GET("/ping", controllers.HandleStatsFunc(container, "ping"))
	api.GET("/stats",
		middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Second}),
		controllers.HandleStatsFunc(container, "getStats"))
}

// registerAdminRoutes 注册需要管理令牌的路由
func registerAdminRoutes(r *gin.Engine, container *container.ServiceContainer) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdminToken())

	admin.GET("", controllers.HandleAdminFunc(container, "dashboard"))
	admin.POST("/issue-status", controllers.HandleAdminFunc(container, "updateIssueStatus"))
	admin.POST("/new-update", controllers.HandleAdminFunc(container, "newUpdate"))
	admin.POST("/new-event", controllers.HandleAdminFunc(container, "newEvent"))
}
